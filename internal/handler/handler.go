// Package handler содержит HTTP обработчики для API витрины
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"storefront_service/internal/models"
	"storefront_service/internal/pricing"
	"storefront_service/internal/schedule"
	"storefront_service/internal/service"
)

// StorefrontService определяет интерфейс сервиса витрины для обработчиков
type StorefrontService interface {
	Timeslots(ctx context.Context, sessionID string) ([]schedule.DaySlots, error)
	ScheduleStatus(sessionID string) service.ScheduleState
	UpdateOrderType(ctx context.Context, sessionID string, t models.OrderType)
	UpdateUserPosition(ctx context.Context, sessionID string, pos models.Coordinates)
	UpdateTimeslot(ctx context.Context, sessionID string, dateTime *time.Time, asap *bool)
	DeliveryQuote(ctx context.Context, sessionID string, subtotal float64) (*pricing.Result, error)
	CheckCoverage(ctx context.Context, sessionID string, pos *models.Coordinates) (*service.CoverageInfo, error)
	DeliveryAreas(ctx context.Context, sessionID string) ([]models.DeliveryArea, error)
	CheckOrderTime(sessionID string, ts time.Time, t models.OrderType) bool
	GetStats() map[string]interface{}
}

// Handler содержит HTTP обработчики для API
type Handler struct {
	service StorefrontService // Сервис витрины
}

// New создает новый экземпляр HTTP обработчика
func New(service StorefrontService) *Handler {
	return &Handler{service: service}
}

// writeJSON сериализует ответ в JSON
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Timeslots обрабатывает запрос доступных таймслотов сессии
func (h *Handler) Timeslots(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.Timeslots(r.Context(), sessionFrom(r))
	if err != nil {
		// Ошибка коллаборатора: не маскируем под пустое расписание
		http.Error(w, "Расписание временно недоступно", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"timeslots": groups})
}

// ScheduleStatus обрабатывает запрос состояния расписания
func (h *Handler) ScheduleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ScheduleStatus(sessionFrom(r)))
}

// UpdateOrderType обрабатывает смену типа заказа сессии
func (h *Handler) UpdateOrderType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderType string `json:"order_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Некорректное тело запроса", http.StatusBadRequest)
		return
	}
	t := models.OrderType(req.OrderType)
	if req.OrderType != "" && (!t.Valid() || t == models.OrderTypeOpening) {
		http.Error(w, "Неизвестный тип заказа", http.StatusUnprocessableEntity)
		return
	}
	h.service.UpdateOrderType(r.Context(), sessionFrom(r), t)
	writeJSON(w, http.StatusOK, map[string]any{"order_type": req.OrderType})
}

// UpdatePosition обрабатывает обновление позиции покупателя
func (h *Handler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var pos models.Coordinates
	if err := json.NewDecoder(r.Body).Decode(&pos); err != nil {
		http.Error(w, "Некорректное тело запроса", http.StatusBadRequest)
		return
	}
	h.service.UpdateUserPosition(r.Context(), sessionFrom(r), pos)
	writeJSON(w, http.StatusOK, pos)
}

// UpdateTimeslot обрабатывает выбор или сброс таймслота
func (h *Handler) UpdateTimeslot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DateTime *time.Time `json:"date_time"`
		Asap     *bool      `json:"asap"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Некорректное тело запроса", http.StatusBadRequest)
		return
	}
	h.service.UpdateTimeslot(r.Context(), sessionFrom(r), req.DateTime, req.Asap)
	writeJSON(w, http.StatusOK, map[string]any{"asap": req.DateTime == nil && req.Asap == nil})
}

// DeliveryQuote обрабатывает расчет условия доставки для суммы корзины
func (h *Handler) DeliveryQuote(w http.ResponseWriter, r *http.Request) {
	subtotal, err := strconv.ParseFloat(r.URL.Query().Get("subtotal"), 64)
	if err != nil || subtotal < 0 {
		http.Error(w, "Требуется параметр subtotal", http.StatusBadRequest)
		return
	}
	res, err := h.service.DeliveryQuote(r.Context(), sessionFrom(r), subtotal)
	if err != nil {
		http.Error(w, "Расчет доставки временно недоступен", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Coverage обрабатывает проверку покрытия доставки
func (h *Handler) Coverage(w http.ResponseWriter, r *http.Request) {
	var pos *models.Coordinates
	q := r.URL.Query()
	if q.Get("lat") != "" || q.Get("lng") != "" {
		lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
		lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
		if latErr != nil || lngErr != nil {
			http.Error(w, "Некорректные координаты", http.StatusBadRequest)
			return
		}
		pos = &models.Coordinates{Latitude: lat, Longitude: lng}
	}
	info, err := h.service.CheckCoverage(r.Context(), sessionFrom(r), pos)
	if err != nil {
		http.Error(w, "Проверка покрытия временно недоступна", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

// DeliveryAreas обрабатывает запрос списка зон доставки заведения
func (h *Handler) DeliveryAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.DeliveryAreas(r.Context(), sessionFrom(r))
	if err != nil {
		http.Error(w, "Зоны доставки временно недоступны", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"areas": areas})
}

// CheckOrderTime обрабатывает проверку момента заказа
func (h *Handler) CheckOrderTime(w http.ResponseWriter, r *http.Request) {
	ts, err := time.Parse(time.RFC3339, r.URL.Query().Get("at"))
	if err != nil {
		http.Error(w, "Требуется параметр at в формате RFC3339", http.StatusBadRequest)
		return
	}
	t := models.OrderType(r.URL.Query().Get("type"))
	ok := h.service.CheckOrderTime(sessionFrom(r), ts, t)
	writeJSON(w, http.StatusOK, map[string]any{"at": ts, "acceptable": ok})
}

// HealthCheck обрабатывает запрос проверки состояния сервиса
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",        // Статус сервиса
		"timestamp": time.Now().UTC(), // Текущее время
	})
}

// Stats обрабатывает запрос для получения статистики сервиса
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.GetStats()) // Возвращаем статистику в формате JSON
}
