// Пакет service содержит бизнес-логику витрины: восстановление контекста
// заказа по сессии, запросы расписания и расчет доставки
package service

import (
	"context"
	"log"
	"sync"
	"time"

	"storefront_service/internal/area"
	"storefront_service/internal/interfaces"
	"storefront_service/internal/location"
	"storefront_service/internal/models"
	"storefront_service/internal/pricing"
	"storefront_service/internal/schedule"
)

// Service представляет основной сервис витрины. Контекст заказа не живет
// между запросами: на каждый вызов он восстанавливается из сессионного
// хранилища, общего изменяемого состояния между сессиями нет
type Service struct {
	db       interfaces.Database
	model    *models.Location
	sessions interfaces.SessionStore
	notifier interfaces.Notifier
	cache    interfaces.AreaCache
	pricing  *pricing.DeliveryCondition

	defaultOrderType models.OrderType
	timeslotHook     schedule.OverrideHook
	now              func() time.Time

	mu    sync.RWMutex // Мьютекс для безопасного доступа к статистике
	stats struct {
		LastRequestTime     time.Time     // Время последнего запроса
		LastRequestDuration time.Duration // Длительность обработки последнего запроса
	}
}

// New создает новый экземпляр сервиса витрины
func New(db interfaces.Database, model *models.Location, sessions interfaces.SessionStore,
	notifier interfaces.Notifier, areaCache interfaces.AreaCache, defaultOrderType models.OrderType) *Service {
	return &Service{
		db:               db,
		model:            model,
		sessions:         sessions,
		notifier:         notifier,
		cache:            areaCache,
		pricing:          pricing.NewDeliveryCondition(),
		defaultOrderType: defaultOrderType,
		now:              time.Now,
	}
}

// WithTimeslotHook задает хук переопределения лимитера для всех контекстов
func (s *Service) WithTimeslotHook(hook schedule.OverrideHook) *Service {
	s.timeslotHook = hook
	return s
}

// WithClock подменяет источник времени (для тестов)
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ContextFor восстанавливает контекст заказа сессии из сессионного хранилища
func (s *Service) ContextFor(sessionID string) *location.Context {
	resolver := area.NewResolver(s.db, s.cache, s.model.ID, s.model.DefaultDeliveryArea)
	return location.NewContext(s.model, s.sessions, s.notifier, resolver, s.db,
		sessionID, s.defaultOrderType).
		WithClock(s.now).
		WithTimeslotHook(s.timeslotHook)
}

// track обновляет статистику времени обработки запроса
func (s *Service) track(start time.Time) {
	s.mu.Lock()
	s.stats.LastRequestTime = start
	s.stats.LastRequestDuration = time.Since(start)
	s.mu.Unlock()
}

// Timeslots возвращает доступные таймслоты сессии, отфильтрованные лимитером
func (s *Service) Timeslots(ctx context.Context, sessionID string) ([]schedule.DaySlots, error) {
	start := time.Now()
	defer func() { s.track(start) }()

	return s.ContextFor(sessionID).Timeslots(ctx)
}

// ScheduleState сводка состояния расписания для сессии
type ScheduleState struct {
	OrderType     models.OrderType      `json:"order_type"`
	Status        models.ScheduleStatus `json:"status"`
	Acceptable    bool                  `json:"acceptable"` // Принимаются ли сейчас заказы этого типа
	OpenTime      *time.Time            `json:"open_time,omitempty"`
	CloseTime     *time.Time            `json:"close_time,omitempty"`
	LastOrderTime *time.Time            `json:"last_order_time,omitempty"`
}

// ScheduleStatus возвращает состояние расписания для текущего типа заказа сессии
func (s *Service) ScheduleStatus(sessionID string) ScheduleState {
	start := time.Now()
	defer func() { s.track(start) }()

	loc := s.ContextFor(sessionID)
	orderType := loc.OrderType()

	state := ScheduleState{
		OrderType:  orderType,
		Status:     loc.ScheduleStatus(),
		Acceptable: loc.CheckOrderType(orderType),
	}
	if open, ok := loc.OpenTime(orderType); ok {
		state.OpenTime = &open
	}
	if close, ok := loc.CloseTime(orderType); ok {
		state.CloseTime = &close
	}
	if last, ok := loc.LastOrderTime(); ok {
		state.LastOrderTime = &last
	}
	return state
}

// UpdateOrderType меняет тип заказа сессии
func (s *Service) UpdateOrderType(ctx context.Context, sessionID string, t models.OrderType) {
	start := time.Now()
	defer func() { s.track(start) }()

	s.ContextFor(sessionID).UpdateOrderType(ctx, t)
}

// UpdateUserPosition сохраняет позицию покупателя в сессии
func (s *Service) UpdateUserPosition(ctx context.Context, sessionID string, pos models.Coordinates) {
	start := time.Now()
	defer func() { s.track(start) }()

	s.ContextFor(sessionID).UpdateUserPosition(ctx, pos)
}

// UpdateTimeslot сохраняет или сбрасывает выбор таймслота сессии
func (s *Service) UpdateTimeslot(ctx context.Context, sessionID string, dateTime *time.Time, asap *bool) {
	start := time.Now()
	defer func() { s.track(start) }()

	s.ContextFor(sessionID).UpdateTimeslot(ctx, dateTime, asap)
}

// DeliveryQuote вычисляет условие доставки для суммы корзины сессии
func (s *Service) DeliveryQuote(ctx context.Context, sessionID string, subtotal float64) (*pricing.Result, error) {
	start := time.Now()
	defer func() { s.track(start) }()

	return s.pricing.Apply(ctx, s.ContextFor(sessionID), subtotal)
}

// CoverageInfo итог проверки покрытия доставки
type CoverageInfo struct {
	Covered    bool    `json:"covered"`
	AreaID     int64   `json:"area_id"` // 0 означает "нет покрытия"
	DistanceKm float64 `json:"distance_km"`
}

// CheckCoverage проверяет покрытие доставки для позиции
func (s *Service) CheckCoverage(ctx context.Context, sessionID string, pos *models.Coordinates) (*CoverageInfo, error) {
	start := time.Now()
	defer func() { s.track(start) }()

	loc := s.ContextFor(sessionID)
	covered, err := loc.CheckDeliveryCoverage(ctx, pos)
	if err != nil {
		return nil, err
	}
	return &CoverageInfo{
		Covered:    covered,
		AreaID:     loc.AreaID(),
		DistanceKm: loc.CheckDistance(2),
	}, nil
}

// DeliveryAreas возвращает все зоны доставки заведения
func (s *Service) DeliveryAreas(ctx context.Context, sessionID string) ([]models.DeliveryArea, error) {
	start := time.Now()
	defer func() { s.track(start) }()

	return s.ContextFor(sessionID).DeliveryAreas(ctx)
}

// CheckOrderTime проверяет, можно ли оформить заказ на данный момент времени
func (s *Service) CheckOrderTime(sessionID string, ts time.Time, t models.OrderType) bool {
	start := time.Now()
	defer func() { s.track(start) }()

	return s.ContextFor(sessionID).CheckOrderTime(ts, t)
}

// IngestOrder сохраняет размещенный заказ, принятый из Kafka.
// Заказы других заведений пропускаются
func (s *Service) IngestOrder(order *models.Order) error {
	// Создаем контекст с таймаутом 10 секунд
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if order.LocationID != s.model.ID {
		log.Printf("Пропущен заказ %s другого заведения %d", order.OrderUID, order.LocationID)
		return nil
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	// Сохраняем заказ в базу данных
	if err := s.db.SaveOrder(ctx, order); err != nil {
		return err
	}

	log.Printf("Заказ принят %s", order.OrderUID)
	return nil
}

// GetStats возвращает статистику работы сервиса
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"location_id":           s.model.ID,
		"area_cache_size":       s.cache.Size(),                             // Количество зон в кэше
		"last_request_time":     s.stats.LastRequestTime,                    // Время последнего запроса
		"last_request_duration": s.stats.LastRequestDuration.Milliseconds(), // Длительность последнего запроса в миллисекундах
		"timestamp":             time.Now().UTC(),                           // Текущее время
	}
}

// Close закрывает соединение с базой данных
func (s *Service) Close() {
	s.db.Close()
}
