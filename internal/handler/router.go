package handler

import (
	"context"
	"net/http"
	"time"

	"storefront_service/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// sessionCookie имя куки с идентификатором сессии покупателя
const sessionCookie = "storefront_session"

type ctxKey int

const sessionKey ctxKey = iota

// sessionFrom извлекает идентификатор сессии из контекста запроса
func sessionFrom(r *http.Request) string {
	if id, ok := r.Context().Value(sessionKey).(string); ok {
		return id
	}
	return ""
}

// withSession выдает куку сессии новым покупателям и кладет ее в контекст
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			id = c.Value
		}
		if id == "" {
			id = session.NewSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
	})
}

// NewRouter собирает маршрутизатор API витрины
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", h.HealthCheck)
	r.Get("/stats", h.Stats)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(withSession)

		r.Get("/schedule/status", h.ScheduleStatus)
		r.Get("/timeslots", h.Timeslots)
		r.Put("/order-type", h.UpdateOrderType)
		r.Put("/position", h.UpdatePosition)
		r.Put("/timeslot", h.UpdateTimeslot)
		r.Get("/delivery/quote", h.DeliveryQuote)
		r.Get("/delivery/coverage", h.Coverage)
		r.Get("/delivery/areas", h.DeliveryAreas)
		r.Get("/order-time/check", h.CheckOrderTime)
	})

	return r
}
