// Package schedule реализует вычисление рабочего расписания заведения,
// генерацию таймслотов и лимитирование количества заказов в окне времени.
// Пакет чистый: без обращений к сети и хранилищу
package schedule

import (
	"time"

	"storefront_service/internal/models"
)

// span один рабочий интервал, развернутый на конкретную дату
type span struct {
	open  time.Time
	close time.Time
}

// WorkingSchedule недельное рабочее расписание для одного типа заказа
type WorkingSchedule struct {
	orderType    models.OrderType
	periods      []models.WorkingPeriod
	open24x7     bool
	leadTime     int // Минуты до последнего принимаемого заказа
	futureOrders bool
}

// New строит рабочее расписание заведения для данного типа заказа
func New(loc *models.Location, t models.OrderType) *WorkingSchedule {
	return &WorkingSchedule{
		orderType:    t,
		periods:      loc.WorkingHours(t),
		open24x7:     loc.Open24x7,
		leadTime:     loc.GetOrderLeadTime(t),
		futureOrders: loc.HasFutureOrder(t),
	}
}

// OrderType тип заказа, для которого построено расписание
func (s *WorkingSchedule) OrderType() models.OrderType {
	return s.orderType
}

// parseClock разбирает время вида "09:00" в минуты от начала суток
func parseClock(v string) (int, bool) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// spansFor разворачивает недельные интервалы в конкретные моменты даты.
// Интервал с закрытием раньше открытия переходит через полночь
func (s *WorkingSchedule) spansFor(date time.Time) []span {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	if s.open24x7 {
		return []span{{open: day, close: day.AddDate(0, 0, 1)}}
	}

	var spans []span
	for _, p := range s.periods {
		if p.Weekday != day.Weekday() {
			continue
		}
		openMin, ok := parseClock(p.Open)
		if !ok {
			continue
		}
		closeMin, ok := parseClock(p.Close)
		if !ok {
			continue
		}
		open := day.Add(time.Duration(openMin) * time.Minute)
		close := day.Add(time.Duration(closeMin) * time.Minute)
		if !close.After(open) {
			close = close.AddDate(0, 0, 1)
		}
		spans = append(spans, span{open: open, close: close})
	}
	return spans
}

// IsOpenAt проверяет, открыто ли заведение в данный момент времени.
// Учитывает интервалы предыдущего дня, перешедшие через полночь
func (s *WorkingSchedule) IsOpenAt(ts time.Time) bool {
	for _, d := range []time.Time{ts.AddDate(0, 0, -1), ts} {
		for _, sp := range s.spansFor(d) {
			if !ts.Before(sp.open) && ts.Before(sp.close) {
				return true
			}
		}
	}
	return false
}

// Status вычисляет состояние расписания на момент времени: открыто, закрыто
// или "скоро откроется". Последнее требует открытия позже в тот же день и
// разрешенных заказов на будущее
func (s *WorkingSchedule) Status(now time.Time) models.ScheduleStatus {
	if s.IsOpenAt(now) {
		return models.ScheduleOpen
	}
	if !s.futureOrders {
		return models.ScheduleClosed
	}
	for _, sp := range s.spansFor(now) {
		if sp.open.After(now) {
			return models.ScheduleOpening
		}
	}
	return models.ScheduleClosed
}

// IsOpen открыто ли заведение прямо сейчас
func (s *WorkingSchedule) IsOpen(now time.Time) bool {
	return s.Status(now) == models.ScheduleOpen
}

// IsOpening откроется ли заведение позже в этот же день
func (s *WorkingSchedule) IsOpening(now time.Time) bool {
	return s.Status(now) == models.ScheduleOpening
}

// IsClosed закрыто ли заведение без перспективы открытия сегодня
func (s *WorkingSchedule) IsClosed(now time.Time) bool {
	return s.Status(now) == models.ScheduleClosed
}

// OpenTimeFor время открытия в указанную дату; false если в этот день закрыто
func (s *WorkingSchedule) OpenTimeFor(date time.Time) (time.Time, bool) {
	spans := s.spansFor(date)
	if len(spans) == 0 {
		return time.Time{}, false
	}
	open := spans[0].open
	for _, sp := range spans[1:] {
		if sp.open.Before(open) {
			open = sp.open
		}
	}
	return open, true
}

// CloseTimeFor время закрытия в указанную дату; false если в этот день закрыто
func (s *WorkingSchedule) CloseTimeFor(date time.Time) (time.Time, bool) {
	spans := s.spansFor(date)
	if len(spans) == 0 {
		return time.Time{}, false
	}
	close := spans[0].close
	for _, sp := range spans[1:] {
		if sp.close.After(close) {
			close = sp.close
		}
	}
	return close, true
}

// LastOrderTimeFor последний момент приема заказа в указанную дату:
// время закрытия минус время упреждения
func (s *WorkingSchedule) LastOrderTimeFor(date time.Time) (time.Time, bool) {
	close, ok := s.CloseTimeFor(date)
	if !ok {
		return time.Time{}, false
	}
	return close.Add(-time.Duration(s.leadTime) * time.Minute), true
}
