package schedule

import (
	"context"
	"fmt"
	"time"

	"storefront_service/internal/models"
)

// OverrideHook позволяет расширению переопределить решение лимитера для
// отдельного слота. Вызывается до основной логики; если decided == true,
// лимитирование для слота пропускается и используется allow
type OverrideHook func(slot time.Time, dateKey string) (allow bool, decided bool)

// CountOrdersFunc запрос количества исторических заказов заведения,
// попадающих в окно [start, end) указанной даты
type CountOrdersFunc func(ctx context.Context, dateKey string, start, end time.Time) (int, error)

// Limiter фильтрует таймслоты-кандидаты, ограничивая количество
// одновременных заказов в грубых окнах лимитирования
type Limiter struct {
	Enabled         bool
	IntervalMinutes int // Ширина окна лимитирования
	MaxCount        int // Максимум заказов в одном окне
	Hook            OverrideHook
	CountOrders     CountOrdersFunc
}

// limitWindow одно окно лимитирования [start, end)
type limitWindow struct {
	start time.Time
	end   time.Time
}

// windowsFor строит окна лимитирования даты от времени открытия базового
// расписания с шагом IntervalMinutes
func (l *Limiter) windowsFor(opening *WorkingSchedule, day time.Time) []limitWindow {
	interval := time.Duration(l.IntervalMinutes) * time.Minute
	if interval <= 0 {
		return nil
	}
	var windows []limitWindow
	for _, sp := range opening.spansFor(day) {
		for start := sp.open; start.Before(sp.close); start = start.Add(interval) {
			windows = append(windows, limitWindow{start: start, end: start.Add(interval)})
		}
	}
	return windows
}

// Filter применяет лимитирование к сгенерированным группам таймслотов.
// Окна лимитирования строятся по базовому (opening) расписанию, а не по
// расписанию типа заказа. Слот сохраняется, если количество исторических
// заказов в его окне строго меньше MaxCount. Слот вне всех окон отклоняется.
// Ошибка источника исторических заказов прерывает фильтрацию и возвращается
// вызывающему без маскировки
func (l *Limiter) Filter(ctx context.Context, groups []DaySlots, opening *WorkingSchedule) ([]DaySlots, error) {
	if !l.Enabled {
		return groups, nil
	}
	if l.CountOrders == nil {
		return nil, fmt.Errorf("лимитирование включено, но источник заказов не задан")
	}

	filtered := make([]DaySlots, 0, len(groups))
	for _, g := range groups {
		day, err := time.ParseInLocation(models.DateKeyLayout, g.DateKey, time.Local)
		if err != nil {
			return nil, fmt.Errorf("некорректный ключ даты %q: %v", g.DateKey, err)
		}
		windows := l.windowsFor(opening, day)

		// Кэш подсчетов на дату: одно окно запрашивается один раз
		counts := make(map[time.Time]int)

		var kept []time.Time
		for _, slot := range g.Slots {
			if l.Hook != nil {
				if allow, decided := l.Hook(slot, g.DateKey); decided {
					if allow {
						kept = append(kept, slot)
					}
					continue
				}
			}

			window, ok := matchWindow(windows, slot)
			if !ok {
				// Слот вне всех окон лимитирования считается недоступным
				continue
			}

			count, cached := counts[window.start]
			if !cached {
				count, err = l.CountOrders(ctx, g.DateKey, window.start, window.end)
				if err != nil {
					return nil, fmt.Errorf("ошибка подсчета заказов в окне %s: %w", window.start.Format(models.OrderTimeLayout), err)
				}
				counts[window.start] = count
			}

			if count < l.MaxCount {
				kept = append(kept, slot)
			}
		}
		if len(kept) > 0 {
			filtered = append(filtered, DaySlots{DateKey: g.DateKey, Slots: kept})
		}
	}
	return filtered, nil
}

// matchWindow находит окно, содержащее слот
func matchWindow(windows []limitWindow, slot time.Time) (limitWindow, bool) {
	for _, w := range windows {
		if !slot.Before(w.start) && slot.Before(w.end) {
			return w, true
		}
	}
	return limitWindow{}, false
}
