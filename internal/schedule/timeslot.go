package schedule

import (
	"time"

	"storefront_service/internal/models"
)

// Timeslot один доступный слот заказа: дата и время начала
type Timeslot struct {
	DateKey string    `json:"date"` // Календарная дата в формате 2006-01-02
	Start   time.Time `json:"start"`
}

// DaySlots группа таймслотов одной даты в хронологическом порядке
type DaySlots struct {
	DateKey string      `json:"date"`
	Slots   []time.Time `json:"slots"`
}

// GenerateOptions параметры генерации таймслотов
type GenerateOptions struct {
	Now             time.Time
	From            time.Time // Нулевое значение означает "с сегодняшнего дня"
	IntervalMinutes int       // Ширина слота
	LeadTimeMinutes int       // Упреждение: слоты раньше now+lead отбрасываются
	HorizonDays     int       // Горизонт будущих заказов; 0 — только сегодня
}

// Timeslots генерирует доступные таймслоты по дням горизонта.
// Для каждой даты слоты идут с шагом интервала от открытия до последнего
// момента приема заказа. Детерминирована относительно (now, расписание,
// горизонт): без случайности и побочных эффектов. Если заведение закрыто
// на всем горизонте, возвращается пустой срез, а не ошибка
func (s *WorkingSchedule) Timeslots(opts GenerateOptions) []DaySlots {
	from := opts.From
	if from.IsZero() {
		from = opts.Now
	}
	interval := time.Duration(opts.IntervalMinutes) * time.Minute
	if interval <= 0 {
		return nil
	}
	cutoff := opts.Now.Add(time.Duration(opts.LeadTimeMinutes) * time.Minute)

	var groups []DaySlots
	for d := 0; d <= opts.HorizonDays; d++ {
		day := from.AddDate(0, 0, d)
		dateKey := day.Format(models.DateKeyLayout)

		var slots []time.Time
		seen := make(map[int64]struct{}) // Защита от дублей при пересекающихся интервалах
		for _, sp := range s.spansFor(day) {
			lastOrder := sp.close.Add(-time.Duration(s.leadTime) * time.Minute)
			for slot := sp.open; !slot.After(lastOrder); slot = slot.Add(interval) {
				if slot.Before(cutoff) {
					continue
				}
				key := slot.Unix()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				slots = append(slots, slot)
			}
		}
		if len(slots) == 0 {
			continue
		}
		groups = append(groups, DaySlots{DateKey: dateKey, Slots: slots})
	}
	return groups
}

// FirstSlot первый слот среди всех групп; false если слотов нет
func FirstSlot(groups []DaySlots) (time.Time, bool) {
	for _, g := range groups {
		if len(g.Slots) > 0 {
			return g.Slots[0], true
		}
	}
	return time.Time{}, false
}

// CountSlots общее количество слотов во всех группах
func CountSlots(groups []DaySlots) int {
	n := 0
	for _, g := range groups {
		n += len(g.Slots)
	}
	return n
}
