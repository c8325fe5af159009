package location

import (
	"context"
	"fmt"
	"time"

	"storefront_service/internal/models"
	"storefront_service/internal/schedule"
)

// Timeslots возвращает доступные таймслоты текущего типа заказа,
// отфильтрованные лимитером. Результат кэшируется по типу заказа на
// время жизни контекста; смена типа заказа инвалидирует кэш
func (c *Context) Timeslots(ctx context.Context) ([]schedule.DaySlots, error) {
	orderType := c.OrderType()
	if c.scheduleCache.orderType == orderType {
		return c.scheduleCache.groups, nil
	}

	ws := c.WorkingSchedule(orderType)
	groups := ws.Timeslots(schedule.GenerateOptions{
		Now:             c.now(),
		IntervalMinutes: c.model.GetOrderTimeInterval(orderType),
		LeadTimeMinutes: c.model.GetOrderLeadTime(orderType),
		HorizonDays:     c.model.GetFutureOrderDays(orderType),
	})

	limiter := &schedule.Limiter{
		Enabled:         c.model.OptionBool(models.OptionLimitOrders),
		IntervalMinutes: c.model.OptionInt(models.OptionLimitOrdersInterval),
		MaxCount:        c.model.OptionInt(models.OptionLimitOrdersCount),
		Hook:            c.timeslotHook,
		CountOrders:     c.countOrdersInWindow,
	}

	// Окна лимитирования строятся по базовому расписанию заведения
	filtered, err := limiter.Filter(ctx, groups, c.OpeningSchedule())
	if err != nil {
		return nil, fmt.Errorf("ошибка фильтрации таймслотов: %w", err)
	}

	c.scheduleCache.orderType = orderType
	c.scheduleCache.groups = filtered
	return filtered, nil
}

// countOrdersInWindow адаптер лимитера к хранилищу исторических заказов
func (c *Context) countOrdersInWindow(ctx context.Context, dateKey string, start, end time.Time) (int, error) {
	if c.counter == nil {
		return 0, fmt.Errorf("источник исторических заказов не настроен")
	}
	return c.counter.CountOrders(ctx, c.model.ID, dateKey, start, end)
}

// FirstTimeslot первый доступный таймслот; false если слотов нет
func (c *Context) FirstTimeslot(ctx context.Context) (time.Time, bool, error) {
	groups, err := c.Timeslots(ctx)
	if err != nil {
		return time.Time{}, false, err
	}
	slot, ok := schedule.FirstSlot(groups)
	return slot, ok, nil
}

// AsapTimeslot ближайший момент заказа "как можно скорее". Если заведение
// закрыто или включено лимитирование, берется первый сгенерированный слот,
// иначе просто now + упреждение
func (c *Context) AsapTimeslot(ctx context.Context) (time.Time, bool, error) {
	if c.IsClosed() || c.model.OptionBool(models.OptionLimitOrders) {
		return c.FirstTimeslot(ctx)
	}
	return c.now().Add(time.Duration(c.OrderLeadTime()) * time.Minute), true, nil
}

// OrderDateTime действующий момент заказа: asap-слот при заказе "как
// можно скорее", иначе выбранный в сессии момент
func (c *Context) OrderDateTime(ctx context.Context) (time.Time, bool, error) {
	if !c.OrderTimeIsAsap() {
		if sel, ok := c.TimeslotSelection(); ok && sel.DateTime != nil {
			return *sel.DateTime, true, nil
		}
	}
	return c.AsapTimeslot(ctx)
}
