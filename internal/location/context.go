// Package location реализует контекст заказа покупателя: выбранный тип
// заказа, позицию, таймслот и разрешенную зону доставки. Контекст живет
// в рамках одного запроса и восстанавливается из сессионного хранилища
package location

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"storefront_service/internal/area"
	"storefront_service/internal/interfaces"
	"storefront_service/internal/models"
	"storefront_service/internal/schedule"
)

// Ключи сессии, из которых контекст восстанавливается между запросами
const (
	sessionKeyOrderType = "orderType"
	sessionKeyPosition  = "position"
	sessionKeyTimeslot  = "order-timeslot"
	sessionKeyArea      = "area"
)

// TimeslotSelection выбранный таймслот сессии. Отсутствие выбора
// означает "как можно скорее"
type TimeslotSelection struct {
	DateTime *time.Time `json:"date_time,omitempty"`
	Asap     bool       `json:"asap"`
}

// OrderCounter запрос количества исторических заказов для лимитера
type OrderCounter interface {
	CountOrders(ctx context.Context, locationID int64, dateKey string, start, end time.Time) (int, error)
}

// Context контекст заказа одной сессии покупателя. Не потокобезопасен:
// на каждый запрос создается свой экземпляр, общего изменяемого
// состояния между сессиями нет
type Context struct {
	model     *models.Location
	store     interfaces.SessionStore
	notifier  interfaces.Notifier
	resolver  *area.Resolver
	counter   OrderCounter
	sessionID string

	defaultOrderType models.OrderType
	now              func() time.Time
	timeslotHook     schedule.OverrideHook

	// Мемоизированная зона доставки текущего цикла инвалидации
	coveredArea *area.CoveredArea

	// Кэш расписания, ключованный типом заказа; сбрасывается при смене типа
	scheduleCache struct {
		orderType models.OrderType
		groups    []schedule.DaySlots
	}
}

// NewContext создает контекст заказа для сессии
func NewContext(model *models.Location, store interfaces.SessionStore, notifier interfaces.Notifier,
	resolver *area.Resolver, counter OrderCounter, sessionID string, defaultOrderType models.OrderType) *Context {
	return &Context{
		model:            model,
		store:            store,
		notifier:         notifier,
		resolver:         resolver,
		counter:          counter,
		sessionID:        sessionID,
		defaultOrderType: defaultOrderType,
		now:              time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (c *Context) WithClock(now func() time.Time) *Context {
	c.now = now
	return c
}

// WithTimeslotHook задает хук переопределения лимитера
func (c *Context) WithTimeslotHook(hook schedule.OverrideHook) *Context {
	c.timeslotHook = hook
	return c
}

// SessionID идентификатор сессии контекста
func (c *Context) SessionID() string {
	return c.sessionID
}

// Model настройки заведения
func (c *Context) Model() *models.Location {
	return c.model
}

// fireEvent публикует событие изменения контекста. Отправка
// fire-and-forget: сбой уведомления не прерывает работу движка
func (c *Context) fireEvent(ctx context.Context, name string, payload map[string]any) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, models.Event{
		Name:      name,
		SessionID: c.sessionID,
		Payload:   payload,
		Timestamp: c.now(),
	})
}

//
// ТИП ЗАКАЗА
//

// OrderType текущий тип заказа сессии или тип по умолчанию
func (c *Context) OrderType() models.OrderType {
	if v, ok := c.store.Get(c.sessionID, sessionKeyOrderType); ok {
		t := models.OrderType(v)
		if t.Valid() {
			return t
		}
	}
	return c.defaultOrderType
}

// UpdateOrderType меняет тип заказа сессии. Пустой тип сбрасывает выбор.
// При смене типа кэш расписания становится неактуальным и очищается
func (c *Context) UpdateOrderType(ctx context.Context, t models.OrderType) {
	old := c.OrderType()

	if t == "" {
		c.store.Forget(c.sessionID, sessionKeyOrderType)
		c.invalidateSchedule()
		return
	}
	if !t.Valid() {
		return
	}

	c.store.Put(c.sessionID, sessionKeyOrderType, string(t))
	if t != old {
		c.invalidateSchedule()
		c.fireEvent(ctx, models.EventOrderTypeUpdated, map[string]any{
			"old": string(old),
			"new": string(t),
		})
	}
}

// OrderTypeIsDelivery текущий тип заказа — доставка
func (c *Context) OrderTypeIsDelivery() bool {
	return c.OrderType() == models.OrderTypeDelivery
}

// OrderTypeIsCollection текущий тип заказа — самовывоз
func (c *Context) OrderTypeIsCollection() bool {
	return c.OrderType() == models.OrderTypeCollection
}

// CheckOrderType проверяет, принимаются ли сейчас заказы данного типа:
// заведение должно уметь этот тип и быть открытым либо открываться позже
// сегодня при разрешенных будущих заказах
func (c *Context) CheckOrderType(t models.OrderType) bool {
	if t == "" {
		t = c.OrderType()
	}
	if !c.model.HasOrderType(t) {
		return false
	}

	ws := c.WorkingSchedule(t)
	now := c.now()
	return ws.IsOpen(now) || (ws.IsOpening(now) && c.model.HasFutureOrder(t))
}

//
// ПОЗИЦИЯ ПОЛЬЗОВАТЕЛЯ
//

// UserPosition позиция покупателя из сессии; нулевые координаты
// означают, что позиция не задана
func (c *Context) UserPosition() models.Coordinates {
	v, ok := c.store.Get(c.sessionID, sessionKeyPosition)
	if !ok {
		return models.Coordinates{}
	}
	var pos models.Coordinates
	if err := json.Unmarshal([]byte(v), &pos); err != nil {
		log.Printf("Некорректная позиция в сессии %s: %v", c.sessionID, err)
		return models.Coordinates{}
	}
	return pos
}

// UpdateUserPosition сохраняет позицию покупателя. Кэшированная зона
// доставки всегда сбрасывается: следующий доступ к зоне выполнит
// разрешение заново
func (c *Context) UpdateUserPosition(ctx context.Context, pos models.Coordinates) {
	old := c.UserPosition()

	raw, err := json.Marshal(pos)
	if err != nil {
		log.Printf("Ошибка сериализации позиции: %v", err)
		return
	}
	c.store.Put(c.sessionID, sessionKeyPosition, string(raw))

	c.ClearCoveredArea()

	c.fireEvent(ctx, models.EventPositionUpdated, map[string]any{
		"old": old,
		"new": pos,
	})
}

//
// ТАЙМСЛОТ
//

// TimeslotSelection выбранный таймслот сессии; false если выбор не сделан
func (c *Context) TimeslotSelection() (TimeslotSelection, bool) {
	v, ok := c.store.Get(c.sessionID, sessionKeyTimeslot)
	if !ok {
		return TimeslotSelection{}, false
	}
	var sel TimeslotSelection
	if err := json.Unmarshal([]byte(v), &sel); err != nil {
		log.Printf("Некорректный таймслот в сессии %s: %v", c.sessionID, err)
		return TimeslotSelection{}, false
	}
	return sel, true
}

// UpdateTimeslot нормализует и сохраняет выбор таймслота. Оба аргумента
// nil означают сброс выбора
func (c *Context) UpdateTimeslot(ctx context.Context, dateTime *time.Time, asap *bool) {
	old, _ := c.TimeslotSelection()

	if dateTime == nil && asap == nil {
		c.store.Forget(c.sessionID, sessionKeyTimeslot)
		c.fireEvent(ctx, models.EventTimeslotUpdated, map[string]any{"old": old, "new": nil})
		return
	}

	sel := TimeslotSelection{DateTime: dateTime, Asap: true}
	if asap != nil {
		sel.Asap = *asap
	}
	raw, err := json.Marshal(sel)
	if err != nil {
		log.Printf("Ошибка сериализации таймслота: %v", err)
		return
	}
	c.store.Put(c.sessionID, sessionKeyTimeslot, string(raw))

	c.fireEvent(ctx, models.EventTimeslotUpdated, map[string]any{"old": old, "new": sel})
}

// OrderTimeIsAsap заказ "как можно скорее": выбор не сделан, либо
// выбранный момент попадает в пределы now + 2×упреждение, либо выбор
// явно помечен как asap
func (c *Context) OrderTimeIsAsap() bool {
	sel, ok := c.TimeslotSelection()
	if !ok {
		return true
	}
	if sel.DateTime != nil {
		asapDeadline := c.now().Add(2 * time.Duration(c.OrderLeadTime()) * time.Minute)
		if !sel.DateTime.After(asapDeadline) {
			return true
		}
	}
	return sel.Asap
}

// CheckOrderTime проверяет, можно ли оформить заказ на данный момент
// времени: момент должен быть в будущем, в пределах горизонта будущих
// заказов и внутри рабочего расписания. Ошибок не возвращает — только
// вердикт
func (c *Context) CheckOrderTime(ts time.Time, t models.OrderType) bool {
	if t == "" {
		t = c.OrderType()
	}

	now := c.now()
	if !ts.After(now) {
		return false
	}

	days := c.model.GetFutureOrderDays(t)
	if daysBetween(now, ts) > days {
		return false
	}

	return c.WorkingSchedule(t).IsOpenAt(ts)
}

// daysBetween количество календарных дней между датами моментов.
// Считаем границы суток, а не часы: сутки с переводом часов короче 24 часов
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	u := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	days := 0
	for f.Before(u) {
		f = f.AddDate(0, 0, 1)
		days++
	}
	return days
}

//
// РАСПИСАНИЕ
//

// WorkingSchedule рабочее расписание заведения для типа заказа
func (c *Context) WorkingSchedule(t models.OrderType) *schedule.WorkingSchedule {
	if t == "" {
		t = c.OrderType()
	}
	return schedule.New(c.model, t)
}

// OpeningSchedule базовое расписание работы заведения
func (c *Context) OpeningSchedule() *schedule.WorkingSchedule {
	return schedule.New(c.model, models.OrderTypeOpening)
}

// ScheduleStatus статус расписания для текущего типа заказа
func (c *Context) ScheduleStatus() models.ScheduleStatus {
	return c.WorkingSchedule(c.OrderType()).Status(c.now())
}

// IsOpened открыто ли заведение для текущего типа заказа
func (c *Context) IsOpened() bool {
	return c.ScheduleStatus() == models.ScheduleOpen
}

// IsClosed закрыто ли заведение для текущего типа заказа
func (c *Context) IsClosed() bool {
	return c.ScheduleStatus() == models.ScheduleClosed
}

// OrderLeadTime упреждение заказа в минутах для текущего типа
func (c *Context) OrderLeadTime() int {
	return c.model.GetOrderLeadTime(c.OrderType())
}

// OrderTimeInterval шаг таймслота в минутах для текущего типа
func (c *Context) OrderTimeInterval() int {
	return c.model.GetOrderTimeInterval(c.OrderType())
}

// OpenTime время открытия сегодня для типа заказа
func (c *Context) OpenTime(t models.OrderType) (time.Time, bool) {
	return c.WorkingSchedule(t).OpenTimeFor(c.now())
}

// CloseTime время закрытия сегодня для типа заказа
func (c *Context) CloseTime(t models.OrderType) (time.Time, bool) {
	return c.WorkingSchedule(t).CloseTimeFor(c.now())
}

// LastOrderTime последний момент приема заказа сегодня:
// закрытие минус упреждение
func (c *Context) LastOrderTime() (time.Time, bool) {
	return c.WorkingSchedule(c.OrderType()).LastOrderTimeFor(c.now())
}

// invalidateSchedule сбрасывает кэш расписания
func (c *Context) invalidateSchedule() {
	c.scheduleCache.orderType = ""
	c.scheduleCache.groups = nil
}
