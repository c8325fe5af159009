// Package models содержит структуры данных витрины: типы заказов,
// расписания, зоны доставки и исторические заказы
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Экземпляр кастомного валидатора
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// OrderType определяет способ получения заказа
type OrderType string

const (
	OrderTypeDelivery   OrderType = "delivery"   // Доставка
	OrderTypeCollection OrderType = "collection" // Самовывоз
	OrderTypeOpening    OrderType = "opening"    // Базовое расписание работы, не привязанное к способу заказа
)

// Valid проверяет, что тип заказа входит в перечисление
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDelivery, OrderTypeCollection, OrderTypeOpening:
		return true
	}
	return false
}

// ScheduleStatus статус рабочего расписания на момент проверки
type ScheduleStatus string

const (
	ScheduleClosed  ScheduleStatus = "closed"  // Закрыто, открытия сегодня уже не будет
	ScheduleOpen    ScheduleStatus = "open"    // Открыто прямо сейчас
	ScheduleOpening ScheduleStatus = "opening" // Закрыто, но откроется позже в этот же день
)

const (
	// DateKeyLayout формат ключа даты для группировки таймслотов
	DateKeyLayout = "2006-01-02"
	// OrderTimeLayout формат времени заказа в БД
	OrderTimeLayout = "15:04:05"
)

// Order представляет размещенный заказ: только факты, нужные для подсчета
// заказов в окне лимитирования. Движок никогда не изменяет эти записи
type Order struct {
	OrderUID   string    `json:"order_uid" validate:"required,alphanum,len=32"`
	LocationID int64     `json:"location_id" validate:"required,gt=0"`
	OrderType  OrderType `json:"order_type" validate:"required,oneof=delivery collection"`
	OrderDate  string    `json:"order_date" validate:"required,datetime=2006-01-02"`
	OrderTime  string    `json:"order_time" validate:"required,datetime=15:04:05"`
	StatusID   int       `json:"status_id" validate:"min=0"`
	Subtotal   float64   `json:"subtotal" validate:"min=0"`
	CustomerID string    `json:"customer_id" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate выполняет строгую проверку заказа, полученного от брокера.
func (o *Order) Validate() error {
	if o == nil {
		return errors.New("order is nil")
	}
	return validate.Struct(o)
}

// OrderMoment собирает дату и время заказа в единый момент времени
func (o *Order) OrderMoment() (time.Time, error) {
	ts, err := time.ParseInLocation(DateKeyLayout+" "+OrderTimeLayout, o.OrderDate+" "+o.OrderTime, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректная дата/время заказа %s: %v", o.OrderUID, err)
	}
	return ts, nil
}

// Event событие изменения контекста заказа, публикуемое в брокер
type Event struct {
	Name      string         `json:"name" validate:"required"`
	SessionID string         `json:"session_id" validate:"required"`
	Payload   map[string]any `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// Подтверждение события перед публикацией.
func (e *Event) Validate() error {
	if e == nil {
		return errors.New("event is nil")
	}
	return validate.Struct(e)
}

// Имена событий изменения контекста заказа
const (
	EventOrderTypeUpdated = "location.orderType.updated"
	EventPositionUpdated  = "location.position.updated"
	EventTimeslotUpdated  = "location.timeslot.updated"
	EventAreaUpdated      = "location.area.updated"
)
