package models

import (
	"errors"
	"strconv"
	"time"
)

// Имена опций заведения, управляющих лимитированием заказов
const (
	OptionLimitOrders         = "limit_orders"
	OptionLimitOrdersInterval = "limit_orders_interval"
	OptionLimitOrdersCount    = "limit_orders_count"
)

// WorkingPeriod один интервал работы в недельном расписании
type WorkingPeriod struct {
	Weekday time.Weekday `json:"weekday" validate:"min=0,max=6"`
	Open    string       `json:"open" validate:"required,datetime=15:04"`  // Время открытия, например 09:00
	Close   string       `json:"close" validate:"required,datetime=15:04"` // Время закрытия; раньше открытия означает переход через полночь
}

// Location представляет настройки заведения: способности по типам заказов,
// недельные расписания и параметры генерации таймслотов
type Location struct {
	ID        int64   `json:"id" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`

	DeliveryEnabled   bool `json:"delivery_enabled"`   // Доступна ли доставка
	CollectionEnabled bool `json:"collection_enabled"` // Доступен ли самовывоз
	FutureOrders      bool `json:"future_orders"`      // Разрешены ли заказы на будущие дни
	FutureOrderDays   int  `json:"future_order_days" validate:"min=0"`
	Open24x7          bool `json:"open_24x7"` // Переопределение: работаем круглосуточно без выходных

	DeliveryLeadTime   int `json:"delivery_lead_time" validate:"min=0"`   // Минуты
	CollectionLeadTime int `json:"collection_lead_time" validate:"min=0"` // Минуты
	DeliveryInterval   int `json:"delivery_interval" validate:"min=1"`    // Шаг таймслота, минуты
	CollectionInterval int `json:"collection_interval" validate:"min=1"`

	DefaultDeliveryArea int64                         `json:"default_delivery_area"` // 0 означает, что зона по умолчанию не настроена
	Options             map[string]string             `json:"options"`               // Прочие опции вида limit_orders
	Hours               map[OrderType][]WorkingPeriod `json:"hours"`
}

// Подтверждение настроек заведения после загрузки из БД.
func (l *Location) Validate() error {
	if l == nil {
		return errors.New("location is nil")
	}
	return validate.Struct(l)
}

// HasOrderType проверяет способность заведения принимать заказы данного типа
func (l *Location) HasOrderType(t OrderType) bool {
	switch t {
	case OrderTypeDelivery:
		return l.DeliveryEnabled
	case OrderTypeCollection:
		return l.CollectionEnabled
	case OrderTypeOpening:
		return true
	}
	return false
}

// HasFutureOrder разрешены ли заказы на будущие дни для данного типа
func (l *Location) HasFutureOrder(t OrderType) bool {
	return l.FutureOrders && l.HasOrderType(t)
}

// GetFutureOrderDays горизонт заказов в днях; 0 если будущие заказы запрещены
func (l *Location) GetFutureOrderDays(t OrderType) int {
	if !l.HasFutureOrder(t) {
		return 0
	}
	return l.FutureOrderDays
}

// GetOrderLeadTime минимальное время упреждения заказа в минутах
func (l *Location) GetOrderLeadTime(t OrderType) int {
	if t == OrderTypeCollection {
		return l.CollectionLeadTime
	}
	return l.DeliveryLeadTime
}

// GetOrderTimeInterval шаг таймслота в минутах для данного типа заказа
func (l *Location) GetOrderTimeInterval(t OrderType) int {
	if t == OrderTypeCollection {
		return l.CollectionInterval
	}
	return l.DeliveryInterval
}

// GetOption возвращает строковую опцию заведения
func (l *Location) GetOption(name string) string {
	return l.Options[name]
}

// OptionBool возвращает булеву опцию заведения
func (l *Location) OptionBool(name string) bool {
	v := l.GetOption(name)
	return v == "1" || v == "true"
}

// OptionInt возвращает числовую опцию заведения; 0 если опция не задана
func (l *Location) OptionInt(name string) int {
	n, err := strconv.Atoi(l.GetOption(name))
	if err != nil {
		return 0
	}
	return n
}

// WorkingHours возвращает недельное расписание для типа заказа.
// Если для типа отдельное расписание не задано, используется базовое (opening)
func (l *Location) WorkingHours(t OrderType) []WorkingPeriod {
	if periods, ok := l.Hours[t]; ok && len(periods) > 0 {
		return periods
	}
	return l.Hours[OrderTypeOpening]
}
