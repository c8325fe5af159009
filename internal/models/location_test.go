package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testLocation заведение с доставкой и самовывозом для тестов
func testLocation() *Location {
	return &Location{
		ID:                 1,
		Name:               "Test Bistro",
		DeliveryEnabled:    true,
		CollectionEnabled:  true,
		FutureOrders:       true,
		FutureOrderDays:    5,
		DeliveryLeadTime:   15,
		CollectionLeadTime: 10,
		DeliveryInterval:   30,
		CollectionInterval: 15,
		Options: map[string]string{
			OptionLimitOrders:         "1",
			OptionLimitOrdersInterval: "60",
			OptionLimitOrdersCount:    "10",
		},
		Hours: map[OrderType][]WorkingPeriod{
			OrderTypeOpening: {
				{Weekday: time.Monday, Open: "09:00", Close: "22:00"},
			},
			OrderTypeDelivery: {
				{Weekday: time.Monday, Open: "10:00", Close: "21:00"},
			},
		},
	}
}

func TestLocation_HasOrderType(t *testing.T) {
	loc := testLocation()

	assert.True(t, loc.HasOrderType(OrderTypeDelivery))
	assert.True(t, loc.HasOrderType(OrderTypeCollection))
	assert.True(t, loc.HasOrderType(OrderTypeOpening), "базовое расписание есть всегда")

	loc.DeliveryEnabled = false
	assert.False(t, loc.HasOrderType(OrderTypeDelivery), "выключенная доставка должна быть недоступна")
}

func TestLocation_GetFutureOrderDays(t *testing.T) {
	loc := testLocation()
	assert.Equal(t, 5, loc.GetFutureOrderDays(OrderTypeDelivery))

	// Запрет будущих заказов обнуляет горизонт
	loc.FutureOrders = false
	assert.Equal(t, 0, loc.GetFutureOrderDays(OrderTypeDelivery),
		"при запрете будущих заказов горизонт должен быть 0")

	// Недоступный тип заказа тоже обнуляет горизонт
	loc.FutureOrders = true
	loc.CollectionEnabled = false
	assert.Equal(t, 0, loc.GetFutureOrderDays(OrderTypeCollection))
}

func TestLocation_LeadTimeAndInterval(t *testing.T) {
	loc := testLocation()

	assert.Equal(t, 15, loc.GetOrderLeadTime(OrderTypeDelivery))
	assert.Equal(t, 10, loc.GetOrderLeadTime(OrderTypeCollection))
	assert.Equal(t, 30, loc.GetOrderTimeInterval(OrderTypeDelivery))
	assert.Equal(t, 15, loc.GetOrderTimeInterval(OrderTypeCollection))
}

func TestLocation_Options(t *testing.T) {
	loc := testLocation()

	assert.True(t, loc.OptionBool(OptionLimitOrders))
	assert.Equal(t, 60, loc.OptionInt(OptionLimitOrdersInterval))
	assert.Equal(t, 10, loc.OptionInt(OptionLimitOrdersCount))

	// Отсутствующие опции дают нулевые значения
	assert.False(t, loc.OptionBool("unknown"))
	assert.Equal(t, 0, loc.OptionInt("unknown"))
}

func TestLocation_WorkingHours(t *testing.T) {
	loc := testLocation()

	// Для доставки задано собственное расписание
	periods := loc.WorkingHours(OrderTypeDelivery)
	assert.Len(t, periods, 1)
	assert.Equal(t, "10:00", periods[0].Open)

	// Для самовывоза расписания нет: fallback на базовое
	periods = loc.WorkingHours(OrderTypeCollection)
	assert.Len(t, periods, 1)
	assert.Equal(t, "09:00", periods[0].Open, "без собственного расписания должно использоваться базовое")
}

func TestLocation_Validate(t *testing.T) {
	loc := testLocation()
	assert.NoError(t, loc.Validate())

	loc.ID = 0
	assert.Error(t, loc.Validate(), "заведение без идентификатора должно возвращать ошибку")

	var nilLoc *Location
	assert.Error(t, nilLoc.Validate())
}
