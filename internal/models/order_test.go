package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrderType_Valid(t *testing.T) {
	assert.True(t, OrderTypeDelivery.Valid())
	assert.True(t, OrderTypeCollection.Valid())
	assert.True(t, OrderTypeOpening.Valid())
	assert.False(t, OrderType("pickup").Valid(), "неизвестный тип заказа должен быть невалидным")
	assert.False(t, OrderType("").Valid(), "пустой тип заказа должен быть невалидным")
}

func TestOrder_Validate(t *testing.T) {
	// Проверка валидного заказа
	t.Run("ValidOrder", func(t *testing.T) {
		order := &Order{
			OrderUID:   "testorderuid1234567890123456abcd", // 32 буквенно-цифровых символа
			LocationID: 1,
			OrderType:  OrderTypeDelivery,
			OrderDate:  "2026-09-01",
			OrderTime:  "12:30:00",
			StatusID:   1,
			Subtotal:   45.50,
			CustomerID: "customer123",
			CreatedAt:  time.Now(),
		}
		assert.NoError(t, order.Validate(), "валидный заказ не должен возвращать ошибки")
	})

	// Проверка невалидного заказа (пустой OrderUID)
	t.Run("InvalidOrderUID", func(t *testing.T) {
		order := &Order{
			OrderUID:   "short",
			LocationID: 1,
			OrderType:  OrderTypeDelivery,
			OrderDate:  "2026-09-01",
			OrderTime:  "12:30:00",
			CustomerID: "customer123",
		}
		assert.Error(t, order.Validate(), "заказ с коротким OrderUID должен возвращать ошибку")
	})

	// Тип opening не является способом получения заказа
	t.Run("OpeningNotAnOrderType", func(t *testing.T) {
		order := &Order{
			OrderUID:   "testorderuid1234567890123456abcd",
			LocationID: 1,
			OrderType:  OrderTypeOpening,
			OrderDate:  "2026-09-01",
			OrderTime:  "12:30:00",
			CustomerID: "customer123",
		}
		assert.Error(t, order.Validate(), "заказ с типом opening должен возвращать ошибку")
	})

	t.Run("NilOrder", func(t *testing.T) {
		var order *Order
		assert.Error(t, order.Validate())
	})

	t.Run("InvalidDate", func(t *testing.T) {
		order := &Order{
			OrderUID:   "testorderuid1234567890123456abcd",
			LocationID: 1,
			OrderType:  OrderTypeCollection,
			OrderDate:  "01.09.2026",
			OrderTime:  "12:30:00",
			CustomerID: "customer123",
		}
		assert.Error(t, order.Validate(), "заказ с датой не в формате 2006-01-02 должен возвращать ошибку")
	})
}

func TestOrder_OrderMoment(t *testing.T) {
	order := &Order{
		OrderUID:  "testorderuid1234567890123456abcd",
		OrderDate: "2026-09-01",
		OrderTime: "12:30:00",
	}

	ts, err := order.OrderMoment()
	assert.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, time.September, ts.Month())
	assert.Equal(t, 12, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	// Некорректное время должно возвращать ошибку
	order.OrderTime = "25:99:00"
	_, err = order.OrderMoment()
	assert.Error(t, err)
}

func TestEvent_Validate(t *testing.T) {
	t.Run("ValidEvent", func(t *testing.T) {
		event := &Event{
			Name:      EventOrderTypeUpdated,
			SessionID: "session-123",
			Payload:   map[string]any{"old": "delivery", "new": "collection"},
			Timestamp: time.Now(),
		}
		assert.NoError(t, event.Validate())
	})

	t.Run("MissingSessionID", func(t *testing.T) {
		event := &Event{Name: EventAreaUpdated}
		assert.Error(t, event.Validate(), "событие без сессии должно возвращать ошибку")
	})
}
