package kafka

import (
	"testing"
	"time"

	"storefront_service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain обеспечивает правильную инициализацию перед запуском тестов
func TestMain(m *testing.M) {
	// Сброс метрик перед запуском тестов
	ResetMetricsForTest()

	// Запуск всех тестов
	m.Run()
}

func TestGenerateTestOrder(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

	t.Run("GeneratesValidOrder", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			order := GenerateTestOrder(i, 1, day)

			require.NotNil(t, order)
			assert.Len(t, order.OrderUID, 32, "OrderUID должен быть ровно 32 символа")
			assert.Equal(t, int64(1), order.LocationID)
			assert.Equal(t, "2026-09-07", order.OrderDate)
			assert.NotEmpty(t, order.OrderTime)
			assert.NotEmpty(t, order.CustomerID)
			assert.Greater(t, order.StatusID, 0, "сгенерированный заказ не должен быть аннулирован")
			assert.Greater(t, order.Subtotal, 0.0)
			assert.True(t, order.OrderType == models.OrderTypeDelivery || order.OrderType == models.OrderTypeCollection)

			assert.NoError(t, order.Validate(), "сгенерированный заказ должен проходить валидацию")
		}
	})

	t.Run("OrdersSpreadAcrossWindows", func(t *testing.T) {
		// Заказы раскладываются по получасовым окнам начиная с 09:00
		first := GenerateTestOrder(0, 1, day)
		second := GenerateTestOrder(1, 1, day)

		assert.Equal(t, "09:00:00", first.OrderTime)
		assert.Equal(t, "09:30:00", second.OrderTime)
	})

	t.Run("UniqueOrderUIDs", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 20; i++ {
			order := GenerateTestOrder(i, 1, day)
			_, dup := seen[order.OrderUID]
			assert.False(t, dup, "OrderUID %s не должен повторяться", order.OrderUID)
			seen[order.OrderUID] = struct{}{}
		}
	})
}

func TestConsumerCreation(t *testing.T) {
	consumer := NewConsumer([]string{"localhost:9092"}, "storefront-orders", "storefront-service-group")
	require.NotNil(t, consumer)
	defer consumer.Close()
}

func TestNotifierCreation(t *testing.T) {
	dlq := NewDLQProducer([]string{"localhost:9092"}, "storefront-events-dlq")
	defer dlq.Close()

	notifier := NewNotifier([]string{"localhost:9092"}, "storefront-events", dlq)
	require.NotNil(t, notifier)
	defer notifier.Close()

	assert.Equal(t, "storefront-events", notifier.topic)
}
