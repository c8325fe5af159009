package config

import (
	"testing"

	"storefront_service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	assert.NoError(t, err)

	assert.Equal(t, ":8081", cfg.ServerAddr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "storefront-events", cfg.KafkaEventsTopic)
	assert.Equal(t, "storefront-orders", cfg.KafkaOrdersTopic)
	assert.Equal(t, "storefront-events-dlq", cfg.KafkaDLQTopic)
	assert.Equal(t, "storefront-service-group", cfg.KafkaGroupID)
	assert.Equal(t, int64(1), cfg.LocationID)
	assert.Equal(t, models.OrderTypeDelivery, cfg.DefaultOrderType)
	assert.Equal(t, 120, cfg.SessionTTLMinutes)
	assert.Equal(t, 10, cfg.AreaCacheMinutes)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("LOCATION_ID", "42")
	t.Setenv("DEFAULT_ORDER_TYPE", "collection")
	t.Setenv("SESSION_TTL_MINUTES", "60")

	cfg, err := LoadFromEnv()
	assert.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddr)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers,
		"пробелы после запятой должны отбрасываться")
	assert.Equal(t, int64(42), cfg.LocationID)
	assert.Equal(t, models.OrderTypeCollection, cfg.DefaultOrderType)
	assert.Equal(t, 60, cfg.SessionTTLMinutes)
}

func TestLoadFromEnv_InvalidLocationID(t *testing.T) {
	t.Setenv("LOCATION_ID", "abc")

	_, err := LoadFromEnv()
	assert.Error(t, err, "нечисловой LOCATION_ID должен возвращать ошибку")

	t.Setenv("LOCATION_ID", "0")
	_, err = LoadFromEnv()
	assert.Error(t, err, "нулевой LOCATION_ID должен возвращать ошибку")
}

func TestLoadFromEnv_InvalidOrderType(t *testing.T) {
	t.Setenv("DEFAULT_ORDER_TYPE", "pickup")

	_, err := LoadFromEnv()
	assert.Error(t, err)

	// Базовое расписание не является способом получения заказа
	t.Setenv("DEFAULT_ORDER_TYPE", "opening")
	_, err = LoadFromEnv()
	assert.Error(t, err, "opening не должен приниматься как тип заказа по умолчанию")
}

func TestLoadFromEnv_InvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_MINUTES", "-5")

	_, err := LoadFromEnv()
	assert.Error(t, err, "отрицательное время жизни сессии должно возвращать ошибку")
}
