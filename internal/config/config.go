package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"storefront_service/internal/models"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервиса, считанную из переменных окружения
type Config struct {
	ServerAddr        string           // Адрес HTTP сервера, например :8081
	PostgresDSN       string           // Строка подключения к PostgreSQL
	KafkaBrokers      []string         // Список брокеров Kafka
	KafkaEventsTopic  string           // Топик событий контекста заказа
	KafkaOrdersTopic  string           // Топик размещенных заказов
	KafkaDLQTopic     string           // Топик DLQ для неотправленных событий
	KafkaGroupID      string           // Группа консюмера Kafka
	LocationID        int64            // Идентификатор обслуживаемого заведения
	DefaultOrderType  models.OrderType // Тип заказа новой сессии
	SessionTTLMinutes int              // Время жизни сессии
	AreaCacheMinutes  int              // Время жизни кэша зон доставки
}

// LoadFromEnv загружает конфигурацию из переменных окружения
func LoadFromEnv() (*Config, error) {
	// Автозагрузка .env, если файл есть в рабочей директории
	_ = godotenv.Load()

	cfg := &Config{}

	// HTTP сервер
	cfg.ServerAddr = envOrDefault("SERVER_ADDR", ":8081")

	// Postgres DSN (секреты из окружения)
	cfg.PostgresDSN = envOrDefault("POSTGRES_DSN",
		"host=localhost port=5433 user=postgres password=postgres dbname=storefront_db sslmode=disable")

	// Kafka brokers
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		// Разрешаем пробелы после запятой
		parts := strings.Split(v, ",")
		brokers := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				brokers = append(brokers, p)
			}
		}
		cfg.KafkaBrokers = brokers
	} else {
		cfg.KafkaBrokers = []string{"localhost:9092"}
	}

	// Топики Kafka
	cfg.KafkaEventsTopic = envOrDefault("KAFKA_EVENTS_TOPIC", "storefront-events")
	cfg.KafkaOrdersTopic = envOrDefault("KAFKA_ORDERS_TOPIC", "storefront-orders")
	cfg.KafkaDLQTopic = envOrDefault("KAFKA_DLQ_TOPIC", "storefront-events-dlq")
	cfg.KafkaGroupID = envOrDefault("KAFKA_GROUP_ID", "storefront-service-group")

	// Обслуживаемое заведение
	locationID, err := strconv.ParseInt(envOrDefault("LOCATION_ID", "1"), 10, 64)
	if err != nil || locationID <= 0 {
		return nil, errors.New("LOCATION_ID must be a positive integer")
	}
	cfg.LocationID = locationID

	// Тип заказа по умолчанию для новой сессии
	cfg.DefaultOrderType = models.OrderType(envOrDefault("DEFAULT_ORDER_TYPE", "delivery"))

	// Времена жизни сессий и кэша зон
	cfg.SessionTTLMinutes = envIntOrDefault("SESSION_TTL_MINUTES", 120)
	cfg.AreaCacheMinutes = envIntOrDefault("AREA_CACHE_MINUTES", 10)

	// Валидация
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS must not be empty")
	}
	if strings.TrimSpace(cfg.KafkaEventsTopic) == "" {
		return nil, errors.New("KAFKA_EVENTS_TOPIC must not be empty")
	}
	if strings.TrimSpace(cfg.KafkaOrdersTopic) == "" {
		return nil, errors.New("KAFKA_ORDERS_TOPIC must not be empty")
	}
	if strings.TrimSpace(cfg.KafkaGroupID) == "" {
		return nil, errors.New("KAFKA_GROUP_ID must not be empty")
	}
	if !cfg.DefaultOrderType.Valid() || cfg.DefaultOrderType == models.OrderTypeOpening {
		return nil, errors.New("DEFAULT_ORDER_TYPE must be delivery or collection")
	}
	if cfg.SessionTTLMinutes <= 0 || cfg.AreaCacheMinutes <= 0 {
		return nil, errors.New("SESSION_TTL_MINUTES and AREA_CACHE_MINUTES must be positive")
	}

	return cfg, nil
}

// envOrDefault возвращает значение переменной окружения или значение по умолчанию
func envOrDefault(name, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return fallback
}

// envIntOrDefault возвращает числовое значение переменной окружения
func envIntOrDefault(name string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
