// Основной пакет сервера витрины заведения
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront_service/internal/cache"
	"storefront_service/internal/config"
	"storefront_service/internal/database"
	"storefront_service/internal/handler"
	"storefront_service/internal/kafka"
	"storefront_service/internal/models"
	"storefront_service/internal/service"
	"storefront_service/internal/session"
)

func main() {
	// Создаем основной контекст
	ctx := context.Background()

	// Загружаем конфигурацию из окружения
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Подключение к базе данных
	log.Println("Подключение к БД...")
	db, err := database.NewPostgres(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer db.Close()

	// Инициализация базы данных (создание таблиц)
	if err := db.Init(ctx); err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}

	// Загрузка настроек заведения вместе с расписаниями и зонами
	model, err := db.LoadLocation(ctx, cfg.LocationID)
	if err != nil {
		log.Fatalf("Ошибка загрузки заведения %d: %v", cfg.LocationID, err)
	}
	log.Printf("Заведение загружено: %s (id=%d)", model.Name, model.ID)

	// Создание DLQ producer и notifier событий контекста заказа
	dlq := kafka.NewDLQProducer(cfg.KafkaBrokers, cfg.KafkaDLQTopic)
	defer dlq.Close()

	notifier := kafka.NewNotifier(cfg.KafkaBrokers, cfg.KafkaEventsTopic, dlq)
	defer notifier.Close()

	// Сессионное хранилище и кэш зон доставки
	sessions := session.NewStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	areaCache := cache.New(time.Duration(cfg.AreaCacheMinutes) * time.Minute)

	// Создание сервиса витрины
	svc := service.New(db, model, sessions, notifier, areaCache, models.OrderType(cfg.DefaultOrderType))
	defer svc.Close()

	// Создание Kafka consumer для учета размещенных заказов
	kafkaConsumer := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaOrdersTopic, cfg.KafkaGroupID)
	defer kafkaConsumer.Close()

	// Контекст для управления Kafka consumer
	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()

	// Запуск Kafka consumer в отдельной горутине
	consumerDone := make(chan struct{})
	go func() {
		log.Printf("Начало работы Kafka consumer для: %s", cfg.KafkaOrdersTopic)
		if err := kafkaConsumer.Consume(consumerCtx, svc.IngestOrder); err != nil {
			log.Printf("Ошибка работы в Kafka consumer: %v", err)
		}
		close(consumerDone)
	}()

	// Периодическая очистка истекших сессий и зон кэша
	cleanupCtx, cancelCleanup := context.WithCancel(ctx)
	defer cancelCleanup()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-cleanupCtx.Done():
				return
			case <-ticker.C:
				sessions.Cleanup()
				areaCache.Cleanup()
			}
		}
	}()

	// Создание HTTP обработчиков и маршрутизатора
	h := handler.New(svc)
	router := handler.NewRouter(h)

	// Создание HTTP сервера
	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	// Запуск HTTP сервера в отдельной горутине
	go func() {
		log.Printf("Сервер запущен на %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка сервера:%v", err)
		}
	}()

	// Ожидание сигнала для graceful shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
	<-signalChan

	log.Println("Остановка сервера")

	// Graceful shutdown с таймаутом 30 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ошибка:%v", err)
	}
	cancelConsumer()
	// Дожидаемся завершения consumer
	select {
	case <-consumerDone:
	case <-time.After(10 * time.Second):
		log.Println("Таймаут ожидания остановки consumer")
	}
	log.Println("Сервер остановлен успешно")
}
