// Package kafka содержит логику для работы с Apache Kafka
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"storefront_service/internal/models"
	"storefront_service/internal/retry"

	"github.com/segmentio/kafka-go"
)

// Notifier публикует события изменения контекста заказа в Kafka.
// Интеграции (уведомления покупателю, аналитика) подписываются на топик
type Notifier struct {
	writer  *kafka.Writer // Kafka writer для отправки событий
	dlq     *DLQProducer  // DLQ для событий, которые не удалось отправить
	topic   string        // Топик для отправки
	metrics *KafkaMetrics // Метрики для мониторинга
}

// NewNotifier создает нового издателя событий
func NewNotifier(brokers []string, topic string, dlq *DLQProducer) *Notifier {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...), // Адреса брокеров Kafka
		Topic:                  topic,                 // Топик для отправки
		Balancer:               &kafka.LeastBytes{},   // Балансировщик по наименьшему количеству байт
		WriteTimeout:           10 * time.Second,      // Таймаут на запись
		ReadTimeout:            10 * time.Second,      // Таймаут на чтение
		RequiredAcks:           kafka.RequireAll,      // Требовать подтверждения от всех реплик
		MaxAttempts:            3,                     // Максимальное количество попыток
		AllowAutoTopicCreation: true,                  // Разрешить автоматическое создание топика
	}
	return &Notifier{
		writer:  writer,
		dlq:     dlq,
		topic:   topic,
		metrics: NewKafkaMetrics(), // Инициализировать метрики
	}
}

// Notify публикует событие fire-and-forget: ошибки публикации логируются
// и уходят в DLQ, но никогда не возвращаются в движок. Сбой слушателя не
// должен ломать обработку заказа
func (n *Notifier) Notify(ctx context.Context, event models.Event) {
	if err := n.publish(ctx, event); err != nil {
		log.Printf("Ошибка публикации события %s: %v", event.Name, err)
	}
}

// publish сериализует и отправляет событие с повторными попытками
func (n *Notifier) publish(ctx context.Context, event models.Event) error {
	// Валидация события перед отправкой
	if err := event.Validate(); err != nil {
		n.metrics.ProcessingErrorsTotal.Inc()
		return fmt.Errorf("ошибка валидации события перед отправкой в Kafka: %w", err)
	}

	// Сериализация события в JSON
	eventJSON, err := json.Marshal(event)
	if err != nil {
		n.metrics.ProcessingErrorsTotal.Inc()
		return err
	}

	// Создание сообщения для отправки
	msg := kafka.Message{
		Key:   []byte(event.SessionID), // Ключ — сессия: события сессии идут в одну партицию
		Value: eventJSON,               // Тело сообщения - JSON события
		Time:  time.Now(),              // Временная метка
	}

	// Использовать механизм повторных попыток для отправки сообщения
	retryPolicy := retry.NotifyPolicy()

	err = retry.DoWithContext(ctx, retryPolicy, func(ctx context.Context) error {
		if err := n.writer.WriteMessages(ctx, msg); err != nil {
			n.metrics.FailedSendsTotal.Inc()
			n.metrics.RetryAttemptsTotal.Inc()
			log.Printf("Ошибка отправки события в Kafka (будет повторная попытка): %v", err)
			return err
		}
		n.metrics.EventsSentTotal.Inc()
		return nil
	})

	if err != nil {
		n.metrics.ProcessingErrorsTotal.Inc()
		// Последний шанс: событие уходит в DLQ для последующего разбора
		if n.dlq != nil {
			if dlqErr := n.dlq.SendToDLQ(event, eventJSON, err, retryPolicy.MaxAttempts); dlqErr != nil {
				log.Printf("Ошибка отправки события в DLQ: %v", dlqErr)
			}
		}
	}

	return err
}

// Close закрывает writer Kafka
func (n *Notifier) Close() error {
	return n.writer.Close()
}
