// Package kafka содержит логику для работы с Apache Kafka, включая DLQ
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"storefront_service/internal/models"
)

// DLQMessage невостребованное событие контекста заказа с контекстом сбоя.
// Имя события и сессия дублируются полями, чтобы разбирать DLQ без
// десериализации тела события
type DLQMessage struct {
	Event     json.RawMessage `json:"event"`      // Событие в том виде, в каком оно уходило в топик
	EventName string          `json:"event_name"` // Имя события (location.*.updated)
	SessionID string          `json:"session_id"` // Сессия покупателя
	Error     string          `json:"error"`      // Ошибка, приведшая к отправке в DLQ
	Timestamp time.Time       `json:"timestamp"`  // Время отправки в DLQ
	Attempts  int             `json:"attempts"`   // Исчерпанные попытки публикации
}

// DLQProducer для отправки неопубликованных событий в DLQ
type DLQProducer struct {
	writer  *kafka.Writer
	topic   string
	metrics *KafkaMetrics
}

// NewDLQProducer создает новый DLQ producer
func NewDLQProducer(brokers []string, dlqTopic string) *DLQProducer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  dlqTopic,
		Balancer:               &kafka.LeastBytes{},
		WriteTimeout:           10 * time.Second,
		ReadTimeout:            10 * time.Second,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}
	return &DLQProducer{
		writer:  writer,
		topic:   dlqTopic,
		metrics: NewKafkaMetrics(),
	}
}

// SendToDLQ отправляет событие, не дошедшее до основного топика, в DLQ.
// raw — уже сериализованное тело события, чтобы в DLQ попали ровно те
// байты, которые не удалось опубликовать
func (d *DLQProducer) SendToDLQ(event models.Event, raw []byte, pubErr error, attempts int) error {
	dlqMsg := DLQMessage{
		Event:     raw,
		EventName: event.Name,
		SessionID: event.SessionID,
		Error:     pubErr.Error(),
		Timestamp: time.Now(),
		Attempts:  attempts,
	}

	msgJSON, jsonErr := json.Marshal(dlqMsg)
	if jsonErr != nil {
		return jsonErr
	}

	dlqKafkaMsg := kafka.Message{
		Key:   []byte(event.SessionID), // Тот же ключ, что и в основном топике
		Value: msgJSON,
		Time:  time.Now(),
	}

	sendErr := d.writer.WriteMessages(context.Background(), dlqKafkaMsg)
	if sendErr != nil {
		d.metrics.FailedSendsTotal.Inc()
		return sendErr
	}

	d.metrics.DLQMessagesSentTotal.Inc()
	return nil
}

// Close закрывает DLQ producer
func (d *DLQProducer) Close() error {
	return d.writer.Close()
}
