// Package retry предоставляет механизмы повторных попыток для отказоустойчивости
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy определяет политику повторных попыток
type Policy struct {
	MaxAttempts    int           // Максимальное количество попыток
	InitialBackoff time.Duration // Начальная задержка между попытками
	MaxBackoff     time.Duration // Максимальная задержка между попытками
	BackoffFactor  float64       // Фактор увеличения задержки
	Jitter         bool          // Добавлять ли случайную задержку (jitter)
}

// ReadPolicy возвращает политику для операций чтения: подсчет заказов,
// загрузка зон и настроек заведения
func ReadPolicy() Policy {
	return Policy{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		BackoffFactor:  2.0,
		Jitter:         true,
	}
}

// CriticalPolicy возвращает строгую политику для критических операций:
// инициализация БД и запись размещенных заказов
func CriticalPolicy() Policy {
	return Policy{
		MaxAttempts:    5,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		BackoffFactor:  2.5,
		Jitter:         true,
	}
}

// NotifyPolicy возвращает легкую политику для публикации событий:
// события fire-and-forget, долгие повторы не оправданы
func NotifyPolicy() Policy {
	return Policy{
		MaxAttempts:    2,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     1 * time.Second,
		BackoffFactor:  1.5,
		Jitter:         true,
	}
}

// ContextRetryableFunc тип функции с контекстом, которую можно повторять
type ContextRetryableFunc func(context.Context) error

// DoWithContext выполняет функцию с контекстом и повторными попытками согласно политике
func DoWithContext(ctx context.Context, policy Policy, fn ContextRetryableFunc) error {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}

	backoff := policy.InitialBackoff
	var lastErr error

	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		// Проверяем контекст на отмену
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return lastErr
			}
			return ctx.Err()
		default:
		}

		// Выполняем функцию
		err := fn(ctx)
		if err == nil {
			// Успешно выполнено
			return nil
		}

		// Сохраняем последнюю ошибку
		lastErr = err

		// Если это была последняя попытка, возвращаем ошибку
		if attempt == policy.MaxAttempts-1 {
			break
		}

		// Рассчитываем задержку
		delay := backoff

		// Добавляем jitter если требуется
		if policy.Jitter && backoff > 0 {
			jitter := time.Duration(rand.Int63n(int64(backoff / 2)))
			delay += jitter
		}

		// Ограничиваем максимальную задержку
		if delay > policy.MaxBackoff {
			delay = policy.MaxBackoff
		}

		// Ждем перед следующей попыткой или пока контекст не будет отменен
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
			// Время задержки истекло, продолжаем
		case <-ctx.Done():
			// Контекст отменен
			timer.Stop()
			return ctx.Err()
		}
		timer.Stop()

		// Увеличиваем задержку для следующей попытки
		backoff = time.Duration(float64(backoff) * policy.BackoffFactor)
	}

	return lastErr
}
