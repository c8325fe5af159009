// Package interfaces содержит интерфейсы для основных сущностей приложения
package interfaces

import (
	"context"
	"time"

	"storefront_service/internal/models"
)

// Database интерфейс для работы с базой данных
type Database interface {
	// Init инициализирует базу данных (создает таблицы и т.д.)
	Init(ctx context.Context) error

	// SaveOrder сохраняет размещенный заказ в базу данных
	SaveOrder(ctx context.Context, order *models.Order) error

	// CountOrders возвращает количество заказов заведения в окне времени
	// [start, end) указанной даты, исключая аннулированные (status_id = 0)
	CountOrders(ctx context.Context, locationID int64, dateKey string, start, end time.Time) (int, error)

	// LoadLocation загружает настройки заведения вместе с расписаниями
	LoadLocation(ctx context.Context, id int64) (*models.Location, error)

	// FindDeliveryArea получает зону доставки по идентификатору
	FindDeliveryArea(ctx context.Context, id int64) (*models.DeliveryArea, error)

	// ListDeliveryAreas возвращает все зоны доставки заведения
	ListDeliveryAreas(ctx context.Context, locationID int64) ([]models.DeliveryArea, error)

	// Close закрывает соединение с базой данных
	Close()
}

// AreaCache интерфейс кэша загруженных зон доставки
type AreaCache interface {
	// Set добавляет или обновляет зону в кэше
	Set(area *models.DeliveryArea)

	// Get получает зону из кэша по идентификатору
	Get(id int64) (*models.DeliveryArea, bool)

	// Size возвращает количество зон в кэше
	Size() int

	// Cleanup удаляет истекшие элементы из кэша
	Cleanup()
}

// SessionStore интерфейс сессионного хранилища ключ-значение.
// Персистентность best-effort: потеря сессии не ломает движок
type SessionStore interface {
	// Get возвращает значение ключа сессии
	Get(sessionID, key string) (string, bool)

	// Put сохраняет значение ключа сессии
	Put(sessionID, key, value string)

	// Forget удаляет ключ сессии
	Forget(sessionID, key string)
}

// Notifier интерфейс отправки событий изменения контекста заказа.
// Отправка fire-and-forget: сбой слушателя не должен ломать движок
type Notifier interface {
	// Notify публикует событие изменения контекста заказа
	Notify(ctx context.Context, event models.Event)
}
