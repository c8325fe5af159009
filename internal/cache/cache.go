// Package cache содержит реализацию кэша зон доставки в памяти
package cache

import (
	"sync"
	"time"

	"storefront_service/internal/models"
)

// cachedArea кэшированная зона доставки со сроком жизни
type cachedArea struct {
	area       *models.DeliveryArea
	expireTime time.Time
}

// Cache представляет кэш зон доставки в памяти. Зоны неизменяемы после
// загрузки, поэтому кэш хранит указатели без копирования
type Cache struct {
	mu    sync.RWMutex          // Мьютекс для безопасного доступа
	areas map[int64]*cachedArea // Словарь зон по идентификатору с временем истечения
	ttl   time.Duration         // Время жизни элемента кэша
}

// New создает новый экземпляр кэша
func New(ttl time.Duration) *Cache {
	return &Cache{
		areas: make(map[int64]*cachedArea), // Инициализируем пустой словарь
		ttl:   ttl,                         // Устанавливаем время жизни
	}
}

// Set добавляет или обновляет зону доставки в кэше
func (c *Cache) Set(area *models.DeliveryArea) {
	if area == nil || area.ID == 0 {
		return // Сентинел "нет покрытия" не кэшируем
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.areas[area.ID] = &cachedArea{
		area:       area,
		expireTime: time.Now().Add(c.ttl), // Устанавливаем время истечения
	}
}

// Get получает зону доставки из кэша по идентификатору
func (c *Cache) Get(id int64) (*models.DeliveryArea, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.areas[id] // Проверяем наличие элемента
	if !exists {
		return nil, false
	}

	// Проверяем, не истекло ли время жизни
	if time.Now().After(item.expireTime) {
		return nil, false // Элемент истек, считаем что не существует
	}

	return item.area, true
}

// Size возвращает количество зон в кэше
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	now := time.Now()
	count := 0
	for _, item := range c.areas {
		if now.After(item.expireTime) {
			continue // Пропускаем истекшие элементы
		}
		count++
	}
	return count
}

// Cleanup удаляет истекшие элементы из кэша
func (c *Cache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.areas {
		if now.After(item.expireTime) {
			delete(c.areas, key)
		}
	}
}
