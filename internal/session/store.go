// Package session содержит сессионное хранилище ключ-значение в памяти.
// Хранилище best-effort: истечение или потеря сессии не ломает движок,
// контекст заказа восстанавливается из значений по умолчанию
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// bucket значения одной сессии со сроком жизни
type bucket struct {
	values     map[string]string
	expireTime time.Time
}

// Store хранилище сессий в памяти
type Store struct {
	mu      sync.RWMutex       // Мьютекс для безопасного доступа
	buckets map[string]*bucket // Словарь сессий по идентификатору
	ttl     time.Duration      // Время жизни сессии
}

// NewStore создает новое хранилище сессий
func NewStore(ttl time.Duration) *Store {
	return &Store{
		buckets: make(map[string]*bucket),
		ttl:     ttl,
	}
}

// NewSessionID генерирует новый идентификатор сессии
func NewSessionID() string {
	return uuid.NewString()
}

// Get возвращает значение ключа сессии
func (s *Store) Get(sessionID, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, exists := s.buckets[sessionID]
	if !exists || time.Now().After(b.expireTime) {
		return "", false
	}
	v, ok := b.values[key]
	return v, ok
}

// Put сохраняет значение ключа сессии, продлевая срок жизни сессии
func (s *Store) Put(sessionID, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, exists := s.buckets[sessionID]
	if !exists || time.Now().After(b.expireTime) {
		b = &bucket{values: make(map[string]string)}
		s.buckets[sessionID] = b
	}
	b.values[key] = value
	b.expireTime = time.Now().Add(s.ttl)
}

// Forget удаляет ключ сессии
func (s *Store) Forget(sessionID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, exists := s.buckets[sessionID]; exists {
		delete(b.values, key)
	}
}

// Size возвращает количество живых сессий
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	count := 0
	for _, b := range s.buckets {
		if now.After(b.expireTime) {
			continue // Пропускаем истекшие сессии
		}
		count++
	}
	return count
}

// Cleanup удаляет истекшие сессии
func (s *Store) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, b := range s.buckets {
		if now.After(b.expireTime) {
			delete(s.buckets, id)
		}
	}
}
