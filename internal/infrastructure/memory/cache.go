package memory

import (
	"context"
	"sync"
	"time"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/ports"
)

var _ ports.IPriceCache = (*Cache)(nil)

// entry — запись кэша с абсолютным сроком годности.
type entry struct {
	payload   domain.PricePayload
	expiresAt time.Time
}

// Cache реализует ports.IPriceCache в памяти процесса: map под RWMutex,
// срок годности проверяется лениво при чтении, плюс фоновая уборка раз
// в минуту. Get не продлевает срок, Set перезаписывает запись и отсчитывает
// TTL заново. При заданной ёмкости новая запись вытесняет ту, чей срок
// истекает раньше всех — предохранитель от разрастания ключей.
type Cache struct {
	mu       sync.RWMutex
	data     map[string]entry
	capacity int
}

// New создаёт кэш и запускает фоновую уборку. capacity <= 0 — без ограничения размера.
func New(capacity int) *Cache {
	c := &Cache{
		data:     make(map[string]entry),
		capacity: capacity,
	}
	go c.janitor()
	return c
}

// Get возвращает запись по ключу. Просроченная или отсутствующая — found == false.
func (c *Cache) Get(_ context.Context, key string) (domain.PricePayload, bool, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expiresAt) {
		return domain.PricePayload{}, false, nil
	}
	return e.payload, true, nil
}

// Set сохраняет запись на ttl. Существующий ключ перезаписывается со свежим сроком.
func (c *Cache) Set(_ context.Context, key string, payload domain.PricePayload, ttl time.Duration) error {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.data[key]; !exists && c.capacity > 0 && len(c.data) >= c.capacity {
		c.evict(now)
	}
	c.data[key] = entry{payload: payload, expiresAt: now.Add(ttl)}
	return nil
}

// Len возвращает количество записей, включая просроченные, но ещё не убранные.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}

// evict освобождает место под новую запись: сначала выкидывает всё просроченное,
// если не помогло — запись с ближайшим сроком. Вызывается под write-lock.
func (c *Cache) evict(now time.Time) {
	for key, e := range c.data {
		if now.After(e.expiresAt) {
			delete(c.data, key)
		}
	}
	if len(c.data) < c.capacity {
		return
	}

	var victim string
	var soonest time.Time
	for key, e := range c.data {
		if victim == "" || e.expiresAt.Before(soonest) {
			victim, soonest = key, e.expiresAt
		}
	}
	delete(c.data, victim)
}

// janitor раз в минуту убирает просроченные записи, чтобы память не держали
// ключи, которые никто больше не читает.
func (c *Cache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, e := range c.data {
			if now.After(e.expiresAt) {
				delete(c.data, key)
			}
		}
		c.mu.Unlock()
	}
}
