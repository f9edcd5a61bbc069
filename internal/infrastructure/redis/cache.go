package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/ports"
)

var _ ports.IPriceCache = (*Cache)(nil)

// Cache реализует ports.IPriceCache через Redis: значение — JSON готового
// ответа, срок жизни записи отслеживает сам Redis (SET ... EX). Альтернатива
// кэшу в памяти процесса, включается конфигом PRICER_CACHE=redis.
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает кэш ответов поверх Redis.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает ответ по ключу. Если ключа нет или он истёк — found == false.
func (c *Cache) Get(ctx context.Context, key string) (domain.PricePayload, bool, error) {
	raw, err := c.cli.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return domain.PricePayload{}, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return domain.PricePayload{}, false, err
	}
	var payload domain.PricePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.log.Debug("cache unmarshal failed", "key", key, "error", err)
		return domain.PricePayload{}, false, fmt.Errorf("cache unmarshal: %w", err)
	}
	return payload, true, nil
}

// Set сохраняет ответ по ключу на ttl. Существующий ключ перезаписывается
// со свежим сроком.
func (c *Cache) Set(ctx context.Context, key string, payload domain.PricePayload, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.cli.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}
