package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"
	"time"

	"lizzyPrice/internal/domain"
)

// IPriceCache — контракт кэша готовых ответов. Get не продлевает срок жизни
// записи и никогда не возвращает просроченное значение; Set перезаписывает
// запись по тому же ключу и заново отсчитывает её TTL.
type IPriceCache interface {
	Get(ctx context.Context, key string) (payload domain.PricePayload, found bool, err error)
	Set(ctx context.Context, key string, payload domain.PricePayload, ttl time.Duration) error
}
