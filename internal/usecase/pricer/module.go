package pricer

import (
	"log/slog"
	"strconv"
	"time"

	"lizzyPrice/internal/ports"
)

// priceTTL — время жизни записи в кэше. Чтение TTL не продлевает.
const priceTTL = 5 * time.Minute

// cacheKey формирует однозначный ключ кэша из города и товара.
// Обе части берутся в кавычки (strconv.Quote экранирует содержимое),
// поэтому пары ("NY","Car") и ("N","YCar") не склеиваются в один ключ,
// а запрос без города не совпадает с запросом с пустым городом.
func cacheKey(item, city string) string {
	return "city=" + strconv.Quote(city) + " item=" + strconv.Quote(item)
}

// UseCase — бизнес-логика подбора цены: кэш перед резолвером, резолвер
// по хранилищу записей, событие lookup в брокер после каждого обращения.
type UseCase struct {
	repo      ports.IPriceRepository
	cache     ports.IPriceCache
	broker    ports.IProducer
	analytics ports.ILookupAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс подбора цены.
func New(repo ports.IPriceRepository, cache ports.IPriceCache, broker ports.IProducer, analytics ports.ILookupAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, broker: broker, analytics: analytics, log: log}
}
