package pricer

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"lizzyPrice/internal/domain"
)

// Suggest — обработка одного запроса. Пустой item — сразу «не найдено»,
// без обращения к кэшу и хранилищу. Дальше кэш; при промахе — резолвер,
// сборка ответа, запись в кэш на priceTTL и событие lookup в брокер.
// Ответ «не найдено» при нулевом количестве записей не кэшируется: товар,
// появившийся в хранилище позже, не должен ждать истечения TTL.
func (u *UseCase) Suggest(ctx context.Context, item, city string) (domain.PricePayload, error) {
	if item == "" {
		return domain.NotFoundPayload, nil
	}

	key := cacheKey(item, city)
	if cached, found, err := u.cache.Get(ctx, key); err == nil && found {
		cacheHits.Inc()
		return cached, nil
	}
	cacheMisses.Inc()

	stats, err := u.repo.Resolve(ctx, item, city)
	if err != nil {
		return domain.PricePayload{}, err
	}

	u.publishLookup(ctx, key, domain.Lookup{
		Item:            item,
		City:            city,
		ItemCount:       stats.Count,
		PriceSuggestion: stats.Mode,
		Timestamp:       time.Now(),
	})

	if stats.Count == 0 {
		return domain.NotFoundPayload, nil
	}

	cityStr := city
	if cityStr == "" {
		cityStr = domain.CityNotSpecified
	}
	payload := domain.PricePayload{
		Status: http.StatusOK,
		Content: domain.PriceContent{
			Item:            item,
			ItemCount:       stats.Count,
			PriceSuggestion: stats.Mode,
			City:            cityStr,
		},
	}

	if err := u.cache.Set(ctx, key, payload, priceTTL); err != nil {
		// Кэш — ускоритель, не источник истины: ответ отдаём в любом случае.
		u.log.Warn("cache set failed", "key", key, "error", err)
	}

	return payload, nil
}

// publishLookup отправляет событие lookup в брокер. Ошибка отправки не
// валит запрос: аналитика вторична по отношению к ответу клиенту.
func (u *UseCase) publishLookup(ctx context.Context, key string, ev domain.Lookup) {
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("lookup marshal", "key", key, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(key), value); err != nil {
		u.log.Warn("broker send", "key", key, "error", err)
		return
	}
	u.log.Info("lookup published", "key", key, "item_count", ev.ItemCount)
}

// HandleLookupEvent вызывается консьюмером при получении сообщения из топика
// lookups: событие оседает в аналитическом хранилище.
func (u *UseCase) HandleLookupEvent(ctx context.Context, ev domain.Lookup) error {
	if err := u.analytics.WriteLookup(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("lookup stored to click", "item", ev.Item, "city", ev.City, "item_count", ev.ItemCount)
	return nil
}
