package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/ports"
)

var _ ports.IPriceRepository = (*PriceRepo)(nil)

// priceDoc — документ в коллекции item_prices (та же схема, что у реляционной таблицы).
type priceDoc struct {
	Title     string `bson:"title"`
	ListPrice int    `bson:"list_price"`
	SellPrice int    `bson:"sell_price"`
	City      string `bson:"city"`
	Cashless  bool   `bson:"cashless"`
}

// PriceRepo реализует ports.IPriceRepository для MongoDB — альтернатива
// PostgreSQL, включается конфигом PRICER_STORE=mongo.
type PriceRepo struct {
	client *Client
	log    *slog.Logger
}

// NewPriceRepo возвращает репозиторий цен.
func NewPriceRepo(client *Client, log *slog.Logger) *PriceRepo {
	return &PriceRepo{client: client, log: log}
}

// Resolve считает записи по фильтру, затем агрегацией берёт моду list_price:
// $group по цене → $sort по частоте и цене (обе по убыванию: при равной
// частоте выигрывает большая цена) → $limit 1. Фильтр по городу добавляется,
// только если город задан. При нулевом количестве агрегация пропускается.
func (r *PriceRepo) Resolve(ctx context.Context, item, city string) (domain.PriceStats, error) {
	filter := bson.M{"title": item}
	if city != "" {
		filter["city"] = city
	}

	n, err := r.client.Coll().CountDocuments(ctx, filter)
	if err != nil {
		r.log.Debug("count failed", "item", item, "city", city, "error", err)
		return domain.PriceStats{}, fmt.Errorf("mongo count: %w", err)
	}

	stats := domain.PriceStats{Count: int(n)}
	if n == 0 {
		return stats, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$list_price"},
			{Key: "frequency", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "frequency", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: 1}},
	}

	cursor, err := r.client.Coll().Aggregate(ctx, pipeline)
	if err != nil {
		r.log.Debug("mode aggregation failed", "item", item, "city", city, "error", err)
		return domain.PriceStats{}, fmt.Errorf("mongo mode: %w", err)
	}
	defer cursor.Close(ctx)

	var top struct {
		Price     int `bson:"_id"`
		Frequency int `bson:"frequency"`
	}
	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return domain.PriceStats{}, fmt.Errorf("mongo mode cursor: %w", err)
		}
		// count > 0, а агрегация пустая — гонка с параллельным удалением
		return domain.PriceStats{}, nil
	}
	if err := cursor.Decode(&top); err != nil {
		return domain.PriceStats{}, fmt.Errorf("mongo mode decode: %w", err)
	}

	stats.Mode = top.Price
	return stats, nil
}

// Ping проверяет доступность БД (readiness).
func (r *PriceRepo) Ping(ctx context.Context) error {
	return r.client.Client.Ping(ctx, nil)
}
