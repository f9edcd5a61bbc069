package click

import (
	"context"
	"fmt"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/ports"
)

var _ ports.ILookupAnalytics = (*LookupWriter)(nil)

const priceLookupsFull = "default.price_lookups"

// LookupWriter пишет события lookup в ClickHouse в формате, удобном для
// аналитики спроса (GROUP BY item/city, срезы по времени и т.д.).
type LookupWriter struct {
	db *Client
}

// NewLookupWriter создаёт писатель событий lookup.
func NewLookupWriter(db *Client) *LookupWriter {
	return &LookupWriter{db: db}
}

// EnsureTable создаёт таблицу lookups в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *LookupWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			item             String,
			city             String,
			item_count       Int32,
			price_suggestion Int32,
			created_at       DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, item)
		PARTITION BY toYYYYMM(created_at)`,
		priceLookupsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteLookup реализует ports.ILookupAnalytics: пишет одно событие lookup в ClickHouse.
func (w *LookupWriter) WriteLookup(ctx context.Context, ev domain.Lookup) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (item, city, item_count, price_suggestion, created_at) VALUES (?, ?, ?, ?, ?)",
		priceLookupsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Item, ev.City, ev.ItemCount, ev.PriceSuggestion, ev.Timestamp)
	if err != nil {
		return fmt.Errorf("insert lookup: %w", err)
	}
	return nil
}
