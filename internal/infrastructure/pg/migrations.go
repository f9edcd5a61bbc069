package pg

import (
	"context"
)

const createItemPricesTable = `
CREATE TABLE IF NOT EXISTS item_prices (
	id         SERIAL PRIMARY KEY,
	title      VARCHAR(255) NOT NULL,
	list_price INTEGER NOT NULL,
	sell_price INTEGER NOT NULL,
	city       VARCHAR(255) NOT NULL DEFAULT '',
	cashless   BOOLEAN NOT NULL DEFAULT FALSE
);
`

// Обе формы фильтра резолвера (только title и title+city) ходят по этому индексу.
const createTitleCityIndex = `
CREATE INDEX IF NOT EXISTS idx_item_prices_title_city ON item_prices (title, city);
`

// Migrate создаёт таблицу item_prices и индекс, если их ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createItemPricesTable); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, createTitleCityIndex)
	return err
}
