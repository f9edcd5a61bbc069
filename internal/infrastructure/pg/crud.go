package pg

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/ports"
)

var _ ports.IPriceRepository = (*PriceRepo)(nil)

// Запросы резолвера. Авторитетная колонка — list_price. Сортировка mode-запроса:
// сначала по частоте, при равной частоте выигрывает большая цена — это
// намеренная политика, не случайный порядок.
const (
	countQuery = `SELECT COUNT(list_price) FROM item_prices WHERE title = $1`

	countQueryCity = `SELECT COUNT(list_price) FROM item_prices WHERE title = $1 AND city = $2`

	modeQuery = `SELECT list_price
		FROM item_prices
		WHERE title = $1
		GROUP BY list_price
		ORDER BY COUNT(list_price) DESC, list_price DESC
		LIMIT 1`

	modeQueryCity = `SELECT list_price
		FROM item_prices
		WHERE title = $1 AND city = $2
		GROUP BY list_price
		ORDER BY COUNT(list_price) DESC, list_price DESC
		LIMIT 1`
)

// PriceRepo реализует ports.IPriceRepository для PostgreSQL.
type PriceRepo struct {
	db  *DB
	log *slog.Logger
}

// NewPriceRepo возвращает репозиторий цен.
func NewPriceRepo(db *DB, log *slog.Logger) *PriceRepo {
	return &PriceRepo{db: db, log: log}
}

// Resolve выполняет count- и mode-запросы в одной read-only транзакции.
// Фильтр по городу добавляется, только если город задан; пустой город —
// агрегация по всем городам. При нулевом количестве mode-запрос пропускается.
// Любая ошибка запроса откатывает транзакцию, чтобы соединение вернулось
// в пул пригодным для следующих запросов.
func (r *PriceRepo) Resolve(ctx context.Context, item, city string) (domain.PriceStats, error) {
	countQ, modeQ := countQuery, modeQuery
	args := []any{item}
	if city != "" {
		countQ, modeQ = countQueryCity, modeQueryCity
		args = append(args, city)
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return domain.PriceStats{}, fmt.Errorf("pg begin: %w", err)
	}

	var stats domain.PriceStats
	if err := tx.QueryRowContext(ctx, countQ, args...).Scan(&stats.Count); err != nil {
		_ = tx.Rollback()
		r.log.Debug("count query failed", "item", item, "city", city, "error", err)
		return domain.PriceStats{}, fmt.Errorf("pg count: %w", err)
	}

	if stats.Count == 0 {
		// mode-запрос гарантированно пуст — не тратим на него round-trip
		_ = tx.Commit()
		return stats, nil
	}

	if err := tx.QueryRowContext(ctx, modeQ, args...).Scan(&stats.Mode); err != nil {
		_ = tx.Rollback()
		r.log.Debug("mode query failed", "item", item, "city", city, "error", err)
		return domain.PriceStats{}, fmt.Errorf("pg mode: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.PriceStats{}, fmt.Errorf("pg commit: %w", err)
	}
	return stats, nil
}

// Ping проверяет доступность БД (readiness).
func (r *PriceRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
