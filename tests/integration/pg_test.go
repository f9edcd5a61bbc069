package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyPrice/internal/infrastructure/pg"
	"lizzyPrice/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// priceRow — строка для наполнения таблицы item_prices в тестах.
type priceRow struct {
	title     string
	listPrice int
	sellPrice int
	city      string
}

// setupPgRepo подключается к тестовой БД, прогоняет миграцию, очищает таблицу
// и наполняет её переданными строками.
func setupPgRepo(t *testing.T, rows []priceRow) *pg.PriceRepo {
	t.Helper()

	db, err := pg.New(&pg.Config{
		Host:     pgContainer.Host,
		Port:     pgContainer.Port,
		User:     pgContainer.User,
		Password: pgContainer.Password,
		DBName:   pgContainer.DBName,
		SSLMode:  "disable",
	})
	require.NoError(t, err, "не удалось подключиться к PostgreSQL")

	ctx := context.Background()
	require.NoError(t, pg.Migrate(ctx, db), "миграция должна пройти")

	// Очищаем таблицу перед каждым тестом
	_, err = db.ExecContext(ctx, "TRUNCATE TABLE item_prices RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу item_prices")

	for _, r := range rows {
		_, err = db.ExecContext(ctx,
			"INSERT INTO item_prices (title, list_price, sell_price, city, cashless) VALUES ($1, $2, $3, $4, $5)",
			r.title, r.listPrice, r.sellPrice, r.city, false)
		require.NoError(t, err, "не удалось вставить строку")
	}

	t.Cleanup(func() {
		db.Close()
	})

	return pg.NewPriceRepo(db, newTestLogger())
}

// =============================================================================
// Тесты PostgreSQL репозитория
// =============================================================================

func TestPgRepo_Resolve_ModeWithCity(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupPgRepo(t, []priceRow{
		{"Chair", 50, 45, "Austin"},
		{"Chair", 50, 40, "Austin"},
		{"Chair", 70, 60, "Austin"},
		{"Chair", 30, 25, "Dallas"}, // другой город — не должен попасть в выборку
		{"Table", 90, 80, "Austin"}, // другой товар
	})
	ctx := context.Background()

	stats, err := repo.Resolve(ctx, "Chair", "Austin")
	require.NoError(t, err, "Resolve должен отработать без ошибок")

	assert.Equal(t, 3, stats.Count, "считаются только строки Chair/Austin")
	assert.Equal(t, 50, stats.Mode, "самая частая цена — 50")
}

func TestPgRepo_Resolve_TieBreaksToHigherPrice(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	// Две цены с одинаковой частотой: выигрывать должна большая
	repo := setupPgRepo(t, []priceRow{
		{"Lamp", 20, 15, "Austin"},
		{"Lamp", 20, 18, "Austin"},
		{"Lamp", 30, 25, "Austin"},
		{"Lamp", 30, 28, "Austin"},
	})
	ctx := context.Background()

	stats, err := repo.Resolve(ctx, "Lamp", "Austin")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 30, stats.Mode, "при равной частоте выигрывает большая цена")
}

func TestPgRepo_Resolve_NoCityAggregatesAll(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupPgRepo(t, []priceRow{
		{"Chair", 50, 45, "Austin"},
		{"Chair", 50, 40, "Dallas"},
		{"Chair", 70, 60, "Houston"},
	})
	ctx := context.Background()

	// Пустой город — агрегация по всем городам
	stats, err := repo.Resolve(ctx, "Chair", "")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Count, "без фильтра по городу считаются все строки товара")
	assert.Equal(t, 50, stats.Mode)
}

func TestPgRepo_Resolve_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupPgRepo(t, []priceRow{
		{"Chair", 50, 45, "Austin"},
	})
	ctx := context.Background()

	stats, err := repo.Resolve(ctx, "Chair", "Dallas")
	require.NoError(t, err, "отсутствие данных — не ошибка")

	assert.Equal(t, 0, stats.Count, "в Dallas записей нет")
	assert.Equal(t, 0, stats.Mode)
}

func TestPgRepo_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupPgRepo(t, nil)
	ctx := context.Background()

	err := repo.Ping(ctx)
	assert.NoError(t, err, "Ping должен успешно проверить соединение")
}
