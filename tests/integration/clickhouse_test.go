package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/infrastructure/click"
	"lizzyPrice/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.LookupWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewLookupWriter(client)

	// Создаём таблицу
	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	// Очищаем таблицу перед тестом
	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.price_lookups")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тесты ClickHouse writer
// =============================================================================

func TestClickWriter_WriteLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	ev := domain.Lookup{
		Item:            "Chair",
		City:            "Austin",
		ItemCount:       3,
		PriceSuggestion: 50,
		Timestamp:       time.Now(),
	}

	err := writer.WriteLookup(ctx, ev)
	require.NoError(t, err, "WriteLookup должен успешно записать")

	// Проверяем запись напрямую
	var count uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM default.price_lookups WHERE item = 'Chair' AND city = 'Austin'").
		Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count, "в таблице должна быть 1 запись")
}

func TestClickWriter_EnsureTable_Idempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, _ := setupClickWriter(t)
	ctx := context.Background()

	// Повторный вызов на существующей таблице не должен падать
	err := writer.EnsureTable(ctx)
	assert.NoError(t, err)
}
