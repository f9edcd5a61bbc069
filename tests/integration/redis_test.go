package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lizzyPrice/internal/domain"
	"lizzyPrice/internal/infrastructure/redis"
	"lizzyPrice/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, newTestLogger())
}

// chairPayload — типовой успешный ответ для тестов кэша.
func chairPayload() domain.PricePayload {
	return domain.PricePayload{
		Status: http.StatusOK,
		Content: domain.PriceContent{
			Item:            "Chair",
			ItemCount:       3,
			PriceSuggestion: 50,
			City:            "Austin",
		},
	}
}

// =============================================================================
// Тесты Redis кэша
// =============================================================================

func TestRedisCache_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()
	want := chairPayload()

	// Сохраняем ответ
	err := cache.Set(ctx, `city="Austin" item="Chair"`, want, time.Minute)
	require.NoError(t, err, "Set должен успешно сохранить")

	// Получаем ответ: JSON-раунд-трип не должен ничего потерять
	got, found, err := cache.Get(ctx, `city="Austin" item="Chair"`)
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.Equal(t, want, got, "ответ должен совпадать")
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	// Пытаемся получить несуществующий ключ
	got, found, err := cache.Get(ctx, `city="" item="несуществующий"`)

	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.Equal(t, domain.PricePayload{}, got, "значение должно быть нулевым")
}

func TestRedisCache_Expiration(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	// Сохраняем с коротким TTL
	err := cache.Set(ctx, "key", chairPayload(), 500*time.Millisecond)
	require.NoError(t, err)

	// Сразу после записи ключ на месте
	_, found, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)

	// Ждём истечения TTL
	time.Sleep(time.Second)

	_, found, err = cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, found, "ключ должен истечь")
}

func TestRedisCache_Overwrite(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	// Сохраняем первый ответ
	first := chairPayload()
	err := cache.Set(ctx, "key", first, time.Minute)
	require.NoError(t, err)

	// Перезаписываем ответом с другой ценой
	second := chairPayload()
	second.Content.PriceSuggestion = 70
	second.Content.ItemCount = 5
	err = cache.Set(ctx, "key", second, time.Minute)
	require.NoError(t, err)

	// Проверяем, что значение обновилось
	got, found, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, second, got, "значение должно быть перезаписано")
}
