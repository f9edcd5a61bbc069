package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "lizzyPrice/internal/api/http"
	"lizzyPrice/internal/api/http/controllers/price"
	"lizzyPrice/internal/api/http/controllers/system"
	"lizzyPrice/internal/infrastructure/click"
	"lizzyPrice/internal/infrastructure/kafka"
	"lizzyPrice/internal/infrastructure/memory"
	"lizzyPrice/internal/infrastructure/mongo"
	"lizzyPrice/internal/infrastructure/pg"
	"lizzyPrice/internal/infrastructure/redis"
	"lizzyPrice/internal/pkg/logger"
	"lizzyPrice/internal/ports"
	"lizzyPrice/internal/usecase/pricer"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище, кэш, Kafka и ClickHouse, собирает зависимости
// и запускает HTTP-сервер (блокирующий вызов до SIGINT/SIGTERM).
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(a.cfg.LogLevel)
	slog.SetDefault(log)

	repo, closeStore, err := a.newStore(ctx, log)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	cache, closeCache, err := a.newCache(log)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer closeCache()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	writer := click.NewLookupWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	uc := pricer.New(repo, cache, producer, writer, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(repo, log),
		price.New(uc, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "store", a.cfg.Store, "cache", a.cfg.Cache)

	return srv.Start(ctx)
}

// newStore подключает хранилище записей о ценах по cfg.Store.
func (a *App) newStore(ctx context.Context, log *slog.Logger) (ports.IPriceRepository, func(), error) {
	switch a.cfg.Store {
	case StorePostgres:
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("pg: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("pg migrate: %w", err)
		}
		return pg.NewPriceRepo(db, log), func() { db.Close() }, nil
	case StoreMongo:
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		return mongo.NewPriceRepo(cli, log), func() { _ = cli.Disconnect(context.Background()) }, nil
	default:
		return nil, nil, fmt.Errorf("неизвестное хранилище %q (ожидается %s или %s)", a.cfg.Store, StorePostgres, StoreMongo)
	}
}

// newCache подключает кэш ответов по cfg.Cache.
func (a *App) newCache(log *slog.Logger) (ports.IPriceCache, func(), error) {
	switch a.cfg.Cache {
	case CacheMemory:
		return memory.New(a.cfg.CacheCapacity), func() {}, nil
	case CacheRedis:
		cli, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return redis.NewCache(cli, log), func() { _ = cli.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("неизвестный кэш %q (ожидается %s или %s)", a.cfg.Cache, CacheMemory, CacheRedis)
	}
}
