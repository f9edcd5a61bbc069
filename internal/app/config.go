package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"lizzyPrice/internal/api/http"
	"lizzyPrice/internal/infrastructure/click"
	"lizzyPrice/internal/infrastructure/kafka"
	"lizzyPrice/internal/infrastructure/mongo"
	"lizzyPrice/internal/infrastructure/pg"
	"lizzyPrice/internal/infrastructure/redis"
)

// AppName — префикс переменных окружения: PRICER_DB_HOST, PRICER_SERVER_PORT и т.д.
const AppName = "PRICER"

// Имена бэкендов хранилища и кэша (значения PRICER_STORE / PRICER_CACHE).
const (
	StorePostgres = "postgres"
	StoreMongo    = "mongo"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config — конфиг приложения. Заполняется через envconfig с префиксом PRICER.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Store выбирает хранилище записей о ценах: postgres | mongo.
	Store string `envconfig:"STORE" default:"postgres"`
	// Cache выбирает бэкенд кэша ответов: memory | redis.
	Cache string `envconfig:"CACHE" default:"memory"`
	// CacheCapacity ограничивает число записей кэша в памяти; 0 — без ограничения.
	CacheCapacity int `envconfig:"CACHE_CAPACITY" default:"0"`

	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет
// структуру из окружения (envconfig). Отсутствие обязательной переменной
// (например, PRICER_DB_PASSWORD) — ошибка, процесс не стартует.
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
