// Утилита для отладки конфига: печатает, как сервис увидит окружение
// (после .env и envconfig с префиксом PRICER), не подключаясь никуда.
package main

import (
	"fmt"
	"log"

	"lizzyPrice/internal/app"
)

func main() {
	cfg, err := app.LoadCfg()
	if err != nil {
		log.Fatalf("ошибка конфига: %v", err)
	}

	fmt.Println("Конфиг из env (префикс PRICER):")
	fmt.Printf("  LogLevel:   %s\n", cfg.LogLevel)
	fmt.Printf("  Store:      %s\n", cfg.Store)
	fmt.Printf("  Cache:      %s (capacity=%d)\n", cfg.Cache, cfg.CacheCapacity)
	fmt.Printf("  Server:     %s:%s\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Printf("  DB:         host=%s port=%s user=%s dbname=%s sslmode=%s\n",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.DBName, cfg.DB.SSLMode)
	fmt.Printf("  Mongo:      uri=%s db=%s coll=%s\n", cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	fmt.Printf("  Redis:      %s db=%d\n", cfg.Redis.Addr(), cfg.Redis.DB)
	fmt.Printf("  Kafka:      brokers=%s topic=%s group=%s\n", cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
	fmt.Printf("  ClickHouse: %s db=%s\n", cfg.ClickHouse.Addr(), cfg.ClickHouse.Database)
}
