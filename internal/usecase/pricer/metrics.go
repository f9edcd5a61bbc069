package pricer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Счётчики попаданий/промахов кэша ответов. Видны на /metrics.
var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_hits_total",
		Help: "Total number of price suggestions served from cache",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "price_cache_misses_total",
		Help: "Total number of price suggestions resolved from the backing store",
	})
)
