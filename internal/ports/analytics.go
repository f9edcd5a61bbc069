package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"lizzyPrice/internal/domain"
)

// ILookupAnalytics — запись событий lookup в хранилище для аналитики
// (например, ClickHouse: какие товары и города спрашивают, что советуем).
type ILookupAnalytics interface {
	WriteLookup(ctx context.Context, ev domain.Lookup) error
}
