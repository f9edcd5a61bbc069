package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"lizzyPrice/internal/domain"
)

// IPriceUseCase — контракт бизнес-логики подбора цены: обработка запроса
// (кэш → резолвер → кэш) и обработка событий lookup из брокера.
type IPriceUseCase interface {
	Suggest(ctx context.Context, item, city string) (domain.PricePayload, error)
	HandleLookupEvent(ctx context.Context, ev domain.Lookup) error
}
