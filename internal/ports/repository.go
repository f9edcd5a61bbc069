package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"lizzyPrice/internal/domain"
)

// IPriceRepository — контракт чтения статистики цен из хранилища записей.
// Resolve выполняет count-запрос по фильтру (title, опционально city) и,
// если записей больше нуля, mode-запрос. Все параметры уходят в хранилище
// через плейсхолдеры, никакой подстановки строк в текст запроса.
type IPriceRepository interface {
	Resolve(ctx context.Context, item, city string) (domain.PriceStats, error)
	Ping(ctx context.Context) error
}
