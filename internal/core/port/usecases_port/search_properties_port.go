package usecases_port

import (
	"context"

	"github.com/VanSingco/realstate-api/internal/core/domain"
)

type SearchPropertiesPort interface {
	Execute(ctx context.Context, query domain.SearchQuery) (*domain.SearchResult, error)
}
