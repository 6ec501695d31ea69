package port

import (
	"context"
	"encoding/json"

	"github.com/VanSingco/realstate-api/internal/core/domain"
)

// PropertyFetcherPort covers every operation the upstream listing source
// supports. Implementations own all transport concerns: endpoints, request
// shaping, throttling and user-agent rotation.
type PropertyFetcherPort interface {
	// Search runs one property search and returns the raw result rows in
	// upstream order. Rows are opaque at this boundary; the caller decides
	// whether they satisfy the property record contract.
	Search(ctx context.Context, query domain.SearchQuery) ([]json.RawMessage, error)
}
