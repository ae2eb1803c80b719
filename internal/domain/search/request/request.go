package request

import (
	"fmt"

	"github.com/recruitr-hq/recruitr/internal/domain"
	"github.com/recruitr-hq/recruitr/internal/domain/search/filter"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 4096
	DefaultTopK    = 50
	MaxTopK        = 200
)

// Request is a validated participant search query.
type Request struct {
	query   string
	topK    int
	filters filter.Filters
}

// New validates and normalizes search parameters.
// Defaults: topK=50, clamped to MaxTopK.
func New(query string, topK int, filters filter.Filters) (Request, error) {
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidRequest)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}
	return Request{query: query, topK: topK, filters: filters}, nil
}

// Query returns the raw query text.
func (r *Request) Query() string { return r.query }

// TopK returns the number of results to return.
func (r *Request) TopK() int { return r.topK }

// Filters returns the explicit filters supplied by the caller.
func (r *Request) Filters() filter.Filters { return r.filters }
