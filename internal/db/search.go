package db

import "github.com/recruitr-hq/recruitr/internal/domain/search/filter"

// KNNQuery is the input for vector similarity search. Filters become an
// FT.SEARCH pre-filter so pruning happens before the KNN scan.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	Filters      filter.Filters
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit. Score is cosine similarity clamped
// to [0,1].
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
