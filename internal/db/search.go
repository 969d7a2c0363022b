package db

// TextQuery is the input for a full-text or fuzzy search.
type TextQuery struct {
	IndexName    string
	Query        string
	Fields       []string // indexed TEXT fields the predicate applies to
	Limit        int
	ReturnFields []string
}

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName    string
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single row hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
