package db

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	Index        string
	Prefilter    string // FT.SEARCH filter expression, "" for none
	Vector       []float32
	K            int
	Offset       int
	Limit        int
	ReturnFields []string
}

// TextQuery is the input for BM25 text search.
type TextQuery struct {
	Index        string
	Field        string // TEXT field the term is matched against
	Term         string
	Prefilter    string
	Offset       int
	Limit        int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit. For KNN searches Score is cosine
// similarity clamped to [0,1]; for text searches it is the raw BM25 score.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
