package query

import (
	"fmt"

	"github.com/campuslink/discovery/internal/domain"
)

// Query parameter limits.
const (
	// MaxTextLength is the maximum allowed query text length.
	MaxTextLength = 2048
	DefaultLimit  = 5
	MaxLimit      = 50
)

// Query is a validated discovery search request.
type Query struct {
	text        string
	keyword     string
	location    string
	skill       string
	limit       int
	offset      int
	requesterID string
}

// New validates and normalizes request parameters.
// An empty keyword disables the lexical term; callers that omit the keyword
// field entirely should pass the query text so proper nouns still weigh in.
func New(text, keyword, location, skill string, limit, offset int, requesterID string) (Query, error) {
	if text == "" {
		return Query{}, domain.ErrQueryRequired
	}
	if len(text) > MaxTextLength {
		return Query{}, fmt.Errorf("query text too long (max %d chars)", MaxTextLength)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return Query{
		text:        text,
		keyword:     keyword,
		location:    location,
		skill:       skill,
		limit:       limit,
		offset:      offset,
		requesterID: requesterID,
	}, nil
}

// Text returns the natural-language query text.
func (q *Query) Text() string { return q.text }

// Keyword returns the lexical search term ("" disables the lexical signal).
func (q *Query) Keyword() string { return q.keyword }

// Location returns the optional location substring filter.
func (q *Query) Location() string { return q.location }

// Skill returns the optional exact skill filter.
func (q *Query) Skill() string { return q.skill }

// Limit returns the underlying fetch page size.
func (q *Query) Limit() int { return q.limit }

// Offset returns the fetch offset.
func (q *Query) Offset() int { return q.offset }

// RequesterID returns the optional id of the requesting member.
func (q *Query) RequesterID() string { return q.requesterID }
