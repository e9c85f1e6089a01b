// Package reply renders the best search result into one human-readable
// summary sentence. It is purely presentational: input order and scores are
// never altered.
package reply

import (
	"fmt"

	"github.com/campuslink/discovery/internal/domain/candidate"
)

// NoResultSummary is the fixed sentence emitted when no tier produced a
// relevant candidate.
const NoResultSummary = "Sorry, no relevant results yet."

// fallbackSummary covers a candidate with an unrecognized collection tag.
const fallbackSummary = "Here are the most relevant results."

// bioExcerptRunes caps the bio fragment quoted in the enrolled template.
const bioExcerptRunes = 80

// Composer builds the summary sentence from a ranked shortlist.
type Composer struct{}

// New creates a reply composer.
func New() *Composer {
	return &Composer{}
}

// Compose renders the top candidate into a per-collection template. The
// shortlist is already score-descending; only its head is inspected.
func (c *Composer) Compose(top []candidate.Candidate) string {
	if len(top) == 0 {
		return NoResultSummary
	}

	best := top[0]
	switch best.Tier() {
	case candidate.Graduated:
		return fmt.Sprintf("I found a graduate who fits: %s at %s.",
			orDefault(best.Title(), "a graduate"), orDefault(best.Context(), "-"))
	case candidate.Enrolled:
		return fmt.Sprintf("There is an enrolled member with similar interests: %s...",
			excerpt(best.Bio(), bioExcerptRunes))
	case candidate.Position:
		return fmt.Sprintf("There is an open position that fits: %s at %s.",
			best.Title(), best.Context())
	default:
		return fallbackSummary
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
