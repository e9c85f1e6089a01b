package search

import "github.com/campuslink/discovery/internal/domain/candidate"

// maxBioRunes caps the bio excerpt length in the outbound payload.
const maxBioRunes = 140

// Response is the full search outcome handed to transport.
type Response struct {
	Summary string
	Results []Result
	Meta    Meta
}

// Result is one ranked candidate in presentation form.
type Result struct {
	Collection candidate.Tier
	ID         string
	Title      string
	Context    string
	Bio        string
	Score      float64
}

// Meta echoes the effective query parameters back to the caller.
type Meta struct {
	Limit    int
	Offset   int
	Keyword  string
	Location string
	Skill    string
	Weights  Weights
	MinScore float64
}

func truncateBio(s string) string {
	runes := []rune(s)
	if len(runes) <= maxBioRunes {
		return s
	}
	return string(runes[:maxBioRunes])
}
