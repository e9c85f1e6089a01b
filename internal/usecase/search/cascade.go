package search

// tier is the cascade state. Tiers run strictly in this order and the cascade
// halts at the first tier whose filtered result set is non-empty; the next
// tier's necessity depends on the previous outcome, so they never run in
// parallel.
type tier int

const (
	tierGraduated tier = iota
	tierEnrolled
	tierPositions
	tierDone
)

// next advances to the following cascade state.
func (t tier) next() tier {
	switch t {
	case tierGraduated:
		return tierEnrolled
	case tierEnrolled:
		return tierPositions
	default:
		return tierDone
	}
}

func (t tier) String() string {
	switch t {
	case tierGraduated:
		return "graduated"
	case tierEnrolled:
		return "enrolled"
	case tierPositions:
		return "positions"
	default:
		return "done"
	}
}
