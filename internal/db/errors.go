package db

// Op constants map to Redis command names for error context.
const (
	OpSearch = "FT.SEARCH"
	OpPing   = "PING"
)

// Error wraps an underlying store error with the operation name for
// diagnostics. Any tier query failure surfaces as one of these and aborts
// the cascade.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
