package geom

import "fmt"

// InvalidInputError reports input an operation refuses to run on, such as a
// curve without exactly four control points or a fill with fewer than three
// vertices. Nothing has been emitted when it is returned.
type InvalidInputError struct {
	Op  string
	Msg string
}

func (e *InvalidInputError) Error() string { return e.Op + ": " + e.Msg }

// Invalid builds an *InvalidInputError for op.
func Invalid(op, format string, args ...any) error {
	return &InvalidInputError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
