package slice1

import "fmt"

// Error codes (§7).  The only failure class is a precondition violation.
const (
	ErrEmpty = "ERR_EMPTY" // operation requires a non-empty slice
	ErrOOB   = "ERR_OOB"   // index outside the operation's valid range
)

// Error is the canonical error type for SLICE v1 precondition
// violations.  Conformance tests compare the Code field against ERR_*
// strings.
type Error struct {
	Code string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return e.Code
}

func newErr(code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}
