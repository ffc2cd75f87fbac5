package export

import (
	"errors"
	"fmt"
)

// ErrMalformedDate matches any date token that is not a real calendar date.
var ErrMalformedDate = errors.New("malformed date token")

// MalformedDateError reports the offending token and the row it came from.
type MalformedDateError struct {
	Token string
	Row   int
	Err   error
}

func (e *MalformedDateError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s %q: %v", e.Row, ErrMalformedDate, e.Token, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", ErrMalformedDate, e.Token, e.Err)
}

// Is lets errors.Is match ErrMalformedDate.
func (e *MalformedDateError) Is(target error) bool {
	return target == ErrMalformedDate
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}
