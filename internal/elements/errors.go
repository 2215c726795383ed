package elements

import (
	"errors"
	"fmt"
)

// ErrOptionSpec is returned when SelectOption is called with zero or more than
// one of value, label and index. It is checked before any browser call.
var ErrOptionSpec = errors.New("select option: exactly one of value, label or index must be set")

// TimeoutError reports an interaction that did not complete within its
// timeout. It always carries the attempted action and the selector.
type TimeoutError struct {
	Action   string
	Selector string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s on %q: %v", e.Action, e.Selector, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }
