package domain

import (
	"errors"
	"fmt"
)

// Error categories. Specific errors below wrap one of these so callers can
// match a whole family with errors.Is.
var (
	ErrCorruptData        = errors.New("corrupt data")
	ErrInvalidState       = errors.New("invalid state")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrBreakInProgress = fmt.Errorf("%w: last break is still going", ErrInvariantViolation)
	ErrInvalidContext  = errors.New("invalid context name")
	ErrNoBreak         = fmt.Errorf("%w: no break started", ErrInvalidState)
	ErrNoData          = errors.New("no data saved")
	ErrNoFocus         = fmt.Errorf("%w: no focus set", ErrInvalidState)
	ErrNoOpenBreak     = fmt.Errorf("%w: break already ended", ErrInvalidState)
)

// CorruptDataError reports a year file that cannot be decoded.
type CorruptDataError struct {
	Path   string
	Reason string
	Err    error
}

func (e *CorruptDataError) Error() string {
	msg := "corrupt data"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptDataError) Unwrap() error {
	return e.Err
}

// Is makes every CorruptDataError match ErrCorruptData.
func (e *CorruptDataError) Is(target error) bool {
	return target == ErrCorruptData
}
