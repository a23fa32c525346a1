package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when arguments are outside a formatter's domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupported is returned for unknown formatters and for formatters whose
	// locale data is missing.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrOverflow is returned when a formatter could not produce a value within its attempt budget.
	ErrOverflow = errors.New("overflow")
)

// FormatError records the formatter that failed.
type FormatError struct {
	Formatter string
	Err       error
}

func (e *FormatError) Error() string {
	return e.Formatter + ": " + e.Err.Error()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func invalidArg(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, a...)...)
}

func (e *Engine) unsupported(what string) error {
	return fmt.Errorf("%w: locale %s has no %s data", ErrUnsupported, e.loc.Name, what)
}
