package faker

import (
	"github.com/getmockd/fakerhelper/pkg/engine"
	"github.com/getmockd/fakerhelper/pkg/locale"
)

var (
	// ErrInvalidLocale is returned when a locale identifier has no provider data.
	ErrInvalidLocale = locale.ErrInvalidLocale

	// ErrInvalidArgument is returned when arguments are outside an operation's domain.
	ErrInvalidArgument = engine.ErrInvalidArgument

	// ErrUnsupported is returned when the locale lacks data for an operation.
	ErrUnsupported = engine.ErrUnsupported

	// ErrOverflow is returned when real text could not be produced within the retry budget.
	ErrOverflow = engine.ErrOverflow
)

// Must panics if err is non-nil and returns v otherwise.
//
//	city := faker.Must(g.City())
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
