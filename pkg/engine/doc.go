// Package engine is the dynamically typed fake data engine behind the faker
// facade.
//
// An Engine binds one locale, one seed and one random stream. Every generation
// operation is a named formatter, registered by provider group, and invoked
// through Format:
//
//	e, _ := engine.New(loc, engine.WithSeed(42))
//	v, err := e.Format("numberBetween", 1, 10) // v is an int
//	v, err = e.Format("words", 3, true)        // v is a string
//	v, err = e.Format("words", 3)              // v is a []string
//
// Results are untyped on purpose: the same formatter can return different
// shapes depending on its arguments, and callers that resolve formatters by
// name (templates, the CLI) do not know the type in advance. The faker package
// narrows these results to static types.
//
// # Random Stream
//
// A single math/rand/v2 PCG source feeds both the engine's own draws and the
// gofakeit.Faker used for colors, user agents, payment cards and network
// addresses, so two engines with the same locale and seed produce identical
// sequences. Format holds the engine mutex for the whole call, which makes a
// shared engine safe (but serialized) across goroutines.
//
// # Locale Data
//
// Most formatters read their word lists and format templates from the bound
// locale. Templates such as "{{firstName}} {{lastName}}" are expanded by
// calling the named formatters, and the placeholders #, %, ? and * are
// replaced by a digit, a non-zero digit, a letter, and a letter or digit.
// When a locale has no data for an operation the formatter fails with
// ErrUnsupported.
//
// # Errors
//
// Formatter failures are returned as *FormatError wrapping one of
// ErrInvalidArgument, ErrUnsupported or ErrOverflow.
package engine
