// Package faker is a typed facade over the fake data engine.
//
// A Generator exposes one method per generation operation, grouped by
// category (address, barcode, text, ...). Each method calls exactly one engine
// formatter and narrows its dynamic result to a static Go type; it adds no
// other behaviour, so engine errors reach the caller unchanged.
//
// # Getting a Generator
//
//	g, err := faker.Make("en_US") // cached per locale
//	g, err := faker.Fake("")      // shortcut, default locale
//	g, err := faker.New("fr_FR", faker.WithSeed(42)) // uncached, reproducible
//
// Generators returned by Make are shared by every caller asking for the same
// locale. Calls are serialized by the engine, so a shared Generator is safe for
// concurrent use.
//
// # Parameters
//
// Go has no default arguments. Operations without parameters are plain
// methods; parameterized operations take every parameter explicitly and the
// documented defaults are exported constants:
//
//	words, _ := g.Words(faker.DefaultWordCount)
//	f, _ := g.Float(faker.AnyDecimals, 0, 100)
//
// # Nullable Results
//
// Text and decimal operations can be wrapped in Optional, which returns nil
// instead of a value when a weighted draw fails:
//
//	word, _ := g.Optional(0.7).Word() // *string, nil 30% of the time
//
// # Errors
//
// Construction fails with ErrInvalidLocale. Operations fail with
// ErrInvalidArgument or ErrUnsupported, wrapped in *engine.FormatError.
package faker
