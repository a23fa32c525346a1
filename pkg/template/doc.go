// Package template renders text containing {{ ... }} expressions backed by a
// faker.Generator.
//
// # Faker Shorthands
//
// Any engine formatter is reachable with the faker prefix:
//   - {{faker.city}} - a city for the generator's locale
//   - {{faker.numberBetween(1, 10)}} - formatter arguments in parentheses
//   - {{upper(faker.lastName)}} - shorthands nest inside expressions
//
// # Expressions
//
// Everything between the braces is an expr-lang expression. The environment
// provides:
//   - fake(name, args...) - run a formatter by name
//   - sequence("name") or sequence("name", start) - auto-incrementing counter
//   - locale() - the generator's locale name
//   - vars.<key> - values passed in the Context
//   - index - the Context index, used by repeated renders
//
// The expr builtins upper, lower and trim are available as well.
//
// # Sequences
//
// Named sequences start at 1 unless a start value is given, and persist for
// the lifetime of the SequenceStore.
//
// # Errors
//
// A failing expression aborts Process. The returned *Error carries the
// expression, and errors from the generator stay reachable through
// errors.Is.
package template
