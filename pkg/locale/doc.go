// Package locale provides the provider data sets that back fake data generation.
//
// Each locale is an embedded YAML document under data/ named after its
// canonical identifier (en_US, es_ES, ...). A document may name a parent
// locale; lists it does not define are inherited from the parent chain, which
// always ends at the shared _base document. Documents are validated against
// an embedded JSON Schema before they are decoded, so a malformed data file
// fails loudly instead of producing a partially configured generator.
//
// # Identifiers
//
// Locale identifiers are parsed with golang.org/x/text/language and
// canonicalized to <language>_<REGION>:
//
//	locale.Normalize("en-us") // "en_US"
//	locale.Normalize("de")    // "de_DE" (most likely region)
//
// Identifiers that do not parse, or that parse but have no data file, fail
// with ErrInvalidLocale.
//
// # Registry
//
// A Registry loads locales on demand and caches them for its lifetime. Loaded
// locales are immutable and safe to share between goroutines.
//
//	reg := locale.Default()
//	loc, err := reg.Load("fr_FR")
package locale
