package locale

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when none is requested.
const DefaultLocale = "en_US"

// baseName is the shared document every parent chain ends at.
const baseName = "_base"

var (
	// ErrInvalidLocale is returned when an identifier does not parse or has no provider data.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrInvalidData is returned when a locale document fails validation or decoding.
	ErrInvalidData = errors.New("invalid locale data")
)

// Error describes a failure to resolve or load a locale.
type Error struct {
	Locale string
	Err    error
}

func (e *Error) Error() string {
	return "locale " + quote(e.Locale) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func quote(s string) string {
	return `"` + s + `"`
}

// Locale is a loaded, immutable provider data set.
type Locale struct {
	// Name is the canonical identifier, e.g. "en_US".
	Name string

	// Tag is the BCP 47 tag for Name.
	Tag language.Tag

	// Data is the merged provider data.
	Data *Data
}

// Region returns the ISO 3166 alpha-2 region of the locale.
func (l *Locale) Region() string {
	r, _ := l.Tag.Region()
	return r.String()
}

// Normalize canonicalizes a locale identifier to <language>_<REGION>.
// Both "_" and "-" separators are accepted and casing is ignored. A bare
// language resolves to its most likely region.
func Normalize(id string) (string, error) {
	s := strings.TrimSpace(id)
	if s == "" {
		return "", &Error{Locale: id, Err: ErrInvalidLocale}
	}
	if strings.HasPrefix(s, "_") {
		return "", &Error{Locale: id, Err: ErrInvalidLocale}
	}

	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return "", &Error{Locale: id, Err: ErrInvalidLocale}
	}

	base, conf := tag.Base()
	if conf == language.No {
		return "", &Error{Locale: id, Err: ErrInvalidLocale}
	}
	region, conf := tag.Region()
	if conf == language.No {
		return "", &Error{Locale: id, Err: ErrInvalidLocale}
	}

	return base.String() + "_" + region.String(), nil
}

// tagFor builds the BCP 47 tag for a canonical name.
func tagFor(name string) language.Tag {
	return language.Make(strings.ReplaceAll(name, "_", "-"))
}
