package engine

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// tokenPattern matches {{formatter}} placeholders in locale format templates.
var tokenPattern = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// parse expands every {{formatter}} placeholder in format.
func (e *Engine) parse(format string) (string, error) {
	var firstErr error
	out := tokenPattern.ReplaceAllStringFunc(format, func(token string) string {
		if firstErr != nil {
			return ""
		}
		name := tokenPattern.FindStringSubmatch(token)[1]
		v, err := e.call(name)
		if err != nil {
			firstErr = err
			return ""
		}
		return fmt.Sprint(v)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// parseOne picks one of formats and expands it.
func (e *Engine) parseOne(what string, formats []string) (string, error) {
	format, err := e.pick(what, formats)
	if err != nil {
		return "", err
	}
	return e.parse(format)
}

// bothify replaces # with a digit, % with a non-zero digit, ? with a lowercase
// letter and * with a letter or digit.
func (e *Engine) bothify(s string) string {
	if !strings.ContainsAny(s, "#%?*") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case '#':
			sb.WriteByte(byte('0' + e.rng.IntN(10)))
		case '%':
			sb.WriteByte(byte('1' + e.rng.IntN(9)))
		case '?':
			sb.WriteByte(lowerLetters[e.rng.IntN(len(lowerLetters))])
		case '*':
			sb.WriteByte(alphanumeric[e.rng.IntN(len(alphanumeric))])
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// pick returns a random element of list, or ErrUnsupported when the locale has none.
func (e *Engine) pick(what string, list []string) (string, error) {
	if len(list) == 0 {
		return "", e.unsupported(what)
	}
	return list[e.rng.IntN(len(list))], nil
}

// between returns a uniform int in [min, max]. Callers guarantee min <= max.
func (e *Engine) between(min, max int) int {
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int(e.rng.Uint64())
	}
	return int(uint64(min) + e.rng.Uint64N(span+1))
}

// between64 is between for int64 bounds.
func (e *Engine) between64(min, max int64) int64 {
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(e.rng.Uint64())
	}
	return int64(uint64(min) + e.rng.Uint64N(span+1))
}

// randomFloat returns a float in [min, max] rounded to decimals places.
// A negative decimals value leaves the value unrounded, as does a precision
// beyond what float64 can scale.
func (e *Engine) randomFloat(decimals int, min, max float64) float64 {
	f := e.rng.Float64()
	v := min*(1-f) + max*f
	if decimals >= 0 {
		p := math.Pow(10, float64(decimals))
		if scaled := v * p; !math.IsInf(p, 0) && !math.IsInf(scaled, 0) {
			v = math.Round(scaled) / p
		}
	}
	return math.Min(math.Max(v, min), max)
}

// randomizeCount varies n by roughly +/-40%, with a minimum of 1.
func (e *Engine) randomizeCount(n int) int {
	return n*e.between(60, 140)/100 + 1
}
