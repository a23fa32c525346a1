package engine

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Args are the positional arguments of a formatter call.
//
// Accessors accept native Go values as well as strings, so the same formatter
// can be driven from Go code, template expressions and command-line
// arguments. A missing or nil argument yields the supplied default.
type Args []any

func (a Args) at(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// Int returns argument i as an int. Values outside the int range and
// fractional numbers are rejected instead of truncated.
func (a Args) Int(i, def int) (int, error) {
	v := a.at(i)
	if v == nil {
		return def, nil
	}
	switch n := v.(type) {
	case bool:
		return 0, invalidArg("argument %d: cannot use %T as integer", i+1, v)
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, invalidArg("argument %d: %d overflows int", i+1, n)
		}
	case uint64:
		if n > math.MaxInt {
			return 0, invalidArg("argument %d: %d overflows int", i+1, n)
		}
	case float32:
		return floatToInt(i, float64(n))
	case float64:
		return floatToInt(i, n)
	case string:
		s := decimalDigits(n)
		if f, err := cast.ToFloat64E(s); err == nil && strings.ContainsAny(s, ".eE") {
			return floatToInt(i, f)
		}
		parsed, err := cast.ToInt64E(s)
		if err != nil || parsed < math.MinInt || parsed > math.MaxInt {
			return 0, invalidArg("argument %d: %q is not an integer", i+1, n)
		}
		return int(parsed), nil
	}
	parsed, err := cast.ToIntE(v)
	if err != nil {
		return 0, invalidArg("argument %d: cannot use %T as integer", i+1, v)
	}
	return parsed, nil
}

// decimalDigits trims s and drops leading zeros so "08" reads as decimal
// rather than as an octal literal.
func decimalDigits(s string) string {
	s = strings.TrimSpace(s)
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return sign + s
	}
	if trimmed := strings.TrimLeft(s, "0"); trimmed != s {
		if trimmed == "" || trimmed[0] == '.' {
			trimmed = "0" + trimmed
		}
		s = trimmed
	}
	return sign + s
}

func floatToInt(i int, f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, invalidArg("argument %d: %v is not an integer", i+1, f)
	}
	if f < math.MinInt || f >= math.MaxInt {
		return 0, invalidArg("argument %d: %v overflows int", i+1, f)
	}
	return int(f), nil
}

// OptInt returns argument i as an int, or nil when it is absent.
func (a Args) OptInt(i int) (*int, error) {
	if a.at(i) == nil {
		return nil, nil
	}
	n, err := a.Int(i, 0)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Float returns argument i as a float64.
func (a Args) Float(i int, def float64) (float64, error) {
	v := a.at(i)
	if v == nil {
		return def, nil
	}
	if _, ok := v.(bool); ok {
		return 0, invalidArg("argument %d: cannot use %T as number", i+1, v)
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		if s, ok := v.(string); ok {
			return 0, invalidArg("argument %d: %q is not a number", i+1, s)
		}
		return 0, invalidArg("argument %d: cannot use %T as number", i+1, v)
	}
	return f, nil
}

// OptFloat returns argument i as a float64, or nil when it is absent.
func (a Args) OptFloat(i int) (*float64, error) {
	if a.at(i) == nil {
		return nil, nil
	}
	f, err := a.Float(i, 0)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Bool returns argument i as a bool.
func (a Args) Bool(i int, def bool) (bool, error) {
	v := a.at(i)
	if v == nil {
		return def, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := cast.ToBoolE(strings.TrimSpace(b))
		if err != nil {
			return false, invalidArg("argument %d: %q is not a boolean", i+1, b)
		}
		return parsed, nil
	}
	return false, invalidArg("argument %d: cannot use %T as boolean", i+1, v)
}

// String returns argument i as a string.
func (a Args) String(i int, def string) (string, error) {
	v := a.at(i)
	if v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidArg("argument %d: cannot use %T as string", i+1, v)
	}
	return s, nil
}

// Time returns argument i as a time. Strings may be "now", Unix seconds or
// any layout cast understands (RFC 3339, 2006-01-02, ...). Integers are Unix
// seconds. "now" resolves to now.
func (a Args) Time(i int, def, now time.Time) (time.Time, error) {
	v := a.at(i)
	if v == nil {
		return def, nil
	}
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case bool, float32, float64:
		return time.Time{}, invalidArg("argument %d: cannot use %T as time", i+1, v)
	case string:
		s := strings.TrimSpace(t)
		if strings.EqualFold(s, "now") {
			return now, nil
		}
		if sec, err := cast.ToInt64E(s); err == nil {
			return time.Unix(sec, 0).UTC(), nil
		}
		parsed, err := cast.ToTimeE(s)
		if err != nil {
			return time.Time{}, invalidArg("argument %d: %q is not a time", i+1, t)
		}
		return parsed, nil
	}
	sec, err := a.Int(i, 0)
	if err != nil {
		return time.Time{}, invalidArg("argument %d: cannot use %T as time", i+1, v)
	}
	return time.Unix(int64(sec), 0).UTC(), nil
}

// Duration returns argument i as a duration. Strings use time.ParseDuration
// syntax; integers, including integer strings, are seconds.
func (a Args) Duration(i int, def time.Duration) (time.Duration, error) {
	v := a.at(i)
	if v == nil {
		return def, nil
	}
	switch d := v.(type) {
	case time.Duration:
		return d, nil
	case string:
		s := strings.TrimSpace(d)
		if sec, err := cast.ToInt64E(s); err == nil {
			return seconds(i, sec)
		}
		parsed, err := cast.ToDurationE(s)
		if err != nil {
			return 0, invalidArg("argument %d: %q is not a duration", i+1, d)
		}
		return parsed, nil
	}
	sec, err := a.Int(i, 0)
	if err != nil {
		return 0, invalidArg("argument %d: cannot use %T as duration", i+1, v)
	}
	return seconds(i, int64(sec))
}

func seconds(i int, sec int64) (time.Duration, error) {
	if sec > math.MaxInt64/int64(time.Second) || sec < math.MinInt64/int64(time.Second) {
		return 0, invalidArg("argument %d: %d seconds overflows duration", i+1, sec)
	}
	return time.Duration(sec) * time.Second, nil
}
