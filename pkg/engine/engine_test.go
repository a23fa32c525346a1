package engine

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/fakerhelper/pkg/locale"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T, name string, seed uint64) *Engine {
	t.Helper()
	loc, err := locale.Default().Load(name)
	require.NoError(t, err)
	e, err := New(loc, WithSeed(seed), WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return e
}

func format[T any](t *testing.T, e *Engine, name string, args ...any) T {
	t.Helper()
	v, err := e.Format(name, args...)
	require.NoError(t, err, "%s(%v)", name, args)
	out, ok := v.(T)
	require.True(t, ok, "%s returned %T", name, v)
	return out
}

// =============================================================================
// Construction and registry
// =============================================================================

func TestNew_RequiresLocale(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNew_UnseededEnginesDiffer(t *testing.T) {
	loc, err := locale.Default().Load("en_US")
	require.NoError(t, err)

	a, err := New(loc)
	require.NoError(t, err)
	b, err := New(loc)
	require.NoError(t, err)
	assert.NotEqual(t, a.Seed(), b.Seed())
}

func TestFormatters_Groups(t *testing.T) {
	groups := map[string]bool{}
	for _, info := range Formatters() {
		groups[info.Group] = true
	}
	for _, g := range []string{
		"address", "barcode", "blood", "boolean", "character", "color", "company", "decimal",
		"digit", "file", "hash", "html", "integer", "internet", "isocode", "payment", "person",
		"phone", "text", "time", "useragent", "uuid", "version",
	} {
		assert.True(t, groups[g], "missing group %s", g)
	}
	assert.Len(t, groups, 23)
}

func TestFormatters_Sorted(t *testing.T) {
	infos := Formatters()
	for i := 1; i < len(infos); i++ {
		prev, cur := infos[i-1], infos[i]
		if prev.Group == cur.Group {
			assert.Less(t, prev.Name, cur.Name)
		} else {
			assert.Less(t, prev.Group, cur.Group)
		}
	}
}

func TestHas(t *testing.T) {
	assert.True(t, Has("city"))
	assert.True(t, Has("realTextBetween"))
	assert.False(t, Has("teleport"))
}

func TestFormat_UnknownFormatter(t *testing.T) {
	e := newTestEngine(t, "en_US", 1)
	_, err := e.Format("teleport")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "teleport", fe.Formatter)
}

func TestFormat_WrapsOnce(t *testing.T) {
	e := newTestEngine(t, "en_US", 1)

	_, err := e.Format("iban", "ZZ")
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "iban", fe.Formatter)
	assert.NotErrorAs(t, fe.Err, new(*FormatError))
}

// =============================================================================
// Determinism
// =============================================================================

func TestFormat_SameSeedSameSequence(t *testing.T) {
	names := []string{
		"name", "address", "email", "text", "realText", "uuid", "hexColor", "userAgent",
		"creditCardNumber", "ipv4", "dateTime", "iban", "randomFloat", "ean13", "randomHtml",
	}
	for _, loc := range []string{"en_US", "en_GB"} {
		a := newTestEngine(t, loc, 42)
		b := newTestEngine(t, loc, 42)
		for _, name := range names {
			if name == "iban" && loc == "en_US" {
				continue
			}
			va, err := a.Format(name)
			require.NoError(t, err, name)
			vb, err := b.Format(name)
			require.NoError(t, err, name)
			assert.Equal(t, va, vb, "%s/%s", loc, name)
		}
	}
}

func TestFormat_DifferentSeedsDiverge(t *testing.T) {
	a := newTestEngine(t, "en_US", 1)
	b := newTestEngine(t, "en_US", 2)

	var sa, sb []string
	for range 5 {
		sa = append(sa, format[string](t, a, "uuid"))
		sb = append(sb, format[string](t, b, "uuid"))
	}
	assert.NotEqual(t, sa, sb)
}

func TestFormat_ConcurrentUse(t *testing.T) {
	e := newTestEngine(t, "en_US", 7)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				_, err := e.Format("sentence")
				assert.NoError(t, err)
				_, err = e.Format("realText", 60)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

// =============================================================================
// Invalid arguments and unsupported data
// =============================================================================

func TestFormat_InvalidArguments(t *testing.T) {
	e := newTestEngine(t, "en_US", 3)

	tests := []struct {
		name string
		args []any
	}{
		{"numberBetween", []any{10, 1}},
		{"numberBetween", []any{"ten"}},
		{"boolean", []any{101}},
		{"boolean", []any{-1}},
		{"randomDigitNot", []any{10}},
		{"randomNumber", []any{19}},
		{"randomNumber", []any{-1}},
		{"randomFloat", []any{2, 10, 1}},
		{"latitude", []any{-100, 0}},
		{"longitude", []any{0, 181}},
		{"latitude", []any{10, -10}},
		{"text", []any{4}},
		{"realText", []any{9}},
		{"realText", []any{200, 6}},
		{"realText", []any{200, 0}},
		{"realTextBetween", []any{200, 100}},
		{"realTextBetween", []any{0, 100}},
		{"words", []any{-1}},
		{"name", []any{"other"}},
		{"password", []any{10, 5}},
		{"creditCardNumber", []any{"Unknown Card"}},
		{"iban", []any{"ZZ"}},
		{"dateTimeBetween", []any{"2024-01-01", "2023-01-01"}},
		{"randomHtml", []any{0}},
		{"randomHtml", []any{maxHTMLDepth + 1, 2}},
		{"randomHtml", []any{2, maxHTMLWidth + 1}},
		{"date", []any{42}},
		{"numberBetween", []any{-5, uint64(math.MaxUint64)}},
		{"numberBetween", []any{0, 1e30}},
		{"numberBetween", []any{0, 2.5}},
		{"numberBetween", []any{true, 3}},
		{"latitude", []any{math.NaN(), 10}},
		{"dateTimeInInterval", []any{"now", "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Format(tt.name, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestFormat_UnsupportedForLocale(t *testing.T) {
	tests := []struct {
		locale string
		name   string
	}{
		{"es_ES", "realText"},
		{"es_ES", "realTextBetween"},
		{"de_DE", "localCoordinates"},
		{"es_ES", "localCoordinates"},
		{"en_US", "iban"},
		{"es_ES", "jobTitle"},
		{"fr_FR", "jobTitle"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.locale, 1)
			_, err := e.Format(tt.name)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupported)
		})
	}
}

func TestFormat_EveryFormatterEveryLocale(t *testing.T) {
	unsupported := map[string]map[string]bool{
		"en_US": {"iban": true},
		"es_ES": {"realText": true, "realTextBetween": true, "localCoordinates": true, "jobTitle": true},
		"de_DE": {"realText": true, "realTextBetween": true, "localCoordinates": true, "jobTitle": true},
		"fr_FR": {"realText": true, "realTextBetween": true, "jobTitle": true},
	}

	for _, name := range locale.Default().Available() {
		e := newTestEngine(t, name, 99)
		for _, info := range Formatters() {
			v, err := e.Format(info.Name)
			if unsupported[name][info.Name] {
				assert.ErrorIs(t, err, ErrUnsupported, "%s/%s", name, info.Name)
				continue
			}
			require.NoError(t, err, "%s/%s", name, info.Name)
			assert.NotNil(t, v, "%s/%s", name, info.Name)
		}
	}
}
