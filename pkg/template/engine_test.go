package template

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/getmockd/fakerhelper/pkg/faker"
)

func newEngine(t *testing.T, locale string, seed uint64) *Engine {
	t.Helper()
	gen, err := faker.New(locale, faker.WithSeed(seed))
	if err != nil {
		t.Fatalf("faker.New(%q) error = %v", locale, err)
	}
	return New(gen)
}

// =============================================================================
// Faker Shorthands
// =============================================================================

func TestFakerShorthand(t *testing.T) {
	engine := newEngine(t, "en_US", 1)

	tests := []struct {
		name     string
		template string
		pattern  string
	}{
		{"bare name", "{{faker.city}}", `^\S.*$`},
		{"with spaces", "{{ faker.postcode }}", `^\d{5}(-\d{4})?$`},
		{"arguments", "{{faker.numberBetween(1, 10)}}", `^([1-9]|10)$`},
		{"string argument", `{{faker.iban("DE")}}`, `^DE\d{20}$`},
		{"nested", "{{upper(faker.lastName)}}", `^[^a-z]+$`},
		{"empty parens", "{{faker.uuid()}}", `^[0-9a-f-]{36}$`},
		{"list result", "{{faker.words(3)}}", `^\S+, \S+, \S+$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Process(tt.template, nil)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if !regexp.MustCompile(tt.pattern).MatchString(result) {
				t.Errorf("Process(%q) = %q, want match %s", tt.template, result, tt.pattern)
			}
		})
	}
}

func TestExpandShorthands(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"faker.city", `fake("city")`},
		{"faker.numberBetween(1, 10)", `fake("numberBetween", 1, 10)`},
		{"upper(faker.city) + faker.tld", `upper(fake("city")) + fake("tld")`},
		{`fake("city")`, `fake("city")`},
		{"notfaker.city", "notfaker.city"},
	}
	for _, tt := range tests {
		if got := expandShorthands(tt.in); got != tt.want {
			t.Errorf("expandShorthands(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProcess_PlainTextUnchanged(t *testing.T) {
	engine := newEngine(t, "en_US", 1)
	in := "no expressions { here } at all"
	got, err := engine.Process(in, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != in {
		t.Errorf("Process() = %q, want %q", got, in)
	}
}

func TestProcess_MixedText(t *testing.T) {
	engine := newEngine(t, "fr_FR", 2)
	got, err := engine.Process(`Bonjour {{faker.firstName}}, vous habitez {{faker.city}} ({{locale()}}).`, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if !strings.HasPrefix(got, "Bonjour ") || !strings.HasSuffix(got, "(fr_FR).") {
		t.Errorf("Process() = %q", got)
	}
	if strings.Contains(got, "{{") {
		t.Errorf("unrendered expression left in %q", got)
	}
}

// =============================================================================
// Expressions
// =============================================================================

func TestExpressions(t *testing.T) {
	engine := newEngine(t, "en_US", 3)
	ctx := NewContext(map[string]any{"name": "  Ada  ", "n": 4})

	tests := []struct {
		template string
		want     string
	}{
		{`{{fake("numberBetween", 5, 5)}}`, "5"},
		{`{{trim(vars.name)}}`, "Ada"},
		{`{{lower(trim(vars.name))}}`, "ada"},
		{`{{vars.n * 2}}`, "8"},
		{`{{index}}`, "0"},
		{`{{faker.numberBetween(3, 3) + vars.n}}`, "7"},
		{`{{len(faker.words(4))}}`, "4"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			got, err := engine.Process(tt.template, ctx)
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Process(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestContextIndex(t *testing.T) {
	engine := newEngine(t, "en_US", 4)
	ctx := NewContext(nil)
	for i := range 3 {
		got, err := engine.Process("row-{{index}}", ctx.WithIndex(i))
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		if want := "row-" + strconv.Itoa(i); got != want {
			t.Errorf("Process() = %q, want %q", got, want)
		}
	}
}

func TestProcess_Deterministic(t *testing.T) {
	tmpl := "{{faker.name}} <{{faker.email}}> {{faker.uuid}}"
	a, err := newEngine(t, "en_GB", 42).Process(tmpl, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	b, err := newEngine(t, "en_GB", 42).Process(tmpl, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if a != b {
		t.Errorf("same seed rendered %q and %q", a, b)
	}
}

// =============================================================================
// Errors
// =============================================================================

func TestProcess_Errors(t *testing.T) {
	engine := newEngine(t, "en_US", 5)

	tests := []struct {
		name     string
		template string
		is       error
	}{
		{"invalid argument", "{{faker.numberBetween(10, 1)}}", faker.ErrInvalidArgument},
		{"unknown formatter", "{{faker.nope}}", faker.ErrUnsupported},
		{"unsupported for locale", `{{faker.iban("")}}`, faker.ErrUnsupported},
		{"syntax error", "{{faker.city +}}", nil},
		{"unknown name", "{{nope}}", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Process("before "+tt.template+" after", nil)
			if err == nil {
				t.Fatal("expected error")
			}
			var te *Error
			if !errors.As(err, &te) {
				t.Fatalf("error %T is not *Error", err)
			}
			if te.Expr == "" {
				t.Error("Error.Expr is empty")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.is)
			}
		})
	}
}

// =============================================================================
// Sequences
// =============================================================================

func TestSequenceExpression(t *testing.T) {
	engine := newEngine(t, "en_US", 6)

	got, err := engine.Process(`{{sequence("id")}},{{sequence("id")}},{{sequence("other", 100)}},{{sequence("id")}}`, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != "1,2,100,3" {
		t.Errorf("Process() = %q, want %q", got, "1,2,100,3")
	}
}

func TestSequenceStore(t *testing.T) {
	s := NewSequenceStore()

	if _, ok := s.Current("a"); ok {
		t.Error("Current on unused sequence reported ok")
	}
	if v := s.Next("a", 10); v != 10 {
		t.Errorf("Next = %d, want 10", v)
	}
	if v := s.Next("a", 99); v != 11 {
		t.Errorf("Next = %d, want 11", v)
	}
	if v, ok := s.Current("a"); !ok || v != 11 {
		t.Errorf("Current = %d, %v; want 11, true", v, ok)
	}

	s.Next("b", 1)
	if got := s.Names(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Names = %v", got)
	}

	s.Reset("a")
	if v := s.Next("a", 1); v != 1 {
		t.Errorf("Next after Reset = %d, want 1", v)
	}
}

func TestSequenceStore_Concurrent(t *testing.T) {
	s := NewSequenceStore()
	var wg sync.WaitGroup
	seen := sync.Map{}
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := s.Next("c", 1)
			if _, dup := seen.LoadOrStore(v, true); dup {
				t.Errorf("value %d issued twice", v)
			}
		}()
	}
	wg.Wait()
	if v, _ := s.Current("c"); v < 1 || v > 50 {
		t.Errorf("Current = %d", v)
	}
}

func TestSharedSequences(t *testing.T) {
	store := NewSequenceStore()
	genA, _ := faker.New("en_US", faker.WithSeed(1))
	genB, _ := faker.New("de_DE", faker.WithSeed(1))
	a := New(genA, WithSequences(store))
	b := New(genB, WithSequences(store))

	if _, err := a.Process(`{{sequence("x")}}`, nil); err != nil {
		t.Fatal(err)
	}
	got, err := b.Process(`{{sequence("x")}}`, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2" {
		t.Errorf("shared sequence = %q, want 2", got)
	}
}

// =============================================================================
// Structured Documents
// =============================================================================

func TestProcessInterface(t *testing.T) {
	engine := newEngine(t, "en_US", 7)
	doc := map[string]any{
		"id":    "{{sequence(\"user\")}}",
		"count": 3,
		"tags":  []any{"{{faker.numberBetween(1, 1)}}", true},
		"nested": map[string]any{
			"city": "{{faker.city}}",
		},
	}

	out, err := engine.ProcessInterface(doc, nil)
	if err != nil {
		t.Fatalf("ProcessInterface() error = %v", err)
	}
	m := out.(map[string]any)
	if m["id"] != "1" {
		t.Errorf("id = %v", m["id"])
	}
	if m["count"] != 3 {
		t.Errorf("count = %v", m["count"])
	}
	tags := m["tags"].([]any)
	if tags[0] != "1" || tags[1] != true {
		t.Errorf("tags = %v", tags)
	}
	if city := m["nested"].(map[string]any)["city"].(string); city == "" || strings.Contains(city, "{{") {
		t.Errorf("nested.city = %q", city)
	}

	if _, err := engine.ProcessInterface(map[string]any{"bad": []any{"{{faker.nope}}"}}, nil); err == nil {
		t.Error("expected error from nested expression")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{1.5, "1.5"},
		{float64(2), "2"},
		{7, "7"},
		{int64(-3), "-3"},
		{true, "true"},
		{[]string{"a", "b"}, "a, b"},
		{[]int{1, 2}, "1, 2"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
