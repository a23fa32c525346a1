package faker

import (
	"fmt"

	"github.com/getmockd/fakerhelper/pkg/engine"
	"github.com/getmockd/fakerhelper/pkg/locale"
)

// Generator is the typed facade over one engine.
type Generator struct {
	engine *engine.Engine
}

// NewGenerator wraps an existing engine.
func NewGenerator(e *engine.Engine) *Generator {
	return &Generator{engine: e}
}

// Locale returns the canonical locale name, e.g. "en_US".
func (g *Generator) Locale() string {
	return g.engine.Locale().Name
}

// Seed returns the seed of the underlying random stream.
func (g *Generator) Seed() uint64 {
	return g.engine.Seed()
}

// Engine returns the underlying engine.
func (g *Generator) Engine() *engine.Engine {
	return g.engine
}

// LocaleData returns the provider data of the bound locale.
func (g *Generator) LocaleData() *locale.Data {
	return g.engine.Locale().Data
}

// Format runs an engine formatter by name and returns its untyped result.
func (g *Generator) Format(name string, args ...any) (any, error) {
	return g.engine.Format(name, args...)
}

// TypeError reports an engine result whose dynamic type differs from the one
// the facade declares.
type TypeError struct {
	Formatter string
	Want      string
	Got       any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("faker: %s returned %T, want %s", e.Formatter, e.Got, e.Want)
}

// call runs one formatter and narrows the result to T.
func call[T any](g *Generator, name string, args ...any) (T, error) {
	var zero T
	v, err := g.engine.Format(name, args...)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, &TypeError{Formatter: name, Want: fmt.Sprintf("%T", zero), Got: v}
	}
	return out, nil
}
