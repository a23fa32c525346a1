package template

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/fakerhelper/pkg/faker"
	"github.com/getmockd/fakerhelper/pkg/logging"
)

// Engine renders templates against one generator.
// It is safe for concurrent use; output interleaves on the shared random stream.
type Engine struct {
	gen       *faker.Generator
	sequences *SequenceStore
	logger    *slog.Logger

	programMu    sync.RWMutex
	programCache map[string]*vm.Program
}

// Option configures an Engine.
type Option func(*Engine)

// WithSequences shares a sequence store between engines.
func WithSequences(store *SequenceStore) Option {
	return func(e *Engine) {
		e.sequences = store
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a template engine backed by gen, which must not be nil.
func New(gen *faker.Generator, opts ...Option) *Engine {
	e := &Engine{
		gen:          gen,
		programCache: make(map[string]*vm.Program),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sequences == nil {
		e.sequences = NewSequenceStore()
	}
	if e.logger == nil {
		e.logger = logging.Nop()
	}
	return e
}

// Generator returns the generator behind the engine.
func (e *Engine) Generator() *faker.Generator {
	return e.gen
}

// Sequences returns the engine's sequence store.
func (e *Engine) Sequences() *SequenceStore {
	return e.sequences
}

// Error reports a template expression that failed to compile or run.
type Error struct {
	Expr string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("template: {{%s}}: %v", e.Expr, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// templateRegex matches {{expression}} patterns with optional whitespace.
var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+?)\s*\}\}`)

// Process replaces every {{expression}} in tmpl with its value.
// ctx may be nil. The first failing expression aborts rendering.
func (e *Engine) Process(tmpl string, ctx *Context) (string, error) {
	matches := templateRegex.FindAllStringSubmatchIndex(tmpl, -1)
	if len(matches) == 0 {
		return tmpl, nil
	}

	var b strings.Builder
	b.Grow(len(tmpl))
	last := 0
	for _, m := range matches {
		b.WriteString(tmpl[last:m[0]])
		val, err := e.Evaluate(tmpl[m[2]:m[3]], ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(formatValue(val))
		last = m[1]
	}
	b.WriteString(tmpl[last:])
	return b.String(), nil
}

// Evaluate runs a single expression, without braces, and returns its raw value.
func (e *Engine) Evaluate(expression string, ctx *Context) (any, error) {
	expression = strings.TrimSpace(expression)
	ev := &evaluation{e: e}
	env := ev.env(ctx)

	program, err := e.compile(expression, env)
	if err != nil {
		return nil, &Error{Expr: expression, Err: err}
	}

	result, err := expr.Run(program, env)
	if err != nil {
		if ev.err != nil {
			err = ev.err
		}
		return nil, &Error{Expr: expression, Err: err}
	}
	return result, nil
}

func (e *Engine) compile(expression string, env map[string]any) (*vm.Program, error) {
	e.programMu.RLock()
	if program, ok := e.programCache[expression]; ok {
		e.programMu.RUnlock()
		return program, nil
	}
	e.programMu.RUnlock()

	program, err := expr.Compile(expandShorthands(expression), expr.Env(env))
	if err != nil {
		return nil, err
	}

	e.programMu.Lock()
	defer e.programMu.Unlock()
	if existing, ok := e.programCache[expression]; ok {
		return existing, nil
	}
	e.programCache[expression] = program
	e.logger.Debug("template expression compiled", "expr", expression)
	return program, nil
}

// ProcessInterface renders every string inside a decoded YAML or JSON
// document. Maps and slices are copied; other values are returned unchanged.
func (e *Engine) ProcessInterface(data any, ctx *Context) (any, error) {
	switch v := data.(type) {
	case string:
		return e.Process(v, ctx)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			r, err := e.ProcessInterface(val, ctx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = r
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			r, err := e.ProcessInterface(val, ctx)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = r
		}
		return out, nil
	default:
		return data, nil
	}
}
