package engine

import (
	"errors"
	"log/slog"
	mathrand "math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/text/cases"

	"github.com/getmockd/fakerhelper/pkg/locale"
	"github.com/getmockd/fakerhelper/pkg/logging"
)

// Formatter generates one kind of value. It runs with the engine lock held
// and must only draw randomness through the engine.
type Formatter func(e *Engine, args Args) (any, error)

// Info describes a registered formatter.
type Info struct {
	Name  string `json:"name" yaml:"name"`
	Group string `json:"group" yaml:"group"`
}

type registered struct {
	group string
	fn    Formatter
}

// registry maps formatter names to implementations. It is filled by the
// provider files' init functions and read-only afterwards.
var registry = map[string]registered{}

func register(group string, formatters map[string]Formatter) {
	for name, fn := range formatters {
		if _, dup := registry[name]; dup {
			panic("engine: duplicate formatter " + name)
		}
		registry[name] = registered{group: group, fn: fn}
	}
}

// Formatters returns every registered formatter sorted by group, then name.
func Formatters() []Info {
	infos := make([]Info, 0, len(registry))
	for name, r := range registry {
		infos = append(infos, Info{Name: name, Group: r.group})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Has reports whether a formatter with the given name is registered.
func Has(name string) bool {
	_, ok := registry[name]
	return ok
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	seed   *uint64
	now    func() time.Time
	logger *slog.Logger
}

// WithSeed fixes the random stream so output is reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithClock sets the clock used by time formatters. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Engine generates values for one locale from one random stream.
type Engine struct {
	mu sync.Mutex

	loc    *locale.Locale
	seed   uint64
	rng    *mathrand.Rand
	faker  *gofakeit.Faker
	caser  cases.Caser
	now    func() time.Time
	logger *slog.Logger

	// chains caches real-text Markov tables by index size.
	chains map[int]*chain
}

// New creates an engine bound to loc.
func New(loc *locale.Locale, opts ...Option) (*Engine, error) {
	if loc == nil || loc.Data == nil {
		return nil, errors.New("engine: locale is required")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}

	seed := mathrand.Uint64()
	if o.seed != nil {
		seed = *o.seed
	}

	// One source feeds both consumers so the stream stays a single sequence.
	src := mathrand.NewPCG(seed, 0)

	e := &Engine{
		loc:    loc,
		seed:   seed,
		rng:    mathrand.New(src),
		faker:  gofakeit.NewFaker(src, false),
		caser:  cases.Title(loc.Tag, cases.NoLower),
		now:    o.now,
		logger: o.logger,
		chains: make(map[int]*chain),
	}

	e.logger.Debug("engine initialized",
		"locale", loc.Name,
		"seed", seed,
		"seeded", o.seed != nil,
		"formatters", len(registry))
	return e, nil
}

// Locale returns the bound locale.
func (e *Engine) Locale() *locale.Locale {
	return e.loc
}

// Seed returns the seed of the random stream.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Format runs the named formatter with args.
// Omitted trailing arguments take the formatter's defaults.
func (e *Engine) Format(name string, args ...any) (any, error) {
	r, ok := registry[name]
	if !ok {
		return nil, &FormatError{Formatter: name, Err: ErrUnsupported}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := r.fn(e, Args(args))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, &FormatError{Formatter: name, Err: err}
	}
	return v, nil
}

func (e *Engine) data() *locale.Data {
	return e.loc.Data
}

// call runs a formatter from inside another one; the lock is already held.
func (e *Engine) call(name string, args ...any) (any, error) {
	r, ok := registry[name]
	if !ok {
		return nil, &FormatError{Formatter: name, Err: ErrUnsupported}
	}
	v, err := r.fn(e, Args(args))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			return nil, err
		}
		return nil, &FormatError{Formatter: name, Err: err}
	}
	return v, nil
}
