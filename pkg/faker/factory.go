package faker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/getmockd/fakerhelper/pkg/engine"
	"github.com/getmockd/fakerhelper/pkg/locale"
	"github.com/getmockd/fakerhelper/pkg/logging"
)

// Option configures a Factory or a Generator built by New.
type Option func(*config)

type config struct {
	defaultLocale string
	seed          *uint64
	now           func() time.Time
	logger        *slog.Logger
	registry      *locale.Registry
}

// WithDefaultLocale sets the locale used when none is requested.
func WithDefaultLocale(id string) Option {
	return func(c *config) {
		c.defaultLocale = id
	}
}

// WithSeed seeds every generator so output is reproducible per locale.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithClock sets the clock used by time operations.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithLocales sets the locale registry. Defaults to the embedded locales.
func WithLocales(r *locale.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

func newConfig(opts []Option) config {
	c := config{defaultLocale: locale.DefaultLocale}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = logging.Nop()
	}
	if c.registry == nil {
		c.registry = locale.Default()
	}
	return c
}

func (c *config) engineOptions() []engine.Option {
	opts := []engine.Option{engine.WithLogger(c.logger)}
	if c.seed != nil {
		opts = append(opts, engine.WithSeed(*c.seed))
	}
	if c.now != nil {
		opts = append(opts, engine.WithClock(c.now))
	}
	return opts
}

// build loads id from the registry and wraps a fresh engine for it.
func (c *config) build(id string) (*Generator, error) {
	if id == "" {
		id = c.defaultLocale
	}
	loc, err := c.registry.Load(id)
	if err != nil {
		return nil, err
	}
	e, err := engine.New(loc, c.engineOptions()...)
	if err != nil {
		return nil, err
	}
	return NewGenerator(e), nil
}

// Factory builds generators and caches one per locale. Cached generators are
// created on demand and never evicted.
type Factory struct {
	mu         sync.Mutex
	cfg        config
	generators map[string]*Generator
}

// NewFactory creates a factory.
func NewFactory(opts ...Option) *Factory {
	return &Factory{
		cfg:        newConfig(opts),
		generators: make(map[string]*Generator),
	}
}

// Make returns the generator for id, building it on first use. An empty id
// selects the default locale.
func (f *Factory) Make(id string) (*Generator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id == "" {
		id = f.cfg.defaultLocale
	}
	name, err := locale.Normalize(id)
	if err != nil {
		return nil, err
	}
	if g, ok := f.generators[name]; ok {
		return g, nil
	}

	g, err := f.cfg.build(name)
	if err != nil {
		return nil, err
	}
	f.generators[name] = g
	f.cfg.logger.Debug("generator created", "locale", name, "seed", g.Seed())
	return g, nil
}

// DefaultLocale returns the locale used for an empty id.
func (f *Factory) DefaultLocale() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg.defaultLocale
}

// SetDefaultLocale changes the locale used for an empty id. The locale must load.
func (f *Factory) SetDefaultLocale(id string) error {
	name, err := locale.Normalize(id)
	if err != nil {
		return err
	}
	if _, err := f.cfg.registry.Load(name); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg.defaultLocale = name
	return nil
}

// Locales returns the locales the factory can build, sorted.
func (f *Factory) Locales() []string {
	return f.cfg.registry.Available()
}

var (
	defaultFactory     *Factory
	defaultFactoryOnce sync.Once
)

// Default returns the process-wide factory used by Make and Fake.
func Default() *Factory {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory()
	})
	return defaultFactory
}

// Make returns the cached generator for id from the default factory.
// An empty id selects the default locale.
func Make(id string) (*Generator, error) {
	return Default().Make(id)
}

// Fake is a shortcut for Make.
func Fake(id string) (*Generator, error) {
	return Default().Make(id)
}

// SetDefaultLocale changes the default factory's default locale.
func SetDefaultLocale(id string) error {
	return Default().SetDefaultLocale(id)
}

// New builds an uncached generator for id. Use it for seeded or isolated
// generators; Make shares one generator per locale.
func New(id string, opts ...Option) (*Generator, error) {
	cfg := newConfig(opts)
	return cfg.build(id)
}
