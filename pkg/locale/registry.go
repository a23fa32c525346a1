package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// maxParentDepth bounds parent chains so a cycle cannot loop forever.
const maxParentDepth = 8

// Registry loads locale documents from a file system and caches the result.
// Locales are created on first request and never evicted.
type Registry struct {
	fsys fs.FS

	mu      sync.Mutex
	locales map[string]*Locale

	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
}

// NewRegistry creates a registry reading <name>.yaml documents from the root of fsys.
func NewRegistry(fsys fs.FS) *Registry {
	return &Registry{
		fsys:    fsys,
		locales: make(map[string]*Locale),
	}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry backed by the embedded locale data.
func Default() *Registry {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			// The embed directive guarantees the directory exists.
			panic(err)
		}
		defaultRegistry = NewRegistry(sub)
	})
	return defaultRegistry
}

// Available returns the sorted names of all selectable locales.
func (r *Registry) Available() []string {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" || strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Has reports whether id resolves to a locale with data.
func (r *Registry) Has(id string) bool {
	name, err := Normalize(id)
	if err != nil {
		return false
	}
	_, err = fs.Stat(r.fsys, name+".yaml")
	return err == nil
}

// Load resolves id and returns the fully merged locale.
func (r *Registry) Load(id string) (*Locale, error) {
	name, err := Normalize(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if loc, ok := r.locales[name]; ok {
		return loc, nil
	}

	data, err := r.loadChain(name)
	if err != nil {
		return nil, &Error{Locale: id, Err: err}
	}

	loc := &Locale{
		Name: name,
		Tag:  tagFor(name),
		Data: data,
	}
	r.locales[name] = loc
	return loc, nil
}

// loadChain reads name and its ancestors, then decodes them root first into a
// single Data so that each child overrides only the keys it defines.
func (r *Registry) loadChain(name string) (*Data, error) {
	schema, err := r.compiledSchema()
	if err != nil {
		return nil, err
	}

	var (
		chain  [][]byte
		parent string
	)
	current := name
	for depth := 0; ; depth++ {
		if depth >= maxParentDepth {
			return nil, fmt.Errorf("%w: parent chain of %s is too deep", ErrInvalidData, name)
		}

		raw, err := fs.ReadFile(r.fsys, current+".yaml")
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				if current == name {
					return nil, ErrInvalidLocale
				}
				return nil, fmt.Errorf("%w: parent %s not found", ErrInvalidData, current)
			}
			return nil, fmt.Errorf("reading %s: %w", current, err)
		}
		if err := validateDocument(schema, raw); err != nil {
			return nil, fmt.Errorf("%s: %w", current, err)
		}
		chain = append(chain, raw)

		if current == baseName {
			break
		}

		var head struct {
			Locale string `yaml:"locale"`
			Parent string `yaml:"parent"`
		}
		if err := yaml.Unmarshal(raw, &head); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidData, current, err)
		}
		if head.Locale != current {
			return nil, fmt.Errorf("%w: %s declares locale %q", ErrInvalidData, current, head.Locale)
		}
		if current == name {
			parent = head.Parent
		}
		if head.Parent == "" {
			head.Parent = baseName
		}
		current = head.Parent
	}

	data := &Data{}
	for i := len(chain) - 1; i >= 0; i-- {
		if err := yaml.Unmarshal(chain[i], data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
		}
	}
	data.Locale = name
	data.Parent = parent
	return data, nil
}

func (r *Registry) compiledSchema() (*jsonschema.Schema, error) {
	r.schemaOnce.Do(func() {
		r.schema, r.schemaErr = compileSchema()
	})
	return r.schema, r.schemaErr
}
