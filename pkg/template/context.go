package template

// Context holds caller data available to template expressions.
type Context struct {
	// Vars is exposed as vars.<key>.
	Vars map[string]any

	// Index is exposed as index. Repeated renders set it to the iteration
	// number, starting at 0.
	Index int
}

// NewContext creates a context with the given variables.
func NewContext(vars map[string]any) *Context {
	if vars == nil {
		vars = map[string]any{}
	}
	return &Context{Vars: vars}
}

// WithIndex returns a copy of the context with Index set.
func (c *Context) WithIndex(i int) *Context {
	if c == nil {
		return &Context{Vars: map[string]any{}, Index: i}
	}
	cp := *c
	cp.Index = i
	return &cp
}

func (c *Context) vars() map[string]any {
	if c == nil || c.Vars == nil {
		return map[string]any{}
	}
	return c.Vars
}

func (c *Context) index() int {
	if c == nil {
		return 0
	}
	return c.Index
}
