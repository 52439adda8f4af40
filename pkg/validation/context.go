package validation

import "slices"

// Context carries cross-cutting parameters of a single validation run.
// It is immutable; a nil *Context is valid and means "no groups".
type Context struct {
	groups []string
	depth  int
}

// Groups returns the active groups in the order they were set.
func (c *Context) Groups() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.groups)
}

// HasGroups reports whether group filtering is configured.
func (c *Context) HasGroups() bool {
	return c != nil && len(c.groups) > 0
}

// Depth returns the nesting level: 0 for the root object, one more for every
// nested object reached through a constraint.
func (c *Context) Depth() int {
	if c == nil {
		return 0
	}
	return c.depth
}

// Activates reports whether a mapping declared with groups is active in this
// context. Mappings without groups are always active, and so is everything
// when the context itself has no groups.
func (c *Context) Activates(groups []string) bool {
	if len(groups) == 0 || !c.HasGroups() {
		return true
	}
	for _, g := range groups {
		if slices.Contains(c.groups, g) {
			return true
		}
	}
	return false
}

func (c *Context) nested() *Context {
	if c == nil {
		return &Context{depth: 1}
	}
	return &Context{groups: c.groups, depth: c.depth + 1}
}

// ContextBuilder assembles a Context.
type ContextBuilder struct {
	groups []string
}

func NewContextBuilder() *ContextBuilder {
	return &ContextBuilder{}
}

// WithGroups sets the active groups. Duplicates are dropped, order is kept.
func (b *ContextBuilder) WithGroups(groups ...string) *ContextBuilder {
	b.groups = b.groups[:0]
	for _, g := range groups {
		if !slices.Contains(b.groups, g) {
			b.groups = append(b.groups, g)
		}
	}
	return b
}

// Context returns an immutable snapshot; the builder may be reused.
func (b *ContextBuilder) Context() *Context {
	return &Context{groups: slices.Clone(b.groups)}
}
