package validation

import "slices"

// PropertyMapping binds constraints to one property. It is immutable.
type PropertyMapping struct {
	name        string
	constraints []Constraint
	groups      []string
	accessor    Accessor
}

func (m *PropertyMapping) Name() string { return m.name }

// Constraints returns the constraints in execution order.
func (m *PropertyMapping) Constraints() []Constraint { return slices.Clone(m.constraints) }

// Groups returns the groups this mapping is active under; empty means always.
func (m *PropertyMapping) Groups() []string { return slices.Clone(m.groups) }

func (m *PropertyMapping) Accessor() Accessor { return m.accessor }

// PropertyMappingBuilder assembles a PropertyMapping.
// Constraint applicability is not checked here; mismatches surface at
// validation time as invalidtype errors.
type PropertyMappingBuilder struct {
	name        string
	constraints []Constraint
	groups      []string
	accessor    Accessor
}

// NewPropertyMapping starts a mapping for property with constraints in
// execution order.
func NewPropertyMapping(name string, constraints ...Constraint) *PropertyMappingBuilder {
	return &PropertyMappingBuilder{
		name:        name,
		constraints: slices.Clone(constraints),
	}
}

func (b *PropertyMappingBuilder) WithGroups(groups ...string) *PropertyMappingBuilder {
	b.groups = slices.Clone(groups)
	return b
}

// WithAccessor overrides the default MethodAccessor.
func (b *PropertyMappingBuilder) WithAccessor(accessor Accessor) *PropertyMappingBuilder {
	b.accessor = accessor
	return b
}

// Mapping freezes the builder state into a PropertyMapping.
func (b *PropertyMappingBuilder) Mapping() *PropertyMapping {
	accessor := b.accessor
	if accessor == nil {
		accessor = NewMethodAccessor(b.name)
	}
	return &PropertyMapping{
		name:        b.name,
		constraints: slices.Clone(b.constraints),
		groups:      slices.Clone(b.groups),
		accessor:    accessor,
	}
}

// ObjectMapping declares how instances of one class are validated:
// property mappings in declaration order plus object-level constraints that
// see the whole object. It is immutable.
type ObjectMapping struct {
	class       string
	properties  []*PropertyMapping
	constraints []Constraint
	groups      []string
}

func (m *ObjectMapping) Class() string { return m.class }

func (m *ObjectMapping) PropertyMappings() []*PropertyMapping { return slices.Clone(m.properties) }

// Constraints returns the object-level constraints in execution order.
func (m *ObjectMapping) Constraints() []Constraint { return slices.Clone(m.constraints) }

// Groups returns the groups the object-level constraints are active under.
func (m *ObjectMapping) Groups() []string { return slices.Clone(m.groups) }

// ObjectMappingBuilder assembles an ObjectMapping.
type ObjectMappingBuilder struct {
	class       string
	properties  []*PropertyMapping
	constraints []Constraint
	groups      []string
}

func NewObjectMapping(class string) *ObjectMappingBuilder {
	return &ObjectMappingBuilder{class: class}
}

// NewObjectMappingFor starts a mapping for the class of T.
func NewObjectMappingFor[T any]() *ObjectMappingBuilder {
	return NewObjectMapping(ClassFor[T]())
}

// Property appends property mappings, either frozen mappings or builders.
func (b *ObjectMappingBuilder) Property(mappings ...PropertyMappingSource) *ObjectMappingBuilder {
	for _, m := range mappings {
		b.properties = append(b.properties, m.Mapping())
	}
	return b
}

// Constraints appends object-level constraints.
func (b *ObjectMappingBuilder) Constraints(constraints ...Constraint) *ObjectMappingBuilder {
	b.constraints = append(b.constraints, constraints...)
	return b
}

// WithGroups restricts the object-level constraints to the given groups.
func (b *ObjectMappingBuilder) WithGroups(groups ...string) *ObjectMappingBuilder {
	b.groups = slices.Clone(groups)
	return b
}

func (b *ObjectMappingBuilder) Mapping() *ObjectMapping {
	return &ObjectMapping{
		class:       b.class,
		properties:  slices.Clone(b.properties),
		constraints: slices.Clone(b.constraints),
		groups:      slices.Clone(b.groups),
	}
}

// PropertyMappingSource is satisfied by *PropertyMapping and *PropertyMappingBuilder.
type PropertyMappingSource interface {
	Mapping() *PropertyMapping
}

// Mapping returns m itself so frozen mappings can be passed where builders are accepted.
func (m *PropertyMapping) Mapping() *PropertyMapping { return m }
