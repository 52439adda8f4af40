package validation

// Provider supplies the ObjectMapping of one class.
type Provider interface {
	Class() string
	ObjectMapping() *ObjectMapping
}

type staticProvider struct {
	mapping *ObjectMapping
}

// ProvideMapping wraps a ready mapping as a Provider for its class.
func ProvideMapping(mapping *ObjectMapping) Provider {
	return staticProvider{mapping: mapping}
}

func (p staticProvider) Class() string                 { return p.mapping.Class() }
func (p staticProvider) ObjectMapping() *ObjectMapping { return p.mapping }

// ProviderFunc builds the mapping on demand. The registry calls it at most
// once per class.
type ProviderFunc struct {
	ClassName string
	Build     func() *ObjectMapping
}

func (p ProviderFunc) Class() string                 { return p.ClassName }
func (p ProviderFunc) ObjectMapping() *ObjectMapping { return p.Build() }
