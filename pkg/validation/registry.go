package validation

import (
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/validation/pkg/logger"
)

// ProxyResolver maps the class identifier of a lazy-loading proxy to the
// class it stands in for. ok is false for identifiers that are not proxies.
type ProxyResolver func(class string) (target string, ok bool)

// PrefixProxyResolver treats identifiers starting with prefix as proxies of
// the class named by the remainder, e.g. "proxy:app.User" -> "app.User".
func PrefixProxyResolver(prefix string) ProxyResolver {
	return func(class string) (string, bool) {
		if prefix == "" || !strings.HasPrefix(class, prefix) {
			return class, false
		}
		return strings.TrimPrefix(class, prefix), true
	}
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithProxyResolver installs the function used to unwrap proxy class identifiers.
func WithProxyResolver(resolver ProxyResolver) RegistryOption {
	return func(r *Registry) {
		if resolver != nil {
			r.proxyResolver = resolver
		}
	}
}

// WithRegistryLogger sets the registry logger. Nil loggers are ignored.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

type resolvedMapping struct {
	mapping *ObjectMapping
	err     error
}

// Registry resolves class identifiers to object mappings.
//
// The provider set is fixed at construction. Each provider is asked for its
// mapping at most once; the result is cached per class with an insert-once
// discipline so a Registry can serve concurrent validations.
type Registry struct {
	load     func() ([]Provider, error)
	loadOnce sync.Once
	loadErr  error

	providers map[string]Provider
	classes   []string

	proxyResolver ProxyResolver
	logger        *slog.Logger

	mu       sync.RWMutex
	resolved map[string]resolvedMapping
	onces    map[string]*sync.Once
}

// NewRegistry builds a registry from providers. Two providers claiming the
// same class is a configuration error.
func NewRegistry(providers []Provider, opts ...RegistryOption) (*Registry, error) {
	r := newRegistry(func() ([]Provider, error) { return providers, nil }, opts)
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on configuration errors.
func MustNewRegistry(providers []Provider, opts ...RegistryOption) *Registry {
	r, err := NewRegistry(providers, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewLazyRegistry defers loading the providers until the first lookup.
// A load failure is returned from every subsequent Resolve.
func NewLazyRegistry(load func() ([]Provider, error), opts ...RegistryOption) *Registry {
	return newRegistry(load, opts)
}

func newRegistry(load func() ([]Provider, error), opts []RegistryOption) *Registry {
	r := &Registry{
		load:     load,
		logger:   logger.Discard(),
		resolved: make(map[string]resolvedMapping),
		onces:    make(map[string]*sync.Once),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) init() error {
	r.loadOnce.Do(func() {
		providers, err := r.load()
		if err != nil {
			r.loadErr = NewLogicError(ErrMissingMapping, "loading mapping providers: %v", err)
			return
		}

		r.providers = make(map[string]Provider, len(providers))
		for _, p := range providers {
			if p == nil {
				continue
			}
			class := p.Class()
			if _, exists := r.providers[class]; exists {
				r.loadErr = NewLogicError(ErrDuplicateMapping, "there is more than one mapping for class: %q", class)
				return
			}
			r.providers[class] = p
			r.classes = append(r.classes, class)
		}

		r.logger.Debug("mapping registry loaded",
			logger.Component("registry"),
			slog.Int("providers", len(r.classes)),
		)
	})
	return r.loadErr
}

// Classes returns the registered class identifiers in provider order.
func (r *Registry) Classes() []string {
	if err := r.init(); err != nil {
		return nil
	}
	return slices.Clone(r.classes)
}

// Resolve returns the mapping registered for class, unwrapping proxy class
// identifiers first. Proxy identifiers themselves are never matched.
func (r *Registry) Resolve(class string) (*ObjectMapping, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	target := class
	if r.proxyResolver != nil {
		if unwrapped, ok := r.proxyResolver(class); ok {
			target = unwrapped
		}
	}

	r.mu.RLock()
	res, ok := r.resolved[target]
	r.mu.RUnlock()
	if ok {
		return res.mapping, res.err
	}

	p, ok := r.providers[target]
	if !ok {
		err := missingMappingError(target)
		r.logger.Warn("no mapping for class",
			logger.Component("registry"),
			logger.Class(class),
			logger.Error(err),
		)
		return nil, err
	}

	r.mu.Lock()
	once, exists := r.onces[target]
	if !exists {
		once = new(sync.Once)
		r.onces[target] = once
	}
	r.mu.Unlock()

	once.Do(func() {
		res := buildMapping(p, target)

		r.mu.Lock()
		r.resolved[target] = res
		r.mu.Unlock()

		r.logger.Debug("mapping resolved",
			logger.Component("registry"),
			logger.Class(target),
			slog.Bool("proxy", target != class),
		)
	})

	r.mu.RLock()
	res, ok = r.resolved[target]
	r.mu.RUnlock()
	if !ok {
		return nil, NewLogicError(ErrMissingMapping, "mapping for class %q could not be built", target)
	}
	return res.mapping, res.err
}

// buildMapping asks p for its mapping. A panicking provider becomes a cached
// logic error so the class never resolves to an empty mapping.
func buildMapping(p Provider, target string) (res resolvedMapping) {
	defer func() {
		if rec := recover(); rec != nil {
			res = resolvedMapping{err: NewLogicError(ErrMissingMapping, "provider for class %q panicked: %v", target, rec)}
		}
	}()

	res.mapping = p.ObjectMapping()
	if res.mapping == nil {
		res.err = NewLogicError(ErrMissingMapping, "provider for class %q returned no mapping", target)
	}
	return res
}

// ResolveObject resolves the mapping for the real class of object.
func (r *Registry) ResolveObject(object any) (*ObjectMapping, error) {
	if object == nil {
		return nil, NewLogicError(ErrInvalidObject, "cannot resolve a mapping for a nil object")
	}
	return r.Resolve(RealClassOf(object))
}
