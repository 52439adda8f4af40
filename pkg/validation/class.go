package validation

import "reflect"

// Classifier lets a type declare its validation class identifier explicitly
// instead of relying on its Go type name.
type Classifier interface {
	ValidationClass() string
}

// Proxy is implemented by lazy-loading stand-ins for another class.
// ProxiedClass returns the class identifier of the real object, which is what
// the registry resolves mappings for.
type Proxy interface {
	ProxiedClass() string
}

// ClassOf returns the class identifier of object: the Classifier value when
// implemented, otherwise the Go type name qualified by its package path
// ("github.com/acme/app.User"). Pointers are dereferenced.
func ClassOf(object any) string {
	if c, ok := object.(Classifier); ok {
		return c.ValidationClass()
	}
	return typeName(reflect.TypeOf(object))
}

// RealClassOf is ClassOf with proxies unwrapped to the class they stand in for.
func RealClassOf(object any) string {
	if p, ok := object.(Proxy); ok {
		return p.ProxiedClass()
	}
	return ClassOf(object)
}

// ClassFor returns the class identifier Go derives for T, e.g.
// ClassFor[User]() for mapping providers of plain structs.
func ClassFor[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
