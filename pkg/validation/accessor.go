package validation

import (
	"fmt"
	"reflect"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Accessor reads and writes one named property of an object.
// Failures are configuration errors (*LogicError), never validation errors.
type Accessor interface {
	Value(object any) (any, error)
	SetValue(object any, value any) error
}

// MethodAccessor reaches a property through conventional methods:
// Set<Name> for writes and the first existing of Get<Name>, Has<Name>,
// Is<Name> for reads.
type MethodAccessor struct {
	property string
	getters  []string
	setter   string
}

// NewMethodAccessor binds a method accessor to property.
// Method names are derived once here, not on every call.
func NewMethodAccessor(property string) *MethodAccessor {
	name := capitalize(property)
	return &MethodAccessor{
		property: property,
		getters:  []string{"Get" + name, "Has" + name, "Is" + name},
		setter:   "Set" + name,
	}
}

// Getters returns the candidate getter names in lookup order.
func (a *MethodAccessor) Getters() []string {
	return append([]string(nil), a.getters...)
}

// Setter returns the setter method name.
func (a *MethodAccessor) Setter() string {
	return a.setter
}

func (a *MethodAccessor) Value(object any) (any, error) {
	rv, err := objectValue(object)
	if err != nil {
		return nil, err
	}

	for _, name := range a.getters {
		m, ok := findMethod(rv, name)
		if !ok {
			continue
		}

		mt := m.Type()
		switch {
		case mt.NumIn() == 0 && mt.NumOut() == 1:
			return m.Call(nil)[0].Interface(), nil
		case mt.NumIn() == 0 && mt.NumOut() == 2 && mt.Out(1) == errorType:
			out := m.Call(nil)
			if !out[1].IsNil() {
				return nil, fmt.Errorf("read property %q: %w", a.property, out[1].Interface().(error))
			}
			return out[0].Interface(), nil
		default:
			return nil, NewLogicError(ErrMissingAccessor,
				"method %q of class %q must take no arguments and return a value", name, ClassOf(object))
		}
	}

	return nil, missingMethodError(ClassOf(object), a.property, a.getters)
}

func (a *MethodAccessor) SetValue(object any, value any) error {
	rv, err := objectValue(object)
	if err != nil {
		return err
	}

	m := rv.MethodByName(a.setter)
	if !m.IsValid() {
		return missingMethodError(ClassOf(object), a.property, []string{a.setter})
	}

	mt := m.Type()
	if mt.NumIn() != 1 {
		return NewLogicError(ErrMissingAccessor,
			"method %q of class %q must take exactly one argument", a.setter, ClassOf(object))
	}

	arg, err := assignable(value, mt.In(0))
	if err != nil {
		return err
	}

	out := m.Call([]reflect.Value{arg})
	if len(out) > 0 && mt.Out(len(out)-1) == errorType && !out[len(out)-1].IsNil() {
		return fmt.Errorf("write property %q: %w", a.property, out[len(out)-1].Interface().(error))
	}
	return nil
}

// FieldAccessor reads and writes struct fields directly, unexported ones
// included. Use it for types without accessor methods.
type FieldAccessor struct {
	property string
	names    []string
}

// NewFieldAccessor binds a field accessor to property. The field is looked up
// by the exact name first, then by its capitalized form.
func NewFieldAccessor(property string) *FieldAccessor {
	names := []string{property}
	if c := capitalize(property); c != property {
		names = append(names, c)
	}
	return &FieldAccessor{property: property, names: names}
}

func (a *FieldAccessor) Value(object any) (any, error) {
	rv, err := structValue(object)
	if err != nil {
		return nil, err
	}

	// Unexported fields can only be read through an addressable value.
	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}

	f, found, err := a.field(rv, object)
	if err != nil {
		return nil, err
	}
	if !found {
		// Nil embedded pointer on the way to the field.
		return nil, nil
	}
	if f.CanInterface() {
		return f.Interface(), nil
	}
	return exposed(f).Interface(), nil
}

func (a *FieldAccessor) SetValue(object any, value any) error {
	rv := reflect.ValueOf(object)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return NewLogicError(ErrInvalidObject,
			"setting field %q requires a non-nil pointer, got %T", a.property, object)
	}

	rv, err := structValue(object)
	if err != nil {
		return err
	}

	f, found, err := a.field(rv, object)
	if err != nil {
		return err
	}
	if !found {
		return NewLogicError(ErrMissingAccessor,
			"cannot set field %q of class %q through a nil embedded pointer", a.property, ClassOf(object))
	}

	arg, err := assignable(value, f.Type())
	if err != nil {
		return err
	}
	if !f.CanSet() {
		f = exposed(f)
	}
	f.Set(arg)
	return nil
}

func (a *FieldAccessor) field(rv reflect.Value, object any) (reflect.Value, bool, error) {
	for _, name := range a.names {
		sf, ok := rv.Type().FieldByName(name)
		if !ok {
			continue
		}
		f, err := rv.FieldByIndexErr(sf.Index)
		if err != nil {
			return reflect.Value{}, false, nil
		}
		return f, true, nil
	}
	return reflect.Value{}, false, missingFieldError(ClassOf(object), a.property, a.names)
}

// MapAccessor treats maps with string keys as objects: the property is a key.
// A missing key reads as nil.
type MapAccessor struct {
	key string
}

func NewMapAccessor(key string) *MapAccessor {
	return &MapAccessor{key: key}
}

func (a *MapAccessor) Value(object any) (any, error) {
	rv, err := mapValue(object)
	if err != nil {
		return nil, err
	}
	if rv.IsNil() {
		return nil, nil
	}

	v := rv.MapIndex(reflect.ValueOf(a.key).Convert(rv.Type().Key()))
	if !v.IsValid() {
		return nil, nil
	}
	return v.Interface(), nil
}

func (a *MapAccessor) SetValue(object any, value any) error {
	rv, err := mapValue(object)
	if err != nil {
		return err
	}
	if rv.IsNil() {
		return NewLogicError(ErrInvalidObject, "cannot set key %q on a nil map", a.key)
	}

	arg, err := assignable(value, rv.Type().Elem())
	if err != nil {
		return err
	}
	rv.SetMapIndex(reflect.ValueOf(a.key).Convert(rv.Type().Key()), arg)
	return nil
}

var errorType = reflect.TypeFor[error]()

// capitalize upper-cases the first rune using Unicode title casing and leaves
// the rest untouched: "firstName" becomes "FirstName".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und, cases.NoLower).String(s[:size]) + s[size:]
}

func objectValue(object any) (reflect.Value, error) {
	rv := reflect.ValueOf(object)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return reflect.Value{}, NewLogicError(ErrInvalidObject, "cannot access properties of a nil object")
	}
	return rv, nil
}

// findMethod looks the method up on the value and, for non-pointer values,
// on an addressable copy so pointer-receiver getters are found too.
func findMethod(rv reflect.Value, name string) (reflect.Value, bool) {
	if m := rv.MethodByName(name); m.IsValid() {
		return m, true
	}
	if rv.Kind() != reflect.Pointer && rv.Kind() != reflect.Interface {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		if m := p.MethodByName(name); m.IsValid() {
			return m, true
		}
	}
	return reflect.Value{}, false
}

func structValue(object any) (reflect.Value, error) {
	rv, err := objectValue(object)
	if err != nil {
		return reflect.Value{}, err
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, NewLogicError(ErrInvalidObject, "cannot access fields of a nil %T", object)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, NewLogicError(ErrInvalidObject, "field access requires a struct, got %T", object)
	}
	return rv, nil
}

func mapValue(object any) (reflect.Value, error) {
	rv, err := objectValue(object)
	if err != nil {
		return reflect.Value{}, err
	}
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, NewLogicError(ErrInvalidObject, "key access requires a map with string keys, got %T", object)
	}
	return rv, nil
}

// exposed returns a settable, interfaceable view of an unexported field.
// f must be addressable.
func exposed(f reflect.Value) reflect.Value {
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}

// assignable converts value to t. nil becomes the zero value of t.
func assignable(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}

	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}

	// Integer to string conversion yields a rune, never what the caller wants.
	numeric := v.Kind() >= reflect.Int && v.Kind() <= reflect.Uint64
	if v.Type().ConvertibleTo(t) && !(numeric && t.Kind() == reflect.String) {
		return v.Convert(t), nil
	}

	return reflect.Value{}, NewLogicError(ErrIncompatibleValue, "cannot assign %T to %s", value, t)
}
