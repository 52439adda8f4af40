package constraint

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// ValidConstraint validates nested objects through the engine. Collections
// are walked element by element, so a slice of orders yields paths like
// "orders[0].total".
type ValidConstraint struct{}

func Valid() *ValidConstraint {
	return &ValidConstraint{}
}

func (c *ValidConstraint) Validate(path string, value any, ctx *validation.Context, v validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return nil, nil
	}
	if v == nil {
		return nil, validation.NewLogicError(validation.ErrNoValidator, "nested validation at %q needs a validator", path)
	}
	return c.validateNode(path, value, ctx, v)
}

func (c *ValidConstraint) validateNode(path string, value any, ctx *validation.Context, v validation.Validator) (validation.Errors, error) {
	if isObject(value) {
		return v.ValidateObject(value, ctx, path)
	}

	if !isCollection(value) {
		return invalidType(path, KeyValidInvalidType, value), nil
	}

	var errs validation.Errors
	err := eachElement(path, value, func(elemPath string, elem any) error {
		if isNil(elem) {
			return nil
		}
		elemErrs, err := c.validateNode(elemPath, elem, ctx, v)
		if err != nil {
			return err
		}
		errs = append(errs, elemErrs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return errs, nil
}

// AllConstraint applies constraints to every element of a collection.
type AllConstraint struct {
	constraints []validation.Constraint
}

func All(constraints ...validation.Constraint) *AllConstraint {
	return &AllConstraint{constraints: slices.Clone(constraints)}
}

func (c *AllConstraint) Validate(path string, value any, ctx *validation.Context, v validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return nil, nil
	}
	if !isCollection(value) {
		return invalidType(path, KeyAllInvalidType, value), nil
	}

	var errs validation.Errors
	err := eachElement(path, value, func(elemPath string, elem any) error {
		for _, constraint := range c.constraints {
			elemErrs, err := constraint.Validate(elemPath, elem, ctx, v)
			if err != nil {
				return err
			}
			errs = append(errs, elemErrs...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return errs, nil
}

// isObject reports whether value should be handed to the engine as a whole:
// structs, pointers to structs, and anything declaring its own class.
func isObject(value any) bool {
	switch value.(type) {
	case validation.Classifier, validation.Proxy:
		return true
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func isCollection(value any) bool {
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// eachElement visits slice and array elements by index and map entries in
// key order, so error order is deterministic. Keys printing the same sort by
// their type name.
func eachElement(path string, value any, fn func(elemPath string, elem any) error) error {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if err := fn(validation.IndexPath(path, i), rv.Index(i).Interface()); err != nil {
				return err
			}
		}
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return cmp.Or(
				cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface())),
				cmp.Compare(fmt.Sprintf("%T", a.Interface()), fmt.Sprintf("%T", b.Interface())),
			)
		})
		for _, k := range keys {
			if err := fn(validation.IndexPath(path, k.Interface()), rv.MapIndex(k).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}
