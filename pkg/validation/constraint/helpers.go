package constraint

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// Countable is implemented by aggregates that know their element count.
type Countable interface {
	Count() int
}

type lengther interface {
	Len() int
}

// isNil treats nil interfaces and nil pointers, slices, maps, channels and
// funcs as absent values.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func countOf(value any) (int, bool) {
	switch v := value.(type) {
	case Countable:
		return v.Count(), true
	case lengther:
		return v.Len(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

// stringOf accepts strings and string-kinded named types.
func stringOf(value any) (string, bool) {
	if s, ok := value.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func numberOf(value any) (float64, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func typeOf(value any) string {
	return fmt.Sprintf("%T", value)
}

func invalidType(path, key string, value any) validation.Errors {
	return validation.Errors{validation.NewError(path, key, value, map[string]any{"type": typeOf(value)})}
}

// bound returns nil for an unset bound so error args carry null, not zero.
func bound[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
