package constraint

import (
	"reflect"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// TypeConstraint checks the runtime type of a value.
type TypeConstraint struct {
	wanted string
}

// Type accepts either a Go type as printed by %T ("string", "*app.User",
// "[]int") or one of the families: "bool", "string", "int", "float",
// "number", "slice", "map", "struct", "object".
func Type(wanted string) *TypeConstraint {
	return &TypeConstraint{wanted: wanted}
}

func (c *TypeConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return nil, nil
	}

	if typeOf(value) == c.wanted || inFamily(value, c.wanted) {
		return nil, nil
	}

	return validation.Errors{validation.NewError(path, KeyTypeInvalidType, value, map[string]any{
		"type":       typeOf(value),
		"wantedType": c.wanted,
	})}, nil
}

func inFamily(value any, family string) bool {
	kind := reflect.TypeOf(value).Kind()
	switch family {
	case "bool":
		return kind == reflect.Bool
	case "string":
		return kind == reflect.String
	case "int":
		return kind >= reflect.Int && kind <= reflect.Uintptr
	case "float":
		return kind == reflect.Float32 || kind == reflect.Float64
	case "number":
		_, ok := numberOf(value)
		return ok
	case "slice":
		return kind == reflect.Slice || kind == reflect.Array
	case "map":
		return kind == reflect.Map
	case "struct":
		return kind == reflect.Struct
	case "object":
		return isObject(value)
	}
	return false
}
