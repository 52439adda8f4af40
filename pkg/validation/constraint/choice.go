package constraint

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// ChoiceConstraint accepts only values from a fixed list.
type ChoiceConstraint struct {
	choices []any
}

// Choice matches by equality; values and choices must share the same Go type.
func Choice(choices ...any) *ChoiceConstraint {
	return &ChoiceConstraint{choices: slices.Clone(choices)}
}

// Choices is Choice for a typed list.
func Choices[T comparable](choices ...T) *ChoiceConstraint {
	c := &ChoiceConstraint{choices: make([]any, len(choices))}
	for i, v := range choices {
		c.choices[i] = v
	}
	return c
}

func (c *ChoiceConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return nil, nil
	}

	for _, choice := range c.choices {
		if equal(value, choice) {
			return nil, nil
		}
	}

	return validation.Errors{validation.NewError(path, KeyChoiceInvalidValue, value, map[string]any{
		"choices": slices.Clone(c.choices),
	})}, nil
}

// equal never uses ==, which panics on structs whose interface fields hold
// slices or maps.
func equal(a, b any) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}
