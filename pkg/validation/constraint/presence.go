package constraint

import (
	"strings"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// NotNullConstraint rejects absent values.
type NotNullConstraint struct{}

// NotNull rejects nil, including nil pointers, slices and maps.
func NotNull() *NotNullConstraint {
	return &NotNullConstraint{}
}

func (c *NotNullConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return validation.Errors{validation.NewError(path, KeyNotNull, value, nil)}, nil
	}
	return nil, nil
}

// NotBlankConstraint rejects absent and empty values.
type NotBlankConstraint struct{}

// NotBlank rejects nil, whitespace-only strings and empty collections.
// Other values, zero numbers and false included, are never blank.
func NotBlank() *NotBlankConstraint {
	return &NotBlankConstraint{}
}

func (c *NotBlankConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if isBlank(value) {
		return validation.Errors{validation.NewError(path, KeyNotBlank, value, nil)}, nil
	}
	return nil, nil
}

func isBlank(value any) bool {
	if isNil(value) {
		return true
	}
	if s, ok := stringOf(value); ok {
		return strings.TrimSpace(s) == ""
	}
	if n, ok := countOf(value); ok {
		return n == 0
	}
	return false
}
