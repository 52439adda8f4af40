package constraint

import (
	"unicode/utf8"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// LengthConstraint checks the length of strings in runes.
type LengthConstraint struct {
	min *int
	max *int
}

func Length(min, max int) *LengthConstraint {
	return &LengthConstraint{min: &min, max: &max}
}

func MinLength(min int) *LengthConstraint {
	return &LengthConstraint{min: &min}
}

func MaxLength(max int) *LengthConstraint {
	return &LengthConstraint{max: &max}
}

func (c *LengthConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if c.min != nil && c.max != nil && *c.min > *c.max {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint,
			"length constraint at %q has min %d greater than max %d", path, *c.min, *c.max)
	}

	if isNil(value) {
		return nil, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return invalidType(path, KeyLengthInvalidType, value), nil
	}

	length := utf8.RuneCountInString(s)
	if (c.min != nil && length < *c.min) || (c.max != nil && length > *c.max) {
		return validation.Errors{validation.NewError(path, KeyLengthOutOfRange, value, map[string]any{
			"length": length,
			"min":    bound(c.min),
			"max":    bound(c.max),
		})}, nil
	}

	return nil, nil
}
