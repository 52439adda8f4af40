package constraint

import "github.com/dmitrymomot/validation/pkg/validation"

// CountConstraint checks the element count of slices, arrays, maps, channels
// and Countable values.
type CountConstraint struct {
	min *int
	max *int
}

// Count requires between min and max elements, both inclusive.
func Count(min, max int) *CountConstraint {
	return &CountConstraint{min: &min, max: &max}
}

// MinCount requires at least min elements.
func MinCount(min int) *CountConstraint {
	return &CountConstraint{min: &min}
}

// MaxCount allows at most max elements.
func MaxCount(max int) *CountConstraint {
	return &CountConstraint{max: &max}
}

// Validate ignores nil: presence is NotNull's concern.
func (c *CountConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if c.min != nil && c.max != nil && *c.min > *c.max {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint,
			"count constraint at %q has min %d greater than max %d", path, *c.min, *c.max)
	}

	if isNil(value) {
		return nil, nil
	}

	count, ok := countOf(value)
	if !ok {
		return invalidType(path, KeyCountInvalidType, value), nil
	}

	if (c.min != nil && count < *c.min) || (c.max != nil && count > *c.max) {
		return validation.Errors{validation.NewError(path, KeyCountOutOfRange, value, map[string]any{
			"count": count,
			"min":   bound(c.min),
			"max":   bound(c.max),
		})}, nil
	}

	return nil, nil
}
