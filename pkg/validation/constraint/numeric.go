package constraint

import "github.com/dmitrymomot/validation/pkg/validation"

// NumericRangeConstraint checks that a number of any Go numeric kind lies
// within inclusive bounds.
type NumericRangeConstraint struct {
	min *float64
	max *float64
}

func NumericRange(min, max float64) *NumericRangeConstraint {
	return &NumericRangeConstraint{min: &min, max: &max}
}

func Min(min float64) *NumericRangeConstraint {
	return &NumericRangeConstraint{min: &min}
}

func Max(max float64) *NumericRangeConstraint {
	return &NumericRangeConstraint{max: &max}
}

func (c *NumericRangeConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if c.min != nil && c.max != nil && *c.min > *c.max {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint,
			"numeric range at %q has min %v greater than max %v", path, *c.min, *c.max)
	}

	if isNil(value) {
		return nil, nil
	}

	n, ok := numberOf(value)
	if !ok {
		return invalidType(path, KeyNumericRangeInvalidType, value), nil
	}

	if (c.min != nil && n < *c.min) || (c.max != nil && n > *c.max) {
		return validation.Errors{validation.NewError(path, KeyNumericRangeOutOfRange, value, map[string]any{
			"min": bound(c.min),
			"max": bound(c.max),
		})}, nil
	}

	return nil, nil
}
