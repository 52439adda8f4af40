package constraint

import (
	"errors"
	"regexp"

	"github.com/dmitrymomot/validation/pkg/validation"
)

var errNilRegexp = errors.New("nil regular expression")

// PatternConstraint matches strings against a regular expression.
type PatternConstraint struct {
	expr string
	re   *regexp.Regexp
	err  error
}

// Pattern compiles expr once. An invalid expression is reported as a
// configuration error when the constraint runs.
func Pattern(expr string) *PatternConstraint {
	re, err := regexp.Compile(expr)
	return &PatternConstraint{expr: expr, re: re, err: err}
}

// MatchRegexp uses an already compiled expression. A nil expression is
// reported as a configuration error when the constraint runs.
func MatchRegexp(re *regexp.Regexp) *PatternConstraint {
	if re == nil {
		return &PatternConstraint{err: errNilRegexp}
	}
	return &PatternConstraint{expr: re.String(), re: re}
}

func (c *PatternConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if c.err == errNilRegexp {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint,
			"pattern at %q has no regular expression", path)
	}
	if c.err != nil {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint,
			"pattern %q at %q does not compile: %v", c.expr, path, c.err)
	}

	if isNil(value) {
		return nil, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return invalidType(path, KeyPatternInvalidType, value), nil
	}

	if !c.re.MatchString(s) {
		return validation.Errors{validation.NewError(path, KeyPatternInvalidValue, value, map[string]any{
			"pattern": c.expr,
		})}, nil
	}

	return nil, nil
}
