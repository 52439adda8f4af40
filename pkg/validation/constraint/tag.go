package constraint

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/validation/pkg/validation"
)

var (
	tagValidator     *validator.Validate
	tagValidatorOnce sync.Once
)

func getTagValidator() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New(validator.WithRequiredStructEnabled())
	})
	return tagValidator
}

// TagConstraint delegates single-value checks to go-playground/validator
// tags, e.g. Tag("email"), Tag("min=3,max=20"), Tag("oneof=draft published").
type TagConstraint struct {
	tag string
}

func Tag(tag string) *TagConstraint {
	return &TagConstraint{tag: tag}
}

// Validate skips nil values unless the tag starts with a required rule.
// Only the first failing rule is reported.
func (c *TagConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (errs validation.Errors, err error) {
	if strings.TrimSpace(c.tag) == "" {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint, "tag constraint at %q has an empty tag", path)
	}
	if isNil(value) && !strings.HasPrefix(c.tag, "required") {
		return nil, nil
	}

	// Unknown tags make the validator panic.
	defer func() {
		if r := recover(); r != nil {
			errs = nil
			err = validation.NewLogicError(validation.ErrInvalidConstraint, "tag %q at %q: %v", c.tag, path, r)
		}
	}()

	verr := getTagValidator().Var(value, c.tag)
	if verr == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(verr, &fieldErrs) || len(fieldErrs) == 0 {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint, "tag %q at %q: %v", c.tag, path, verr)
	}

	fe := fieldErrs[0]
	return validation.Errors{validation.NewError(path, KeyTagPrefix+fe.Tag(), value, map[string]any{
		"tag":   fe.Tag(),
		"param": fe.Param(),
	})}, nil
}
