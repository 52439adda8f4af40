package constraint

import "github.com/dmitrymomot/validation/pkg/validation"

// Callback turns a function into a constraint. It suits object-level rules
// that compare several fields.
func Callback(fn func(path string, value any, ctx *validation.Context, v validation.Validator) (validation.Errors, error)) validation.Constraint {
	return validation.ConstraintFunc(fn)
}

// ObjectCallback is a typed object-level rule. Values that are not a T are
// reported as constraint.callback.invalidtype; nil is skipped.
func ObjectCallback[T any](fn func(path string, object T) validation.Errors) validation.Constraint {
	return validation.ConstraintFunc(func(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
		if isNil(value) {
			return nil, nil
		}
		object, ok := value.(T)
		if !ok {
			return invalidType(path, KeyCallbackInvalidType, value), nil
		}
		return fn(path, object), nil
	})
}
