package validation

import "fmt"

// Validator validates a whole object against its registered mapping.
// Constraints receive it to recurse into nested objects; they must pass an
// extended path (path + ".property" or path + "[i]") for nested values and the
// ctx they were given. A call with a fresh or nil ctx starts a new root run:
// the depth limit restarts and errors are logged and counted again.
type Validator interface {
	ValidateObject(object any, ctx *Context, path string) (Errors, error)
}

// Constraint is a unit of validation logic.
//
// Invalid data is reported through the returned Errors, including type
// mismatches (key "constraint.<name>.invalidtype"). The error return is for
// configuration mistakes only. validator may be nil when a constraint is used
// outside an engine run; constraints that need recursion must then fail with
// ErrNoValidator.
type Constraint interface {
	Validate(path string, value any, ctx *Context, validator Validator) (Errors, error)
}

// ConstraintFunc adapts a function to the Constraint interface.
type ConstraintFunc func(path string, value any, ctx *Context, validator Validator) (Errors, error)

func (f ConstraintFunc) Validate(path string, value any, ctx *Context, validator Validator) (Errors, error) {
	return f(path, value, ctx, validator)
}

// JoinPath appends a property name to a dotted path.
func JoinPath(path, property string) string {
	if path == "" {
		return property
	}
	return path + "." + property
}

// IndexPath appends a collection index or key: "items[2]", "tags[en]".
func IndexPath(path string, index any) string {
	return path + "[" + toPathSegment(index) + "]"
}

func toPathSegment(index any) string {
	switch v := index.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
