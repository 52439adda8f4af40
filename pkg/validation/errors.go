package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLogic marks configuration mistakes: the validation rules do not match the
// object model. Every *LogicError matches it with errors.Is.
var ErrLogic = errors.New("validation logic error")

// Reasons carried by LogicError.
var (
	// ErrMissingAccessor is returned when no method or field can serve a mapped property.
	ErrMissingAccessor = errors.New("missing accessor")

	// ErrMissingMapping is returned when no provider claims a class.
	ErrMissingMapping = errors.New("missing mapping")

	// ErrDuplicateMapping is returned when two providers claim the same class.
	ErrDuplicateMapping = errors.New("duplicate mapping")

	// ErrMaxDepthExceeded is returned when nested validation goes deeper than the configured limit,
	// which usually means a self-referencing object graph.
	ErrMaxDepthExceeded = errors.New("max validation depth exceeded")

	// ErrInvalidObject is returned when the validated value is not an object.
	ErrInvalidObject = errors.New("invalid object")

	// ErrInvalidConstraint is returned when a constraint is misconfigured.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrIncompatibleValue is returned when an accessor cannot assign a value of the given type.
	ErrIncompatibleValue = errors.New("incompatible value")

	// ErrNoValidator is returned when a recursive constraint runs without a validator.
	ErrNoValidator = errors.New("no validator supplied")
)

// LogicError reports a configuration mistake. It is never part of an Errors list.
type LogicError struct {
	Reason  error
	Message string
}

func (e *LogicError) Error() string {
	return e.Message
}

// Unwrap exposes both ErrLogic and the specific reason to errors.Is.
func (e *LogicError) Unwrap() []error {
	return []error{ErrLogic, e.Reason}
}

// NewLogicError creates a LogicError with a formatted message.
func NewLogicError(reason error, format string, args ...any) *LogicError {
	return &LogicError{
		Reason:  reason,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsLogicError reports whether err is (or wraps) a configuration error.
func IsLogicError(err error) bool {
	return errors.Is(err, ErrLogic)
}

func missingMethodError(class, property string, methods []string) *LogicError {
	quoted := make([]string, len(methods))
	for i, m := range methods {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return NewLogicError(ErrMissingAccessor,
		"there are no accessible methods (%s) for property %q within class: %q",
		strings.Join(quoted, ", "), property, class)
}

func missingFieldError(class, property string, fields []string) *LogicError {
	return NewLogicError(ErrMissingAccessor,
		"there is no field %q for property %q within class: %q",
		strings.Join(fields, `" or "`), property, class)
}

func missingMappingError(class string) *LogicError {
	return NewLogicError(ErrMissingMapping, "there is no mapping for class: %q", class)
}
