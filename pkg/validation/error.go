package validation

import (
	"errors"
	"maps"
	"strings"

	"github.com/goccy/go-json"
)

// Error is a single validation failure. It is immutable once created.
type Error struct {
	path  string
	key   string
	input any
	args  map[string]any
}

// NewError creates a validation failure located at path.
// The args map is copied.
func NewError(path, key string, input any, args map[string]any) *Error {
	return &Error{
		path:  path,
		key:   key,
		input: input,
		args:  maps.Clone(args),
	}
}

// Path returns the dotted location of the failing field within the root object.
func (e *Error) Path() string { return e.path }

// Key returns the machine-readable identifier, e.g. "constraint.count.outofrange".
func (e *Error) Key() string { return e.key }

// Input returns the offending value.
func (e *Error) Input() any { return e.input }

// Args returns a copy of the structured message arguments.
func (e *Error) Args() map[string]any {
	if e.args == nil {
		return map[string]any{}
	}
	return maps.Clone(e.args)
}

// Arg returns a single argument.
func (e *Error) Arg(name string) (any, bool) {
	v, ok := e.args[name]
	return v, ok
}

func (e *Error) Error() string {
	if e.path == "" {
		return e.key
	}
	return e.path + ": " + e.key
}

type errorDTO struct {
	Path  string         `json:"path" yaml:"path"`
	Key   string         `json:"key" yaml:"key"`
	Input any            `json:"input,omitempty" yaml:"input,omitempty"`
	Args  map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

func (e *Error) dto() errorDTO {
	return errorDTO{Path: e.path, Key: e.key, Input: e.input, Args: e.args}
}

// MarshalJSON encodes the error as {"path","key","input","args"}.
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.dto())
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (e *Error) MarshalYAML() (any, error) {
	return e.dto(), nil
}

// Errors is an ordered list of validation failures.
type Errors []*Error

func (ve Errors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error is located at path.
func (ve Errors) Has(path string) bool {
	for _, err := range ve {
		if err.path == path {
			return true
		}
	}
	return false
}

// Get returns every error located at path, in order.
func (ve Errors) Get(path string) Errors {
	var out Errors
	for _, err := range ve {
		if err.path == path {
			out = append(out, err)
		}
	}
	return out
}

// HasKey reports whether any error carries key.
func (ve Errors) HasKey(key string) bool {
	for _, err := range ve {
		if err.key == key {
			return true
		}
	}
	return false
}

// Paths returns the distinct error paths in first-seen order.
func (ve Errors) Paths() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.path] {
			paths = append(paths, err.path)
			seen[err.path] = true
		}
	}
	return paths
}

// Keys returns the key of every error, in order.
func (ve Errors) Keys() []string {
	keys := make([]string, len(ve))
	for i, err := range ve {
		keys[i] = err.key
	}
	return keys
}

func (ve Errors) IsEmpty() bool {
	return len(ve) == 0
}

// Err returns ve as an error, or nil when the list is empty.
func (ve Errors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// MarshalJSON always encodes a JSON array, never null.
func (ve Errors) MarshalJSON() ([]byte, error) {
	if ve == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]*Error(ve))
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}

	var single *Error
	if errors.As(err, &single) {
		return Errors{single}
	}

	return nil
}

// IsValidationError reports whether err carries validation failures
// (as opposed to a LogicError).
func IsValidationError(err error) bool {
	return ExtractErrors(err) != nil
}
