package constraint

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/validation/pkg/validation"
)

// Format constraints skip nil and empty strings; use NotBlank to require a value.

// EmailConstraint checks RFC 5322 addresses restricted to the usual web shape:
// a bare address whose domain has at least one dot.
type EmailConstraint struct{}

func Email() *EmailConstraint {
	return &EmailConstraint{}
}

func (c *EmailConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return nil, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return invalidType(path, KeyEmailInvalidType, value), nil
	}
	if s == "" {
		return nil, nil
	}

	if !isEmail(s) {
		return validation.Errors{validation.NewError(path, KeyEmailInvalidFormat, value, nil)}, nil
	}
	return nil, nil
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}

	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// UUIDConstraint checks canonical 36-character UUID strings.
// uuid.UUID values are always well formed.
type UUIDConstraint struct {
	rejectNil bool
}

func UUID() *UUIDConstraint {
	return &UUIDConstraint{}
}

// NotNilUUID additionally rejects the all-zero UUID.
func NotNilUUID() *UUIDConstraint {
	return &UUIDConstraint{rejectNil: true}
}

func (c *UUIDConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if isNil(value) {
		return nil, nil
	}

	var id uuid.UUID
	switch v := value.(type) {
	case uuid.UUID:
		id = v
	case *uuid.UUID:
		id = *v
	default:
		s, ok := stringOf(value)
		if !ok {
			return invalidType(path, KeyUUIDInvalidType, value), nil
		}
		if s == "" {
			return nil, nil
		}

		// Reject other accepted encodings (urn:, braces, no hyphens) before parsing.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return validation.Errors{validation.NewError(path, KeyUUIDInvalidFormat, value, nil)}, nil
		}

		parsed, err := uuid.Parse(s)
		if err != nil {
			return validation.Errors{validation.NewError(path, KeyUUIDInvalidFormat, value, nil)}, nil
		}
		id = parsed
	}

	if c.rejectNil && id == uuid.Nil {
		return validation.Errors{validation.NewError(path, KeyUUIDNil, value, nil)}, nil
	}
	return nil, nil
}

// DateTimeConstraint checks that a string parses with a time layout.
// time.Time values always pass.
type DateTimeConstraint struct {
	layout string
}

// DateTime uses a Go reference-time layout such as time.RFC3339 or "2006-01-02".
func DateTime(layout string) *DateTimeConstraint {
	return &DateTimeConstraint{layout: layout}
}

func (c *DateTimeConstraint) Validate(path string, value any, _ *validation.Context, _ validation.Validator) (validation.Errors, error) {
	if c.layout == "" {
		return nil, validation.NewLogicError(validation.ErrInvalidConstraint, "datetime constraint at %q has an empty layout", path)
	}

	if isNil(value) {
		return nil, nil
	}

	switch value.(type) {
	case time.Time, *time.Time:
		return nil, nil
	}

	s, ok := stringOf(value)
	if !ok {
		return invalidType(path, KeyDateTimeInvalidType, value), nil
	}
	if s == "" {
		return nil, nil
	}

	if _, err := time.Parse(c.layout, s); err != nil {
		return validation.Errors{validation.NewError(path, KeyDateTimeInvalidValue, value, map[string]any{
			"format": c.layout,
		})}, nil
	}
	return nil, nil
}
