package constraint_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/validation"
	"github.com/dmitrymomot/validation/pkg/validation/constraint"
)

func TestPattern(t *testing.T) {
	t.Parallel()

	slug := constraint.Pattern(`^[a-z0-9-]+$`)

	tests := []struct {
		name  string
		value any
		valid bool
	}{
		{"nil", nil, true},
		{"match", "hello-world", true},
		{"miss", "Hello World", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs, err := slug.Validate("slug", tt.value, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, errs.IsEmpty())
		})
	}

	t.Run("reports pattern", func(t *testing.T) {
		t.Parallel()
		errs, err := slug.Validate("slug", "UPPER", nil, nil)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, constraint.KeyPatternInvalidValue, errs[0].Key())
		assert.Equal(t, map[string]any{"pattern": `^[a-z0-9-]+$`}, errs[0].Args())
	})

	t.Run("compiled expression", func(t *testing.T) {
		t.Parallel()
		errs, err := constraint.MatchRegexp(regexp.MustCompile(`^\d+$`)).Validate("code", "12a", nil, nil)
		require.NoError(t, err)
		assert.Len(t, errs, 1)
	})

	t.Run("rejects non strings", func(t *testing.T) {
		t.Parallel()
		errs, err := slug.Validate("slug", 42, nil, nil)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, constraint.KeyPatternInvalidType, errs[0].Key())
	})

	t.Run("invalid expression is a logic error", func(t *testing.T) {
		t.Parallel()
		_, err := constraint.Pattern(`([`).Validate("slug", "x", nil, nil)
		assert.ErrorIs(t, err, validation.ErrInvalidConstraint)
	})

	t.Run("nil compiled expression is a logic error", func(t *testing.T) {
		t.Parallel()
		var c *constraint.PatternConstraint
		require.NotPanics(t, func() { c = constraint.MatchRegexp(nil) })

		errs, err := c.Validate("code", "12", nil, nil)
		assert.Nil(t, errs)
		assert.ErrorIs(t, err, validation.ErrInvalidConstraint)
		assert.True(t, validation.IsLogicError(err))
	})
}
