package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validation/pkg/validation"
	"github.com/dmitrymomot/validation/pkg/validation/constraint"
)

func TestTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		value any
		want  []string
	}{
		{"valid email", "email", "user@example.com", []string{}},
		{"invalid email", "email", "nope", []string{"constraint.tag.email"}},
		{"nil skipped", "email", nil, []string{}},
		{"required empty", "required", "", []string{"constraint.tag.required"}},
		{"min length", "min=3,max=20", "ab", []string{"constraint.tag.min"}},
		{"max length", "min=3,max=5", "abcdef", []string{"constraint.tag.max"}},
		{"oneof", "oneof=draft published", "deleted", []string{"constraint.tag.oneof"}},
		{"numeric", "gte=18", 16, []string{"constraint.tag.gte"}},
		{"numeric passes", "gte=18", 21, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs, err := constraint.Tag(tt.tag).Validate("field", tt.value, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, errs.Keys())
		})
	}

	t.Run("reports tag and param", func(t *testing.T) {
		t.Parallel()
		errs, err := constraint.Tag("min=3").Validate("name", "ab", nil, nil)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Path())
		assert.Equal(t, "ab", errs[0].Input())
		assert.Equal(t, map[string]any{"tag": "min", "param": "3"}, errs[0].Args())
	})

	t.Run("unknown tag is a logic error", func(t *testing.T) {
		t.Parallel()
		errs, err := constraint.Tag("definitely_not_a_tag").Validate("name", "x", nil, nil)
		assert.Nil(t, errs)
		assert.ErrorIs(t, err, validation.ErrInvalidConstraint)
		assert.True(t, validation.IsLogicError(err))
	})

	t.Run("empty tag is a logic error", func(t *testing.T) {
		t.Parallel()
		_, err := constraint.Tag(" ").Validate("name", "x", nil, nil)
		assert.ErrorIs(t, err, validation.ErrInvalidConstraint)
	})
}
