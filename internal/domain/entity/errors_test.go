package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field",
			field:    "title",
			message:  "is required",
			expected: "validation error on field 'title': is required",
		},
		{
			name:     "empty field name",
			field:    "",
			message:  "test message",
			expected: "validation error on field '': test message",
		},
		{
			name:     "empty message",
			field:    "email",
			message:  "",
			expected: "validation error on field 'email': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_MatchesSentinel(t *testing.T) {
	var err error = &ValidationError{Field: "username", Message: "must not contain spaces"}

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.NotErrorIs(t, err, errors.New("validation failed"), "only the sentinel itself matches")

	wrapped := fmt.Errorf("create user: %w", err)
	assert.ErrorIs(t, wrapped, ErrValidationFailed)

	var vErr *ValidationError
	assert.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, "username", vErr.Field)
}
