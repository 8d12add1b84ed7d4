package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormInput_AllFields(t *testing.T) {
	in, err := NewFormInput(FormInputConfig{
		ID:          "email",
		Name:        "email",
		Title:       "Email",
		Placeholder: "jonhdoe@gmail.com",
		InputType:   "email",
		Required:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "email", in.ID())
	assert.Equal(t, "email", in.Name())
	assert.Equal(t, "", in.Value())
	assert.Equal(t, "Email", in.Title())
	assert.Equal(t, "jonhdoe@gmail.com", in.Placeholder())
	assert.Equal(t, "email", in.InputType())
	assert.True(t, in.Required())
}

func TestNewFormInput_Defaults(t *testing.T) {
	in, err := NewFormInput(FormInputConfig{ID: "email", Title: "Email"})
	require.NoError(t, err)

	assert.Equal(t, "email", in.Name(), "name defaults to id")
	assert.Equal(t, "text", in.InputType())
	assert.False(t, in.Required())
}

func TestNewFormInput_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		cfg   FormInputConfig
		field string
	}{
		{name: "missing id", cfg: FormInputConfig{Title: "Email"}, field: "id"},
		{name: "missing title", cfg: FormInputConfig{ID: "email"}, field: "title"},
		{name: "missing both", cfg: FormInputConfig{Name: "email"}, field: "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormInput(tt.cfg)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestNewFormButton(t *testing.T) {
	b, err := NewFormButton(FormButtonConfig{ID: "submit_form", Title: "Send", ButtonType: "reset"})
	require.NoError(t, err)
	assert.Equal(t, "submit_form", b.ID())
	assert.Equal(t, "Send", b.Title())
	assert.Equal(t, "reset", b.ButtonType())

	b, err = NewFormButton(FormButtonConfig{ID: "submit", Title: "Login"})
	require.NoError(t, err)
	assert.Equal(t, "submit", b.ButtonType())

	_, err = NewFormButton(FormButtonConfig{ID: "submit_form", ButtonType: "submit"})
	assert.Error(t, err)
}

func TestDefaultFormButton(t *testing.T) {
	b := DefaultFormButton()
	assert.Equal(t, "submit", b.ID())
	assert.Equal(t, "Submit", b.Title())
	assert.Equal(t, "button", b.ButtonType())
}

func TestNewForm_Defaults(t *testing.T) {
	f, err := NewForm(FormConfig{})
	require.NoError(t, err)

	assert.Equal(t, "/", f.Action())
	assert.Equal(t, FormMethodGet, f.Method())
	assert.Empty(t, f.Fields())
	assert.Equal(t, DefaultFormButton(), f.Submit())
}

func TestNewForm_KeepsFieldOrderAndIsImmutable(t *testing.T) {
	email, err := NewFormInput(FormInputConfig{ID: "email", Title: "Email"})
	require.NoError(t, err)
	password, err := NewFormInput(FormInputConfig{ID: "password", Title: "Password", InputType: "password"})
	require.NoError(t, err)

	fields := []FormInput{email, password}
	f, err := NewForm(FormConfig{ID: "login-form", Method: FormMethodPost, Fields: fields})
	require.NoError(t, err)

	fields[0] = password
	got := f.Fields()
	require.Len(t, got, 2)
	assert.Equal(t, "email", got[0].ID())
	assert.Equal(t, "password", got[1].ID())

	got[0] = password
	assert.Equal(t, "email", f.Fields()[0].ID())
}

func TestNewForm_RejectsUnbuiltFields(t *testing.T) {
	_, err := NewForm(FormConfig{Fields: []FormInput{{}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestFormMethod(t *testing.T) {
	tests := []struct {
		method FormMethod
		str    string
		html   string
	}{
		{FormMethodGet, "GET", "GET"},
		{FormMethodPost, "POST", "POST"},
		{FormMethodPut, "PUT", "POST"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.method.String())
			assert.Equal(t, tt.html, tt.method.HTMLMethod())

			parsed, err := ParseFormMethod(tt.str)
			require.NoError(t, err)
			assert.Equal(t, tt.method, parsed)
		})
	}

	_, err := ParseFormMethod("PATCH")
	assert.Error(t, err)
}
