// Package login provides the built-in email and password login form.
package login

import (
	"context"

	"back-office/internal/domain/entity"
	authUC "back-office/internal/usecase/auth"
)

const (
	FormID     = "login-form"
	FormAction = "/auth/login"
	FormTitle  = "Welcome to Tiagocode"
)

// TokenIssuer issues an anti-forgery token bound to a form id.
type TokenIssuer interface {
	Issue(formID string) (string, error)
}

// DefaultProvider describes the email and password form. With a nil
// issuer the form carries no csrf token.
type DefaultProvider struct {
	tokens TokenIssuer
}

func NewDefaultProvider(tokens TokenIssuer) *DefaultProvider {
	return &DefaultProvider{tokens: tokens}
}

func (p *DefaultProvider) GetLogin(ctx context.Context) (entity.LoginProviderOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, authUC.Unexpected("get login", err)
	}

	email, err := entity.NewFormInput(entity.FormInputConfig{
		ID:          "email",
		Title:       "Email",
		Placeholder: "jonhdoe@gmail.com",
		InputType:   "email",
		Required:    true,
	})
	if err != nil {
		return nil, authUC.Unexpected("build email input", err)
	}

	password, err := entity.NewFormInput(entity.FormInputConfig{
		ID:          "password",
		Title:       "Password",
		Placeholder: "*************",
		InputType:   "password",
		Required:    true,
	})
	if err != nil {
		return nil, authUC.Unexpected("build password input", err)
	}

	submit, err := entity.NewFormButton(entity.FormButtonConfig{ID: "submit", Title: "Login"})
	if err != nil {
		return nil, authUC.Unexpected("build submit button", err)
	}

	var token string
	if p.tokens != nil {
		if token, err = p.tokens.Issue(FormID); err != nil {
			return nil, authUC.Unexpected("issue csrf token", err)
		}
	}

	form, err := entity.NewForm(entity.FormConfig{
		ID:        FormID,
		Action:    FormAction,
		Title:     FormTitle,
		Method:    entity.FormMethodPost,
		CSRFToken: token,
		Fields:    []entity.FormInput{email, password},
		Submit:    &submit,
	})
	if err != nil {
		return nil, authUC.Unexpected("build login form", err)
	}
	return entity.DefaultLogin{Form: form}, nil
}

var _ authUC.LoginProvider = (*DefaultProvider)(nil)
