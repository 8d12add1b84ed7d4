package auth

import (
	"context"

	"back-office/internal/domain/entity"
)

// LoginProvider describes the login mechanism to offer.
type LoginProvider interface {
	GetLogin(ctx context.Context) (entity.LoginProviderOutput, error)
}

// LoginPresenter renders a provider's output.
type LoginPresenter interface {
	PresentLogin(output entity.LoginProviderOutput) (entity.RenderOutput, error)
}

// ShowLoginService is the driving port for the login page.
type ShowLoginService interface {
	Execute(ctx context.Context) (entity.RenderOutput, error)
}
