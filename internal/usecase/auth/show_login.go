package auth

import (
	"context"

	"back-office/internal/domain/entity"
	"back-office/internal/observability/metrics"
	"back-office/internal/observability/tracing"
)

// ShowLoginUseCase asks the provider for a login description and renders it.
type ShowLoginUseCase struct {
	Provider  LoginProvider
	Presenter LoginPresenter
}

func NewShowLoginUseCase(provider LoginProvider, presenter LoginPresenter) *ShowLoginUseCase {
	return &ShowLoginUseCase{Provider: provider, Presenter: presenter}
}

func (uc *ShowLoginUseCase) Execute(ctx context.Context) (entity.RenderOutput, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "auth.ShowLogin")
	defer span.End()

	login, err := uc.Provider.GetLogin(ctx)
	if err != nil {
		metrics.RecordUseCaseFailure("show_login", "unexpected")
		span.RecordError(err)
		return nil, err
	}

	out, err := uc.Presenter.PresentLogin(login)
	if err != nil {
		metrics.RecordUseCaseFailure("show_login", "unexpected")
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

var _ ShowLoginService = (*ShowLoginUseCase)(nil)
