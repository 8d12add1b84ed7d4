package article

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"back-office/internal/domain/entity"
	"back-office/internal/observability/metrics"
	"back-office/internal/observability/tracing"
	"back-office/internal/repository"
)

// GetUseCase loads an article and hands it to a presenter.
type GetUseCase struct {
	Repo      repository.GetArticleRepository
	Presenter GetArticlePresenter
}

// NewGetUseCase wires a GetUseCase.
func NewGetUseCase(repo repository.GetArticleRepository, presenter GetArticlePresenter) *GetUseCase {
	return &GetUseCase{Repo: repo, Presenter: presenter}
}

// Execute returns the presenter's rendering of the article with the given id.
// Repository errors are returned unchanged and the presenter is not called.
func (uc *GetUseCase) Execute(ctx context.Context, id uuid.UUID) (entity.RenderOutput, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Get")
	defer span.End()
	span.SetAttributes(attribute.String("article.id", id.String()))

	art, err := uc.Repo.GetArticleByID(ctx, id)
	if err != nil {
		metrics.RecordUseCaseFailure("get_article", KindOf(err).String())
		span.RecordError(err)
		return nil, err
	}

	out, err := uc.Presenter.PresentArticle(art)
	if err != nil {
		metrics.RecordUseCaseFailure("get_article", KindOf(err).String())
		span.RecordError(err)
		return nil, err
	}
	return out, nil
}

var _ GetService = (*GetUseCase)(nil)
