package article

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"back-office/internal/domain/entity"
	"back-office/internal/observability/metrics"
	"back-office/internal/observability/tracing"
	"back-office/internal/repository"
)

// StoreUseCase persists a new article, reads it back and presents it.
type StoreUseCase struct {
	Repo      repository.ArticleRepository
	Presenter GetArticlePresenter
}

// NewStoreUseCase wires a StoreUseCase.
func NewStoreUseCase(repo repository.ArticleRepository, presenter GetArticlePresenter) *StoreUseCase {
	return &StoreUseCase{Repo: repo, Presenter: presenter}
}

// Execute stores the article and renders the row as persisted, so generated
// fields (id, created_at) come from storage. The write and the read-back are
// separate calls: when the read fails the row is still stored.
func (uc *StoreUseCase) Execute(ctx context.Context, in entity.NewArticle) (entity.RenderOutput, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Store")
	defer span.End()
	span.SetAttributes(attribute.String("article.author_id", in.AuthorID.String()))

	id, err := uc.Repo.StoreArticle(ctx, in)
	if err != nil {
		return nil, uc.fail(span, err)
	}
	metrics.RecordArticleStored()
	span.SetAttributes(attribute.String("article.id", id.String()))

	art, err := uc.Repo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, uc.fail(span, err)
	}

	out, err := uc.Presenter.PresentArticle(art)
	if err != nil {
		return nil, uc.fail(span, err)
	}
	return out, nil
}

func (uc *StoreUseCase) fail(span trace.Span, err error) error {
	metrics.RecordUseCaseFailure("store_article", KindOf(err).String())
	span.RecordError(err)
	return err
}

var _ StoreService = (*StoreUseCase)(nil)
