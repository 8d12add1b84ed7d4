package article

import (
	"context"

	"github.com/google/uuid"

	"back-office/internal/domain/entity"
)

// GetArticlePresenter renders a stored article. A rendering failure is
// reported as a KindPresenter *Error.
type GetArticlePresenter interface {
	PresentArticle(article entity.Article) (entity.RenderOutput, error)
}

// GetService is the driving port for reading an article.
type GetService interface {
	Execute(ctx context.Context, id uuid.UUID) (entity.RenderOutput, error)
}

// StoreService is the driving port for creating an article.
type StoreService interface {
	Execute(ctx context.Context, article entity.NewArticle) (entity.RenderOutput, error)
}
