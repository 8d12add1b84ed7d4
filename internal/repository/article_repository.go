// Package repository declares the driven ports for article storage.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/google/uuid"

	"back-office/internal/domain/entity"
)

// GetArticleRepository loads a single article.
//
// Implementations return an error matching article.ErrNotFound when no row
// exists and article.ErrPersistence for any other storage failure.
type GetArticleRepository interface {
	GetArticleByID(ctx context.Context, id uuid.UUID) (entity.Article, error)
}

// StoreArticleRepository persists a new article and returns its generated id.
type StoreArticleRepository interface {
	StoreArticle(ctx context.Context, article entity.NewArticle) (uuid.UUID, error)
}

// ArticleRepository is satisfied by adapters that can both read and write.
// The store use-case re-reads the row it wrote, so it needs both halves.
type ArticleRepository interface {
	GetArticleRepository
	StoreArticleRepository
}
