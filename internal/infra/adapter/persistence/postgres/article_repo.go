// Package postgres implements the article repository on PostgreSQL through
// database/sql and the pgx driver. Calls pass through the database circuit
// breaker.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"back-office/internal/domain/entity"
	"back-office/internal/observability/metrics"
	"back-office/internal/observability/tracing"
	"back-office/internal/repository"
	"back-office/internal/resilience/circuitbreaker"
	artUC "back-office/internal/usecase/article"
)

// Querier is the subset of circuitbreaker.DB the repository uses.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowScan(ctx context.Context, query string, args []any, dest ...any) error
}

type ArticleRepo struct {
	db           Querier
	queryBuilder *ArticleQueryBuilder
	now          func() time.Time
	newID        func() uuid.UUID
}

// NewArticleRepo guards db with the default database breaker.
func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return NewArticleRepoWithQuerier(circuitbreaker.NewDB(db))
}

func NewArticleRepoWithQuerier(q Querier) *ArticleRepo {
	return &ArticleRepo{
		db:           q,
		queryBuilder: NewArticleQueryBuilder(),
		now:          time.Now,
		newID:        uuid.New,
	}
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracing.GetTracer().Start(ctx, "postgres."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "postgresql")),
	)
}

func (repo *ArticleRepo) GetArticleByID(ctx context.Context, id uuid.UUID) (entity.Article, error) {
	ctx, span := startSpan(ctx, "GetArticleByID")
	defer span.End()
	defer func(start time.Time) { metrics.RecordDBQuery("select_article", time.Since(start)) }(time.Now())

	query, args, err := repo.queryBuilder.SelectByID(id)
	if err != nil {
		return entity.Article{}, artUC.Unexpected("build select", err)
	}

	var a entity.Article
	err = repo.db.QueryRowScan(ctx, query, args, &a.ID, &a.AuthorID, &a.Title, &a.Content, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Article{}, artUC.NotFound(fmt.Sprintf("article %s not found", id))
	}
	if err != nil {
		span.RecordError(err)
		return entity.Article{}, artUC.Persistence("GetArticleByID", err)
	}
	return a, nil
}

func (repo *ArticleRepo) StoreArticle(ctx context.Context, in entity.NewArticle) (uuid.UUID, error) {
	ctx, span := startSpan(ctx, "StoreArticle")
	defer span.End()
	defer func(start time.Time) { metrics.RecordDBQuery("insert_article", time.Since(start)) }(time.Now())

	row := entity.Article{
		ID:        repo.newID(),
		AuthorID:  in.AuthorID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: repo.now().UTC().Truncate(time.Microsecond),
	}
	query, args, err := repo.queryBuilder.Insert(row)
	if err != nil {
		return uuid.Nil, artUC.Unexpected("build insert", err)
	}

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		span.RecordError(err)
		return uuid.Nil, artUC.Persistence("StoreArticle", err)
	}
	return row.ID, nil
}
