// Package sqlite implements the article repository on an embedded SQLite
// database (modernc.org/sqlite). It backs local development and the HTTP
// end-to-end tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"back-office/internal/domain/entity"
	"back-office/internal/observability/metrics"
	"back-office/internal/observability/tracing"
	"back-office/internal/repository"
	artUC "back-office/internal/usecase/article"
)

var articleColumns = []string{"id", "author_id", "title", "content", "created_at"}

type ArticleRepo struct {
	db  *sql.DB
	sb  sq.StatementBuilderType
	now func() time.Time
}

func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now: time.Now,
	}
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracing.GetTracer().Start(ctx, "sqlite."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("db.system", "sqlite")),
	)
}

func (repo *ArticleRepo) GetArticleByID(ctx context.Context, id uuid.UUID) (entity.Article, error) {
	ctx, span := startSpan(ctx, "GetArticleByID")
	defer span.End()
	defer func(start time.Time) { metrics.RecordDBQuery("select_article", time.Since(start)) }(time.Now())

	query, args, err := repo.sb.
		Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"id": id.String()}).
		Limit(1).
		ToSql()
	if err != nil {
		return entity.Article{}, artUC.Unexpected("build select", err)
	}

	var a entity.Article
	err = repo.db.QueryRowContext(ctx, query, args...).
		Scan(&a.ID, &a.AuthorID, &a.Title, &a.Content, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Article{}, artUC.NotFound(fmt.Sprintf("article %s not found", id))
	}
	if err != nil {
		span.RecordError(err)
		return entity.Article{}, artUC.Persistence("GetArticleByID", err)
	}
	a.CreatedAt = a.CreatedAt.UTC()
	return a, nil
}

func (repo *ArticleRepo) StoreArticle(ctx context.Context, in entity.NewArticle) (uuid.UUID, error) {
	ctx, span := startSpan(ctx, "StoreArticle")
	defer span.End()
	defer func(start time.Time) { metrics.RecordDBQuery("insert_article", time.Since(start)) }(time.Now())

	id := uuid.New()
	query, args, err := repo.sb.
		Insert("articles").
		Columns(articleColumns...).
		Values(id.String(), in.AuthorID.String(), in.Title, in.Content,
			repo.now().UTC().Truncate(time.Microsecond)).
		ToSql()
	if err != nil {
		return uuid.Nil, artUC.Unexpected("build insert", err)
	}

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		span.RecordError(err)
		return uuid.Nil, artUC.Persistence("StoreArticle", err)
	}
	return id, nil
}
