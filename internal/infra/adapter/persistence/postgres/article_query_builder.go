package postgres

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"back-office/internal/domain/entity"
)

var articleColumns = []string{"id", "author_id", "title", "content", "created_at"}

// ArticleQueryBuilder renders the article statements with $n placeholders.
type ArticleQueryBuilder struct {
	psql sq.StatementBuilderType
}

func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

// SelectByID reads one article.
func (b *ArticleQueryBuilder) SelectByID(id uuid.UUID) (string, []any, error) {
	return b.psql.
		Select(articleColumns...).
		From("articles").
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// Insert writes a row with caller-generated id and timestamp.
func (b *ArticleQueryBuilder) Insert(row entity.Article) (string, []any, error) {
	return b.psql.
		Insert("articles").
		Columns(articleColumns...).
		Values(row.ID, row.AuthorID, row.Title, row.Content, row.CreatedAt).
		ToSql()
}
