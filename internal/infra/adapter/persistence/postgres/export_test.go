package postgres

import (
	"time"

	"github.com/google/uuid"
)

// WithClock fixes id generation and the clock for deterministic tests.
func (repo *ArticleRepo) WithClock(now func() time.Time, newID func() uuid.UUID) *ArticleRepo {
	repo.now = now
	repo.newID = newID
	return repo
}
