// Package entity defines the core domain entities of the back office.
// Entities are plain values: they carry data and accessors but no persistence
// or rendering behavior.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article is a persisted article as read back from storage.
type Article struct {
	ID        uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

// NewArticle is the input for creating an article.
// Length rules on Title and Content are enforced by the inbound adapter.
type NewArticle struct {
	AuthorID uuid.UUID
	Title    string
	Content  string
}
