package pathutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when a path id is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// UUIDValue parses the named ServeMux wildcard of r as a UUID.
//
//	mux.Handle("GET /api/articles/{id}", h)
//	id, err := pathutil.UUIDValue(r, "id")
func UUIDValue(r *http.Request, name string) (uuid.UUID, error) {
	return ParseUUID(r.PathValue(name))
}

// ParseUUID parses s in any form uuid.Parse accepts: hyphenated, 32 hex
// digits, braced or urn:uuid, in either case.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return id, nil
}
