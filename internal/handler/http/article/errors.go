package article

import (
	"errors"
	"net/http"

	artUC "back-office/internal/usecase/article"
)

// statusFor maps a use-case error to a response status.
func statusFor(err error) int {
	if errors.Is(err, artUC.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
