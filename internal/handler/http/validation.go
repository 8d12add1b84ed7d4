package http

import (
	"net/http"

	"back-office/internal/handler/http/respond"
)

const (
	maxPathLength   = 2048
	maxHeaderLength = 8192
)

// InputValidation rejects oversized URIs and headers and caps the request
// body at maxBodyBytes.
func InputValidation(maxBodyBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength {
				respond.JSON(w, http.StatusRequestURITooLong, respond.ErrorBody{Error: "URI too long"})
				return
			}
			for _, name := range []string{"Authorization", "Cookie", "X-Request-ID"} {
				if len(r.Header.Get(name)) > maxHeaderLength {
					respond.JSON(w, http.StatusRequestHeaderFieldsTooLarge,
						respond.ErrorBody{Error: "header too large"})
					return
				}
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
