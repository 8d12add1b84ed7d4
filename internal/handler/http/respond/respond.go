// Package respond writes HTTP responses. Error helpers never expose internal
// error text for 5xx responses.
package respond

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"back-office/internal/observability/logging"
)

// ErrorBody is the JSON error envelope.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// JSON writes v as a JSON document with the given status.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// headers are already sent
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// HTML writes an HTML document with the given status.
func HTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}

// Error writes err's message as a JSON error. Use it only for messages that
// are safe to show, such as request decoding failures.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// ValidationFailed writes a 400 listing the offending fields.
func ValidationFailed(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: "validation failed", Fields: fields})
}

var safeFragments = []string{
	"required",
	"invalid",
	"not found",
	"must be",
	"cannot be",
	"too long",
	"too short",
}

// SafeError writes err as a JSON error when it is a client error with a
// recognizably safe message. Everything else, and every 5xx, is logged with
// secrets masked and answered with a generic message.
func SafeError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if err == nil {
		return
	}
	JSON(w, code, ErrorBody{Error: publicMessage(r, code, err)})
}

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Code}} {{.Status}}</title>
<link rel="stylesheet" href="/static/css/app.css">
</head>
<body>
<main class="error">
<h1 class="error-status">{{.Code}} {{.Status}}</h1>
<p class="error-message">{{.Message}}</p>
</main>
</body>
</html>
`))

type errorPageData struct {
	Code    int
	Status  string
	Message string
}

// SafeHTMLError is SafeError for pages: the same public message, rendered
// as a minimal HTML document.
func SafeHTMLError(w http.ResponseWriter, r *http.Request, code int, err error) {
	if err == nil {
		return
	}
	var buf bytes.Buffer
	data := errorPageData{Code: code, Status: http.StatusText(code), Message: publicMessage(r, code, err)}
	if execErr := errorPage.Execute(&buf, data); execErr != nil {
		http.Error(w, data.Status, code)
		return
	}
	HTML(w, code, buf.String())
}

// publicMessage returns the text a client may see for err, logging the
// cause when it has to be hidden.
func publicMessage(r *http.Request, code int, err error) string {
	msg := err.Error()
	if code < http.StatusInternalServerError && isSafe(msg) {
		return msg
	}

	logging.WithRequest(r.Context(), logging.FromContext(r.Context())).Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))

	if code < http.StatusInternalServerError {
		return strings.ToLower(http.StatusText(code))
	}
	return "internal server error"
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, frag := range safeFragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
