package article

import (
	"net/http"

	"back-office/internal/handler/http/pathutil"
	"back-office/internal/handler/http/respond"
	artUC "back-office/internal/usecase/article"
)

// APIGetHandler serves GET /api/articles/{id}.
type APIGetHandler struct{ Svc artUC.GetService }

// ServeHTTP returns one article.
// @Summary      Get article
// @Description  Returns the article with the given id
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Success      200 {object} presenter.ArticleViewModel
// @Failure      400 {object} respond.ErrorBody "Bad request - invalid article ID"
// @Failure      404 {object} respond.ErrorBody "Not found - article not found"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /api/articles/{id} [get]
func (h APIGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveGet(h.Svc, w, r, respond.SafeError)
}

// WebGetHandler serves GET /admin/articles/{id} as an HTML page. Errors
// are HTML pages too.
type WebGetHandler struct{ Svc artUC.GetService }

func (h WebGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serveGet(h.Svc, w, r, respond.SafeHTMLError)
}

type errorWriter func(w http.ResponseWriter, r *http.Request, code int, err error)

func serveGet(svc artUC.GetService, w http.ResponseWriter, r *http.Request, fail errorWriter) {
	id, err := pathutil.UUIDValue(r, "id")
	if err != nil {
		fail(w, r, http.StatusBadRequest, err)
		return
	}

	out, err := svc.Execute(r.Context(), id)
	if err != nil {
		fail(w, r, statusFor(err), err)
		return
	}
	respond.Render(w, r, http.StatusOK, out)
}
