package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"back-office/internal/handler/http/respond"
	artUC "back-office/internal/usecase/article"
)

// APIStoreHandler serves POST /api/articles.
type APIStoreHandler struct{ Svc artUC.StoreService }

// ServeHTTP creates an article and returns it as stored.
// @Summary      Create article
// @Description  Stores a new article and returns it with its generated id and timestamp
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body StoreRequest true "Article"
// @Success      200 {object} presenter.ArticleViewModel
// @Failure      400 {object} respond.ErrorBody "Bad request - malformed JSON or validation failure"
// @Failure      413 {object} respond.ErrorBody "Request body too large"
// @Failure      429 {object} respond.ErrorBody "Too many requests - rate limit exceeded"
// @Failure      500 {object} respond.ErrorBody "Internal server error"
// @Router       /api/articles [post]
func (h APIStoreHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req StoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(w, http.StatusRequestEntityTooLarge, errors.New("request body too large"))
			return
		}
		respond.Error(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if fields := req.Validate(); fields != nil {
		respond.ValidationFailed(w, fields)
		return
	}
	in, err := req.NewArticle()
	if err != nil {
		respond.ValidationFailed(w, map[string]string{"author_id": "must be a valid UUID"})
		return
	}

	out, err := h.Svc.Execute(r.Context(), in)
	if err != nil {
		respond.SafeError(w, r, statusFor(err), err)
		return
	}
	respond.Render(w, r, http.StatusOK, out)
}
