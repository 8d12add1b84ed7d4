// Package auth provides the HTTP handlers of the authentication pages.
package auth

import (
	"net/http"

	"back-office/internal/handler/http/respond"
	authUC "back-office/internal/usecase/auth"
)

// ShowLoginHandler serves GET /admin/auth/{form_id}.
type ShowLoginHandler struct{ Svc authUC.ShowLoginService }

func (h ShowLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	out, err := h.Svc.Execute(r.Context())
	if err != nil {
		respond.SafeHTMLError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	respond.Render(w, r, http.StatusOK, out)
}

// Register mounts the authentication pages.
func Register(mux *http.ServeMux, svc authUC.ShowLoginService) {
	mux.Handle("GET /admin/auth/{form_id}", ShowLoginHandler{svc})
}
