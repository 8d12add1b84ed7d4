package article

import (
	"net/http"

	artUC "back-office/internal/usecase/article"
)

// RegisterAPI mounts the JSON endpoints.
func RegisterAPI(mux *http.ServeMux, get artUC.GetService, store artUC.StoreService) {
	mux.Handle("POST /api/articles", APIStoreHandler{store})
	mux.Handle("GET /api/articles/{id}", APIGetHandler{get})
}

// RegisterWeb mounts the admin pages.
func RegisterWeb(mux *http.ServeMux, get artUC.GetService) {
	mux.Handle("GET /admin/articles/{id}", WebGetHandler{get})
}
