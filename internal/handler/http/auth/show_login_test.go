package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"back-office/internal/domain/entity"
	"back-office/internal/handler/http/auth"
	authUC "back-office/internal/usecase/auth"
)

type stubShowLogin struct {
	out entity.RenderOutput
	err error
}

func (s stubShowLogin) Execute(context.Context) (entity.RenderOutput, error) { return s.out, s.err }

func serve(svc authUC.ShowLoginService, target string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	auth.Register(mux, svc)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestShowLogin(t *testing.T) {
	rr := serve(stubShowLogin{out: entity.HTML("<form></form>")}, "/admin/auth/login")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "<form></form>", rr.Body.String())
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestShowLogin_Failure(t *testing.T) {
	rr := serve(stubShowLogin{err: authUC.Unexpected("render auth/login", assert.AnError)}, "/admin/auth/login")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "internal server error")
	assert.NotContains(t, rr.Body.String(), "auth/login")
}

func TestShowLogin_UnknownRoute(t *testing.T) {
	rr := serve(stubShowLogin{out: entity.HTML("")}, "/admin/auth/")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
