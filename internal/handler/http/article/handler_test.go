package article_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"back-office/internal/domain/entity"
	"back-office/internal/handler/http/article"
	"back-office/internal/handler/http/respond"
	artUC "back-office/internal/usecase/article"
)

/* ─────────────────────────── mocks ─────────────────────────── */

type mockGet struct{ mock.Mock }

func (m *mockGet) Execute(ctx context.Context, id uuid.UUID) (entity.RenderOutput, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(entity.RenderOutput)
	return out, args.Error(1)
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Execute(ctx context.Context, in entity.NewArticle) (entity.RenderOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(entity.RenderOutput)
	return out, args.Error(1)
}

func newMux(get artUC.GetService, store artUC.StoreService) *http.ServeMux {
	mux := http.NewServeMux()
	article.RegisterAPI(mux, get, store)
	article.RegisterWeb(mux, get)
	return mux
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	mux.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorBody
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

var (
	validTitle   = "How to train your dragon"
	validContent = strings.Repeat("Very carefully. ", 10)
)

/* ─────────────────────────── get ─────────────────────────── */

func TestAPIGet_Success(t *testing.T) {
	id := uuid.New()
	get := &mockGet{}
	get.On("Execute", mock.Anything, id).Return(entity.JSON{Value: map[string]string{"id": id.String()}}, nil)

	rr := serve(newMux(get, &mockStore{}), http.MethodGet, "/api/articles/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":"`+id.String()+`"}`, rr.Body.String())
	get.AssertExpectations(t)
}

func TestAPIGet_InvalidID(t *testing.T) {
	get := &mockGet{}
	rr := serve(newMux(get, &mockStore{}), http.MethodGet, "/api/articles/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	get.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestAPIGet_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", artUC.NotFound("article not found"), http.StatusNotFound},
		{"persistence", artUC.Persistence("GetArticleByID", assert.AnError), http.StatusInternalServerError},
		{"presenter", artUC.Presenter("render", assert.AnError), http.StatusInternalServerError},
		{"unexpected", artUC.Unexpected("boom", nil), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			get := &mockGet{}
			get.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rr := serve(newMux(get, &mockStore{}), http.MethodGet, "/api/articles/"+uuid.NewString(), "")
			assert.Equal(t, tt.code, rr.Code)
			if tt.code == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", errorBody(t, rr).Error)
			}
		})
	}
}

func TestWebGet_RendersHTML(t *testing.T) {
	id := uuid.New()
	get := &mockGet{}
	get.On("Execute", mock.Anything, id).Return(entity.HTML("<h1>title</h1>"), nil)

	rr := serve(newMux(get, &mockStore{}), http.MethodGet, "/admin/articles/"+id.String(), "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "<h1>title</h1>", rr.Body.String())
}

func TestWebGet_ErrorsRenderHTML(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		err     error
		code    int
		message string
	}{
		{"bad id", "/admin/articles/not-a-uuid", nil, http.StatusBadRequest, "invalid"},
		{"not found", "/admin/articles/" + uuid.NewString(), artUC.NotFound("article not found"), http.StatusNotFound, "article not found"},
		{"persistence", "/admin/articles/" + uuid.NewString(), artUC.Persistence("GetArticleByID", assert.AnError), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			get := &mockGet{}
			get.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rr := serve(newMux(get, &mockStore{}), http.MethodGet, tt.target, "")
			assert.Equal(t, tt.code, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

			doc, err := goquery.NewDocumentFromReader(rr.Body)
			require.NoError(t, err)
			assert.Contains(t, doc.Find("h1.error-status").Text(), http.StatusText(tt.code))
			assert.Contains(t, doc.Find(".error-message").Text(), tt.message)
			assert.NotContains(t, doc.Text(), assert.AnError.Error())
		})
	}
}

/* ─────────────────────────── store ─────────────────────────── */

func TestAPIStore_Success(t *testing.T) {
	authorID := uuid.New()
	store := &mockStore{}
	store.On("Execute", mock.Anything, entity.NewArticle{
		AuthorID: authorID, Title: validTitle, Content: validContent,
	}).Return(entity.JSON{Value: map[string]string{"title": validTitle}}, nil)

	body, _ := json.Marshal(map[string]string{
		"author_id": authorID.String(),
		"title":     validTitle,
		"content":   validContent,
	})
	rr := serve(newMux(&mockGet{}, store), http.MethodPost, "/api/articles", string(body))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"title":"`+validTitle+`"}`, rr.Body.String())
	store.AssertExpectations(t)
}

func TestAPIStore_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{name: "malformed json", body: `{"title":`},
		{name: "wrong type", body: `{"title": 12}`},
		{
			name:   "invalid author",
			body:   `{"author_id":"invalid_author_uuid","title":"How to train your dragon","content":"Very carefully."}`,
			fields: []string{"author_id", "content"},
		},
		{
			name:   "empty fields",
			body:   `{"author_id":"` + uuid.NewString() + `","title":"","content":""}`,
			fields: []string{"title", "content"},
		},
		{
			name:   "short title",
			body:   `{"author_id":"` + uuid.NewString() + `","title":"too short","content":"` + validContent + `"}`,
			fields: []string{"title"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			rr := serve(newMux(&mockGet{}, store), http.MethodPost, "/api/articles", tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			body := errorBody(t, rr)
			for _, f := range tt.fields {
				assert.Contains(t, body.Fields, f)
			}
			store.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestAPIStore_Failure(t *testing.T) {
	store := &mockStore{}
	store.On("Execute", mock.Anything, mock.Anything).
		Return(nil, artUC.Persistence("StoreArticle", assert.AnError))

	body, _ := json.Marshal(map[string]string{
		"author_id": uuid.NewString(),
		"title":     validTitle,
		"content":   validContent,
	})
	rr := serve(newMux(&mockGet{}, store), http.MethodPost, "/api/articles", string(body))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "StoreArticle")
}

func TestStoreRequest_Validate(t *testing.T) {
	req := article.StoreRequest{AuthorID: uuid.NewString(), Title: validTitle, Content: validContent}
	assert.Nil(t, req.Validate())

	req.Title = strings.Repeat("x", 9)
	assert.Equal(t, map[string]string{"title": "must be at least 10 characters"}, req.Validate())
}

func TestStoreRequest_Validate_AuthorID(t *testing.T) {
	tests := []struct {
		name     string
		authorID string
		valid    bool
	}{
		{"lowercase", "0c2a3c4e-0d1e-4f5a-8b7c-6d5e4f3a2b1c", true},
		{"uppercase", "0C2A3C4E-0D1E-4F5A-8B7C-6D5E4F3A2B1C", true},
		{"mixed case", "0c2A3c4E-0d1e-4F5a-8b7C-6d5e4f3a2b1c", true},
		{"not a uuid", "invalid_author_uuid", false},
		{"truncated", "0c2a3c4e-0d1e-4f5a-8b7c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := article.StoreRequest{AuthorID: tt.authorID, Title: validTitle, Content: validContent}
			if !tt.valid {
				assert.Equal(t, map[string]string{"author_id": "must be a valid UUID"}, req.Validate())
				return
			}
			assert.Nil(t, req.Validate())

			in, err := req.NewArticle()
			require.NoError(t, err)
			assert.Equal(t, uuid.MustParse(tt.authorID), in.AuthorID)
		})
	}
}
