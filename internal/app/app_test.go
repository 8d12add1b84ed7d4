package app_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "back-office/docs"
	"back-office/internal/app"
	"back-office/internal/config"
	"back-office/internal/domain/entity"
	"back-office/internal/infra/adapter/login"
	"back-office/internal/infra/db"
	"back-office/internal/repository"
)

type testApp struct {
	t         *testing.T
	baseURL   string
	db        *sql.DB
	container *app.Container
	client    *http.Client
	stop      context.CancelFunc
}

func testConfig() *config.Config {
	return &config.Config{
		Application: config.ApplicationConfig{
			Host:            "127.0.0.1",
			Port:            0,
			Name:            "back-office",
			Version:         "test",
			CSRFSecret:      "0123456789abcdef0123456789abcdef",
			CSRFTokenTTL:    time.Minute,
			MaxBodyBytes:    1 << 20,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver: db.DriverSQLite,
			Path:   "file::memory:?_pragma=foreign_keys(1)",
		},
	}
}

// spawnApp starts the full server on a random port over an in-memory
// database and stops it when the test ends. Each customize func may swap
// adapters before the routes are built.
func spawnApp(t *testing.T, cfg *config.Config, customize ...func(*app.Container)) *testApp {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	conn, err := db.Open(ctx, cfg.Database)
	require.NoError(t, err)
	require.NoError(t, db.MigrateUp(ctx, conn, cfg.Database.Driver))

	container, err := app.NewContainer(cfg, conn)
	require.NoError(t, err)
	for _, fn := range customize {
		fn(container)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application, err := app.New(container, logger)
	require.NoError(t, err)
	require.NotZero(t, application.Port())

	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Error("server did not stop")
		}
		_ = conn.Close()
	})

	return &testApp{
		t:         t,
		baseURL:   fmt.Sprintf("http://127.0.0.1:%d", application.Port()),
		db:        conn,
		container: container,
		client:    &http.Client{Timeout: 10 * time.Second},
		stop:      cancel,
	}
}

func (a *testApp) get(path string) *http.Response {
	a.t.Helper()
	resp, err := a.client.Get(a.baseURL + path)
	require.NoError(a.t, err)
	a.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (a *testApp) postJSON(path string, body any) *http.Response {
	a.t.Helper()
	raw, ok := body.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(a.t, err)
	}
	resp, err := a.client.Post(a.baseURL+path, "application/json", bytes.NewReader(raw))
	require.NoError(a.t, err)
	a.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func validArticle() map[string]string {
	return map[string]string{
		"author_id": uuid.NewString(),
		"title":     "How to train your dragon",
		"content":   strings.Repeat("Very carefully, one scale at a time. ", 5),
	}
}

type articleBody struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"authorId"`
	CreatedAt string `json:"createdAt"`
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

/* ───────────────────────── POST /api/articles ───────────────────────── */

func TestStoreArticle_ReturnsStoredArticle(t *testing.T) {
	a := spawnApp(t, testConfig())
	body := validArticle()

	resp := a.postJSON("/api/articles", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	got := decode[articleBody](t, resp)
	_, err := uuid.Parse(got.ID)
	assert.NoError(t, err)
	assert.Equal(t, body["title"], got.Title)
	assert.Equal(t, body["content"], got.Content)
	assert.Equal(t, body["author_id"], got.AuthorID)
	_, err = time.Parse(time.RFC3339, got.CreatedAt)
	assert.NoError(t, err)
}

func TestStoreArticle_PersistsTheArticle(t *testing.T) {
	a := spawnApp(t, testConfig())
	body := validArticle()

	resp := a.postJSON("/api/articles", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var authorID, title, content string
	err := a.db.QueryRow("SELECT author_id, title, content FROM articles").Scan(&authorID, &title, &content)
	require.NoError(t, err)
	assert.Equal(t, body["author_id"], authorID)
	assert.Equal(t, body["title"], title)
	assert.Equal(t, body["content"], content)
}

func TestStoreArticle_InvalidData(t *testing.T) {
	a := spawnApp(t, testConfig())

	tests := []struct {
		name string
		body any
	}{
		{
			name: "invalid author id",
			body: map[string]string{
				"author_id": "invalid_author_uuid",
				"title":     "How to train your dragon",
				"content":   "Very carefully.",
			},
		},
		{
			name: "empty title and content",
			body: map[string]string{"author_id": uuid.NewString(), "title": "", "content": ""},
		},
		{
			name: "malformed JSON",
			body: []byte(`{"title": `),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.postJSON("/api/articles", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var count int
	require.NoError(t, a.db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count))
	assert.Zero(t, count)
}

/* ───────────────────────── GET articles ───────────────────────── */

func TestGetArticle_JSONAndHTML(t *testing.T) {
	a := spawnApp(t, testConfig())
	body := validArticle()

	created := decode[articleBody](t, a.postJSON("/api/articles", body))

	resp := a.get("/api/articles/" + created.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode[articleBody](t, resp))

	page := a.get("/admin/articles/" + created.ID)
	require.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, page.Header.Get("Content-Security-Policy"), "default-src 'self'")

	doc, err := goquery.NewDocumentFromReader(page.Body)
	require.NoError(t, err)
	assert.Equal(t, body["title"], strings.TrimSpace(doc.Find("h1.article-title").Text()))
	assert.Contains(t, doc.Find(".article-author").Text(), body["author_id"])
	assert.Equal(t, strings.TrimSpace(body["content"]), strings.TrimSpace(doc.Find(".article-content").Text()))
}

func TestGetArticle_NotFoundAndBadID(t *testing.T) {
	a := spawnApp(t, testConfig())

	assert.Equal(t, http.StatusNotFound, a.get("/api/articles/"+uuid.NewString()).StatusCode)
	assert.Equal(t, http.StatusBadRequest, a.get("/api/articles/not-a-uuid").StatusCode)

	missing := uuid.NewString()
	page := a.get("/admin/articles/" + missing)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Contains(t, page.Header.Get("Content-Type"), "text/html")
	doc, err := goquery.NewDocumentFromReader(page.Body)
	require.NoError(t, err)
	assert.Contains(t, doc.Find(".error-message").Text(), "article "+missing+" not found")
}

/* ───────────────────────── login page ───────────────────────── */

func TestLoginPage(t *testing.T) {
	a := spawnApp(t, testConfig())

	resp := a.get("/admin/auth/login")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)

	form := doc.Find("form#" + login.FormID)
	require.Equal(t, 1, form.Length())
	assert.Equal(t, login.FormAction, form.AttrOr("action", ""))
	assert.Equal(t, "post", form.AttrOr("method", ""))
	assert.Equal(t, 1, form.Find(`input[name="email"][required]`).Length())
	assert.Equal(t, 1, form.Find(`input[name="password"][type="password"]`).Length())

	token := form.Find(`input[name="csrf_token"]`).AttrOr("value", "")
	require.NotEmpty(t, token)
	assert.NoError(t, a.container.CSRF.Verify(token, login.FormID))
}

/* ───────────────────────── shutdown ───────────────────────── */

// slowRepo delays reads so a request is still in flight when the server
// is told to stop.
type slowRepo struct {
	repository.ArticleRepository
	delay   time.Duration
	started chan struct{}
}

func (r *slowRepo) GetArticleByID(ctx context.Context, id uuid.UUID) (entity.Article, error) {
	select {
	case r.started <- struct{}{}:
	default:
	}
	select {
	case <-time.After(r.delay):
	case <-ctx.Done():
		return entity.Article{}, ctx.Err()
	}
	return r.ArticleRepository.GetArticleByID(ctx, id)
}

func TestShutdown_DrainsInFlightRequests(t *testing.T) {
	var slow *slowRepo
	a := spawnApp(t, testConfig(), func(c *app.Container) {
		slow = &slowRepo{ArticleRepository: c.Articles, delay: 300 * time.Millisecond, started: make(chan struct{}, 1)}
		c.Articles = slow
	})

	id, err := slow.StoreArticle(context.Background(), entity.NewArticle{
		AuthorID: uuid.New(),
		Title:    "How to train your dragon",
		Content:  strings.Repeat("Very carefully. ", 10),
	})
	require.NoError(t, err)

	type result struct {
		status int
		err    error
	}
	res := make(chan result, 1)
	go func() {
		resp, err := a.client.Get(a.baseURL + "/api/articles/" + id.String())
		if err != nil {
			res <- result{err: err}
			return
		}
		defer resp.Body.Close()
		res <- result{status: resp.StatusCode}
	}()

	<-slow.started
	a.stop()

	r := <-res
	require.NoError(t, r.err)
	assert.Equal(t, http.StatusOK, r.status)
}

/* ───────────────────────── framework endpoints ───────────────────────── */

func TestHealthEndpoints(t *testing.T) {
	a := spawnApp(t, testConfig())

	resp := a.get("/admin/health-check")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = a.get("/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	health := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "test", health["version"])
}

func TestMetricsEndpoint(t *testing.T) {
	a := spawnApp(t, testConfig())
	a.get("/admin/health-check")

	resp := a.get("/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "http_requests_total")
}

func TestStaticAndSwagger(t *testing.T) {
	a := spawnApp(t, testConfig())

	resp := a.get("/static/css/app.css")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")

	resp = a.get("/swagger/doc.json")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "/api/articles/{id}")
}

func TestRateLimit_AppliesToAPIOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Application.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 2}
	a := spawnApp(t, cfg)

	path := "/api/articles/" + uuid.NewString()
	assert.Equal(t, http.StatusNotFound, a.get(path).StatusCode)
	assert.Equal(t, http.StatusNotFound, a.get(path).StatusCode)

	resp := a.get(path)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))

	assert.Equal(t, http.StatusOK, a.get("/admin/health-check").StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	a := spawnApp(t, testConfig())
	assert.Equal(t, http.StatusNotFound, a.get("/nope").StatusCode)
}
