// Package app assembles the back office: the container of driven adapters,
// the router and the HTTP server lifecycle.
package app

import (
	"database/sql"
	"fmt"

	"back-office/internal/config"
	"back-office/internal/infra/adapter/login"
	"back-office/internal/infra/adapter/persistence/postgres"
	"back-office/internal/infra/adapter/persistence/sqlite"
	"back-office/internal/infra/adapter/presenter"
	"back-office/internal/infra/csrf"
	"back-office/internal/infra/db"
	"back-office/internal/infra/view"
	"back-office/internal/repository"
	"back-office/internal/resilience/circuitbreaker"
	artUC "back-office/internal/usecase/article"
	authUC "back-office/internal/usecase/auth"
)

// Container holds the driven adapters shared by every request. It is built
// once at start and only read afterwards.
type Container struct {
	Config *config.Config
	DB     *sql.DB
	// Breaker guards the postgres pool. It is nil for sqlite.
	Breaker *circuitbreaker.CircuitBreaker

	Articles      repository.ArticleRepository
	View          *view.Engine
	CSRF          *csrf.Manager
	LoginProvider *login.DefaultProvider

	JSONArticlePresenter presenter.JSONArticlePresenter
	HTMLArticlePresenter *presenter.HTMLArticlePresenter
	HTMLLoginPresenter   *presenter.HTMLLoginPresenter
}

// NewContainer builds the adapters over an open database. The repository
// implementation follows cfg.Database.Driver.
func NewContainer(cfg *config.Config, database *sql.DB) (*Container, error) {
	engine, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	tokens, err := csrf.NewManager(cfg.Application.CSRFSecret.Expose(), cfg.Application.CSRFTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("csrf: %w", err)
	}

	c := &Container{
		Config:               cfg,
		DB:                   database,
		View:                 engine,
		CSRF:                 tokens,
		LoginProvider:        login.NewDefaultProvider(tokens),
		JSONArticlePresenter: presenter.NewJSONArticlePresenter(),
		HTMLArticlePresenter: presenter.NewHTMLArticlePresenter(engine),
		HTMLLoginPresenter:   presenter.NewHTMLLoginPresenter(engine),
	}

	switch cfg.Database.Driver {
	case db.DriverPostgres:
		guarded := circuitbreaker.NewDB(database)
		c.Breaker = guarded.Breaker()
		c.Articles = postgres.NewArticleRepoWithQuerier(guarded)
	case db.DriverSQLite:
		c.Articles = sqlite.NewArticleRepo(database)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return c, nil
}

// APIGetArticle reads an article and presents it as JSON.
func (c *Container) APIGetArticle() artUC.GetService {
	return artUC.NewGetUseCase(c.Articles, c.JSONArticlePresenter)
}

// WebGetArticle reads an article and presents it as an HTML page.
func (c *Container) WebGetArticle() artUC.GetService {
	return artUC.NewGetUseCase(c.Articles, c.HTMLArticlePresenter)
}

func (c *Container) APIStoreArticle() artUC.StoreService {
	return artUC.NewStoreUseCase(c.Articles, c.JSONArticlePresenter)
}

func (c *Container) ShowLogin() authUC.ShowLoginService {
	return authUC.NewShowLoginUseCase(c.LoginProvider, c.HTMLLoginPresenter)
}
