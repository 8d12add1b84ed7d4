package presenter

import (
	"back-office/internal/domain/entity"
	artUC "back-office/internal/usecase/article"
)

// JSONArticlePresenter renders articles for the API.
type JSONArticlePresenter struct{}

func NewJSONArticlePresenter() JSONArticlePresenter { return JSONArticlePresenter{} }

func (JSONArticlePresenter) PresentArticle(a entity.Article) (entity.RenderOutput, error) {
	return entity.JSON{Value: NewArticleViewModel(a)}, nil
}

const articleTemplate = "articles/show"

// HTMLArticlePresenter renders the article page of the admin area.
type HTMLArticlePresenter struct {
	view Renderer
}

func NewHTMLArticlePresenter(view Renderer) *HTMLArticlePresenter {
	return &HTMLArticlePresenter{view: view}
}

func (p *HTMLArticlePresenter) PresentArticle(a entity.Article) (entity.RenderOutput, error) {
	out, err := p.view.Render(articleTemplate, NewArticleViewModel(a))
	if err != nil {
		return nil, artUC.Presenter("render "+articleTemplate, err)
	}
	return entity.HTML(out), nil
}

var (
	_ artUC.GetArticlePresenter = JSONArticlePresenter{}
	_ artUC.GetArticlePresenter = (*HTMLArticlePresenter)(nil)
)
