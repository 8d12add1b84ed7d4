package presenter

import (
	"fmt"

	"back-office/internal/domain/entity"
	authUC "back-office/internal/usecase/auth"
)

const loginTemplate = "auth/login"

// HTMLLoginPresenter renders the login page for every provider output.
type HTMLLoginPresenter struct {
	view Renderer
}

func NewHTMLLoginPresenter(view Renderer) *HTMLLoginPresenter {
	return &HTMLLoginPresenter{view: view}
}

func (p *HTMLLoginPresenter) PresentLogin(output entity.LoginProviderOutput) (entity.RenderOutput, error) {
	switch login := output.(type) {
	case entity.DefaultLogin:
		out, err := p.view.Render(loginTemplate, NewFormViewModel(login.Form))
		if err != nil {
			return nil, authUC.Unexpected("render "+loginTemplate, err)
		}
		return entity.HTML(out), nil
	default:
		return nil, authUC.Unexpected(fmt.Sprintf("unsupported login output %T", output), nil)
	}
}

var _ authUC.LoginPresenter = (*HTMLLoginPresenter)(nil)
