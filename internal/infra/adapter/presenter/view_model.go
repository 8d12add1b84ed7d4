// Package presenter turns domain values into renderable output: JSON view
// models for the API and HTML pages for the admin area.
package presenter

import (
	"time"

	"back-office/internal/domain/entity"
)

// Renderer executes a named HTML template.
type Renderer interface {
	Render(name string, data any) (string, error)
}

// ArticleViewModel is the public shape of an article.
type ArticleViewModel struct {
	ID        string `json:"id" example:"0b6f1a1e-7c55-4bd4-9df4-0d7f4b9a1c01"`
	Title     string `json:"title" example:"Hexagonal architecture in Go"`
	Content   string `json:"content"`
	AuthorID  string `json:"authorId" example:"0c2a3c4e-0d1e-4f5a-8b7c-6d5e4f3a2b1c"`
	CreatedAt string `json:"createdAt" example:"2025-07-19T09:30:00Z"`
}

func NewArticleViewModel(a entity.Article) ArticleViewModel {
	return ArticleViewModel{
		ID:        a.ID.String(),
		Title:     a.Title,
		Content:   a.Content,
		AuthorID:  a.AuthorID.String(),
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FormViewModel is the template context of a form.
type FormViewModel struct {
	ID        string               `json:"id"`
	Action    string               `json:"action"`
	Title     string               `json:"title"`
	Method    string               `json:"method"`
	CSRFToken string               `json:"csrf_token"`
	Fields    []FormInputViewModel `json:"fields"`
	Submit    FormButtonViewModel  `json:"submit"`
}

type FormInputViewModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       string `json:"value"`
	Title       string `json:"title"`
	Placeholder string `json:"placeholder"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
}

type FormButtonViewModel struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// NewFormViewModel flattens f. The method is the one an HTML form can send.
func NewFormViewModel(f entity.Form) FormViewModel {
	fields := f.Fields()
	vm := FormViewModel{
		ID:        f.ID(),
		Action:    f.Action(),
		Title:     f.Title(),
		Method:    f.Method().HTMLMethod(),
		CSRFToken: f.CSRFToken(),
		Fields:    make([]FormInputViewModel, 0, len(fields)),
		Submit: FormButtonViewModel{
			ID:    f.Submit().ID(),
			Title: f.Submit().Title(),
			Type:  f.Submit().ButtonType(),
		},
	}
	for _, in := range fields {
		vm.Fields = append(vm.Fields, FormInputViewModel{
			ID:          in.ID(),
			Name:        in.Name(),
			Value:       in.Value(),
			Title:       in.Title(),
			Placeholder: in.Placeholder(),
			Type:        in.InputType(),
			Required:    in.Required(),
		})
	}
	return vm
}
