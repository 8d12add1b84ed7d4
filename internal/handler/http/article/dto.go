// Package article provides the HTTP handlers for articles: the JSON API
// under /api/articles and the admin pages under /admin/articles.
package article

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"back-office/internal/domain/entity"
)

// StoreRequest is the body of POST /api/articles.
type StoreRequest struct {
	AuthorID string `json:"author_id" validate:"required,uuid" example:"0c2a3c4e-0d1e-4f5a-8b7c-6d5e4f3a2b1c"`
	Title    string `json:"title" validate:"required,min=10" example:"Hexagonal architecture in Go"`
	Content  string `json:"content" validate:"required,min=100"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// The built-in uuid rule only matches lowercase hex. Accept whatever
	// NewArticle can parse.
	_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate returns field name to message for every failed rule.
func (r StoreRequest) Validate() map[string]string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is invalid"
	}
}

// NewArticle converts a validated request.
func (r StoreRequest) NewArticle() (entity.NewArticle, error) {
	authorID, err := uuid.Parse(r.AuthorID)
	if err != nil {
		return entity.NewArticle{}, err
	}
	return entity.NewArticle{AuthorID: authorID, Title: r.Title, Content: r.Content}, nil
}
