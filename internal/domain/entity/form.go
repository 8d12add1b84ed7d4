package entity

import (
	"errors"
	"fmt"
	"strings"
)

// FormMethod is the HTTP method a form submits with.
type FormMethod int

const (
	FormMethodGet FormMethod = iota
	FormMethodPost
	FormMethodPut
)

// String returns the method name as written in a request line.
func (m FormMethod) String() string {
	switch m {
	case FormMethodPost:
		return "POST"
	case FormMethodPut:
		return "PUT"
	default:
		return "GET"
	}
}

// HTMLMethod returns the value usable in a <form method> attribute.
// HTML forms only know GET and POST, so PUT is sent as POST.
func (m FormMethod) HTMLMethod() string {
	switch m {
	case FormMethodPost, FormMethodPut:
		return "POST"
	default:
		return "GET"
	}
}

// ParseFormMethod parses a case-insensitive method name.
func ParseFormMethod(s string) (FormMethod, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "GET":
		return FormMethodGet, nil
	case "POST":
		return FormMethodPost, nil
	case "PUT":
		return FormMethodPut, nil
	default:
		return FormMethodGet, &ValidationError{Field: "method", Message: fmt.Sprintf("unsupported form method %q", s)}
	}
}

// FormInputConfig describes a form input. ID and Title are required; every
// other field is optional.
type FormInputConfig struct {
	ID          string
	Name        string // defaults to ID
	Value       string
	Title       string
	Placeholder string
	InputType   string // defaults to "text"
	Required    bool
}

// FormInput is an input element of a form.
type FormInput struct {
	id          string
	name        string
	value       string
	title       string
	placeholder string
	inputType   string
	required    bool
}

// NewFormInput validates cfg and fills in defaults.
func NewFormInput(cfg FormInputConfig) (FormInput, error) {
	if cfg.ID == "" {
		return FormInput{}, &ValidationError{Field: "id", Message: "is required"}
	}
	if cfg.Title == "" {
		return FormInput{}, &ValidationError{Field: "title", Message: "is required"}
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}
	inputType := cfg.InputType
	if inputType == "" {
		inputType = "text"
	}

	return FormInput{
		id:          cfg.ID,
		name:        name,
		value:       cfg.Value,
		title:       cfg.Title,
		placeholder: cfg.Placeholder,
		inputType:   inputType,
		required:    cfg.Required,
	}, nil
}

func (f FormInput) ID() string          { return f.id }
func (f FormInput) Name() string        { return f.name }
func (f FormInput) Value() string       { return f.value }
func (f FormInput) Title() string       { return f.title }
func (f FormInput) Placeholder() string { return f.placeholder }
func (f FormInput) InputType() string   { return f.inputType }
func (f FormInput) Required() bool      { return f.required }

// FormButtonConfig describes a form button. Title is required.
type FormButtonConfig struct {
	ID         string
	Title      string
	ButtonType string // defaults to "submit"
}

// FormButton is a button element of a form.
type FormButton struct {
	id         string
	title      string
	buttonType string
}

// NewFormButton validates cfg and fills in defaults.
func NewFormButton(cfg FormButtonConfig) (FormButton, error) {
	if cfg.Title == "" {
		return FormButton{}, &ValidationError{Field: "title", Message: "is required"}
	}
	buttonType := cfg.ButtonType
	if buttonType == "" {
		buttonType = "submit"
	}
	return FormButton{id: cfg.ID, title: cfg.Title, buttonType: buttonType}, nil
}

// DefaultFormButton is the button used when a form does not declare one.
func DefaultFormButton() FormButton {
	return FormButton{id: "submit", title: "Submit", buttonType: "button"}
}

func (b FormButton) ID() string         { return b.id }
func (b FormButton) Title() string      { return b.title }
func (b FormButton) ButtonType() string { return b.buttonType }

// FormConfig describes a whole form.
type FormConfig struct {
	ID        string
	Action    string // defaults to "/"
	Title     string
	Method    FormMethod
	CSRFToken string
	Fields    []FormInput
	Submit    *FormButton // defaults to DefaultFormButton
}

// Form is a renderable form description. It is immutable after construction.
type Form struct {
	id        string
	action    string
	title     string
	method    FormMethod
	csrfToken string
	fields    []FormInput
	submit    FormButton
}

// NewForm validates cfg and fills in defaults. Every field must have been
// built by NewFormInput.
func NewForm(cfg FormConfig) (Form, error) {
	var errs []error
	for i, field := range cfg.Fields {
		if field.id == "" || field.title == "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("fields[%d]", i),
				Message: "id and title are required",
			})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Form{}, err
	}

	action := cfg.Action
	if action == "" {
		action = "/"
	}
	submit := DefaultFormButton()
	if cfg.Submit != nil {
		submit = *cfg.Submit
	}

	fields := make([]FormInput, len(cfg.Fields))
	copy(fields, cfg.Fields)

	return Form{
		id:        cfg.ID,
		action:    action,
		title:     cfg.Title,
		method:    cfg.Method,
		csrfToken: cfg.CSRFToken,
		fields:    fields,
		submit:    submit,
	}, nil
}

func (f Form) ID() string         { return f.id }
func (f Form) Action() string     { return f.action }
func (f Form) Title() string      { return f.title }
func (f Form) Method() FormMethod { return f.method }
func (f Form) CSRFToken() string  { return f.csrfToken }
func (f Form) Submit() FormButton { return f.submit }

// Fields returns the inputs in declaration order. The slice is a copy.
func (f Form) Fields() []FormInput {
	out := make([]FormInput, len(f.fields))
	copy(out, f.fields)
	return out
}
