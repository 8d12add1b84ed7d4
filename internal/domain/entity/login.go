package entity

// LoginProviderOutput is what a login provider hands to a login presenter.
// It is a closed sum type; new login mechanisms (third-party identity
// providers, for instance) are added as new variants and the presenters grow
// a matching case.
type LoginProviderOutput interface {
	isLoginProviderOutput()
}

// DefaultLogin is the built-in email and password form.
type DefaultLogin struct {
	Form Form
}

func (DefaultLogin) isLoginProviderOutput() {}
