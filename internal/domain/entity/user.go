package entity

import (
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

const (
	minUsernameLength = 5
	minPasswordLength = 15
)

// Email is a syntactically valid email address.
type Email string

// NewEmail validates s as an RFC 5322 address without display name.
func NewEmail(s string) (Email, error) {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return "", &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Username is a login handle.
type Username string

// NewUsername requires at least five characters and no spaces.
func NewUsername(s string) (Username, error) {
	if len([]rune(s)) < minUsernameLength {
		return "", &ValidationError{Field: "username", Message: "must be at least 5 characters"}
	}
	if strings.ContainsRune(s, ' ') {
		return "", &ValidationError{Field: "username", Message: "must not contain spaces"}
	}
	return Username(s), nil
}

func (u Username) String() string { return string(u) }

// Password holds a plain-text password. It never prints its value.
type Password struct {
	secret string
}

// NewPassword requires 15+ characters with a digit, an upper-case letter, a
// lower-case letter and a symbol.
func NewPassword(s string) (Password, error) {
	if len([]rune(s)) < minPasswordLength || !isStrong(s) {
		return Password{}, &ValidationError{
			Field:   "password",
			Message: "must be 15+ characters with a digit, uppercase, lowercase, and symbol",
		}
	}
	return Password{secret: s}, nil
}

func isStrong(s string) bool {
	var digit, upper, lower, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)):
			symbol = true
		}
	}
	return digit && upper && lower && symbol
}

// Expose returns the plain-text value.
func (p Password) Expose() string { return p.secret }

func (p Password) String() string { return "[REDACTED]" }

// LogValue keeps the secret out of structured logs.
func (p Password) LogValue() slog.Value { return slog.StringValue("[REDACTED]") }

// User is a back-office account.
type User struct {
	ID        uuid.UUID
	Email     Email
	Username  Username
	Password  Password
	CreatedAt time.Time
}
