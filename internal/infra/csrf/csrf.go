// Package csrf issues and verifies the anti-forgery tokens embedded in
// back-office forms. Tokens are HS256 JWTs whose subject is the form id.
//
// Only Issue is wired into a route today: the login page embeds a token.
// Verify is the check the login form's POST handler (login.FormAction)
// must run before reading credentials; until that handler exists it is
// exercised by the package tests and the login page end-to-end test.
package csrf

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer = "back-office"
	// DefaultTTL applies when the configured lifetime is zero.
	DefaultTTL = 30 * time.Minute
	minSecret  = 32
)

var (
	ErrWeakSecret   = errors.New("csrf: secret must be at least 32 bytes")
	ErrInvalidToken = errors.New("csrf: invalid token")
)

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewManager returns a Manager signing with secret.
func NewManager(secret string, ttl time.Duration) (*Manager, error) {
	if len(secret) < minSecret {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token bound to formID.
func (m *Manager) Issue(formID string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   formID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("csrf: sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, expiry and form binding of token. Form
// submission handlers call it with the form id they accept.
func (m *Manager) Verify(token, formID string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(formID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}
