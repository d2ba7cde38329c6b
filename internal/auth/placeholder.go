package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials is returned when an email/password pair is rejected.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Verifier checks a single email/password pair.
type Verifier interface {
	Verify(email, password string) error
}

// PlaceholderVerifier accepts exactly one configured credential pair.
//
// It stands in for a credential store so the sign-in flow can be exercised end
// to end. It is not an authentication system: there are no accounts, and a real
// deployment must replace it with a store lookup.
type PlaceholderVerifier struct {
	email        string
	passwordHash string
}

// NewPlaceholderVerifier hashes password once so that verification never
// compares plain text.
func NewPlaceholderVerifier(email, password string) (*PlaceholderVerifier, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.New("placeholder email must not be empty")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash placeholder password: %w", err)
	}
	return &PlaceholderVerifier{
		email:        email,
		passwordHash: hash,
	}, nil
}

// Verify returns ErrInvalidCredentials unless both values match exactly.
func (v *PlaceholderVerifier) Verify(email, password string) error {
	if v == nil {
		return errors.New("placeholder verifier is nil")
	}
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	// bcrypt runs even on an email mismatch to keep response timing flat.
	passwordErr := VerifyPassword(v.passwordHash, password)
	if !emailMatches || passwordErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}

var _ Verifier = (*PlaceholderVerifier)(nil)
