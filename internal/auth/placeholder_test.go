package auth

import (
	"errors"
	"testing"
)

func TestPlaceholderVerifier(t *testing.T) {
	verifier, err := NewPlaceholderVerifier("user@example.com", "password123")
	if err != nil {
		t.Fatalf("unexpected error creating verifier: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "exact match", email: "user@example.com", password: "password123"},
		{name: "wrong password", email: "user@example.com", password: "password124", wantErr: true},
		{name: "wrong email", email: "x", password: "password123", wantErr: true},
		{name: "email case differs", email: "USER@example.com", password: "password123", wantErr: true},
		{name: "both wrong", email: "x", password: "y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifier.Verify(tt.email, tt.password)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Fatalf("expected ErrInvalidCredentials, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected credentials to verify, got %v", err)
			}
		})
	}
}

func TestNewPlaceholderVerifierRequiresValues(t *testing.T) {
	if _, err := NewPlaceholderVerifier("  ", "password123"); err == nil {
		t.Fatal("expected error for empty email")
	}
	if _, err := NewPlaceholderVerifier("user@example.com", " "); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestNilPlaceholderVerifier(t *testing.T) {
	var verifier *PlaceholderVerifier
	if err := verifier.Verify("user@example.com", "password123"); err == nil {
		t.Fatal("expected error from nil verifier")
	}
}
