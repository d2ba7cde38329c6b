package authform

import (
	"fmt"
	"strings"
)

const (
	MsgSelectAccountType = "Select an account type"
	MsgPasswordMismatch  = "Passwords do not match"
	MsgSignInFailed      = "Failed to sign in"
	MsgSignUpFailed      = "Failed to sign up"
	MsgUnexpected        = "An unexpected error occurred"
)

// ValidationError is a local rejection raised before any request is sent.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field Field) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field.Label())}
}

// AuthError is a non-2xx answer from an auth endpoint.
type AuthError struct {
	StatusCode int
	Message    string
	Mode       Mode
}

func (e *AuthError) Error() string {
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	if e.Mode == ModeSignUp {
		return MsgSignUpFailed
	}
	return MsgSignInFailed
}

// TransportError wraps a failure to reach the endpoint or read its reply.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return MsgUnexpected
	}
	if msg := strings.TrimSpace(e.Err.Error()); msg != "" {
		return msg
	}
	return MsgUnexpected
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// displayMessage reduces any submit error to the single inline string.
func displayMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return MsgUnexpected
}
