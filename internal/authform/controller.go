package authform

import (
	"context"
	"errors"
	"strings"
)

const (
	SignInPath = "/api/auth/signin"
	SignUpPath = "/api/auth/signup"

	// Page routes. Dashboard and sign-in are also the navigation targets after
	// a successful submit.
	DashboardRoute = "/dashboard"
	SignInRoute    = "/signin"
	SignUpRoute    = "/signup"
)

// Response is the decoded reply of an auth endpoint.
type Response struct {
	StatusCode int
	Message    string
}

// Poster sends one JSON request to an auth endpoint.
type Poster interface {
	PostJSON(ctx context.Context, path string, body any) (*Response, error)
}

// Payload is the JSON body sent to the auth endpoints. Confirm-password never
// leaves the form.
type Payload struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CNPJ        string `json:"cnpj,omitempty"`
	Name        string `json:"name,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// Result is the outcome of one submit. Redirect is set only on success; Err
// carries the typed failure whose message is already in State.Error.
type Result struct {
	State    State
	Redirect string
	Err      error
}

// Controller submits form state to the auth endpoints.
type Controller struct {
	poster Poster
}

func NewController(poster Poster) (*Controller, error) {
	if poster == nil {
		return nil, errors.New("authform: poster is nil")
	}
	return &Controller{poster: poster}, nil
}

// Validate checks the state locally. It never touches the network.
func Validate(s State) error {
	if s.Step != StepUser && s.Step != StepBusiness {
		return &ValidationError{Message: MsgSelectAccountType}
	}
	for _, field := range RequiredFields(s.Mode, s.Step) {
		if strings.TrimSpace(s.Fields.Get(field)) == "" {
			return missingField(field)
		}
	}
	if s.Mode == ModeSignUp && s.Fields.Password != s.Fields.ConfirmPassword {
		return &ValidationError{Field: FieldConfirmPassword, Message: MsgPasswordMismatch}
	}
	return nil
}

// BuildPayload returns the request body for s. Fields hidden on the current
// step are left out.
func BuildPayload(s State) Payload {
	payload := Payload{
		Email:    s.Fields.Email,
		Password: s.Fields.Password,
	}
	if s.Step == StepBusiness {
		payload.CNPJ = s.Fields.CNPJ
	}
	if s.Mode == ModeSignUp {
		payload.Name = s.Fields.Name
		if s.Step == StepBusiness {
			payload.CompanyName = s.Fields.CompanyName
		}
	}
	return payload
}

// Submit validates s and, when valid, issues exactly one request. There is
// no retry; cancellation and deadlines come from ctx.
func (c *Controller) Submit(ctx context.Context, s State) Result {
	s = Reduce(s, ClearError{})

	if err := Validate(s); err != nil {
		return Result{State: Reduce(s, SetError{Message: displayMessage(err)}), Err: err}
	}

	path, target := SignInPath, DashboardRoute
	if s.Mode == ModeSignUp {
		path, target = SignUpPath, SignInRoute
	}

	resp, err := c.poster.PostJSON(ctx, path, BuildPayload(s))
	if err == nil && resp == nil {
		err = errors.New("empty response")
	}
	if err != nil {
		failure := &TransportError{Err: err}
		return Result{State: Reduce(s, SetError{Message: displayMessage(failure)}), Err: failure}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		failure := &AuthError{StatusCode: resp.StatusCode, Message: resp.Message, Mode: s.Mode}
		return Result{State: Reduce(s, SetError{Message: displayMessage(failure)}), Err: failure}
	}

	return Result{State: s, Redirect: target}
}
