// Package authform models the sign-in and sign-up forms: an immutable form
// state, the reducer that moves it between steps, and the controller that
// submits it to the auth endpoints.
package authform

import "strings"

// Step is the stage of the form that decides which fields are shown.
type Step string

const (
	StepSelection Step = "selection"
	StepUser      Step = "user"
	StepBusiness  Step = "business"
)

// ParseStep maps a raw value to a Step. Anything unknown is the selection step.
func ParseStep(raw string) Step {
	switch Step(strings.ToLower(strings.TrimSpace(raw))) {
	case StepUser:
		return StepUser
	case StepBusiness:
		return StepBusiness
	default:
		return StepSelection
	}
}

// Mode distinguishes the sign-in form from the sign-up form.
type Mode int

const (
	ModeSignIn Mode = iota
	ModeSignUp
)

func (m Mode) String() string {
	if m == ModeSignUp {
		return "signup"
	}
	return "signin"
}

// Field names a form input. The values match the HTML input names.
type Field string

const (
	FieldName            Field = "name"
	FieldCompanyName     Field = "companyName"
	FieldCNPJ            Field = "cnpj"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// AllFields lists every input in display order.
var AllFields = []Field{FieldName, FieldCompanyName, FieldCNPJ, FieldEmail, FieldPassword, FieldConfirmPassword}

// Label is the human readable field name used in validation messages.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldCompanyName:
		return "Company name"
	case FieldCNPJ:
		return "CNPJ"
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldConfirmPassword:
		return "Confirm password"
	default:
		return string(f)
	}
}

// Fields holds the raw input values.
type Fields struct {
	Name            string
	CompanyName     string
	CNPJ            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Get returns the value of field, or "" for an unknown field.
func (f Fields) Get(field Field) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldCompanyName:
		return f.CompanyName
	case FieldCNPJ:
		return f.CNPJ
	case FieldEmail:
		return f.Email
	case FieldPassword:
		return f.Password
	case FieldConfirmPassword:
		return f.ConfirmPassword
	default:
		return ""
	}
}

// With returns a copy of f with field set to value. Unknown fields leave f unchanged.
func (f Fields) With(field Field, value string) Fields {
	switch field {
	case FieldName:
		f.Name = value
	case FieldCompanyName:
		f.CompanyName = value
	case FieldCNPJ:
		f.CNPJ = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldConfirmPassword:
		f.ConfirmPassword = value
	}
	return f
}

// State is the complete form state. It is a value type: every transition
// goes through Reduce and yields a new State.
type State struct {
	Mode   Mode
	Step   Step
	Fields Fields
	Error  string
}

// NewState returns an empty form on the selection step.
func NewState(mode Mode) State {
	return State{Mode: mode, Step: StepSelection}
}

// RequiredFields lists the inputs that must be non-empty before submit.
func RequiredFields(mode Mode, step Step) []Field {
	var fields []Field
	if mode == ModeSignUp {
		fields = append(fields, FieldName)
		if step == StepBusiness {
			fields = append(fields, FieldCompanyName)
		}
	}
	if step == StepBusiness {
		fields = append(fields, FieldCNPJ)
	}
	fields = append(fields, FieldEmail, FieldPassword)
	if mode == ModeSignUp {
		fields = append(fields, FieldConfirmPassword)
	}
	return fields
}

// VisibleFields lists the inputs rendered for a step. The selection step shows none.
func VisibleFields(mode Mode, step Step) []Field {
	if step == StepSelection {
		return nil
	}
	return RequiredFields(mode, step)
}

// Action is a state transition. The set of actions is closed.
type Action interface {
	apply(State) State
}

// SelectStep moves to the user or business field set.
type SelectStep struct {
	Step Step
}

func (a SelectStep) apply(s State) State {
	s.Step = a.Step
	if s.Step != StepUser && s.Step != StepBusiness {
		s.Step = StepSelection
	}
	s.Error = ""
	return s
}

// Back returns to the selection step. Typed values are kept.
type Back struct{}

func (Back) apply(s State) State {
	s.Step = StepSelection
	s.Error = ""
	return s
}

// SetField records one input change.
type SetField struct {
	Field Field
	Value string
}

func (a SetField) apply(s State) State {
	s.Fields = s.Fields.With(a.Field, a.Value)
	return s
}

// SetError records the message shown inline above the form.
type SetError struct {
	Message string
}

func (a SetError) apply(s State) State {
	s.Error = a.Message
	return s
}

// ClearError removes any inline message.
type ClearError struct{}

func (ClearError) apply(s State) State {
	s.Error = ""
	return s
}

// Reduce applies a to s. A nil action returns s unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}
