package web

import (
	"cloudvault/internal/authform"
	"cloudvault/internal/entity"
)

type fieldView struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
}

type authView struct {
	Title        string
	Step         string
	Action       string
	Submit       string
	Error        string
	Fields       []fieldView
	SwitchPrompt string
	SwitchHref   string
	SwitchLabel  string
}

type filterLink struct {
	Label  string
	Href   string
	Active bool
}

type dashboardView struct {
	Summary  *entity.DashboardSummary
	Filters  []filterLink
	ListHref string
	GridHref string
}

var fieldLabels = map[authform.Field]string{
	authform.FieldName:            "Nome completo",
	authform.FieldCompanyName:     "Nome da empresa",
	authform.FieldCNPJ:            "CNPJ",
	authform.FieldEmail:           "Email",
	authform.FieldPassword:        "Senha",
	authform.FieldConfirmPassword: "Confirmar senha",
}

var fieldPlaceholders = map[authform.Field]string{
	authform.FieldName:        "João Silva",
	authform.FieldCompanyName: "Empresa LTDA",
	authform.FieldCNPJ:        "00.000.000/0000-00",
	authform.FieldEmail:       "voce@exemplo.com",
}

func inputType(field authform.Field) string {
	switch field {
	case authform.FieldEmail:
		return "email"
	case authform.FieldPassword, authform.FieldConfirmPassword:
		return "password"
	default:
		return "text"
	}
}

// newAuthView builds the form page. Password values are never written back
// into the page.
func newAuthView(s authform.State) authView {
	view := authView{
		Step:  string(s.Step),
		Error: s.Error,
	}
	if s.Mode == authform.ModeSignUp {
		view.Title = "Criar conta"
		view.Action = authform.SignUpRoute
		view.Submit = "Cadastrar"
		view.SwitchPrompt = "Já tem uma conta?"
		view.SwitchHref = authform.SignInRoute
		view.SwitchLabel = "Entrar"
	} else {
		view.Title = "Entrar"
		view.Action = authform.SignInRoute
		view.Submit = "Entrar"
		view.SwitchPrompt = "Não tem uma conta?"
		view.SwitchHref = authform.SignUpRoute
		view.SwitchLabel = "Criar conta"
	}

	for _, field := range authform.VisibleFields(s.Mode, s.Step) {
		fv := fieldView{
			Name:        string(field),
			Label:       fieldLabels[field],
			Type:        inputType(field),
			Placeholder: fieldPlaceholders[field],
		}
		if fv.Type != "password" {
			fv.Value = s.Fields.Get(field)
		}
		view.Fields = append(view.Fields, fv)
	}
	return view
}
