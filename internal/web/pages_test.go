package web

import (
	"cloudvault/internal/api"
	"cloudvault/internal/auth"
	"cloudvault/internal/authclient"
	"cloudvault/internal/authform"
	"cloudvault/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakePoster struct {
	calls    int
	path     string
	response *authform.Response
	err      error
}

func (p *fakePoster) PostJSON(_ context.Context, path string, _ any) (*authform.Response, error) {
	p.calls++
	p.path = path
	return p.response, p.err
}

func newPagesRouter(t *testing.T, poster authform.Poster) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pages, err := NewPages(poster, service.NewDashboardService(nil, nil, service.DashboardOptions{}))
	if err != nil {
		t.Fatalf("failed to create pages: %v", err)
	}
	r := gin.New()
	pages.RegisterRoutes(r)
	return r
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShowFormSteps(t *testing.T) {
	r := newPagesRouter(t, &fakePoster{})

	tests := []struct {
		name     string
		path     string
		contains []string
		absent   []string
	}{
		{name: "signin selection", path: "/signin", contains: []string{"Pessoa Física", "Empresa"}, absent: []string{`name="email"`}},
		{name: "signin user", path: "/signin?step=user", contains: []string{`name="email"`, `name="password"`}, absent: []string{`name="cnpj"`}},
		{name: "signin business", path: "/signin?step=business", contains: []string{`name="cnpj"`, `name="email"`}},
		{name: "signup business", path: "/signup?step=business", contains: []string{`name="companyName"`, `name="confirmPassword"`}},
		{name: "unknown step", path: "/signup?step=admin", contains: []string{"Pessoa Física"}, absent: []string{`name="name"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			body := w.Body.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("expected body to contain %q", s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(body, s) {
					t.Errorf("expected body not to contain %q", s)
				}
			}
		})
	}
}

func TestSubmitSignInRedirects(t *testing.T) {
	poster := &fakePoster{response: &authform.Response{StatusCode: http.StatusOK}}
	r := newPagesRouter(t, poster)

	w := postForm(r, "/signin", url.Values{"step": {"user"}, "email": {"user@example.com"}, "password": {"password123"}})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/dashboard" {
		t.Errorf("expected redirect to /dashboard, got %q", got)
	}
	if poster.path != authform.SignInPath {
		t.Errorf("expected post to %s, got %s", authform.SignInPath, poster.path)
	}
}

func TestSubmitSignUpMismatchRendersError(t *testing.T) {
	poster := &fakePoster{response: &authform.Response{StatusCode: http.StatusCreated}}
	r := newPagesRouter(t, poster)

	w := postForm(r, "/signup", url.Values{
		"step":            {"user"},
		"name":            {"Ana"},
		"email":           {"a@b.com"},
		"password":        {"secret-one"},
		"confirmPassword": {"secret-two"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if poster.calls != 0 {
		t.Errorf("expected no request, got %d", poster.calls)
	}
	body := w.Body.String()
	if !strings.Contains(body, authform.MsgPasswordMismatch) {
		t.Error("expected mismatch message in page")
	}
	if strings.Contains(body, "secret-one") || strings.Contains(body, "secret-two") {
		t.Error("expected passwords not to be echoed")
	}
	if !strings.Contains(body, `value="a@b.com"`) {
		t.Error("expected email to be kept")
	}
}

func TestSubmitAuthFailureRendersServerMessage(t *testing.T) {
	poster := &fakePoster{response: &authform.Response{StatusCode: http.StatusUnauthorized, Message: "Invalid email or password"}}
	r := newPagesRouter(t, poster)

	w := postForm(r, "/signin", url.Values{"step": {"user"}, "email": {"x@y.z"}, "password": {"nope"}})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Error("expected server message in page")
	}
}

func TestSubmitBackReturnsToSelection(t *testing.T) {
	poster := &fakePoster{}
	r := newPagesRouter(t, poster)

	w := postForm(r, "/signin", url.Values{"step": {"business"}, "action": {"back"}, "cnpj": {"1"}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if poster.calls != 0 {
		t.Errorf("expected no request on back, got %d", poster.calls)
	}
	if !strings.Contains(w.Body.String(), "Pessoa Física") {
		t.Error("expected selection step after back")
	}
}

func TestSubmitStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: &authform.ValidationError{Message: "x"}, expected: http.StatusBadRequest},
		{name: "unauthorized", err: &authform.AuthError{StatusCode: 401}, expected: http.StatusUnauthorized},
		{name: "upstream 500", err: &authform.AuthError{StatusCode: 500}, expected: http.StatusBadGateway},
		{name: "transport", err: &authform.TransportError{}, expected: http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := submitStatus(tt.err); got != tt.expected {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.expected, got)
		}
	}
}

func TestDashboardPage(t *testing.T) {
	r := newPagesRouter(t, &fakePoster{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?view=grid&type=nonsense", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, s := range []string{"75 GB de 100 GB", "Documentos: 45%", "Imagens: 30%", "Outros: 25%", `data-icon="cloud"`} {
		if !strings.Contains(body, s) {
			t.Errorf("expected dashboard to contain %q", s)
		}
	}
}

// The pages reach the real auth endpoints over HTTP.
func TestSignInEndToEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verifier, err := auth.NewPlaceholderVerifier("user@example.com", "password123")
	if err != nil {
		t.Fatalf("verifier: %v", err)
	}
	dash := service.NewDashboardService(nil, nil, service.DashboardOptions{})
	handler, err := api.NewHTTPHandler(verifier, dash,
		service.NewFileService(nil, nil, dash, 0, ""),
		service.NewBackupService(nil, nil, dash, ""))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	apiRouter := gin.New()
	handler.RegisterRoutes(apiRouter)
	server := httptest.NewServer(apiRouter)
	defer server.Close()

	client, err := authclient.New(server.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	r := newPagesRouter(t, client)

	w := postForm(r, "/signin", url.Values{"step": {"user"}, "email": {"user@example.com"}, "password": {"password123"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Errorf("expected redirect to dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}

	w = postForm(r, "/signin", url.Values{"step": {"user"}, "email": {"x"}, "password": {"y"}})
	if w.Code != http.StatusUnauthorized || !strings.Contains(w.Body.String(), "Invalid email or password") {
		t.Errorf("expected inline 401 error, got %d", w.Code)
	}

	w = postForm(r, "/signup", url.Values{"step": {"user"}, "name": {"A"}, "email": {"a@b.com"}, "password": {"p"}, "confirmPassword": {"p"}})
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/signin" {
		t.Errorf("expected redirect to signin, got %d %q", w.Code, w.Header().Get("Location"))
	}
}
