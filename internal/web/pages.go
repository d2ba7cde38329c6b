// Package web serves the server-rendered sign-in, sign-up and dashboard pages.
package web

import (
	"cloudvault/internal/authform"
	"cloudvault/internal/dashboard"
	"cloudvault/internal/service"
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pages renders the HTML routes. Form submissions go through the authform
// controller, which calls the JSON auth endpoints.
type Pages struct {
	controller *authform.Controller
	dashboard  *service.DashboardService
	templates  *template.Template
}

func NewPages(poster authform.Poster, dash *service.DashboardService) (*Pages, error) {
	controller, err := authform.NewController(poster)
	if err != nil {
		return nil, err
	}
	if dash == nil {
		return nil, errors.New("web: dashboard service is nil")
	}
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{
		controller: controller,
		dashboard:  dash,
		templates:  templates,
	}, nil
}

func (p *Pages) RegisterRoutes(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, authform.SignInRoute)
	})
	r.GET("/signin", p.showForm(authform.ModeSignIn))
	r.POST("/signin", p.submitForm(authform.ModeSignIn))
	r.GET("/signup", p.showForm(authform.ModeSignUp))
	r.POST("/signup", p.submitForm(authform.ModeSignUp))
	r.GET("/dashboard", p.Dashboard)
}

func (p *Pages) showForm(mode authform.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := authform.Reduce(authform.NewState(mode), authform.SelectStep{Step: authform.ParseStep(c.Query("step"))})
		p.render(c, http.StatusOK, "auth", newAuthView(state))
	}
}

func (p *Pages) submitForm(mode authform.Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := authform.Reduce(authform.NewState(mode), authform.SelectStep{Step: authform.ParseStep(c.PostForm("step"))})
		for _, field := range authform.VisibleFields(mode, state.Step) {
			state = authform.Reduce(state, authform.SetField{Field: field, Value: c.PostForm(string(field))})
		}

		if c.PostForm("action") == "back" {
			p.render(c, http.StatusOK, "auth", newAuthView(authform.Reduce(state, authform.Back{})))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		result := p.controller.Submit(ctx, state)
		if result.Redirect != "" {
			c.Redirect(http.StatusSeeOther, result.Redirect)
			return
		}

		status := submitStatus(result.Err)
		if status >= http.StatusInternalServerError {
			logrus.WithError(result.Err).WithField("mode", mode.String()).Warn("auth submit failed")
		}
		p.render(c, status, "auth", newAuthView(result.State))
	}
}

// submitStatus maps a failed submit to the status of the re-rendered page.
func submitStatus(err error) int {
	var validationErr *authform.ValidationError
	var authErr *authform.AuthError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		if authErr.StatusCode >= 400 && authErr.StatusCode < 500 {
			return authErr.StatusCode
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// Dashboard renders all widgets for ?view= and ?type=.
func (p *Pages) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := p.dashboard.Summary(ctx, c.Query("view"), c.Query("type"))
	if err != nil {
		logrus.WithError(err).Error("failed to build dashboard page")
		c.String(http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	view := dashboardView{
		Summary:  summary,
		ListHref: dashboardHref(dashboard.ViewList, summary.Filter),
		GridHref: dashboardHref(dashboard.ViewGrid, summary.Filter),
	}
	for _, filter := range dashboard.FilterOptions {
		view.Filters = append(view.Filters, filterLink{
			Label:  dashboard.TypeLabel(filter),
			Href:   dashboardHref(summary.View, filter),
			Active: filter == summary.Filter,
		})
	}
	p.render(c, http.StatusOK, "dashboard", view)
}

func dashboardHref(view, filter string) string {
	values := url.Values{}
	values.Set("view", view)
	values.Set("type", filter)
	return authform.DashboardRoute + "?" + values.Encode()
}

func (p *Pages) render(c *gin.Context, status int, name string, data any) {
	c.Render(status, render.HTML{Template: p.templates, Name: name, Data: data})
}
