// Package view renders the portal's HTML pages. Every page is the shared
// layout (navigation header, footer) wrapped around one view's "content"
// template, and carries exactly one data-view marker naming that view.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/civicconnect/portal/internal/api/metrics"
	"github.com/civicconnect/portal/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ErrUnknownView is returned when asked to render a view with no template.
var ErrUnknownView = errors.New("unknown view")

// Views lists every view that has a template.
var Views = []domain.View{
	domain.ViewLanding,
	domain.ViewCitizenDashboard,
	domain.ViewAuthoritiesDashboard,
	domain.ViewReportIssue,
	domain.ViewRegister,
	domain.ViewCity,
	domain.ViewNotFound,
	domain.ViewError,
}

var funcs = template.FuncMap{
	"brand":    domain.Brand,
	"navLinks": domain.NavLinks,
	"badgeClass": func(v domain.StyleVariant) string {
		return "badge badge-" + v.String()
	},
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[domain.View]*template.Template
}

// NewRenderer parses the layout and every view template.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[domain.View]*template.Template, len(Views))
	for _, v := range Views {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", v, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+string(v)+".html"); err != nil {
			return nil, fmt.Errorf("parse view %s: %w", v, err)
		}
		pages[v] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render writes the page for the view called name. data must be a Page.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[domain.View(name)]
	if !ok {
		return fmt.Errorf("render %q: %w", name, ErrUnknownView)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("render %q: %w", name, err)
	}
	metrics.PagesRenderedTotal.WithLabelValues(name).Inc()
	return nil
}

// checkData is the payload each view is executed with by Check.
var checkData = map[domain.View]any{
	domain.ViewLanding:              domain.LandingContent{},
	domain.ViewCitizenDashboard:     []domain.Issue{{Status: domain.StatusPending}},
	domain.ViewAuthoritiesDashboard: []domain.Issue{{Status: domain.StatusResolved}},
	domain.ViewReportIssue:          ReportForm{Categories: domain.Categories()},
	domain.ViewRegister:             RegisterForm{Roles: domain.Roles(), Draft: domain.NewRegistrationDraft()},
	domain.ViewCity:                 CityForm{Cities: domain.Cities()},
	domain.ViewNotFound:             ErrorPage{},
	domain.ViewError:                ErrorPage{},
}

// Check executes every view with a sample payload and discards the output.
// It fails when a view has no template or its template cannot execute.
func (r *Renderer) Check() error {
	for _, v := range Views {
		t, ok := r.pages[v]
		if !ok {
			return fmt.Errorf("view %s: %w", v, ErrUnknownView)
		}
		if err := t.ExecuteTemplate(io.Discard, "layout", NewPage(v, checkData[v])); err != nil {
			return fmt.Errorf("view %s: %w", v, err)
		}
	}
	return nil
}

// StaticFS exposes the stylesheet directory for the /static route.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
