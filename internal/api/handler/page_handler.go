package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicconnect/portal/internal/core/domain"
	"github.com/civicconnect/portal/internal/core/ports"
)

// LandingHandler serves the promotional landing page.
type LandingHandler struct {
	content domain.LandingContent
}

func NewLandingHandler(catalog ports.Catalog) *LandingHandler {
	return &LandingHandler{content: catalog.Landing()}
}

// Show handles GET /.
func (h *LandingHandler) Show(c echo.Context) error {
	return render(c, http.StatusOK, domain.ViewLanding, h.content)
}

// DashboardHandler serves the two read-only issue dashboards. Each holds its
// own copy of the sample issues taken at construction.
type DashboardHandler struct {
	citizen     []domain.Issue
	authorities []domain.Issue
}

func NewDashboardHandler(catalog ports.Catalog) *DashboardHandler {
	return &DashboardHandler{
		citizen:     catalog.CitizenIssues(),
		authorities: catalog.AuthorityIssues(),
	}
}

// Citizen handles GET /citizen-dashboard.
func (h *DashboardHandler) Citizen(c echo.Context) error {
	return render(c, http.StatusOK, domain.ViewCitizenDashboard, h.citizen)
}

// Authorities handles GET /authorities-dashboard.
func (h *DashboardHandler) Authorities(c echo.Context) error {
	return render(c, http.StatusOK, domain.ViewAuthoritiesDashboard, h.authorities)
}
