package api

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/civicconnect/portal/internal/api/handler"
	"github.com/civicconnect/portal/internal/api/middleware"
	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/domain"
	"github.com/civicconnect/portal/internal/core/ports"
)

// formBodyLimit caps form posts. The forms carry short text only.
const formBodyLimit = "64K"

// Deps carries what the router needs to build the handlers.
type Deps struct {
	Catalog     ports.Catalog
	Submissions ports.SubmissionService
	Renderer    *view.Renderer
	Logger      zerolog.Logger

	// Registerer backs the HTTP request metrics and Gatherer the /metrics
	// route. Either may be nil to leave that part out.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) (*echo.Echo, error) {
	if deps.Renderer == nil {
		return nil, errors.New("router: renderer is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))

	if deps.Registerer != nil {
		mw, err := echoprometheus.MiddlewareConfig{
			Namespace:  "civicconnect",
			Registerer: deps.Registerer,
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
			// Unmatched paths and the Host header come from the client;
			// neither may become a label value.
			DoNotUseRequestPathFor404: true,
			LabelFuncs: map[string]echoprometheus.LabelValueFunc{
				"host": func(echo.Context, error) string { return "" },
			},
		}.ToMiddleware()
		if err != nil {
			return nil, fmt.Errorf("http metrics: %w", err)
		}
		e.Use(mw)
	}
	if deps.Gatherer != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: deps.Gatherer,
		}))
	}

	// --- Views ---
	landing := handler.NewLandingHandler(deps.Catalog)
	dashboards := handler.NewDashboardHandler(deps.Catalog)
	report := handler.NewReportHandler(deps.Submissions)
	register := handler.NewRegisterHandler(deps.Submissions)
	city := handler.NewCityHandler()

	views := map[domain.View]echo.HandlerFunc{
		domain.ViewLanding:              landing.Show,
		domain.ViewCitizenDashboard:     dashboards.Citizen,
		domain.ViewAuthoritiesDashboard: dashboards.Authorities,
		domain.ViewReportIssue:          report.Show,
		domain.ViewRegister:             register.Show,
		domain.ViewCity:                 city.Show,
	}
	for _, r := range domain.Routes() {
		h, ok := views[r.View]
		if !ok {
			return nil, fmt.Errorf("route %s: no handler for view %s", r.Path, r.View)
		}
		e.Match([]string{http.MethodGet, http.MethodHead}, r.Path, h)
	}

	// --- Forms ---
	bodyLimit := echomiddleware.BodyLimit(formBodyLimit)
	e.POST(domain.PathFor(domain.ViewReportIssue), report.Submit, bodyLimit)
	e.POST(domain.PathFor(domain.ViewRegister), register.Submit, bodyLimit)

	e.StaticFS("/static", view.StaticFS())

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(map[string]handler.Checker{
		"templates": deps.Renderer,
	})

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are all views renderable?

	return e, nil
}

// RouteTable lists every registered route as "METHOD path", sorted by path.
func RouteTable(e *echo.Echo) []string {
	routes := e.Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	out := make([]string, 0, len(routes))
	for _, r := range routes {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}
