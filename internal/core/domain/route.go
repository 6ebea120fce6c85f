package domain

// View identifies one of the mutually exclusive pages of the portal.
type View string

const (
	ViewLanding              View = "landing"
	ViewCitizenDashboard     View = "citizen-dashboard"
	ViewAuthoritiesDashboard View = "authorities-dashboard"
	ViewReportIssue          View = "report-issue"
	ViewRegister             View = "register"
	ViewCity                 View = "city"

	// ViewNotFound is rendered for paths outside the route table.
	ViewNotFound View = "not-found"
	// ViewError is rendered for any other failure.
	ViewError View = "error"
)

// Route binds a path to the view rendered for it.
type Route struct {
	Path  string
	View  View
	Title string
}

var routes = []Route{
	{Path: "/", View: ViewLanding, Title: "Empowering Citizens, Building Better Cities"},
	{Path: "/citizen-dashboard", View: ViewCitizenDashboard, Title: "My Reported Issues"},
	{Path: "/authorities-dashboard", View: ViewAuthoritiesDashboard, Title: "Reported Issues"},
	{Path: "/report-issue", View: ViewReportIssue, Title: "Report an Issue"},
	{Path: "/register", View: ViewRegister, Title: "Register"},
	{Path: "/city", View: ViewCity, Title: "Choose Your City"},
}

// Routes returns a copy of the route table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// ViewForPath resolves path to its view. ok is false for unmatched paths.
func ViewForPath(path string) (v View, ok bool) {
	for _, r := range routes {
		if r.Path == path {
			return r.View, true
		}
	}
	return ViewNotFound, false
}

// PathFor returns the path registered for v, or "" when v has none.
func PathFor(v View) string {
	for _, r := range routes {
		if r.View == v {
			return r.Path
		}
	}
	return ""
}

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label string
	Path  string
	View  View
}

// Brand is the header link back to the landing page.
func Brand() NavLink {
	return NavLink{Label: "CivicConnect", Path: "/", View: ViewLanding}
}

// NavLinks returns the header links in display order.
func NavLinks() []NavLink {
	return []NavLink{
		{Label: "Naagrik Dashboard", Path: "/citizen-dashboard", View: ViewCitizenDashboard},
		{Label: "Authorities Dashboard", Path: "/authorities-dashboard", View: ViewAuthoritiesDashboard},
		{Label: "Your City", Path: "/city", View: ViewCity},
		{Label: "Register", Path: "/register", View: ViewRegister},
	}
}
