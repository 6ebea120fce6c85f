package view

import (
	"github.com/civicconnect/portal/internal/core/domain"
	"github.com/civicconnect/portal/internal/core/ports"
)

// Page is the data every template receives. Data holds the view-specific
// payload below.
type Page struct {
	View  domain.View
	Title string
	Data  any
}

// NewPage builds a page titled after the route table entry for v.
func NewPage(v domain.View, data any) Page {
	title := ""
	for _, r := range domain.Routes() {
		if r.View == v {
			title = r.Title
			break
		}
	}
	return Page{View: v, Title: title, Data: data}
}

// ReportForm is the payload of the report-issue view.
type ReportForm struct {
	Categories []domain.Category
	Draft      domain.ReportDraft
	Ack        *ports.Acknowledgment
	Error      string
}

// RegisterForm is the payload of the register view.
type RegisterForm struct {
	Roles []domain.Role
	Draft domain.RegistrationDraft
	Error string
}

// CityForm is the payload of the city view.
type CityForm struct {
	Cities    []domain.City
	Selection domain.CitySelection
	Error     string
}

// ErrorPage is the payload of the not-found and error views.
type ErrorPage struct {
	Code    int
	Message string
}
