package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicconnect/portal/internal/api/metrics"
	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/domain"
	"github.com/civicconnect/portal/internal/core/ports"
)

// ReportHandler serves the report-issue form.
type ReportHandler struct {
	service ports.SubmissionService
}

func NewReportHandler(service ports.SubmissionService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Show handles GET /report-issue with an empty draft.
func (h *ReportHandler) Show(c echo.Context) error {
	return render(c, http.StatusOK, domain.ViewReportIssue, reportForm(domain.ReportDraft{}, nil, ""))
}

// Submit handles POST /report-issue. Any draft whose category is empty or
// one of the offered categories is acknowledged; the page is rendered again
// with the acknowledgment and an empty form.
func (h *ReportHandler) Submit(c echo.Context) error {
	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return h.reject(c, req, err)
	}

	draft, err := domain.NewReportDraft(req.Description, req.Category, req.Attachment)
	if err != nil {
		return h.reject(c, req, err)
	}

	ack, err := h.service.SubmitReport(c.Request().Context(), draft)
	if err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues(formReport, metrics.OutcomeFailed).Inc()
		return err
	}

	metrics.FormSubmissionsTotal.WithLabelValues(formReport, metrics.OutcomeAccepted).Inc()
	metrics.ReportsByCategoryTotal.WithLabelValues(categoryLabel(draft.Category)).Inc()
	return render(c, http.StatusOK, domain.ViewReportIssue, reportForm(domain.ReportDraft{}, ack, ""))
}

// reject re-renders the form with 422, keeping the free text the user typed.
func (h *ReportHandler) reject(c echo.Context, req reportRequest, err error) error {
	metrics.FormSubmissionsTotal.WithLabelValues(formReport, metrics.OutcomeRejected).Inc()
	kept := domain.ReportDraft{Description: req.Description}
	return render(c, http.StatusUnprocessableEntity, domain.ViewReportIssue, reportForm(kept, nil, err.Error()))
}

func reportForm(draft domain.ReportDraft, ack *ports.Acknowledgment, errMsg string) view.ReportForm {
	return view.ReportForm{
		Categories: domain.Categories(),
		Draft:      draft,
		Ack:        ack,
		Error:      errMsg,
	}
}

func categoryLabel(c domain.Category) string {
	if c == "" {
		return "none"
	}
	return string(c)
}
