package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicconnect/portal/internal/api/metrics"
	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/domain"
	"github.com/civicconnect/portal/internal/core/ports"
)

// RegisterHandler serves the registration form.
type RegisterHandler struct {
	service ports.SubmissionService
}

func NewRegisterHandler(service ports.SubmissionService) *RegisterHandler {
	return &RegisterHandler{service: service}
}

// Show handles GET /register. The optional ?role= query preselects a role;
// citizen is selected otherwise.
func (h *RegisterHandler) Show(c echo.Context) error {
	var q roleQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}

	draft := domain.NewRegistrationDraft()
	if err := c.Validate(&q); err != nil {
		return render(c, http.StatusUnprocessableEntity, domain.ViewRegister, registerForm(draft, err.Error()))
	}
	if err := draft.SelectRole(q.Role); err != nil {
		return render(c, http.StatusUnprocessableEntity, domain.ViewRegister, registerForm(draft, err.Error()))
	}
	return render(c, http.StatusOK, domain.ViewRegister, registerForm(draft, ""))
}

// Submit handles POST /register. The draft is handed to the submission
// service, which does nothing with it, and the browser is sent back to an
// empty form.
func (h *RegisterHandler) Submit(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	draft := domain.NewRegistrationDraft()
	draft.Name = req.Name
	draft.Email = req.Email
	draft.Password = req.Password

	err := c.Validate(&req)
	if err == nil {
		err = draft.SelectRole(req.Role)
	}
	if err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues(formRegister, metrics.OutcomeRejected).Inc()
		draft.Password = ""
		return render(c, http.StatusUnprocessableEntity, domain.ViewRegister, registerForm(draft, err.Error()))
	}

	if err := h.service.SubmitRegistration(c.Request().Context(), draft); err != nil {
		metrics.FormSubmissionsTotal.WithLabelValues(formRegister, metrics.OutcomeFailed).Inc()
		return err
	}

	metrics.FormSubmissionsTotal.WithLabelValues(formRegister, metrics.OutcomeAccepted).Inc()
	return c.Redirect(http.StatusSeeOther, domain.PathFor(domain.ViewRegister))
}

func registerForm(draft domain.RegistrationDraft, errMsg string) view.RegisterForm {
	return view.RegisterForm{
		Roles: domain.Roles(),
		Draft: draft,
		Error: errMsg,
	}
}
