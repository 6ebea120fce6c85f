package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/domain"
)

// Form names used as metric labels.
const (
	formReport   = "report-issue"
	formRegister = "register"
)

func render(c echo.Context, code int, v domain.View, data any) error {
	return c.Render(code, string(v), view.NewPage(v, data))
}
