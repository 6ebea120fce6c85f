package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/domain"
)

// errorResponse is the JSON error envelope for clients that ask for JSON.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps echo and domain errors to HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders the not-found or error page inside the navigation shell, or
//     {"error": "<message>"} when the client accepts only JSON.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if wantsJSON(c.Request()) {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}

		v := domain.ViewError
		if _, known := domain.ViewForPath(c.Request().URL.Path); code == http.StatusNotFound && !known {
			v = domain.ViewNotFound
		}
		page := view.NewPage(v, view.ErrorPage{Code: code, Message: msg})
		page.Title = http.StatusText(code)
		if rerr := c.Render(code, string(v), page); rerr != nil {
			log.Error().Err(rerr).Str("view", string(v)).Msg("render error page")
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404/405 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return he.Code, fmt.Sprintf("There is no page at %s.", c.Request().URL.Path)
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	if errors.Is(err, domain.ErrUnknownOption) {
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

// wantsJSON reports whether the Accept header asks for JSON and not HTML.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
