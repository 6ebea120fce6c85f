package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicconnect/portal/internal/api/view"
	"github.com/civicconnect/portal/internal/core/domain"
)

// CityHandler serves the city picker.
type CityHandler struct{}

func NewCityHandler() *CityHandler {
	return &CityHandler{}
}

// Show handles GET /city. With ?city=<name> the option is preselected and
// the summary sentence is rendered; without it only the selector is shown.
func (h *CityHandler) Show(c echo.Context) error {
	var q cityQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return render(c, http.StatusUnprocessableEntity, domain.ViewCity, cityForm(domain.CitySelection{}, err.Error()))
	}

	sel, err := domain.NewCitySelection(q.City)
	if err != nil {
		return render(c, http.StatusUnprocessableEntity, domain.ViewCity, cityForm(domain.CitySelection{}, err.Error()))
	}
	return render(c, http.StatusOK, domain.ViewCity, cityForm(sel, ""))
}

func cityForm(sel domain.CitySelection, errMsg string) view.CityForm {
	return view.CityForm{
		Cities:    domain.Cities(),
		Selection: sel,
		Error:     errMsg,
	}
}
