package http

import (
	"errors"
	"net/http"
	"strconv"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/service"

	"github.com/labstack/echo/v4"
)

// respondError maps the service error taxonomy onto HTTP status codes:
// rule violations become 400, missing entities 404, anything else 500.
func respondError(c echo.Context, err error) error {
	var ruleErr *service.RuleError
	if errors.As(err, &ruleErr) {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(ruleErr.Message))
	}

	var notFoundErr *service.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, dto.NewNotFoundResponse(notFoundErr.Error()))
	}

	return c.JSON(http.StatusInternalServerError,
		dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
}

func parseIDParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
