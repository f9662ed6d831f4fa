package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupHealth() {
	h.echo.GET("/health", h.HealthCheck)
}

func (h *HttpAPIHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "stock-tracker",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
