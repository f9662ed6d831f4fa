package http

import (
	"net/http"
	"stock-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPortfolios(base *echo.Group) {
	v1 := base.Group("/v1/portfolios")
	{
		v1.POST("", h.CreatePortfolio)
		v1.GET("", h.GetAllPortfolios)
		v1.GET("/:id", h.GetPortfolio)
		v1.PUT("/:id", h.UpdatePortfolio)
		v1.DELETE("/:id", h.DeletePortfolio)
	}
}

func (h *HttpAPIHandler) CreatePortfolio(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.CreatePortfolioRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	portfolio, err := h.service.PortfolioService.Create(ctx, *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("portfolio created successfully", portfolio))
}

func (h *HttpAPIHandler) GetPortfolio(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid portfolio id"))
	}

	portfolio, err := h.service.PortfolioService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("portfolio found", portfolio))
}

func (h *HttpAPIHandler) GetAllPortfolios(c echo.Context) error {
	portfolios, err := h.service.PortfolioService.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("portfolios retrieved", dto.PortfolioList{
		Portfolios: portfolios,
		Count:      len(portfolios),
	}))
}

func (h *HttpAPIHandler) UpdatePortfolio(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid portfolio id"))
	}

	req := new(dto.UpdatePortfolioRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.PortfolioService.Update(c.Request().Context(), id, *req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("portfolio updated successfully", nil))
}

func (h *HttpAPIHandler) DeletePortfolio(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid portfolio id"))
	}

	if err := h.service.PortfolioService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("portfolio deleted successfully", nil))
}
