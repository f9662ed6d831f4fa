package http

import (
	"net/http"
	"stock-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupWatchlist(base *echo.Group) {
	v1 := base.Group("/v1/watchlist")
	{
		v1.POST("", h.AddToWatchlist)
		v1.GET("/:id", h.GetWatchlistItem)
		v1.PUT("/:id", h.UpdateWatchlistItem)
		v1.DELETE("/:id", h.RemoveFromWatchlist)
	}
}

func (h *HttpAPIHandler) AddToWatchlist(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.CreateWatchlistRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	item, err := h.service.WatchlistService.Add(ctx, *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("stock added to watchlist", item))
}

func (h *HttpAPIHandler) GetWatchlistItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid watchlist id"))
	}

	item, err := h.service.WatchlistService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("watchlist item found", item))
}

func (h *HttpAPIHandler) UpdateWatchlistItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid watchlist id"))
	}

	req := new(dto.UpdateWatchlistRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.WatchlistService.Update(c.Request().Context(), id, *req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("watchlist item updated successfully", nil))
}

func (h *HttpAPIHandler) RemoveFromWatchlist(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid watchlist id"))
	}

	if err := h.service.WatchlistService.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("removed from watchlist", nil))
}
