package http

import (
	"net/http"
	"stock-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	v1 := base.Group("/v1/stocks")
	{
		v1.POST("", h.CreateStock)
		v1.GET("", h.GetAllStocks)
		v1.GET("/ticker/:ticker", h.SearchStockByTicker)
		v1.GET("/sector/:sector", h.GetStocksBySector)
		v1.GET("/:id", h.GetStock)
		v1.PUT("/:id", h.UpdateStock)
		v1.PUT("/:id/price", h.UpdateStockPrice)
		v1.DELETE("/:id", h.DeleteStock)
		v1.GET("/:id/transactions", h.GetStockTransactions)
	}
}

func (h *HttpAPIHandler) CreateStock(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.CreateStockRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stock, err := h.service.StockService.Create(ctx, *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("stock created successfully", stock))
}

func (h *HttpAPIHandler) GetStock(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid stock id"))
	}

	stock, err := h.service.StockService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stock found", stock))
}

func (h *HttpAPIHandler) GetAllStocks(c echo.Context) error {
	stocks, err := h.service.StockService.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stocks retrieved", dto.StockList{
		Stocks: stocks,
		Count:  len(stocks),
	}))
}

func (h *HttpAPIHandler) SearchStockByTicker(c echo.Context) error {
	stock, err := h.service.StockService.SearchByTicker(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stock found", stock))
}

func (h *HttpAPIHandler) GetStocksBySector(c echo.Context) error {
	sector := c.Param("sector")

	stocks, err := h.service.StockService.GetBySector(c.Request().Context(), sector)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stocks retrieved", dto.StockList{
		Sector: sector,
		Stocks: stocks,
		Count:  len(stocks),
	}))
}

func (h *HttpAPIHandler) UpdateStock(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid stock id"))
	}

	req := new(dto.UpdateStockRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.StockService.Update(c.Request().Context(), id, *req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stock updated successfully", nil))
}

func (h *HttpAPIHandler) UpdateStockPrice(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid stock id"))
	}

	req := new(dto.UpdateStockPriceRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result, err := h.service.StockService.UpdatePrice(c.Request().Context(), id, req.NewPrice)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stock price updated successfully", result))
}

func (h *HttpAPIHandler) DeleteStock(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid stock id"))
	}

	if err := h.service.StockService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("stock deleted successfully", nil))
}

func (h *HttpAPIHandler) GetStockTransactions(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid stock id"))
	}

	transactions, err := h.service.TransactionService.GetByStock(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("transactions retrieved", dto.TransactionList{
		StockID:      id,
		Transactions: transactions,
		Count:        len(transactions),
	}))
}
