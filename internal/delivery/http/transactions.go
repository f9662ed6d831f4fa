package http

import (
	"net/http"
	"stock-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTransactions(base *echo.Group) {
	v1 := base.Group("/v1/transactions")
	{
		v1.POST("", h.CreateTransaction)
		v1.GET("", h.GetAllTransactions)
		v1.GET("/:id", h.GetTransaction)
		v1.PUT("/:id", h.UpdateTransaction)
		v1.DELETE("/:id", h.DeleteTransaction)
	}
}

func (h *HttpAPIHandler) CreateTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.CreateTransactionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result, err := h.service.TransactionService.Create(ctx, *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("transaction created successfully", result))
}

func (h *HttpAPIHandler) GetTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid transaction id"))
	}

	transaction, err := h.service.TransactionService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("transaction found", transaction))
}

func (h *HttpAPIHandler) GetAllTransactions(c echo.Context) error {
	transactions, err := h.service.TransactionService.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("transactions retrieved", map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	}))
}

func (h *HttpAPIHandler) UpdateTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid transaction id"))
	}

	req := new(dto.UpdateTransactionRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}

	if err := h.service.TransactionService.UpdateNotes(c.Request().Context(), id, req.Notes); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("transaction updated successfully", nil))
}

func (h *HttpAPIHandler) DeleteTransaction(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid transaction id"))
	}

	if err := h.service.TransactionService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("transaction deleted successfully", nil))
}
