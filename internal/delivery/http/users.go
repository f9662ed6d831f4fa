package http

import (
	"net/http"
	"stock-tracker/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupUsers(base *echo.Group) {
	v1 := base.Group("/v1/users")
	{
		v1.POST("", h.CreateUser)
		v1.GET("", h.GetAllUsers)
		v1.GET("/:id", h.GetUser)
		v1.PUT("/:id", h.UpdateUser)
		v1.PUT("/:id/balance", h.UpdateUserBalance)
		v1.DELETE("/:id", h.DeleteUser)

		v1.GET("/:id/portfolios", h.GetUserPortfolios)
		v1.GET("/:id/transactions", h.GetUserTransactions)
		v1.GET("/:id/watchlist", h.GetUserWatchlist)
		v1.GET("/:id/watchlist/alerts", h.CheckUserAlerts)
	}
}

func (h *HttpAPIHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	req := new(dto.CreateUserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	user, err := h.service.UserService.Create(ctx, *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewCreatedResponse("user created successfully", user))
}

func (h *HttpAPIHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	user, err := h.service.UserService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("user found", user))
}

func (h *HttpAPIHandler) GetAllUsers(c echo.Context) error {
	users, err := h.service.UserService.GetAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("users retrieved", dto.UserList{
		Users: users,
		Count: len(users),
	}))
}

func (h *HttpAPIHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	req := new(dto.UpdateUserRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	if err := h.service.UserService.UpdateProfile(c.Request().Context(), id, *req); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("user updated successfully", nil))
}

func (h *HttpAPIHandler) UpdateUserBalance(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	req := new(dto.UpdateBalanceRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	result, err := h.service.UserService.UpdateBalance(c.Request().Context(), id, *req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("balance updated successfully", result))
}

func (h *HttpAPIHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	if err := h.service.UserService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("user deleted successfully", nil))
}

func (h *HttpAPIHandler) GetUserPortfolios(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	portfolios, err := h.service.PortfolioService.GetByUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("portfolios retrieved", dto.PortfolioList{
		UserID:     id,
		Portfolios: portfolios,
		Count:      len(portfolios),
	}))
}

func (h *HttpAPIHandler) GetUserTransactions(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	transactions, err := h.service.TransactionService.GetByUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("transactions retrieved", dto.TransactionList{
		UserID:       id,
		Transactions: transactions,
		Count:        len(transactions),
	}))
}

func (h *HttpAPIHandler) GetUserWatchlist(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	watchlist, err := h.service.WatchlistService.GetByUser(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("watchlist retrieved", dto.WatchlistList{
		UserID:    id,
		Watchlist: watchlist,
		Count:     len(watchlist),
	}))
}

func (h *HttpAPIHandler) CheckUserAlerts(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse("invalid user id"))
	}

	alerts, err := h.service.WatchlistService.CheckAlerts(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSuccessResponse("alerts checked", dto.PriceAlertList{
		UserID: id,
		Alerts: alerts,
		Count:  len(alerts),
	}))
}
