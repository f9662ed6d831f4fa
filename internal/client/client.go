package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"stock-tracker/config"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/httpclient"
)

// Client talks to the stock-tracker REST API on behalf of the console
// front end.
type Client struct {
	http httpclient.HTTPClient
}

func New(cfg config.Client) *Client {
	return &Client{
		http: httpclient.New(cfg.BaseURL, cfg.Timeout),
	}
}

// envelope mirrors dto.BaseResponse with the payload left raw so each call
// can decode it into a typed result.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(resp *httpclient.BaseResponse, out interface{}) error {
	var env envelope
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &env); err != nil {
			return fmt.Errorf("malformed API response: %w", err)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if env.Message != "" {
			return fmt.Errorf("API error (%d): %s", resp.StatusCode, env.Message)
		}
		return fmt.Errorf("API error (%d)", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("malformed API payload: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	resp, err := c.http.Get(ctx, endpoint, nil, nil, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) post(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	resp, err := c.http.Post(ctx, endpoint, body, nil, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) put(ctx context.Context, endpoint string, body interface{}, out interface{}) error {
	resp, err := c.http.Put(ctx, endpoint, body, nil, nil)
	if err != nil {
		return err
	}
	return decode(resp, out)
}

func (c *Client) delete(ctx context.Context, endpoint string) error {
	resp, err := c.http.Delete(ctx, endpoint, nil, nil)
	if err != nil {
		return err
	}
	return decode(resp, nil)
}

// CheckConnection reports whether the API server is reachable.
func (c *Client) CheckConnection(ctx context.Context) bool {
	resp, err := c.http.Get(ctx, "/health", nil, nil, nil)
	if err != nil {
		return false
	}
	return resp.StatusCode == http.StatusOK
}

// Users

func (c *Client) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := c.post(ctx, "/api/v1/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetAllUsers(ctx context.Context) (*dto.UserList, error) {
	var list dto.UserList
	if err := c.get(ctx, "/api/v1/users", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) UpdateUserBalance(ctx context.Context, id uint, req dto.UpdateBalanceRequest) (*dto.BalanceResult, error) {
	var result dto.BalanceResult
	if err := c.put(ctx, fmt.Sprintf("/api/v1/users/%d/balance", id), req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/users/%d", id))
}

// Stocks

func (c *Client) CreateStock(ctx context.Context, req dto.CreateStockRequest) (*model.Stock, error) {
	var stock model.Stock
	if err := c.post(ctx, "/api/v1/stocks", req, &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (c *Client) GetStock(ctx context.Context, id uint) (*model.Stock, error) {
	var stock model.Stock
	if err := c.get(ctx, fmt.Sprintf("/api/v1/stocks/%d", id), &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (c *Client) GetAllStocks(ctx context.Context) (*dto.StockList, error) {
	var list dto.StockList
	if err := c.get(ctx, "/api/v1/stocks", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) SearchStockByTicker(ctx context.Context, ticker string) (*model.Stock, error) {
	var stock model.Stock
	if err := c.get(ctx, fmt.Sprintf("/api/v1/stocks/ticker/%s", ticker), &stock); err != nil {
		return nil, err
	}
	return &stock, nil
}

func (c *Client) GetStocksBySector(ctx context.Context, sector string) (*dto.StockList, error) {
	var list dto.StockList
	if err := c.get(ctx, fmt.Sprintf("/api/v1/stocks/sector/%s", sector), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetStockTransactions(ctx context.Context, id uint) (*dto.TransactionList, error) {
	var list dto.TransactionList
	if err := c.get(ctx, fmt.Sprintf("/api/v1/stocks/%d/transactions", id), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Portfolios

func (c *Client) CreatePortfolio(ctx context.Context, req dto.CreatePortfolioRequest) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	if err := c.post(ctx, "/api/v1/portfolios", req, &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func (c *Client) GetUserPortfolios(ctx context.Context, userID uint) (*dto.PortfolioList, error) {
	var list dto.PortfolioList
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/portfolios", userID), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Transactions

func (c *Client) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResult, error) {
	var result dto.TransactionResult
	if err := c.post(ctx, "/api/v1/transactions", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetUserTransactions(ctx context.Context, userID uint) (*dto.TransactionList, error) {
	var list dto.TransactionList
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/transactions", userID), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Watchlist

func (c *Client) AddToWatchlist(ctx context.Context, req dto.CreateWatchlistRequest) (*model.WatchlistItem, error) {
	var item model.WatchlistItem
	if err := c.post(ctx, "/api/v1/watchlist", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetUserWatchlist(ctx context.Context, userID uint) (*dto.WatchlistList, error) {
	var list dto.WatchlistList
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/watchlist", userID), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) CheckPriceAlerts(ctx context.Context, userID uint) (*dto.PriceAlertList, error) {
	var list dto.PriceAlertList
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/watchlist/alerts", userID), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) RemoveFromWatchlist(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/v1/watchlist/%d", id))
}
