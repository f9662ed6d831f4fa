package dto

import (
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
)

type CreateWatchlistRequest struct {
	UserID       uint             `json:"user_id" validate:"required"`
	StockID      uint             `json:"stock_id" validate:"required"`
	TargetPrice  *decimal.Decimal `json:"target_price,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	AlertEnabled bool             `json:"alert_enabled"`
}

type UpdateWatchlistRequest struct {
	TargetPrice  *decimal.Decimal `json:"target_price,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	AlertEnabled *bool            `json:"alert_enabled,omitempty"`
}

// WatchlistEntry is a watchlist row joined with the stock it watches.
type WatchlistEntry struct {
	model.WatchlistItem
	TickerSymbol string          `json:"ticker_symbol"`
	CompanyName  string          `json:"company_name"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	Sector       string          `json:"sector"`
}

type WatchlistList struct {
	UserID    uint             `json:"user_id"`
	Watchlist []WatchlistEntry `json:"watchlist"`
	Count     int              `json:"count"`
}

// PriceAlert fires when a watched stock trades at or below its target price.
type PriceAlert struct {
	Ticker       string          `json:"ticker"`
	Company      string          `json:"company"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	TargetPrice  decimal.Decimal `json:"target_price"`
	Message      string          `json:"message"`
}

type PriceAlertList struct {
	UserID uint         `json:"user_id"`
	Alerts []PriceAlert `json:"alerts"`
	Count  int          `json:"count"`
}
