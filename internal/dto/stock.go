package dto

import (
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
)

type CreateStockRequest struct {
	TickerSymbol string          `json:"ticker_symbol" validate:"required,min=1,max=10"`
	CompanyName  string          `json:"company_name" validate:"required,max=100"`
	CurrentPrice decimal.Decimal `json:"current_price" validate:"required"`
	MarketCap    int64           `json:"market_cap" validate:"required"`
	Sector       string          `json:"sector" validate:"required,max=50"`
	Industry     string          `json:"industry,omitempty" validate:"omitempty,max=50"`
}

type UpdateStockRequest struct {
	TickerSymbol *string          `json:"ticker_symbol,omitempty" validate:"omitempty,min=1,max=10"`
	CompanyName  *string          `json:"company_name,omitempty" validate:"omitempty,max=100"`
	CurrentPrice *decimal.Decimal `json:"current_price,omitempty"`
	MarketCap    *int64           `json:"market_cap,omitempty"`
	Sector       *string          `json:"sector,omitempty" validate:"omitempty,max=50"`
	Industry     *string          `json:"industry,omitempty" validate:"omitempty,max=50"`
}

type UpdateStockPriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price" validate:"required"`
}

// PriceUpdateResult reports a price change, with a warning when the move
// exceeds the large-change threshold.
type PriceUpdateResult struct {
	StockID            uint            `json:"stock_id"`
	OldPrice           decimal.Decimal `json:"old_price"`
	NewPrice           decimal.Decimal `json:"new_price"`
	PriceChangePercent decimal.Decimal `json:"price_change_percent"`
	Warning            string          `json:"warning,omitempty"`
}

type StockList struct {
	Sector string        `json:"sector,omitempty"`
	Stocks []model.Stock `json:"stocks"`
	Count  int           `json:"count"`
}
