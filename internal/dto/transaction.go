package dto

import (
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	UserID          uint            `json:"user_id" validate:"required"`
	StockID         uint            `json:"stock_id" validate:"required"`
	PortfolioID     uint            `json:"portfolio_id" validate:"required"`
	TransactionType string          `json:"transaction_type" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required"`
	PricePerShare   decimal.Decimal `json:"price_per_share" validate:"required"`
	Notes           string          `json:"notes,omitempty"`
}

// Only the free-text note survives an update; everything else is immutable.
type UpdateTransactionRequest struct {
	Notes string `json:"notes"`
}

type TransactionResult struct {
	TransactionID uint            `json:"transaction_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	NewBalance    decimal.Decimal `json:"new_balance"`
}

// TransactionWithRefs is a transaction row joined with the names of the
// entities it references.
type TransactionWithRefs struct {
	model.Transaction
	TickerSymbol  string `json:"ticker_symbol,omitempty"`
	CompanyName   string `json:"company_name,omitempty"`
	Username      string `json:"username,omitempty"`
	PortfolioName string `json:"portfolio_name,omitempty"`
}

type TransactionList struct {
	UserID       uint                  `json:"user_id,omitempty"`
	StockID      uint                  `json:"stock_id,omitempty"`
	Transactions []TransactionWithRefs `json:"transactions"`
	Count        int                   `json:"count"`
}
