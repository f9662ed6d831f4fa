package dto

import (
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
)

type CreatePortfolioRequest struct {
	UserID        uint   `json:"user_id" validate:"required"`
	PortfolioName string `json:"portfolio_name" validate:"required,max=100"`
	Description   string `json:"description,omitempty"`
}

type UpdatePortfolioRequest struct {
	PortfolioName *string          `json:"portfolio_name,omitempty" validate:"omitempty,max=100"`
	Description   *string          `json:"description,omitempty"`
	TotalValue    *decimal.Decimal `json:"total_value,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

type PortfolioList struct {
	UserID     uint              `json:"user_id,omitempty"`
	Portfolios []model.Portfolio `json:"portfolios"`
	Count      int               `json:"count"`
}
