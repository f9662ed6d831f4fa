package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeBuy  = "BUY"
	TransactionTypeSell = "SELL"
)

type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"transaction_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	User            *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	StockID         uint            `gorm:"not null;index" json:"stock_id"`
	Stock           *Stock          `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE" json:"-"`
	PortfolioID     uint            `gorm:"not null;index" json:"portfolio_id"`
	Portfolio       *Portfolio      `gorm:"foreignKey:PortfolioID;constraint:OnDelete:CASCADE" json:"-"`
	TransactionType string          `gorm:"not null" json:"transaction_type"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	PricePerShare   decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"price_per_share"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_amount"`
	Notes           string          `json:"notes,omitempty"`
	TransactionDate time.Time       `gorm:"autoCreateTime" json:"transaction_date"`
}

func (Transaction) TableName() string {
	return "transactions"
}
