package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Stock struct {
	ID           uint            `gorm:"primaryKey" json:"stock_id"`
	TickerSymbol string          `gorm:"not null;uniqueIndex" json:"ticker_symbol"`
	CompanyName  string          `gorm:"not null" json:"company_name"`
	CurrentPrice decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"current_price"`
	MarketCap    int64           `gorm:"not null" json:"market_cap"`
	Sector       string          `gorm:"not null" json:"sector"`
	Industry     string          `json:"industry,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Stock) TableName() string {
	return "stocks"
}
