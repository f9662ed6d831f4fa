package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Portfolio struct {
	ID            uint            `gorm:"primaryKey" json:"portfolio_id"`
	UserID        uint            `gorm:"not null;index" json:"user_id"`
	User          *User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PortfolioName string          `gorm:"not null" json:"portfolio_name"`
	Description   string          `json:"description,omitempty"`
	TotalValue    decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"total_value"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}
