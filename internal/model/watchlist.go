package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type WatchlistItem struct {
	ID           uint                `gorm:"primaryKey" json:"watchlist_id"`
	UserID       uint                `gorm:"not null;index" json:"user_id"`
	User         *User               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	StockID      uint                `gorm:"not null;index" json:"stock_id"`
	Stock        *Stock              `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE" json:"-"`
	TargetPrice  decimal.NullDecimal `gorm:"type:numeric(15,2)" json:"target_price"`
	Notes        string              `json:"notes,omitempty"`
	AlertEnabled bool                `gorm:"not null;default:false" json:"alert_enabled"`
	AddedAt      time.Time           `gorm:"autoCreateTime" json:"added_at"`
}

func (WatchlistItem) TableName() string {
	return "watchlists"
}
