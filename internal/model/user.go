package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID             uint            `gorm:"primaryKey" json:"user_id"`
	Username       string          `gorm:"not null;uniqueIndex" json:"username"`
	Email          string          `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash   string          `gorm:"not null" json:"-"`
	FirstName      string          `gorm:"not null" json:"first_name"`
	LastName       string          `gorm:"not null" json:"last_name"`
	AccountBalance decimal.Decimal `gorm:"type:numeric(15,2);not null" json:"account_balance"`
	LastLoginAt    *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
