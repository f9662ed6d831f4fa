package dto

import (
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
)

const (
	BalanceOperationAdd      = "add"
	BalanceOperationSubtract = "subtract"
)

type CreateUserRequest struct {
	Username       string           `json:"username" validate:"required,min=3,max=50"`
	Email          string           `json:"email" validate:"required,email"`
	Password       string           `json:"password" validate:"required,min=8"`
	FirstName      string           `json:"first_name" validate:"required,max=50"`
	LastName       string           `json:"last_name" validate:"required,max=50"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=50"`
}

type UpdateBalanceRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Operation string          `json:"operation" validate:"required,oneof=add subtract"`
}

type BalanceResult struct {
	UserID          uint            `json:"user_id"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
}

type UserList struct {
	Users []model.User `json:"users"`
	Count int          `json:"count"`
}
