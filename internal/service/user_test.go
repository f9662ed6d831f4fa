package service

import (
	"context"
	"testing"

	"stock-tracker/config"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T, repo *fakeUserRepo) UserService {
	cfg := &config.Config{
		Account: config.AccountConfig{DefaultBalance: "10000.00"},
	}
	return NewUserService(cfg, testLogger(t), repo)
}

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateUserRequest
		wantErr string
	}{
		{
			name: "valid user gets default balance",
			req: dto.CreateUserRequest{
				Username:  "john_doe",
				Email:     "john@example.com",
				Password:  "password123",
				FirstName: "John",
				LastName:  "Doe",
			},
		},
		{
			name: "username too short",
			req: dto.CreateUserRequest{
				Username:  "jd",
				Email:     "jd@example.com",
				Password:  "password123",
				FirstName: "J",
				LastName:  "D",
			},
			wantErr: "username must be 3-50 characters",
		},
		{
			name: "username with invalid characters",
			req: dto.CreateUserRequest{
				Username:  "john doe!",
				Email:     "john@example.com",
				Password:  "password123",
				FirstName: "John",
				LastName:  "Doe",
			},
			wantErr: "username must be alphanumeric",
		},
		{
			name: "password too short",
			req: dto.CreateUserRequest{
				Username:  "john_doe",
				Email:     "john@example.com",
				Password:  "short",
				FirstName: "John",
				LastName:  "Doe",
			},
			wantErr: "password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newUserService(t, newFakeUserRepo())
			user, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				var ruleErr *RuleError
				assert.ErrorAs(t, err, &ruleErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, user.ID)
			assert.True(t, user.AccountBalance.Equal(decimal.RequireFromString("10000.00")))
			assert.NotEqual(t, tt.req.Password, user.PasswordHash)
		})
	}
}

func TestUserService_Create_InitialBalance(t *testing.T) {
	svc := newUserService(t, newFakeUserRepo())

	balance := decimal.RequireFromString("2500.50")
	user, err := svc.Create(context.Background(), dto.CreateUserRequest{
		Username:       "alice",
		Email:          "alice@example.com",
		Password:       "password123",
		FirstName:      "Alice",
		LastName:       "Smith",
		InitialBalance: &balance,
	})

	require.NoError(t, err)
	assert.True(t, user.AccountBalance.Equal(balance))
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := newUserService(t, newFakeUserRepo())

	_, err := svc.Get(context.Background(), 99)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
}

func TestUserService_UpdateBalance(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		req         dto.UpdateBalanceRequest
		wantBalance string
		wantErr     string
	}{
		{
			name:    "add funds",
			balance: "100.00",
			req: dto.UpdateBalanceRequest{
				Amount:    decimal.RequireFromString("50.25"),
				Operation: dto.BalanceOperationAdd,
			},
			wantBalance: "150.25",
		},
		{
			name:    "subtract funds",
			balance: "100.00",
			req: dto.UpdateBalanceRequest{
				Amount:    decimal.RequireFromString("40.00"),
				Operation: dto.BalanceOperationSubtract,
			},
			wantBalance: "60.00",
		},
		{
			name:    "subtract below zero rejected",
			balance: "100.00",
			req: dto.UpdateBalanceRequest{
				Amount:    decimal.RequireFromString("100.01"),
				Operation: dto.BalanceOperationSubtract,
			},
			wantErr: "insufficient funds",
		},
		{
			name:    "non-positive amount rejected",
			balance: "100.00",
			req: dto.UpdateBalanceRequest{
				Amount:    decimal.Zero,
				Operation: dto.BalanceOperationAdd,
			},
			wantErr: "amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(&model.User{
				ID:             1,
				Username:       "bob",
				AccountBalance: decimal.RequireFromString(tt.balance),
			})
			svc := newUserService(t, repo)

			result, err := svc.UpdateBalance(context.Background(), 1, tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, result.NewBalance.Equal(decimal.RequireFromString(tt.wantBalance)),
				"got balance %s", result.NewBalance)
		})
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc := newUserService(t, newFakeUserRepo())

	err := svc.Delete(context.Background(), 42)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
