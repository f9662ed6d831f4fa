package service

import (
	"context"
	"errors"
	"regexp"
	"stock-tracker/config"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error)
	Get(ctx context.Context, id uint) (*model.User, error)
	GetAll(ctx context.Context) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, req dto.UpdateUserRequest) error
	UpdateBalance(ctx context.Context, id uint, req dto.UpdateBalanceRequest) (*dto.BalanceResult, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	cfg      *config.Config
	log      *logger.Logger
	userRepo repository.UserRepository
}

func NewUserService(cfg *config.Config, log *logger.Logger, userRepo repository.UserRepository) UserService {
	return &userService{
		cfg:      cfg,
		log:      log,
		userRepo: userRepo,
	}
}

func (s *userService) defaultBalance() decimal.Decimal {
	balance, err := decimal.NewFromString(s.cfg.Account.DefaultBalance)
	if err != nil {
		return decimal.NewFromInt(10000)
	}
	return balance
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	if len(req.Username) < 3 || len(req.Username) > 50 {
		return nil, NewRuleError("username must be 3-50 characters")
	}
	if !usernamePattern.MatchString(req.Username) {
		return nil, NewRuleError("username must be alphanumeric")
	}
	if len(req.Password) < 8 {
		return nil, NewRuleError("password must be at least 8 characters")
	}

	balance := s.defaultBalance()
	if req.InitialBalance != nil {
		balance = *req.InitialBalance
	}
	if balance.IsNegative() {
		return nil, NewRuleError("initial balance cannot be negative")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   string(hash),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		AccountBalance: balance,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.log.ErrorContext(ctx, "Failed to create user", logger.ErrorField(err))
		return nil, NewRuleError("failed to create user: username or email may already exist")
	}

	s.log.InfoContext(ctx, "User created",
		logger.StringField("username", user.Username),
		logger.Field("user_id", user.ID))
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("user", id)
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("user", username)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uint, req dto.UpdateUserRequest) error {
	fields := make(map[string]interface{})
	if req.Username != nil {
		if !usernamePattern.MatchString(*req.Username) {
			return NewRuleError("username must be alphanumeric")
		}
		fields["username"] = *req.Username
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}

	err := s.userRepo.Update(ctx, id, fields)
	if errors.Is(err, repository.ErrNoUpdatableFields) {
		return NewRuleError("no valid fields to update")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("user", id)
	}
	return err
}

func (s *userService) UpdateBalance(ctx context.Context, id uint, req dto.UpdateBalanceRequest) (*dto.BalanceResult, error) {
	if !req.Amount.IsPositive() {
		return nil, NewRuleError("amount must be positive")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("user", id)
	}

	var newBalance decimal.Decimal
	switch req.Operation {
	case dto.BalanceOperationAdd:
		newBalance = user.AccountBalance.Add(req.Amount)
	case dto.BalanceOperationSubtract:
		newBalance = user.AccountBalance.Sub(req.Amount)
		if newBalance.IsNegative() {
			return nil, NewRuleError("insufficient funds")
		}
	default:
		return nil, NewRuleError("invalid operation: use 'add' or 'subtract'")
	}

	if err := s.userRepo.Update(ctx, id, map[string]interface{}{"account_balance": newBalance}); err != nil {
		return nil, err
	}

	return &dto.BalanceResult{
		UserID:          id,
		PreviousBalance: user.AccountBalance,
		NewBalance:      newBalance,
	}, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("user", id)
	}
	return err
}
