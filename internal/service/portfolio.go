package service

import (
	"context"
	"errors"
	"strings"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PortfolioService interface {
	Create(ctx context.Context, req dto.CreatePortfolioRequest) (*model.Portfolio, error)
	Get(ctx context.Context, id uint) (*model.Portfolio, error)
	GetAll(ctx context.Context) ([]model.Portfolio, error)
	GetByUser(ctx context.Context, userID uint) ([]model.Portfolio, error)
	Update(ctx context.Context, id uint, req dto.UpdatePortfolioRequest) error
	Delete(ctx context.Context, id uint) error
}

type portfolioService struct {
	log           *logger.Logger
	portfolioRepo repository.PortfolioRepository
	userRepo      repository.UserRepository
}

func NewPortfolioService(log *logger.Logger, portfolioRepo repository.PortfolioRepository, userRepo repository.UserRepository) PortfolioService {
	return &portfolioService{
		log:           log,
		portfolioRepo: portfolioRepo,
		userRepo:      userRepo,
	}
}

func (s *portfolioService) Create(ctx context.Context, req dto.CreatePortfolioRequest) (*model.Portfolio, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("user", req.UserID)
	}

	if strings.TrimSpace(req.PortfolioName) == "" {
		return nil, NewRuleError("portfolio name is required")
	}

	portfolio := &model.Portfolio{
		UserID:        req.UserID,
		PortfolioName: req.PortfolioName,
		Description:   req.Description,
		TotalValue:    decimal.Zero,
		IsActive:      true,
	}

	if err := s.portfolioRepo.Create(ctx, portfolio); err != nil {
		s.log.ErrorContext(ctx, "Failed to create portfolio", logger.ErrorField(err))
		return nil, NewRuleError("failed to create portfolio: name may already exist for this user")
	}

	s.log.InfoContext(ctx, "Portfolio created",
		logger.StringField("name", portfolio.PortfolioName),
		logger.Field("portfolio_id", portfolio.ID))
	return portfolio, nil
}

func (s *portfolioService) Get(ctx context.Context, id uint) (*model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, NewNotFoundError("portfolio", id)
	}
	return portfolio, nil
}

func (s *portfolioService) GetAll(ctx context.Context) ([]model.Portfolio, error) {
	return s.portfolioRepo.GetAll(ctx)
}

func (s *portfolioService) GetByUser(ctx context.Context, userID uint) ([]model.Portfolio, error) {
	return s.portfolioRepo.GetByUser(ctx, userID)
}

func (s *portfolioService) Update(ctx context.Context, id uint, req dto.UpdatePortfolioRequest) error {
	fields := make(map[string]interface{})
	if req.PortfolioName != nil {
		if strings.TrimSpace(*req.PortfolioName) == "" {
			return NewRuleError("portfolio name is required")
		}
		fields["portfolio_name"] = *req.PortfolioName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.TotalValue != nil {
		if req.TotalValue.IsNegative() {
			return NewRuleError("portfolio value cannot be negative")
		}
		fields["total_value"] = *req.TotalValue
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	err := s.portfolioRepo.Update(ctx, id, fields)
	if errors.Is(err, repository.ErrNoUpdatableFields) {
		return NewRuleError("no valid fields to update")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("portfolio", id)
	}
	return err
}

func (s *portfolioService) Delete(ctx context.Context, id uint) error {
	err := s.portfolioRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("portfolio", id)
	}
	return err
}
