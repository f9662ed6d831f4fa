package service

import (
	"context"
	"errors"
	"fmt"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WatchlistService interface {
	Add(ctx context.Context, req dto.CreateWatchlistRequest) (*model.WatchlistItem, error)
	Get(ctx context.Context, id uint) (*model.WatchlistItem, error)
	GetByUser(ctx context.Context, userID uint) ([]dto.WatchlistEntry, error)
	Update(ctx context.Context, id uint, req dto.UpdateWatchlistRequest) error
	Remove(ctx context.Context, id uint) error
	CheckAlerts(ctx context.Context, userID uint) ([]dto.PriceAlert, error)
}

type watchlistService struct {
	log           *logger.Logger
	watchlistRepo repository.WatchlistRepository
	userRepo      repository.UserRepository
	stockRepo     repository.StockRepository
}

func NewWatchlistService(
	log *logger.Logger,
	watchlistRepo repository.WatchlistRepository,
	userRepo repository.UserRepository,
	stockRepo repository.StockRepository,
) WatchlistService {
	return &watchlistService{
		log:           log,
		watchlistRepo: watchlistRepo,
		userRepo:      userRepo,
		stockRepo:     stockRepo,
	}
}

func (s *watchlistService) Add(ctx context.Context, req dto.CreateWatchlistRequest) (*model.WatchlistItem, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, NewNotFoundError("user", req.UserID)
	}

	stock, err := s.stockRepo.GetByID(ctx, req.StockID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, NewNotFoundError("stock", req.StockID)
	}

	if req.TargetPrice != nil && !req.TargetPrice.IsPositive() {
		return nil, NewRuleError("target price must be positive")
	}

	item := &model.WatchlistItem{
		UserID:       req.UserID,
		StockID:      req.StockID,
		Notes:        req.Notes,
		AlertEnabled: req.AlertEnabled,
	}
	if req.TargetPrice != nil {
		item.TargetPrice = decimal.NewNullDecimal(*req.TargetPrice)
	}

	if err := s.watchlistRepo.Create(ctx, item); err != nil {
		s.log.ErrorContext(ctx, "Failed to add to watchlist", logger.ErrorField(err))
		return nil, NewRuleError("failed to add to watchlist: may already be watching this stock")
	}

	s.log.InfoContext(ctx, "Stock added to watchlist",
		logger.StringField("ticker", stock.TickerSymbol),
		logger.Field("watchlist_id", item.ID))
	return item, nil
}

func (s *watchlistService) Get(ctx context.Context, id uint) (*model.WatchlistItem, error) {
	item, err := s.watchlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, NewNotFoundError("watchlist item", id)
	}
	return item, nil
}

func (s *watchlistService) GetByUser(ctx context.Context, userID uint) ([]dto.WatchlistEntry, error) {
	return s.watchlistRepo.GetByUser(ctx, userID)
}

func (s *watchlistService) Update(ctx context.Context, id uint, req dto.UpdateWatchlistRequest) error {
	fields := make(map[string]interface{})
	if req.TargetPrice != nil {
		if !req.TargetPrice.IsPositive() {
			return NewRuleError("target price must be positive")
		}
		fields["target_price"] = *req.TargetPrice
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.AlertEnabled != nil {
		fields["alert_enabled"] = *req.AlertEnabled
	}

	err := s.watchlistRepo.Update(ctx, id, fields)
	if errors.Is(err, repository.ErrNoUpdatableFields) {
		return NewRuleError("no valid fields to update")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("watchlist item", id)
	}
	return err
}

func (s *watchlistService) Remove(ctx context.Context, id uint) error {
	err := s.watchlistRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("watchlist item", id)
	}
	return err
}

// CheckAlerts reports watched stocks trading at or below their target price,
// for entries that have alerts enabled.
func (s *watchlistService) CheckAlerts(ctx context.Context, userID uint) ([]dto.PriceAlert, error) {
	entries, err := s.watchlistRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.PriceAlert, 0)
	for _, entry := range entries {
		if !entry.AlertEnabled || !entry.TargetPrice.Valid {
			continue
		}
		if entry.CurrentPrice.LessThanOrEqual(entry.TargetPrice.Decimal) {
			alerts = append(alerts, dto.PriceAlert{
				Ticker:       entry.TickerSymbol,
				Company:      entry.CompanyName,
				CurrentPrice: entry.CurrentPrice,
				TargetPrice:  entry.TargetPrice.Decimal,
				Message:      fmt.Sprintf("%s has reached target price!", entry.TickerSymbol),
			})
		}
	}

	return alerts, nil
}
