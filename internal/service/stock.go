package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/cache"
	"stock-tracker/pkg/common"
	"stock-tracker/pkg/logger"
	"stock-tracker/pkg/utils"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var tickerPattern = regexp.MustCompile(`^[A-Z]{1,10}$`)

// A price move beyond this percentage is flagged in the update response.
var largePriceChangeThreshold = decimal.NewFromInt(20)

const tickerCacheTTL = 5 * time.Minute

type StockService interface {
	Create(ctx context.Context, req dto.CreateStockRequest) (*model.Stock, error)
	Get(ctx context.Context, id uint) (*model.Stock, error)
	GetAll(ctx context.Context) ([]model.Stock, error)
	SearchByTicker(ctx context.Context, ticker string) (*model.Stock, error)
	GetBySector(ctx context.Context, sector string) ([]model.Stock, error)
	Update(ctx context.Context, id uint, req dto.UpdateStockRequest) error
	UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (*dto.PriceUpdateResult, error)
	Delete(ctx context.Context, id uint) error
}

type stockService struct {
	log       *logger.Logger
	stockRepo repository.StockRepository
	cache     cache.Cache
}

func NewStockService(log *logger.Logger, stockRepo repository.StockRepository, inmemoryCache cache.Cache) StockService {
	return &stockService{
		log:       log,
		stockRepo: stockRepo,
		cache:     inmemoryCache,
	}
}

func tickerCacheKey(ticker string) string {
	return fmt.Sprintf(common.KEY_STOCK_TICKER, ticker)
}

func (s *stockService) Create(ctx context.Context, req dto.CreateStockRequest) (*model.Stock, error) {
	ticker := utils.NormalizeTicker(req.TickerSymbol)
	if !tickerPattern.MatchString(ticker) {
		return nil, NewRuleError("ticker must be 1-10 uppercase letters")
	}
	if !req.CurrentPrice.IsPositive() {
		return nil, NewRuleError("stock price must be positive")
	}
	if req.MarketCap <= 0 {
		return nil, NewRuleError("market cap must be positive")
	}

	existing, err := s.stockRepo.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewRuleError("stock with ticker %s already exists", ticker)
	}

	stock := &model.Stock{
		TickerSymbol: ticker,
		CompanyName:  req.CompanyName,
		CurrentPrice: req.CurrentPrice,
		MarketCap:    req.MarketCap,
		Sector:       req.Sector,
		Industry:     req.Industry,
	}

	if err := s.stockRepo.Create(ctx, stock); err != nil {
		s.log.ErrorContext(ctx, "Failed to create stock", logger.ErrorField(err))
		return nil, NewRuleError("failed to create stock: ticker may already exist")
	}

	s.log.InfoContext(ctx, "Stock created",
		logger.StringField("ticker", stock.TickerSymbol),
		logger.Field("stock_id", stock.ID))
	return stock, nil
}

func (s *stockService) Get(ctx context.Context, id uint) (*model.Stock, error) {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, NewNotFoundError("stock", id)
	}
	return stock, nil
}

func (s *stockService) GetAll(ctx context.Context) ([]model.Stock, error) {
	return s.stockRepo.GetAll(ctx)
}

func (s *stockService) SearchByTicker(ctx context.Context, ticker string) (*model.Stock, error) {
	ticker = utils.NormalizeTicker(ticker)

	if cached, found := s.cache.Get(tickerCacheKey(ticker)); found {
		if stock, ok := cached.(*model.Stock); ok {
			return stock, nil
		}
	}

	stock, err := s.stockRepo.GetByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, NewNotFoundError("stock", ticker)
	}

	s.cache.Set(tickerCacheKey(ticker), stock, tickerCacheTTL)
	return stock, nil
}

func (s *stockService) GetBySector(ctx context.Context, sector string) ([]model.Stock, error) {
	return s.stockRepo.GetBySector(ctx, sector)
}

func (s *stockService) Update(ctx context.Context, id uint, req dto.UpdateStockRequest) error {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stock == nil {
		return NewNotFoundError("stock", id)
	}

	fields := make(map[string]interface{})
	if req.TickerSymbol != nil {
		ticker := utils.NormalizeTicker(*req.TickerSymbol)
		if !tickerPattern.MatchString(ticker) {
			return NewRuleError("ticker must be 1-10 uppercase letters")
		}
		fields["ticker_symbol"] = ticker
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.CurrentPrice != nil {
		if !req.CurrentPrice.IsPositive() {
			return NewRuleError("stock price must be positive")
		}
		fields["current_price"] = *req.CurrentPrice
	}
	if req.MarketCap != nil {
		if *req.MarketCap <= 0 {
			return NewRuleError("market cap must be positive")
		}
		fields["market_cap"] = *req.MarketCap
	}
	if req.Sector != nil {
		fields["sector"] = *req.Sector
	}
	if req.Industry != nil {
		fields["industry"] = *req.Industry
	}

	err = s.stockRepo.Update(ctx, id, fields)
	if errors.Is(err, repository.ErrNoUpdatableFields) {
		return NewRuleError("no valid fields to update")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("stock", id)
	}
	if err != nil {
		return err
	}

	s.cache.Delete(tickerCacheKey(stock.TickerSymbol))
	return nil
}

func (s *stockService) UpdatePrice(ctx context.Context, id uint, newPrice decimal.Decimal) (*dto.PriceUpdateResult, error) {
	if !newPrice.IsPositive() {
		return nil, NewRuleError("stock price must be positive")
	}

	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, NewNotFoundError("stock", id)
	}

	changePct := newPrice.Sub(stock.CurrentPrice).Abs().
		Div(stock.CurrentPrice).
		Mul(decimal.NewFromInt(100))

	if err := s.stockRepo.Update(ctx, id, map[string]interface{}{"current_price": newPrice}); err != nil {
		return nil, err
	}

	s.cache.Delete(tickerCacheKey(stock.TickerSymbol))

	result := &dto.PriceUpdateResult{
		StockID:            id,
		OldPrice:           stock.CurrentPrice,
		NewPrice:           newPrice,
		PriceChangePercent: changePct,
	}
	if changePct.GreaterThan(largePriceChangeThreshold) {
		result.Warning = fmt.Sprintf("large price change detected: %s%%", changePct.StringFixed(2))
		s.log.WarnContext(ctx, "Large price change",
			logger.StringField("ticker", stock.TickerSymbol),
			logger.StringField("change_percent", changePct.StringFixed(2)))
	}

	return result, nil
}

func (s *stockService) Delete(ctx context.Context, id uint) error {
	stock, err := s.stockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if stock == nil {
		return NewNotFoundError("stock", id)
	}

	if err := s.stockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("stock", id)
		}
		return err
	}

	s.cache.Delete(tickerCacheKey(stock.TickerSymbol))
	return nil
}
