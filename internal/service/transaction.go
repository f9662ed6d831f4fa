package service

import (
	"context"
	"errors"
	"strings"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/internal/repository"
	"stock-tracker/pkg/logger"
	"stock-tracker/pkg/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionService interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResult, error)
	Get(ctx context.Context, id uint) (*model.Transaction, error)
	GetAll(ctx context.Context) ([]model.Transaction, error)
	GetByUser(ctx context.Context, userID uint) ([]dto.TransactionWithRefs, error)
	GetByStock(ctx context.Context, stockID uint) ([]dto.TransactionWithRefs, error)
	UpdateNotes(ctx context.Context, id uint, notes string) error
	Delete(ctx context.Context, id uint) error
}

type transactionService struct {
	log             *logger.Logger
	transactionRepo repository.TransactionRepository
	userRepo        repository.UserRepository
	stockRepo       repository.StockRepository
	portfolioRepo   repository.PortfolioRepository
	uow             repository.UnitOfWork
}

func NewTransactionService(
	log *logger.Logger,
	transactionRepo repository.TransactionRepository,
	userRepo repository.UserRepository,
	stockRepo repository.StockRepository,
	portfolioRepo repository.PortfolioRepository,
	uow repository.UnitOfWork,
) TransactionService {
	return &transactionService{
		log:             log,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		stockRepo:       stockRepo,
		portfolioRepo:   portfolioRepo,
		uow:             uow,
	}
}

// Create runs the transaction workflow: validate inputs, verify the
// referenced entities, check portfolio ownership, check buyer balance, then
// persist the row and adjust the balance. The insert and the balance update
// share one DB transaction, but the balance read is not serialized against
// concurrent writers; two racing BUYs can still overdraw an account.
func (s *transactionService) Create(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResult, error) {
	txType := strings.ToUpper(strings.TrimSpace(req.TransactionType))
	if txType != model.TransactionTypeBuy && txType != model.TransactionTypeSell {
		return nil, NewRuleError("transaction type must be BUY or SELL")
	}
	if req.Quantity <= 0 {
		return nil, NewRuleError("quantity must be positive")
	}
	if !req.PricePerShare.IsPositive() {
		return nil, NewRuleError("price per share must be positive")
	}

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

	portfolio, err := s.portfolioRepo.GetByID(ctx, req.PortfolioID)
	if err != nil {
		return nil, err
	}
	if portfolio == nil {
		return nil, NewNotFoundError("portfolio", req.PortfolioID)
	}

	if portfolio.UserID != req.UserID {
		return nil, NewRuleError("portfolio does not belong to this user")
	}

	totalAmount := req.PricePerShare.Mul(decimal.NewFromInt(int64(req.Quantity)))

	var newBalance decimal.Decimal
	if txType == model.TransactionTypeBuy {
		if user.AccountBalance.LessThan(totalAmount) {
			return nil, NewRuleError("insufficient funds: need $%s, have $%s",
				totalAmount.StringFixed(2), user.AccountBalance.StringFixed(2))
		}
		newBalance = user.AccountBalance.Sub(totalAmount)
	} else {
		newBalance = user.AccountBalance.Add(totalAmount)
	}

	transaction := &model.Transaction{
		UserID:          req.UserID,
		StockID:         req.StockID,
		PortfolioID:     req.PortfolioID,
		TransactionType: txType,
		Quantity:        req.Quantity,
		PricePerShare:   req.PricePerShare,
		TotalAmount:     totalAmount,
		Notes:           req.Notes,
	}

	err = s.uow.Run(func(opts ...utils.DBOption) error {
		if err := s.transactionRepo.Create(ctx, transaction, opts...); err != nil {
			return err
		}
		return s.userRepo.Update(ctx, req.UserID, map[string]interface{}{"account_balance": newBalance}, opts...)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to create transaction", logger.ErrorField(err))
		return nil, err
	}

	s.log.InfoContext(ctx, "Transaction created",
		logger.StringField("type", txType),
		logger.StringField("ticker", stock.TickerSymbol),
		logger.IntField("quantity", req.Quantity),
		logger.StringField("total", totalAmount.StringFixed(2)))

	return &dto.TransactionResult{
		TransactionID: transaction.ID,
		TotalAmount:   totalAmount,
		NewBalance:    newBalance,
	}, nil
}

func (s *transactionService) Get(ctx context.Context, id uint) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, NewNotFoundError("transaction", id)
	}
	return transaction, nil
}

func (s *transactionService) GetAll(ctx context.Context) ([]model.Transaction, error) {
	return s.transactionRepo.GetAll(ctx)
}

func (s *transactionService) GetByUser(ctx context.Context, userID uint) ([]dto.TransactionWithRefs, error) {
	return s.transactionRepo.GetByUser(ctx, userID)
}

func (s *transactionService) GetByStock(ctx context.Context, stockID uint) ([]dto.TransactionWithRefs, error) {
	return s.transactionRepo.GetByStock(ctx, stockID)
}

func (s *transactionService) UpdateNotes(ctx context.Context, id uint, notes string) error {
	err := s.transactionRepo.Update(ctx, id, map[string]interface{}{"notes": notes})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("transaction", id)
	}
	return err
}

// Delete removes the row without reversing the balance change, matching the
// narrow lifecycle the transaction entity has.
func (s *transactionService) Delete(ctx context.Context, id uint) error {
	err := s.transactionRepo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("transaction", id)
	}
	return err
}
