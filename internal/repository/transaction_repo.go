package repository

import (
	"context"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/utils"

	"gorm.io/gorm"
)

// Transactions are immutable except for their free-text note.
var transactionUpdatableFields = map[string]struct{}{
	"notes": {},
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *model.Transaction, opts ...utils.DBOption) error
	GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Transaction, error)
	GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Transaction, error)
	GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]dto.TransactionWithRefs, error)
	GetByStock(ctx context.Context, stockID uint, opts ...utils.DBOption) ([]dto.TransactionWithRefs, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *model.Transaction, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(transaction).Error
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Transaction, error) {
	var transaction model.Transaction
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.First(&transaction, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &transaction, nil
}

func (r *transactionRepository) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Transaction, error) {
	var transactions []model.Transaction
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *transactionRepository) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]dto.TransactionWithRefs, error) {
	var transactions []dto.TransactionWithRefs
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	err := tx.Table("transactions").
		Select("transactions.*, stocks.ticker_symbol, stocks.company_name, portfolios.portfolio_name").
		Joins("JOIN stocks ON transactions.stock_id = stocks.id").
		Joins("JOIN portfolios ON transactions.portfolio_id = portfolios.id").
		Where("transactions.user_id = ?", userID).
		Order("transactions.transaction_date DESC").
		Scan(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *transactionRepository) GetByStock(ctx context.Context, stockID uint, opts ...utils.DBOption) ([]dto.TransactionWithRefs, error) {
	var transactions []dto.TransactionWithRefs
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	err := tx.Table("transactions").
		Select("transactions.*, users.username, portfolios.portfolio_name").
		Joins("JOIN users ON transactions.user_id = users.id").
		Joins("JOIN portfolios ON transactions.portfolio_id = portfolios.id").
		Where("transactions.stock_id = ?", stockID).
		Order("transactions.transaction_date DESC").
		Scan(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

func (r *transactionRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	updates := filterFields(fields, transactionUpdatableFields)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.Transaction{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Delete(&model.Transaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
