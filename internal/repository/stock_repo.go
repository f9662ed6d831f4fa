package repository

import (
	"context"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/utils"

	"gorm.io/gorm"
)

var stockUpdatableFields = map[string]struct{}{
	"ticker_symbol": {},
	"company_name":  {},
	"current_price": {},
	"market_cap":    {},
	"sector":        {},
	"industry":      {},
}

type StockRepository interface {
	Create(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error
	GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Stock, error)
	GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Stock, error)
	GetByTicker(ctx context.Context, ticker string, opts ...utils.DBOption) (*model.Stock, error)
	GetBySector(ctx context.Context, sector string, opts ...utils.DBOption) ([]model.Stock, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type stockRepository struct {
	db *gorm.DB
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{
		db: db,
	}
}

func (r *stockRepository) Create(ctx context.Context, stock *model.Stock, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(stock).Error
}

func (r *stockRepository) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Stock, error) {
	var stock model.Stock
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.First(&stock, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &stock, nil
}

func (r *stockRepository) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Stock, error) {
	var stocks []model.Stock
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Order("ticker_symbol").Find(&stocks).Error; err != nil {
		return nil, err
	}

	return stocks, nil
}

func (r *stockRepository) GetByTicker(ctx context.Context, ticker string, opts ...utils.DBOption) (*model.Stock, error) {
	var stock model.Stock
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("ticker_symbol = ?", ticker).First(&stock)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &stock, nil
}

func (r *stockRepository) GetBySector(ctx context.Context, sector string, opts ...utils.DBOption) ([]model.Stock, error) {
	var stocks []model.Stock
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Where("sector = ?", sector).Order("ticker_symbol").Find(&stocks).Error; err != nil {
		return nil, err
	}

	return stocks, nil
}

func (r *stockRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	updates := filterFields(fields, stockUpdatableFields)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.Stock{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *stockRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Delete(&model.Stock{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
