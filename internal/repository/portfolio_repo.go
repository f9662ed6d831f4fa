package repository

import (
	"context"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/utils"

	"gorm.io/gorm"
)

var portfolioUpdatableFields = map[string]struct{}{
	"portfolio_name": {},
	"description":    {},
	"total_value":    {},
	"is_active":      {},
}

type PortfolioRepository interface {
	Create(ctx context.Context, portfolio *model.Portfolio, opts ...utils.DBOption) error
	GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Portfolio, error)
	GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Portfolio, error)
	GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Portfolio, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{
		db: db,
	}
}

func (r *portfolioRepository) Create(ctx context.Context, portfolio *model.Portfolio, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(portfolio).Error
}

func (r *portfolioRepository) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.First(&portfolio, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &portfolio, nil
}

func (r *portfolioRepository) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.Portfolio, error) {
	var portfolios []model.Portfolio
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Order("created_at DESC").Find(&portfolios).Error; err != nil {
		return nil, err
	}

	return portfolios, nil
}

func (r *portfolioRepository) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]model.Portfolio, error) {
	var portfolios []model.Portfolio
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Where("user_id = ?", userID).Order("created_at DESC").Find(&portfolios).Error; err != nil {
		return nil, err
	}

	return portfolios, nil
}

func (r *portfolioRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	updates := filterFields(fields, portfolioUpdatableFields)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.Portfolio{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Delete(&model.Portfolio{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
