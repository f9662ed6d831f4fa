package repository

import (
	"context"
	"stock-tracker/internal/dto"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/utils"

	"gorm.io/gorm"
)

var watchlistUpdatableFields = map[string]struct{}{
	"target_price":  {},
	"notes":         {},
	"alert_enabled": {},
}

type WatchlistRepository interface {
	Create(ctx context.Context, item *model.WatchlistItem, opts ...utils.DBOption) error
	GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.WatchlistItem, error)
	GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.WatchlistItem, error)
	GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]dto.WatchlistEntry, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type watchlistRepository struct {
	db *gorm.DB
}

func NewWatchlistRepository(db *gorm.DB) WatchlistRepository {
	return &watchlistRepository{
		db: db,
	}
}

func (r *watchlistRepository) Create(ctx context.Context, item *model.WatchlistItem, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(item).Error
}

func (r *watchlistRepository) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.WatchlistItem, error) {
	var item model.WatchlistItem
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.First(&item, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &item, nil
}

func (r *watchlistRepository) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.WatchlistItem, error) {
	var items []model.WatchlistItem
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Order("added_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *watchlistRepository) GetByUser(ctx context.Context, userID uint, opts ...utils.DBOption) ([]dto.WatchlistEntry, error) {
	var entries []dto.WatchlistEntry
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	err := tx.Table("watchlists").
		Select("watchlists.*, stocks.ticker_symbol, stocks.company_name, stocks.current_price, stocks.sector").
		Joins("JOIN stocks ON watchlists.stock_id = stocks.id").
		Where("watchlists.user_id = ?", userID).
		Order("watchlists.added_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *watchlistRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	updates := filterFields(fields, watchlistUpdatableFields)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.WatchlistItem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *watchlistRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Delete(&model.WatchlistItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
