package repository

import (
	"context"
	"stock-tracker/internal/model"
	"stock-tracker/pkg/utils"

	"gorm.io/gorm"
)

// Fields a caller may change through Update; everything else is ignored.
var userUpdatableFields = map[string]struct{}{
	"username":        {},
	"email":           {},
	"first_name":      {},
	"last_name":       {},
	"account_balance": {},
	"last_login_at":   {},
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error
	GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.User, error)
	GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.User, error)
	GetByUsername(ctx context.Context, username string, opts ...utils.DBOption) (*model.User, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error
	Delete(ctx context.Context, id uint, opts ...utils.DBOption) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *model.User, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	return tx.Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint, opts ...utils.DBOption) (*model.User, error) {
	var user model.User
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.First(&user, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context, opts ...utils.DBOption) ([]model.User, error) {
	var users []model.User
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	if err := tx.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string, opts ...utils.DBOption) (*model.User, error) {
	var user model.User
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)

	result := tx.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}, opts ...utils.DBOption) error {
	updates := filterFields(fields, userUpdatableFields)
	if len(updates) == 0 {
		return ErrNoUpdatableFields
	}

	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id uint, opts ...utils.DBOption) error {
	tx := utils.ApplyOptions(r.db.WithContext(ctx), opts...)
	result := tx.Delete(&model.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
