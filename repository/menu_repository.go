package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/models"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) error
	List(ctx context.Context) ([]models.Menu, error)
	GetByID(ctx context.Context, id uint) (*models.Menu, error)
	// FindByIDs returns the rows that exist; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uint) ([]models.Menu, error)
	// Save writes every column of menu, zero values included.
	Save(ctx context.Context, menu *models.Menu) error
	// Delete removes the row and reports how many rows were affected.
	Delete(ctx context.Context, id uint) (int64, error)
}

type GormMenuRepository struct {
	db *gorm.DB
}

func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

func (r *GormMenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Create(menu).Error
}

func (r *GormMenuRepository) List(ctx context.Context) ([]models.Menu, error) {
	menus := []models.Menu{}
	if err := r.db.WithContext(ctx).Order("id").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *GormMenuRepository) GetByID(ctx context.Context, id uint) (*models.Menu, error) {
	var m models.Menu
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *GormMenuRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Menu, error) {
	menus := []models.Menu{}
	if len(ids) == 0 {
		return menus, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *GormMenuRepository) Save(ctx context.Context, menu *models.Menu) error {
	return r.db.WithContext(ctx).Save(menu).Error
}

func (r *GormMenuRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Menu{}, id)
	return tx.RowsAffected, tx.Error
}
