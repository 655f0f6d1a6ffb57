package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks restaurant-api/repository TableRepository,CustomerRepository,MenuRepository,BookingRepository,OrderRepository,UserRepository

type TableRepository interface {
	Create(ctx context.Context, table *models.Table) error
	List(ctx context.Context) ([]models.Table, error)
	GetByID(ctx context.Context, id uint) (*models.Table, error)
	// FindByIDs returns the rows that exist; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uint) ([]models.Table, error)
}

type GormTableRepository struct {
	db *gorm.DB
}

func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

func (r *GormTableRepository) Create(ctx context.Context, table *models.Table) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *GormTableRepository) List(ctx context.Context) ([]models.Table, error) {
	tables := []models.Table{}
	if err := r.db.WithContext(ctx).Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (r *GormTableRepository) GetByID(ctx context.Context, id uint) (*models.Table, error) {
	var t models.Table
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *GormTableRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.Table, error) {
	tables := []models.Table{}
	if len(ids) == 0 {
		return tables, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
