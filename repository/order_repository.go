package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/models"
)

type OrderRepository interface {
	// Create persists the order together with its menu and table links.
	Create(ctx context.Context, order *models.Order) error
	// ListByType returns every order of one variant with that variant's associations loaded.
	ListByType(ctx context.Context, t models.OrderType) ([]models.Order, error)
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).
		Omit("Menus.*", "Tables.*", "Customer").
		Create(order).Error
}

func (r *GormOrderRepository) ListByType(ctx context.Context, t models.OrderType) ([]models.Order, error) {
	variant, err := models.VariantOf(t)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Where("orders.type = ?", variant.Type)
	for _, assoc := range variant.Associations {
		q = q.Preload(assoc)
	}

	orders := []models.Order{}
	if err := q.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
