package repository

import (
	"context"

	"gorm.io/gorm"

	"restaurant-api/models"
)

type BookingRepository interface {
	// Create persists the booking and its table links.
	Create(ctx context.Context, booking *models.Booking) error
	// ListByPhoneNumber returns bookings whose phone number matches exactly, tables loaded.
	ListByPhoneNumber(ctx context.Context, phone string) ([]models.Booking, error)
	// Delete removes the booking and its table links. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id uint) error
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	// Tables and customer already exist; only the links are written.
	return r.db.WithContext(ctx).
		Omit("Tables.*", "Customer").
		Create(booking).Error
}

func (r *GormBookingRepository) ListByPhoneNumber(ctx context.Context, phone string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := r.db.WithContext(ctx).
		Preload("Tables").
		Where("phone_number = ?", phone).
		Order("date").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormBookingRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{ID: id}).Association("Tables").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Booking{}, id).Error
	})
}
