package service

import (
	"context"
	"fmt"
	"time"

	"restaurant-api/models"
	"restaurant-api/repository"
)

type CreateBookingInput struct {
	Name        string
	PhoneNumber string
	PeopleQty   int
	Date        time.Time
	TableIDs    []uint
	Confirmed   bool
	CustomerID  *uint
}

type BookingService struct {
	bookings  repository.BookingRepository
	tables    repository.TableRepository
	customers repository.CustomerRepository
}

func NewBookingService(
	bookings repository.BookingRepository,
	tables repository.TableRepository,
	customers repository.CustomerRepository,
) *BookingService {
	return &BookingService{bookings: bookings, tables: tables, customers: customers}
}

// Create stores a booking. Unknown table ids are dropped, an unknown customer id is an error.
// Tables are not checked for availability and Busy is left untouched.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	tables, err := s.tables.FindByIDs(ctx, in.TableIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve tables: %w", err)
	}

	b := &models.Booking{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		PeopleQty:   in.PeopleQty,
		Date:        in.Date,
		Confirmed:   in.Confirmed,
		Tables:      tables,
	}

	if in.CustomerID != nil {
		c, err := resolveCustomer(ctx, s.customers, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		b.CustomerID = &c.ID
		b.Customer = c
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

func (s *BookingService) FindByPhoneNumber(ctx context.Context, phone string) ([]models.Booking, error) {
	bookings, err := s.bookings.ListByPhoneNumber(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// Remove deletes a booking; removing an id that does not exist succeeds
func (s *BookingService) Remove(ctx context.Context, id uint) error {
	if err := s.bookings.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking %d: %w", id, err)
	}
	return nil
}

func resolveCustomer(ctx context.Context, customers repository.CustomerRepository, id uint) (*models.Customer, error) {
	c, err := customers.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, notFound("Customer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("resolve customer %d: %w", id, err)
	}
	return c, nil
}
