package service

import (
	"context"
	"fmt"

	"restaurant-api/models"
	"restaurant-api/repository"
)

type CustomerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create stores a customer. Email uniqueness is not enforced.
func (s *CustomerService) Create(ctx context.Context, name, email string) (*models.Customer, error) {
	c := &models.Customer{Name: name, Email: email}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// Get returns the customer with its bookings
func (s *CustomerService) Get(ctx context.Context, id uint) (*models.Customer, error) {
	c, err := s.customers.GetWithBookings(ctx, id)
	if isNotFound(err) {
		return nil, notFound("Customer not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}
