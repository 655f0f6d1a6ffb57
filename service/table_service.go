package service

import (
	"context"
	"fmt"

	"restaurant-api/models"
	"restaurant-api/repository"
)

type CreateTableInput struct {
	Name        string
	Description string
	Capacity    int
	Busy        bool
}

type TableService struct {
	tables repository.TableRepository
}

func NewTableService(tables repository.TableRepository) *TableService {
	return &TableService{tables: tables}
}

func (s *TableService) Create(ctx context.Context, in CreateTableInput) (*models.Table, error) {
	t := &models.Table{
		Name:        in.Name,
		Description: in.Description,
		Capacity:    in.Capacity,
		Busy:        in.Busy,
	}
	if err := s.tables.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	return t, nil
}

func (s *TableService) List(ctx context.Context) ([]models.Table, error) {
	tables, err := s.tables.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (s *TableService) Get(ctx context.Context, id uint) (*models.Table, error) {
	t, err := s.tables.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, notFound("Table not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get table %d: %w", id, err)
	}
	return t, nil
}
