package service

import (
	"context"
	"fmt"

	"restaurant-api/models"
	"restaurant-api/repository"
)

type CreateMenuInput struct {
	Name    string
	Price   float64
	Content string
	Active  bool
	IsWater bool
}

// MenuPatch carries the fields of a partial update; nil means "leave as is"
type MenuPatch struct {
	Name    *string
	Price   *float64
	Content *string
	Active  *bool
	IsWater *bool
}

func (p MenuPatch) apply(m *models.Menu) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Active != nil {
		m.Active = *p.Active
	}
	if p.IsWater != nil {
		m.IsWater = *p.IsWater
	}
}

type MenuService struct {
	menus repository.MenuRepository
}

func NewMenuService(menus repository.MenuRepository) *MenuService {
	return &MenuService{menus: menus}
}

func (s *MenuService) Create(ctx context.Context, in CreateMenuInput) (*models.Menu, error) {
	m := &models.Menu{
		Name:    in.Name,
		Price:   in.Price,
		Content: in.Content,
		Active:  in.Active,
		IsWater: in.IsWater,
	}
	if err := s.menus.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create menu: %w", err)
	}
	return m, nil
}

func (s *MenuService) List(ctx context.Context) ([]models.Menu, error) {
	menus, err := s.menus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menus: %w", err)
	}
	return menus, nil
}

func (s *MenuService) Get(ctx context.Context, id uint) (*models.Menu, error) {
	m, err := s.menus.GetByID(ctx, id)
	if isNotFound(err) {
		return nil, notFound(fmt.Sprintf("Menu with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("get menu %d: %w", id, err)
	}
	return m, nil
}

// Update merges the supplied fields onto the stored menu
func (s *MenuService) Update(ctx context.Context, id uint, patch MenuPatch) (*models.Menu, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.apply(m)
	if err := s.menus.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("update menu %d: %w", id, err)
	}
	return m, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	n, err := s.menus.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete menu %d: %w", id, err)
	}
	if n == 0 {
		return notFound(fmt.Sprintf("Menu with ID %d not found", id))
	}
	return nil
}
