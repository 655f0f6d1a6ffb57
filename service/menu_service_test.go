package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"restaurant-api/models"
	"restaurant-api/repository/mocks"
)

func TestMenuService_UpdateMergesOnlySuppliedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	svc := NewMenuService(repo)
	ctx := context.Background()

	stored := &models.Menu{ID: 1, Name: "Pizza Margarita", Price: 12.5, Content: "Queso, tomate", Active: true}
	repo.EXPECT().GetByID(ctx, uint(1)).Return(stored, nil)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	price := 14.0
	got, err := svc.Update(ctx, 1, MenuPatch{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	want := models.Menu{ID: 1, Name: "Pizza Margarita", Price: 14.0, Content: "Queso, tomate", Active: true}
	if *got != want {
		t.Fatalf("menu = %+v, want %+v", *got, want)
	}
}

func TestMenuService_UpdateCanClearBooleans(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	svc := NewMenuService(repo)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, uint(2)).Return(&models.Menu{ID: 2, Active: true, IsWater: true}, nil)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	off := false
	got, err := svc.Update(ctx, 2, MenuPatch{Active: &off})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Active || !got.IsWater {
		t.Fatalf("menu = %+v", got)
	}
}

func TestMenuService_UpdateUnknownIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	svc := NewMenuService(repo)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, uint(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(ctx, 5, MenuPatch{})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestMenuService_DeleteUnknownIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	svc := NewMenuService(repo)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, uint(5)).Return(int64(0), nil)
	repo.EXPECT().Delete(ctx, uint(6)).Return(int64(1), nil)

	var nf *NotFoundError
	if err := svc.Delete(ctx, 5); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if err := svc.Delete(ctx, 6); err != nil {
		t.Fatalf("Delete existing: %v", err)
	}
}

func TestMenuService_GetStoreErrorIsNotNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMenuRepository(ctrl)
	svc := NewMenuService(repo)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, uint(1)).Return(nil, errors.New("connection reset"))

	_, err := svc.Get(ctx, 1)
	var nf *NotFoundError
	if err == nil || errors.As(err, &nf) {
		t.Fatalf("err = %v, want opaque store error", err)
	}
}
