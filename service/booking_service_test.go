package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"restaurant-api/models"
	"restaurant-api/repository/mocks"
)

func TestBookingService_CreateDropsUnknownTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockBookingRepository(ctrl)
	tables := mocks.NewMockTableRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	svc := NewBookingService(bookings, tables, customers)
	ctx := context.Background()

	tables.EXPECT().FindByIDs(ctx, []uint{1, 2}).Return([]models.Table{{ID: 1, Name: "Mesa 1"}}, nil)
	bookings.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	b, err := svc.Create(ctx, CreateBookingInput{
		Name:        "Juan Pérez",
		PhoneNumber: "+593987654321",
		PeopleQty:   4,
		Date:        time.Date(2025, 7, 20, 15, 0, 0, 0, time.UTC),
		TableIDs:    []uint{1, 2},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(b.Tables) != 1 || b.Tables[0].ID != 1 {
		t.Fatalf("tables = %+v", b.Tables)
	}
	if b.Tables[0].Busy {
		t.Fatalf("table marked busy by booking")
	}
}

func TestBookingService_CreateUnknownCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockBookingRepository(ctrl)
	tables := mocks.NewMockTableRepository(ctrl)
	customers := mocks.NewMockCustomerRepository(ctrl)
	svc := NewBookingService(bookings, tables, customers)
	ctx := context.Background()
	cid := uint(9)

	tables.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]models.Table{}, nil)
	customers.EXPECT().GetByID(ctx, cid).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(ctx, CreateBookingInput{Name: "x", PhoneNumber: "1", PeopleQty: 1, CustomerID: &cid})
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Message != "Customer not found" {
		t.Fatalf("err = %v, want NotFound(Customer not found)", err)
	}
}

func TestBookingService_RemoveUnknownSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockBookingRepository(ctrl)
	svc := NewBookingService(bookings, mocks.NewMockTableRepository(ctrl), mocks.NewMockCustomerRepository(ctrl))
	ctx := context.Background()

	bookings.EXPECT().Delete(ctx, uint(404)).Return(nil)

	if err := svc.Remove(ctx, 404); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}
