package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql DB: %v", err)
	}
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return db
}

func TestTableRepository_FindByIDsSkipsUnknown(t *testing.T) {
	ctx := context.Background()
	repo := NewGormTableRepository(newTestDB(t))

	for _, name := range []string{"Mesa 1", "Mesa 2"} {
		if err := repo.Create(ctx, &models.Table{Name: name, Capacity: 4}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	tables, err := repo.FindByIDs(ctx, []uint{2, 99})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(tables) != 1 || tables[0].Name != "Mesa 2" {
		t.Fatalf("tables = %+v, want only Mesa 2", tables)
	}

	empty, err := repo.FindByIDs(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("FindByIDs(nil) = %v, %v", empty, err)
	}
}

func TestMenuRepository_DeleteReportsRowsAffected(t *testing.T) {
	ctx := context.Background()
	repo := NewGormMenuRepository(newTestDB(t))

	m := &models.Menu{Name: "Coca Cola", Price: 2.5, Content: "500ml", Active: false}
	if err := repo.Create(ctx, m); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Active {
		t.Fatalf("active = true, want explicit false kept")
	}

	n, err := repo.Delete(ctx, m.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete = %d, %v; want 1, nil", n, err)
	}
	n, err = repo.Delete(ctx, m.ID)
	if err != nil || n != 0 {
		t.Fatalf("second Delete = %d, %v; want 0, nil", n, err)
	}
}

func TestBookingRepository_ListByPhoneNumberLoadsTables(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tables := NewGormTableRepository(db)
	bookings := NewGormBookingRepository(db)

	t1 := &models.Table{Name: "Mesa 1", Capacity: 2}
	t2 := &models.Table{Name: "Mesa 2", Capacity: 6}
	for _, tb := range []*models.Table{t1, t2} {
		if err := tables.Create(ctx, tb); err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	date := time.Date(2025, 7, 20, 15, 0, 0, 0, time.UTC)
	seed := []*models.Booking{
		{Name: "Juan", PhoneNumber: "+593987654321", PeopleQty: 4, Date: date, Tables: []models.Table{*t1, *t2}},
		{Name: "Ana", PhoneNumber: "+593900000000", PeopleQty: 2, Date: date, Tables: []models.Table{*t1}},
	}
	for _, b := range seed {
		if err := bookings.Create(ctx, b); err != nil {
			t.Fatalf("create booking: %v", err)
		}
	}

	got, err := bookings.ListByPhoneNumber(ctx, "+593987654321")
	if err != nil {
		t.Fatalf("ListByPhoneNumber: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if len(got[0].Tables) != 2 {
		t.Fatalf("tables = %+v, want 2", got[0].Tables)
	}

	if err := bookings.Delete(ctx, seed[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := bookings.Delete(ctx, 12345); err != nil {
		t.Fatalf("Delete unknown: %v", err)
	}

	var links int64
	db.Table("booking_tables").Where("booking_id = ?", seed[0].ID).Count(&links)
	if links != 0 {
		t.Fatalf("join rows left = %d", links)
	}

	got, _ = bookings.ListByPhoneNumber(ctx, "+593987654321")
	if len(got) != 0 {
		t.Fatalf("booking still listed after delete")
	}
}

func TestOrderRepository_ListByTypeSeparatesVariants(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	menus := NewGormMenuRepository(db)
	tables := NewGormTableRepository(db)
	customers := NewGormCustomerRepository(db)
	orders := NewGormOrderRepository(db)

	pizza := &models.Menu{Name: "Pizza", Price: 12.5, Active: true}
	if err := menus.Create(ctx, pizza); err != nil {
		t.Fatalf("create menu: %v", err)
	}
	table := &models.Table{Name: "Mesa 1", Capacity: 4}
	if err := tables.Create(ctx, table); err != nil {
		t.Fatalf("create table: %v", err)
	}
	cust := &models.Customer{Name: "Juan", Email: "juan@mail.com"}
	if err := customers.Create(ctx, cust); err != nil {
		t.Fatalf("create customer: %v", err)
	}

	now := time.Now().UTC()
	seed := []*models.Order{
		{Type: models.OrderTakeAway, Date: now, Waiter: "Ana", PeopleQty: 1, Menus: []models.Menu{*pizza}},
		{Type: models.OrderShipping, Date: now, Waiter: "Ana", PeopleQty: 1, Menus: []models.Menu{*pizza},
			ShippingAddress: "123 Main St", RiderName: "Rider", CustomerID: &cust.ID},
		{Type: models.OrderEatIn, Date: now, Waiter: "Ana", PeopleQty: 3, Menus: []models.Menu{*pizza},
			Tables: []models.Table{*table}, CustomerID: &cust.ID},
	}
	for _, o := range seed {
		o.CalculateTotalPayment()
		if err := orders.Create(ctx, o); err != nil {
			t.Fatalf("create %s: %v", o.Type, err)
		}
	}

	eatIn, err := orders.ListByType(ctx, models.OrderEatIn)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(eatIn) != 1 {
		t.Fatalf("eat-in len = %d, want 1", len(eatIn))
	}
	o := eatIn[0]
	if len(o.Menus) != 1 || len(o.Tables) != 1 || o.Customer == nil || o.Customer.Name != "Juan" {
		t.Fatalf("eat-in associations not loaded: %+v", o)
	}
	if o.TotalPayment != 12.5 {
		t.Fatalf("total = %v, want 12.5", o.TotalPayment)
	}

	takeAway, err := orders.ListByType(ctx, models.OrderTakeAway)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(takeAway) != 1 || takeAway[0].Customer != nil || len(takeAway[0].Menus) != 1 {
		t.Fatalf("takeaway = %+v", takeAway)
	}

	if _, err := orders.ListByType(ctx, "drive-thru"); err != models.ErrUnknownOrderType {
		t.Fatalf("err = %v, want ErrUnknownOrderType", err)
	}
}

func TestCustomerRepository_GetWithBookings(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	customers := NewGormCustomerRepository(db)
	bookings := NewGormBookingRepository(db)

	cust := &models.Customer{Name: "Juan", Email: "juan@mail.com"}
	if err := customers.Create(ctx, cust); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	b := &models.Booking{Name: "Juan", PhoneNumber: "1", PeopleQty: 2, Date: time.Now().UTC(), CustomerID: &cust.ID}
	if err := bookings.Create(ctx, b); err != nil {
		t.Fatalf("create booking: %v", err)
	}

	got, err := customers.GetWithBookings(ctx, cust.ID)
	if err != nil {
		t.Fatalf("GetWithBookings: %v", err)
	}
	if len(got.Bookings) != 1 || got.Bookings[0].ID != b.ID {
		t.Fatalf("bookings = %+v", got.Bookings)
	}

	if _, err := customers.GetByID(ctx, 999); err != gorm.ErrRecordNotFound {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}
