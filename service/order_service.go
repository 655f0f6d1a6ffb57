package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"restaurant-api/events"
	"restaurant-api/models"
	"restaurant-api/repository"
)

const publishTimeout = 5 * time.Second

// OrderInput is the union of fields any order variant accepts.
// Fields a variant does not carry are ignored for it.
type OrderInput struct {
	Date      time.Time
	Waiter    string
	PeopleQty int
	Paid      bool
	MenuIDs   []uint

	ShippingAddress string
	RiderName       string

	TableIDs   []uint
	CustomerID *uint
}

type OrderService struct {
	orders    repository.OrderRepository
	menus     repository.MenuRepository
	tables    repository.TableRepository
	customers repository.CustomerRepository
	publisher events.Publisher
	log       *slog.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	menus repository.MenuRepository,
	tables repository.TableRepository,
	customers repository.CustomerRepository,
	publisher events.Publisher,
	log *slog.Logger,
) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{
		orders:    orders,
		menus:     menus,
		tables:    tables,
		customers: customers,
		publisher: publisher,
		log:       log,
	}
}

func (s *OrderService) CreateTakeAway(ctx context.Context, in OrderInput) (*models.Order, error) {
	return s.create(ctx, models.OrderTakeAway, in)
}

func (s *OrderService) CreateShipping(ctx context.Context, in OrderInput) (*models.Order, error) {
	return s.create(ctx, models.OrderShipping, in)
}

func (s *OrderService) CreateEatIn(ctx context.Context, in OrderInput) (*models.Order, error) {
	return s.create(ctx, models.OrderEatIn, in)
}

func (s *OrderService) ListTakeAway(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, models.OrderTakeAway)
}

func (s *OrderService) ListShipping(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, models.OrderShipping)
}

func (s *OrderService) ListEatIn(ctx context.Context) ([]models.Order, error) {
	return s.list(ctx, models.OrderEatIn)
}

// create resolves references in a fixed order: menus, tables, customer.
// Menu and table lists fail only when none of the ids match; a supplied
// customer id must match.
func (s *OrderService) create(ctx context.Context, t models.OrderType, in OrderInput) (*models.Order, error) {
	variant, err := models.VariantOf(t)
	if err != nil {
		return nil, err
	}

	menus, err := s.menus.FindByIDs(ctx, in.MenuIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve menus: %w", err)
	}
	if len(menus) == 0 {
		return nil, notFound("Menus not found")
	}

	order := &models.Order{
		Type:      variant.Type,
		Date:      in.Date,
		Waiter:    in.Waiter,
		PeopleQty: in.PeopleQty,
		Paid:      in.Paid,
		Menus:     menus,
	}

	if variant.HasTables {
		tables, err := s.tables.FindByIDs(ctx, in.TableIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve tables: %w", err)
		}
		if len(tables) == 0 {
			return nil, notFound("Tables not found")
		}
		order.Tables = tables
	}

	if variant.HasCustomer && in.CustomerID != nil {
		c, err := resolveCustomer(ctx, s.customers, *in.CustomerID)
		if err != nil {
			return nil, err
		}
		order.CustomerID = &c.ID
		order.Customer = c
	}

	if variant.Type == models.OrderShipping {
		order.ShippingAddress = in.ShippingAddress
		order.RiderName = in.RiderName
	}

	order.CalculateTotalPayment()

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create %s order: %w", variant.Type, err)
	}

	// the order is committed; a client hanging up must not drop its event
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.publisher.PublishOrderCreated(pubCtx, events.NewOrderCreated(order)); err != nil {
		s.log.Warn("publish order event failed", "order_id", order.ID, "type", order.Type, "error", err)
	}

	return order, nil
}

func (s *OrderService) list(ctx context.Context, t models.OrderType) ([]models.Order, error) {
	orders, err := s.orders.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("list %s orders: %w", t, err)
	}
	return orders, nil
}
