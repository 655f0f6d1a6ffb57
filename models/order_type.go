package models

import (
	"errors"
	"math"
)

// OrderType is the discriminator stored in orders.type
type OrderType string

const (
	OrderTakeAway OrderType = "takeaway"
	OrderShipping OrderType = "shipping"
	OrderEatIn    OrderType = "eatin"
)

// Variant describes what a single order type carries on top of the shared record
type Variant struct {
	Type         OrderType
	HasCustomer  bool
	HasTables    bool
	Associations []string // preloaded on reads
}

// variants is the authoritative list of order types
var variants = []Variant{
	{Type: OrderTakeAway, Associations: []string{"Menus"}},
	{Type: OrderShipping, HasCustomer: true, Associations: []string{"Menus", "Customer"}},
	{Type: OrderEatIn, HasCustomer: true, HasTables: true, Associations: []string{"Menus", "Customer", "Tables"}},
}

var variantMap = func() map[OrderType]Variant {
	m := make(map[OrderType]Variant, len(variants))
	for _, v := range variants {
		m[v.Type] = v
	}
	return m
}()

var ErrUnknownOrderType = errors.New("unknown order type")

// VariantOf looks up the variant definition for t
func VariantOf(t OrderType) (Variant, error) {
	v, ok := variantMap[t]
	if !ok {
		return Variant{}, ErrUnknownOrderType
	}
	return v, nil
}

// OrderTypes returns every known order type
func OrderTypes() []OrderType {
	types := make([]OrderType, 0, len(variants))
	for _, v := range variants {
		types = append(types, v.Type)
	}
	return types
}

// TotalPayment computes the amount due for an order of type t. Each attached
// menu counts once, whatever quantity was ordered.
func TotalPayment(t OrderType, menus []Menu) float64 {
	switch t {
	case OrderTakeAway, OrderShipping, OrderEatIn:
		return sumPrices(menus)
	default:
		return 0
	}
}

func sumPrices(menus []Menu) float64 {
	var total float64
	for _, m := range menus {
		total += m.Price
	}
	return math.Round(total*100) / 100
}
