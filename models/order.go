package models

import (
	"fmt"
	"time"
)

// Order is the shared record behind every order variant. All variants live in
// one table keyed by Type; columns that belong to another variant stay empty.
type Order struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Type         OrderType `json:"type" gorm:"type:varchar(16);not null;index"`
	Date         time.Time `json:"date" gorm:"not null"`
	Waiter       string    `json:"waiter" gorm:"not null"`
	PeopleQty    int       `json:"peopleQty" gorm:"not null"`
	TotalPayment float64   `json:"totalPayment" gorm:"not null;default:0"`
	Paid         bool      `json:"paid" gorm:"default:false"`
	Menus        []Menu    `json:"menus" gorm:"many2many:order_menus;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// shipping
	ShippingAddress string `json:"shippingAddress,omitempty"`
	RiderName       string `json:"riderName,omitempty"`

	// eat-in
	Tables []Table `json:"tables,omitempty" gorm:"many2many:order_tables;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// shipping and eat-in
	CustomerID *uint     `json:"customerId,omitempty" gorm:"index"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

// CalculateTotalPayment stores the variant's total for the menus currently
// attached. It is not re-run when menus change later.
func (o *Order) CalculateTotalPayment() {
	o.TotalPayment = TotalPayment(o.Type, o.Menus)
}

func (o *Order) String() string {
	return fmt.Sprintf("Order #%d by waiter %s for %d people", o.ID, o.Waiter, o.PeopleQty)
}
