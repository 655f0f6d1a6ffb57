package models

import "time"

type Booking struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	PhoneNumber string    `json:"phoneNumber" gorm:"not null;index"`
	PeopleQty   int       `json:"peopleQty" gorm:"not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Confirmed   bool      `json:"confirmed" gorm:"default:false"`
	Tables      []Table   `json:"tables" gorm:"many2many:booking_tables;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CustomerID  *uint     `json:"customerId,omitempty" gorm:"index"`
	Customer    *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}
