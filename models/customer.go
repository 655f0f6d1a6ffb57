package models

type Customer struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email" gorm:"not null"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:CustomerID"`
}
