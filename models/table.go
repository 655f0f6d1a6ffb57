package models

// Table is a dining table ("sala") that bookings and eat-in orders attach to.
// Busy is set by staff only; nothing toggles it on booking or order creation.
type Table struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" gorm:"not null"`
	Busy        bool   `json:"busy" gorm:"default:false"`
}
