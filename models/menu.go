package models

// Menu is a single dish or drink on offer
type Menu struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Name    string  `json:"name" gorm:"not null"`
	Price   float64 `json:"price" gorm:"not null"`
	Content string  `json:"content"`
	Active  bool    `json:"active" gorm:"not null"`
	IsWater bool    `json:"isWater" gorm:"default:false"`
}
