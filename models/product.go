package models

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Image     string    `json:"image"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int       `gorm:"default:0" json:"stock"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
