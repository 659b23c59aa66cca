package models

import "time"

// FounderInfo is static about-page content, unrelated to orders or
// customers.
type FounderInfo struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Position  string    `json:"position"`
	Bio       string    `json:"bio"`
	Image     string    `json:"image"`
	Email     string    `json:"email"`
	LinkedIn  string    `json:"linkedin"`
	Twitter   string    `json:"twitter"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}
