package models

import "time"

// Review is customer feedback with a 1..5 star rating. Likes is
// denormalized: it is recomputed from the ReviewLike rows on every toggle,
// never incremented in place.
type Review struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID uint      `gorm:"not null" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `json:"content"`
	Rating     int       `gorm:"not null" json:"rating"`
	IsApproved bool      `gorm:"default:true" json:"is_approved"`
	Likes      int       `gorm:"default:0" json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewLike existing is the liked state for a (review, customer) pair.
// One row per pair.
type ReviewLike struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReviewID   uint      `gorm:"uniqueIndex:idx_review_customer" json:"review_id"`
	CustomerID uint      `gorm:"uniqueIndex:idx_review_customer" json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
}
