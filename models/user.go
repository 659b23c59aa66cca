package models

import "time"

// User is the authenticated account as reported by the identity provider.
// The ID is the provider UID, not an auto-increment.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
}
