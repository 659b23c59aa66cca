package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Customer is the shop profile backing every cart/order/review action.
// One row per user account, created lazily on first use.
type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// GetOrCreateCustomer returns the customer row for a user, creating it with
// empty optional fields if this is the first profile-backed action. The
// unique index on user_id plus ON CONFLICT DO NOTHING makes a lost race
// degrade to reading the winner's row.
func GetOrCreateCustomer(db *gorm.DB, userID string) (*Customer, error) {
	customer := Customer{UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&customer).Error; err != nil {
		return nil, err
	}

	if err := db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}
