package entities

import (
	"time"

	"github.com/google/uuid"
)

type FoodItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `gorm:"index:idx_food_items_user_expiry,priority:1;index:idx_food_items_user_consumed,priority:1" json:"user_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Quantity     int        `json:"quantity"`
	PurchaseDate time.Time  `json:"purchase_date"`
	ExpiryDate   time.Time  `gorm:"index:idx_food_items_user_expiry,priority:2" json:"expiry_date"`
	Consumed     bool       `gorm:"index:idx_food_items_user_consumed,priority:2" json:"consumed"`
	ConsumedDate *time.Time `json:"consumed_date,omitempty"`
	Price        float64    `json:"price"`
	Source       string     `json:"source"` // "manual", "walmart"

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
