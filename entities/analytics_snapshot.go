package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsSnapshot rows are append-only; a snapshot is never updated after creation.
type AnalyticsSnapshot struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"index" json:"user_id"`
	Date            time.Time `json:"date"`
	TotalItems      int       `json:"total_items"`
	ConsumedItems   int       `json:"consumed_items"`
	WastedItems     int       `json:"wasted_items"`
	WastePercentage float64   `json:"waste_percentage"`
	TotalValue      float64   `json:"total_value"`
	WastedValue     float64   `json:"wasted_value"`
	Categories      string    `gorm:"type:text" json:"categories"` // per-category breakdown, JSON encoded

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
