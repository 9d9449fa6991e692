package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`
	IsPremium  bool      `json:"is_premium"`

	Timestamp
}
