package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddFoodItem      = "food item added successfully"
	MessageSuccessGetFoodItems     = "food items retrieved successfully"
	MessageSuccessGetExpiringItems = "expiring items retrieved successfully"
	MessageSuccessConsumeFoodItem  = "food item marked as consumed"
	MessageSuccessDeleteFoodItem   = "food item deleted successfully"

	MessageFailedAddFoodItem      = "failed to add food item"
	MessageFailedGetFoodItems     = "failed to retrieve food items"
	MessageFailedGetExpiringItems = "failed to retrieve expiring items"
	MessageFailedConsumeFoodItem  = "failed to mark food item as consumed"
	MessageFailedDeleteFoodItem   = "failed to delete food item"

	ErrFoodItemNotFound    = errors.New("food item not found")
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidPrice        = errors.New("price must not be negative")
)

const (
	CategoryOther = "other"
	SourceManual  = "manual"

	// DefaultExpiringWindowDays bounds the "expiring soon" query when the
	// caller does not ask for a specific window.
	DefaultExpiringWindowDays = 3
)

type (
	AddFoodItemRequest struct {
		Name         string  `json:"name" validate:"required"`
		Quantity     int     `json:"quantity" validate:"omitempty,min=1"`
		Category     string  `json:"category" validate:"omitempty"`
		PurchaseDate string  `json:"purchase_date" validate:"required"`
		Price        float64 `json:"price" validate:"omitempty,gte=0"`
		Source       string  `json:"source" validate:"omitempty"`
	}

	FoodItemResponse struct {
		ID           string     `json:"id"`
		Name         string     `json:"name"`
		Quantity     int        `json:"quantity"`
		Category     string     `json:"category"`
		PurchaseDate string     `json:"purchase_date"`
		ExpiryDate   string     `json:"expiry_date"`
		Consumed     bool       `json:"consumed"`
		ConsumedDate *time.Time `json:"consumed_date,omitempty"`
		Price        float64    `json:"price"`
		Source       string     `json:"source"`
		CreatedAt    time.Time  `json:"created_at"`
	}
)
