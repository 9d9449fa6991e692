package domain

import (
	"errors"
)

var (
	MessageSuccessSearchProducts = "products retrieved successfully"
	MessageSuccessAddPurchase    = "purchase added to inventory"

	MessageFailedSearchProducts = "failed to search products"
	MessageFailedAddPurchase    = "failed to add purchase to inventory"

	ErrProductNotFound = errors.New("product not found")
)

const SourceWalmart = "walmart"

type (
	RetailerProduct struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Price    float64 `json:"price"`
		Category string  `json:"category"`
		Brand    string  `json:"brand"`
	}

	AddPurchaseRequest struct {
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	}
)
