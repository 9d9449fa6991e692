package domain

import (
	"errors"
)

var (
	MessageSuccessSearchFoods   = "foods retrieved successfully"
	MessageSuccessGetFoodExpiry = "typical expiry retrieved successfully"

	MessageFailedSearchFoods   = "failed to search foods"
	MessageFailedGetFoodExpiry = "failed to retrieve typical expiry"

	ErrFoodNotInCatalog = errors.New("food item not found in catalog")
)

type (
	CatalogFoodResponse struct {
		Name              string `json:"name"`
		Category          string `json:"category"`
		TypicalExpiryDays int    `json:"typical_expiry_days"`
	}
)
