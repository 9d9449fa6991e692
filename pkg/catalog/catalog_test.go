package catalog

import (
	"context"
	"testing"
	"time"

	"freshtrack/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestEstimateExpiryDate(t *testing.T) {
	tests := []struct {
		name         string
		category     string
		itemName     string
		purchaseDate string
		wantExpiry   string
	}{
		{
			name:         "exact catalog item",
			category:     "dairy",
			itemName:     "milk",
			purchaseDate: "2024-01-01",
			wantExpiry:   "2024-01-08",
		},
		{
			name:         "containment match",
			category:     "meat",
			itemName:     "chicken breast",
			purchaseDate: "2024-01-01",
			wantExpiry:   "2024-01-03",
		},
		{
			name:         "case insensitive",
			category:     "Dairy",
			itemName:     "Greek Yogurt",
			purchaseDate: "2024-01-01",
			wantExpiry:   "2024-01-15",
		},
		{
			name:         "unmatched item falls back to first category entry",
			category:     "produce",
			itemName:     "kiwi",
			purchaseDate: "2024-01-01",
			wantExpiry:   "2024-01-08",
		},
		{
			name:         "unknown category gets global default",
			category:     "frozen",
			itemName:     "ice cream",
			purchaseDate: "2024-01-01",
			wantExpiry:   "2024-01-08",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateExpiryDate(tt.category, tt.itemName, date(tt.purchaseDate))
			assert.Equal(t, date(tt.wantExpiry), got)
		})
	}
}

func TestEstimateShelfLife_FirstMatchWins(t *testing.T) {
	// "milk chocolate cookies" contains both "milk" (7d) and "cookies" (14d);
	// declaration order decides.
	assert.Equal(t, 7, EstimateShelfLife("dairy", "milk chocolate cookies"))
}

func TestExpiryNeverBeforePurchase(t *testing.T) {
	purchase := date("2024-06-15")
	for _, cat := range Categories {
		for _, entry := range cat.Entries {
			expiry := EstimateExpiryDate(cat.Name, entry.Name, purchase)
			assert.False(t, expiry.Before(purchase), "%s/%s expires before purchase", cat.Name, entry.Name)
		}
	}
}

func TestSearchFoods(t *testing.T) {
	service := NewCatalogService()

	results, err := service.SearchFoods(context.Background(), "egg")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "eggs", results[0].Name)
	assert.Equal(t, "other", results[0].Category)
	assert.Equal(t, 21, results[0].TypicalExpiryDays)

	results, err = service.SearchFoods(context.Background(), "no-such-food")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetFoodExpiry(t *testing.T) {
	service := NewCatalogService()

	result, err := service.GetFoodExpiry(context.Background(), "MILK")
	require.NoError(t, err)
	assert.Equal(t, "dairy", result.Category)
	assert.Equal(t, 7, result.TypicalExpiryDays)

	_, err = service.GetFoodExpiry(context.Background(), "kiwi")
	assert.ErrorIs(t, err, domain.ErrFoodNotInCatalog)
}
