package catalog

import (
	"strings"
	"time"
)

// DefaultShelfLifeDays is used when the category is not in the reference table.
const DefaultShelfLifeDays = 7

type (
	// ShelfLifeEntry maps a canonical food name to its typical shelf-life.
	ShelfLifeEntry struct {
		Name string
		Days int
	}

	FoodCategory struct {
		Name    string
		Entries []ShelfLifeEntry
	}
)

// Categories is the shelf-life reference table, loaded once and immutable for
// the process lifetime. Entry order matters: the containment scan takes the
// first match, and an unmatched item falls back to the first entry of its
// category.
var Categories = []FoodCategory{
	{Name: "dairy", Entries: []ShelfLifeEntry{
		{Name: "milk", Days: 7},
		{Name: "yogurt", Days: 14},
		{Name: "cheese", Days: 30},
		{Name: "butter", Days: 30},
	}},
	{Name: "produce", Entries: []ShelfLifeEntry{
		{Name: "lettuce", Days: 7},
		{Name: "tomatoes", Days: 7},
		{Name: "apples", Days: 14},
		{Name: "bananas", Days: 5},
	}},
	{Name: "meat", Entries: []ShelfLifeEntry{
		{Name: "chicken", Days: 2},
		{Name: "beef", Days: 3},
		{Name: "pork", Days: 3},
		{Name: "fish", Days: 2},
	}},
	{Name: "bakery", Entries: []ShelfLifeEntry{
		{Name: "bread", Days: 5},
		{Name: "bagels", Days: 5},
		{Name: "cake", Days: 3},
		{Name: "cookies", Days: 14},
	}},
	{Name: "other", Entries: []ShelfLifeEntry{
		{Name: "eggs", Days: 21},
		{Name: "pasta", Days: 365},
		{Name: "rice", Days: 365},
		{Name: "cereal", Days: 180},
	}},
}

// EstimateShelfLife returns the estimated shelf-life in days for an item.
// Matching is case-insensitive containment of the canonical name in the item
// name ("chicken breast" matches "chicken"). When nothing in the category
// matches, the category's first entry decides; an unknown category gets the
// global default.
func EstimateShelfLife(category, itemName string) int {
	category = strings.ToLower(category)
	itemName = strings.ToLower(itemName)

	for _, cat := range Categories {
		if cat.Name != category {
			continue
		}
		for _, entry := range cat.Entries {
			if strings.Contains(itemName, entry.Name) {
				return entry.Days
			}
		}
		if len(cat.Entries) > 0 {
			return cat.Entries[0].Days
		}
		return DefaultShelfLifeDays
	}

	return DefaultShelfLifeDays
}

// EstimateExpiryDate adds the estimated shelf-life to the purchase date.
// Calendar arithmetic only; the result never precedes the purchase date.
func EstimateExpiryDate(category, itemName string, purchaseDate time.Time) time.Time {
	return purchaseDate.AddDate(0, 0, EstimateShelfLife(category, itemName))
}
