package retailer

import (
	"context"
	"strings"
	"time"

	"freshtrack/domain"
	"freshtrack/pkg/food"
)

type (
	RetailerService interface {
		SearchProducts(ctx context.Context, query string) ([]domain.RetailerProduct, error)
		AddPurchase(ctx context.Context, req domain.AddPurchaseRequest, userID string) (domain.FoodItemResponse, error)
	}

	retailerService struct {
		foodService food.FoodService
	}
)

// mockProducts stands in for the retailer API; no live integration exists.
var mockProducts = []domain.RetailerProduct{
	{ID: "WM101", Name: "Great Value Whole Milk", Price: 3.49, Category: "dairy", Brand: "Great Value"},
	{ID: "WM102", Name: "Marketside Romaine Lettuce", Price: 2.99, Category: "produce", Brand: "Marketside"},
	{ID: "WM103", Name: "Freshness Guaranteed Chicken Breast", Price: 8.99, Category: "meat", Brand: "Freshness Guaranteed"},
	{ID: "WM104", Name: "Marketside Sourdough Bread", Price: 4.49, Category: "bakery", Brand: "Marketside"},
	{ID: "WM105", Name: "Great Value Large Eggs", Price: 4.99, Category: "other", Brand: "Great Value"},
	{ID: "WM106", Name: "Fresh Banana Bunch", Price: 1.99, Category: "produce", Brand: "Fresh Produce"},
}

func NewRetailerService(foodService food.FoodService) RetailerService {
	return &retailerService{foodService: foodService}
}

func (s *retailerService) SearchProducts(_ context.Context, query string) ([]domain.RetailerProduct, error) {
	query = strings.ToLower(query)

	results := make([]domain.RetailerProduct, 0)
	for _, product := range mockProducts {
		if strings.Contains(strings.ToLower(product.Name), query) {
			results = append(results, product)
		}
	}

	return results, nil
}

// AddPurchase records a retailer purchase straight into the inventory ledger
// with retailer provenance and price; expiry estimation happens in the ledger
// like any manual add.
func (s *retailerService) AddPurchase(ctx context.Context, req domain.AddPurchaseRequest, userID string) (domain.FoodItemResponse, error) {
	var product *domain.RetailerProduct
	for i := range mockProducts {
		if mockProducts[i].ID == req.ProductID {
			product = &mockProducts[i]
			break
		}
	}
	if product == nil {
		return domain.FoodItemResponse{}, domain.ErrProductNotFound
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return s.foodService.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name:         product.Name,
		Quantity:     quantity,
		Category:     product.Category,
		PurchaseDate: time.Now().Format("2006-01-02"),
		Price:        product.Price,
		Source:       domain.SourceWalmart,
	}, userID)
}
