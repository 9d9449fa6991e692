package retailer

import (
	"context"
	"testing"
	"time"

	"freshtrack/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFoodService captures the ledger request a purchase produces.
type recordingFoodService struct {
	lastAdd domain.AddFoodItemRequest
}

func (s *recordingFoodService) AddFoodItem(_ context.Context, req domain.AddFoodItemRequest, _ string) (domain.FoodItemResponse, error) {
	s.lastAdd = req
	return domain.FoodItemResponse{
		ID:           "generated",
		Name:         req.Name,
		Quantity:     req.Quantity,
		Category:     req.Category,
		PurchaseDate: req.PurchaseDate,
		Price:        req.Price,
		Source:       req.Source,
	}, nil
}

func (s *recordingFoodService) GetFoodItems(context.Context, string, bool) ([]domain.FoodItemResponse, error) {
	return nil, nil
}

func (s *recordingFoodService) GetExpiringItems(context.Context, string, int) ([]domain.FoodItemResponse, error) {
	return nil, nil
}

func (s *recordingFoodService) GetFoodItemByID(context.Context, string, string) (domain.FoodItemResponse, error) {
	return domain.FoodItemResponse{}, nil
}

func (s *recordingFoodService) ConsumeFoodItem(context.Context, string, string) error { return nil }

func (s *recordingFoodService) DeleteFoodItem(context.Context, string, string) error { return nil }

func TestSearchProducts(t *testing.T) {
	service := NewRetailerService(&recordingFoodService{})

	results, err := service.SearchProducts(context.Background(), "Milk")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "WM101", results[0].ID)

	results, err = service.SearchProducts(context.Background(), "plutonium")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestAddPurchase(t *testing.T) {
	foodService := &recordingFoodService{}
	service := NewRetailerService(foodService)

	res, err := service.AddPurchase(context.Background(), domain.AddPurchaseRequest{
		ProductID: "WM103",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Freshness Guaranteed Chicken Breast", res.Name)
	assert.Equal(t, domain.SourceWalmart, foodService.lastAdd.Source)
	assert.Equal(t, "meat", foodService.lastAdd.Category)
	assert.InDelta(t, 8.99, foodService.lastAdd.Price, 0.001)
	assert.Equal(t, 1, foodService.lastAdd.Quantity)
	assert.Equal(t, time.Now().Format("2006-01-02"), foodService.lastAdd.PurchaseDate)
}

func TestAddPurchase_Quantity(t *testing.T) {
	foodService := &recordingFoodService{}
	service := NewRetailerService(foodService)

	_, err := service.AddPurchase(context.Background(), domain.AddPurchaseRequest{
		ProductID: "WM105",
		Quantity:  3,
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, foodService.lastAdd.Quantity)
}

func TestAddPurchase_UnknownProduct(t *testing.T) {
	service := NewRetailerService(&recordingFoodService{})

	_, err := service.AddPurchase(context.Background(), domain.AddPurchaseRequest{
		ProductID: "WM999",
	}, "user-1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
