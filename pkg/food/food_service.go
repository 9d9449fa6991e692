package food

import (
	"context"
	"errors"
	"time"

	"freshtrack/domain"
	"freshtrack/entities"
	"freshtrack/pkg/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		GetFoodItems(ctx context.Context, userID string, includeConsumed bool) ([]domain.FoodItemResponse, error)
		GetExpiringItems(ctx context.Context, userID string, withinDays int) ([]domain.FoodItemResponse, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		ConsumeFoodItem(ctx context.Context, id string, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
	}

	foodService struct {
		foodRepository FoodRepository
	}
)

const dateLayout = "2006-01-02"

func NewFoodService(foodRepository FoodRepository) FoodService {
	return &foodService{foodRepository: foodRepository}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	if req.Quantity < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if req.Price < 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidPrice
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	// Expiry is estimated once at creation and never recomputed.
	expiryDate := catalog.EstimateExpiryDate(category, req.Name, purchaseDate)

	foodItem := &entities.FoodItem{
		ID:           uuid.New(),
		UserID:       userUUID,
		Name:         req.Name,
		Category:     category,
		Quantity:     quantity,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
		Consumed:     false,
		Price:        req.Price,
		Source:       source,
	}

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, includeConsumed bool) ([]domain.FoodItemResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID, includeConsumed)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, nil
}

func (s *foodService) GetExpiringItems(ctx context.Context, userID string, withinDays int) ([]domain.FoodItemResponse, error) {
	if withinDays <= 0 {
		withinDays = domain.DefaultExpiringWindowDays
	}

	cutoff := time.Now().AddDate(0, 0, withinDays)
	foodItems, err := s.foodRepository.GetExpiringItems(ctx, userID, cutoff)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		response = append(response, toFoodItemResponse(item))
	}

	return response, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem), nil
}

// ConsumeFoodItem is idempotent: consuming an already consumed item succeeds
// again and overwrites its consumed date.
func (s *foodService) ConsumeFoodItem(ctx context.Context, id string, userID string) error {
	updated, err := s.foodRepository.MarkFoodItemConsumed(ctx, id, userID, time.Now())
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrFoodItemNotFound
	}
	return nil
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	deleted, err := s.foodRepository.DeleteFoodItem(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrFoodItemNotFound
	}
	return nil
}

func toFoodItemResponse(item *entities.FoodItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:           item.ID.String(),
		Name:         item.Name,
		Quantity:     item.Quantity,
		Category:     item.Category,
		PurchaseDate: item.PurchaseDate.Format(dateLayout),
		ExpiryDate:   item.ExpiryDate.Format(dateLayout),
		Consumed:     item.Consumed,
		ConsumedDate: item.ConsumedDate,
		Price:        item.Price,
		Source:       item.Source,
		CreatedAt:    item.CreatedAt,
	}
}
