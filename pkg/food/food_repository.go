package food

import (
	"context"
	"time"

	"freshtrack/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error)
		GetFoodItems(ctx context.Context, userID string, includeConsumed bool) ([]*entities.FoodItem, error)
		GetExpiringItems(ctx context.Context, userID string, before time.Time) ([]*entities.FoodItem, error)
		MarkFoodItemConsumed(ctx context.Context, id string, userID string, consumedAt time.Time) (bool, error)
		DeleteFoodItem(ctx context.Context, id string, userID string) (bool, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, foodItem *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(foodItem).Error
}

// GetFoodItemByID filters on user_id as well as id, so an item owned by
// another user is indistinguishable from a missing one.
func (r *foodRepository) GetFoodItemByID(ctx context.Context, id string, userID string) (*entities.FoodItem, error) {
	var foodItem entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&foodItem).Error; err != nil {
		return nil, err
	}
	return &foodItem, nil
}

func (r *foodRepository) GetFoodItems(ctx context.Context, userID string, includeConsumed bool) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeConsumed {
		query = query.Where("consumed = ?", false)
	}

	if err := query.Order("expiry_date asc").Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

func (r *foodRepository) GetExpiringItems(ctx context.Context, userID string, before time.Time) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND consumed = ? AND expiry_date <= ?", userID, false, before).
		Order("expiry_date asc").
		Find(&foodItems).Error; err != nil {
		return nil, err
	}

	return foodItems, nil
}

// MarkFoodItemConsumed is a single conditional UPDATE on (id, user_id), so two
// concurrent consume calls cannot lose each other's write; the later one
// overwrites consumed_date. Returns false when no owned row matched.
func (r *foodRepository) MarkFoodItemConsumed(ctx context.Context, id string, userID string, consumedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"consumed":      true,
			"consumed_date": consumedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id string, userID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.FoodItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
