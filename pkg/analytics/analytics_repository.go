package analytics

import (
	"context"

	"freshtrack/entities"

	"gorm.io/gorm"
)

type (
	AnalyticsRepository interface {
		GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		SaveSnapshot(ctx context.Context, snapshot *entities.AnalyticsSnapshot) error
		GetSnapshots(ctx context.Context, userID string) ([]*entities.AnalyticsSnapshot, error)
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetAllFoodItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var foodItems []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&foodItems).Error; err != nil {
		return nil, err
	}
	return foodItems, nil
}

// SaveSnapshot only ever inserts; snapshots are append-only history.
func (r *analyticsRepository) SaveSnapshot(ctx context.Context, snapshot *entities.AnalyticsSnapshot) error {
	return r.db.WithContext(ctx).Create(snapshot).Error
}

func (r *analyticsRepository) GetSnapshots(ctx context.Context, userID string) ([]*entities.AnalyticsSnapshot, error) {
	var snapshots []*entities.AnalyticsSnapshot
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&snapshots).Error; err != nil {
		return nil, err
	}
	return snapshots, nil
}
