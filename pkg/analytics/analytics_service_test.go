package analytics

import (
	"context"
	"testing"
	"time"

	"freshtrack/domain"
	"freshtrack/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAnalyticsRepository struct {
	foodItems []*entities.FoodItem
	snapshots []*entities.AnalyticsSnapshot
}

func (r *memoryAnalyticsRepository) GetAllFoodItems(_ context.Context, userID string) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range r.foodItems {
		if item.UserID.String() == userID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (r *memoryAnalyticsRepository) SaveSnapshot(_ context.Context, snapshot *entities.AnalyticsSnapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *memoryAnalyticsRepository) GetSnapshots(_ context.Context, userID string) ([]*entities.AnalyticsSnapshot, error) {
	var result []*entities.AnalyticsSnapshot
	for i := len(r.snapshots) - 1; i >= 0; i-- {
		if r.snapshots[i].UserID.String() == userID {
			result = append(result, r.snapshots[i])
		}
	}
	return result, nil
}

func foodItem(userID uuid.UUID, category string, price float64, consumed bool, expiry time.Time) *entities.FoodItem {
	return &entities.FoodItem{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "item",
		Category:   category,
		Quantity:   1,
		ExpiryDate: expiry,
		Consumed:   consumed,
		Price:      price,
	}
}

func TestComputeWasteReport(t *testing.T) {
	userID := uuid.New()
	future := time.Now().AddDate(0, 0, 7)
	past := time.Now().AddDate(0, 0, -2)

	repo := &memoryAnalyticsRepository{
		foodItems: []*entities.FoodItem{
			foodItem(userID, "dairy", 3.0, true, past),    // consumed, never wasted
			foodItem(userID, "dairy", 2.0, false, past),   // expired, wasted
			foodItem(userID, "produce", 1.5, false, future),
			foodItem(userID, "meat", 9.0, false, future),
			foodItem(uuid.New(), "meat", 50.0, false, past), // someone else's
		},
	}
	service := NewAnalyticsService(repo)

	report, err := service.ComputeWasteReport(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalItems)
	assert.Equal(t, 1, report.ConsumedItems)
	assert.Equal(t, 1, report.WastedItems)
	assert.InDelta(t, 25.0, report.WastePercentage, 0.001)
	assert.InDelta(t, 15.5, report.TotalValue, 0.001)
	assert.InDelta(t, 2.0, report.WastedValue, 0.001)

	dairy := report.Categories["dairy"]
	assert.Equal(t, domain.CategoryWasteStats{Total: 2, Consumed: 1, Wasted: 1}, dairy)
	assert.Equal(t, domain.CategoryWasteStats{Total: 1}, report.Categories["produce"])
	assert.Equal(t, domain.CategoryWasteStats{Total: 1}, report.Categories["meat"])
}

func TestComputeWasteReport_ConsumedExpiredNotWasted(t *testing.T) {
	userID := uuid.New()
	repo := &memoryAnalyticsRepository{
		foodItems: []*entities.FoodItem{
			foodItem(userID, "dairy", 3.0, true, time.Now().AddDate(0, 0, -10)),
		},
	}
	service := NewAnalyticsService(repo)

	report, err := service.ComputeWasteReport(context.Background(), userID.String())
	require.NoError(t, err)

	assert.Equal(t, 1, report.ConsumedItems)
	assert.Equal(t, 0, report.WastedItems)
	assert.Zero(t, report.WastePercentage)
}

func TestComputeWasteReport_EmptyLedger(t *testing.T) {
	service := NewAnalyticsService(&memoryAnalyticsRepository{})

	report, err := service.ComputeWasteReport(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Zero(t, report.TotalItems)
	assert.Zero(t, report.WastePercentage)
	assert.Empty(t, report.Categories)
}

func TestSaveSnapshot_AppendOnly(t *testing.T) {
	userID := uuid.New()
	repo := &memoryAnalyticsRepository{
		foodItems: []*entities.FoodItem{
			foodItem(userID, "dairy", 2.0, false, time.Now().AddDate(0, 0, -1)),
			foodItem(userID, "produce", 1.0, true, time.Now().AddDate(0, 0, 5)),
		},
	}
	service := NewAnalyticsService(repo)
	ctx := context.Background()

	first, err := service.SaveSnapshot(ctx, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, first.TotalItems)
	assert.InDelta(t, 50.0, first.WastePercentage, 0.001)

	_, err = service.SaveSnapshot(ctx, userID.String())
	require.NoError(t, err)

	assert.Len(t, repo.snapshots, 2)
	assert.NotEqual(t, repo.snapshots[0].ID, repo.snapshots[1].ID)
}

func TestGetSnapshots_DecodesCategories(t *testing.T) {
	userID := uuid.New()
	repo := &memoryAnalyticsRepository{
		foodItems: []*entities.FoodItem{
			foodItem(userID, "bakery", 4.0, false, time.Now().AddDate(0, 0, -1)),
		},
	}
	service := NewAnalyticsService(repo)
	ctx := context.Background()

	_, err := service.SaveSnapshot(ctx, userID.String())
	require.NoError(t, err)

	snapshots, err := service.GetSnapshots(ctx, userID.String())
	require.NoError(t, err)
	require.Len(t, snapshots, 1)

	assert.Equal(t, domain.CategoryWasteStats{Total: 1, Wasted: 1}, snapshots[0].Categories["bakery"])
	assert.Equal(t, 1, snapshots[0].WastedItems)
}
