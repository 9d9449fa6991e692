package food

import (
	"context"
	"sort"
	"testing"
	"time"

	"freshtrack/domain"
	"freshtrack/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memoryFoodRepository mirrors the ownership filtering and ordering of the
// Postgres repository.
type memoryFoodRepository struct {
	items map[uuid.UUID]*entities.FoodItem
}

func newMemoryFoodRepository() *memoryFoodRepository {
	return &memoryFoodRepository{items: make(map[uuid.UUID]*entities.FoodItem)}
}

func (r *memoryFoodRepository) AddFoodItem(_ context.Context, foodItem *entities.FoodItem) error {
	copied := *foodItem
	r.items[foodItem.ID] = &copied
	return nil
}

func (r *memoryFoodRepository) GetFoodItemByID(_ context.Context, id string, userID string) (*entities.FoodItem, error) {
	for _, item := range r.items {
		if item.ID.String() == id && item.UserID.String() == userID {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryFoodRepository) GetFoodItems(_ context.Context, userID string, includeConsumed bool) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() != userID {
			continue
		}
		if !includeConsumed && item.Consumed {
			continue
		}
		copied := *item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpiryDate.Before(result[j].ExpiryDate)
	})
	return result, nil
}

func (r *memoryFoodRepository) GetExpiringItems(_ context.Context, userID string, before time.Time) ([]*entities.FoodItem, error) {
	var result []*entities.FoodItem
	for _, item := range r.items {
		if item.UserID.String() != userID || item.Consumed || item.ExpiryDate.After(before) {
			continue
		}
		copied := *item
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpiryDate.Before(result[j].ExpiryDate)
	})
	return result, nil
}

func (r *memoryFoodRepository) MarkFoodItemConsumed(_ context.Context, id string, userID string, consumedAt time.Time) (bool, error) {
	for _, item := range r.items {
		if item.ID.String() == id && item.UserID.String() == userID {
			item.Consumed = true
			item.ConsumedDate = &consumedAt
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFoodRepository) DeleteFoodItem(_ context.Context, id string, userID string) (bool, error) {
	for key, item := range r.items {
		if item.ID.String() == id && item.UserID.String() == userID {
			delete(r.items, key)
			return true, nil
		}
	}
	return false, nil
}

func TestAddFoodItem_EstimatesExpiryAndDefaults(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())
	userID := uuid.NewString()

	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "milk",
		Category:     "dairy",
		PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-08", res.ExpiryDate)
	assert.Equal(t, 1, res.Quantity)
	assert.Equal(t, "dairy", res.Category)
	assert.Equal(t, domain.SourceManual, res.Source)
	assert.False(t, res.Consumed)
	assert.Nil(t, res.ConsumedDate)
}

func TestAddFoodItem_SubstringMatch(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())

	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "chicken breast",
		Category:     "meat",
		PurchaseDate: "2024-01-01",
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "2024-01-03", res.ExpiryDate)
}

func TestAddFoodItem_CategoryDefaultsToOther(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())

	res, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "mystery snack",
		PurchaseDate: "2024-01-01",
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, domain.CategoryOther, res.Category)
	// unmatched item in "other" falls back to its first entry (eggs, 21 days)
	assert.Equal(t, "2024-01-22", res.ExpiryDate)
}

func TestAddFoodItem_Validation(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())
	userID := uuid.NewString()

	_, err := service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "milk",
		PurchaseDate: "01-01-2024",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseDate)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "milk",
		PurchaseDate: "2024-01-01",
		Quantity:     -2,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = service.AddFoodItem(context.Background(), domain.AddFoodItemRequest{
		Name:         "milk",
		PurchaseDate: "2024-01-01",
		Price:        -1,
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestGetFoodItems_FiltersConsumedAndSortsByExpiry(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())
	userID := uuid.NewString()
	ctx := context.Background()

	cheese, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "cheese", Category: "dairy", PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)
	chicken, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "chicken", Category: "meat", PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)
	bread, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "bread", Category: "bakery", PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	require.NoError(t, service.ConsumeFoodItem(ctx, bread.ID, userID))

	active, err := service.GetFoodItems(ctx, userID, false)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, chicken.ID, active[0].ID)
	assert.Equal(t, cheese.ID, active[1].ID)
	for _, item := range active {
		assert.False(t, item.Consumed)
	}

	all, err := service.GetFoodItems(ctx, userID, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetExpiringItems_WindowAndSubset(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())
	userID := uuid.NewString()
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	// chicken purchased yesterday expires tomorrow; cheese lasts 30 days.
	chicken, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "chicken", Category: "meat", PurchaseDate: yesterday,
	}, userID)
	require.NoError(t, err)
	_, err = service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "cheese", Category: "dairy", PurchaseDate: yesterday,
	}, userID)
	require.NoError(t, err)

	expiring, err := service.GetExpiringItems(ctx, userID, 3)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, chicken.ID, expiring[0].ID)

	active, err := service.GetFoodItems(ctx, userID, false)
	require.NoError(t, err)
	activeIDs := make(map[string]bool)
	for _, item := range active {
		activeIDs[item.ID] = true
	}
	for _, item := range expiring {
		assert.True(t, activeIDs[item.ID], "expiring item %s missing from active list", item.ID)
	}
}

func TestConsumeFoodItem_IdempotentOverwrite(t *testing.T) {
	repo := newMemoryFoodRepository()
	service := NewFoodService(repo)
	userID := uuid.NewString()
	ctx := context.Background()

	item, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "milk", Category: "dairy", PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	require.NoError(t, service.ConsumeFoodItem(ctx, item.ID, userID))
	first, err := service.GetFoodItemByID(ctx, item.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, first.ConsumedDate)

	require.NoError(t, service.ConsumeFoodItem(ctx, item.ID, userID))
	second, err := service.GetFoodItemByID(ctx, item.ID, userID)
	require.NoError(t, err)
	require.NotNil(t, second.ConsumedDate)

	assert.True(t, second.Consumed)
	assert.False(t, second.ConsumedDate.Before(*first.ConsumedDate))
}

func TestOwnershipMismatchRendersAsNotFound(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())
	owner := uuid.NewString()
	stranger := uuid.NewString()
	ctx := context.Background()

	item, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "milk", Category: "dairy", PurchaseDate: "2024-01-01",
	}, owner)
	require.NoError(t, err)

	assert.ErrorIs(t, service.ConsumeFoodItem(ctx, item.ID, stranger), domain.ErrFoodItemNotFound)
	assert.ErrorIs(t, service.DeleteFoodItem(ctx, item.ID, stranger), domain.ErrFoodItemNotFound)
	_, err = service.GetFoodItemByID(ctx, item.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	// the owner still sees the item untouched
	kept, err := service.GetFoodItemByID(ctx, item.ID, owner)
	require.NoError(t, err)
	assert.False(t, kept.Consumed)
}

func TestDeleteFoodItem(t *testing.T) {
	service := NewFoodService(newMemoryFoodRepository())
	userID := uuid.NewString()
	ctx := context.Background()

	item, err := service.AddFoodItem(ctx, domain.AddFoodItemRequest{
		Name: "bread", Category: "bakery", PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteFoodItem(ctx, item.ID, userID))
	assert.ErrorIs(t, service.DeleteFoodItem(ctx, item.ID, userID), domain.ErrFoodItemNotFound)
}
