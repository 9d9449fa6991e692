package analytics

import (
	"context"
	"encoding/json"
	"time"

	"freshtrack/domain"
	"freshtrack/entities"

	"github.com/google/uuid"
)

type (
	AnalyticsService interface {
		ComputeWasteReport(ctx context.Context, userID string) (domain.WasteReportResponse, error)
		SaveSnapshot(ctx context.Context, userID string) (domain.AnalyticsSnapshotResponse, error)
		GetSnapshots(ctx context.Context, userID string) ([]domain.AnalyticsSnapshotResponse, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepository: analyticsRepository}
}

// ComputeWasteReport derives waste statistics from current ledger state. An
// unconsumed item counts as wasted once its expiry date has passed; an
// unconsumed, unexpired item is neither consumed nor wasted.
func (s *analyticsService) ComputeWasteReport(ctx context.Context, userID string) (domain.WasteReportResponse, error) {
	items, err := s.analyticsRepository.GetAllFoodItems(ctx, userID)
	if err != nil {
		return domain.WasteReportResponse{}, err
	}

	now := time.Now()
	report := domain.WasteReportResponse{
		Categories: make(map[string]domain.CategoryWasteStats),
	}

	for _, item := range items {
		wasted := !item.Consumed && item.ExpiryDate.Before(now)

		report.TotalItems++
		report.TotalValue += item.Price
		if item.Consumed {
			report.ConsumedItems++
		}
		if wasted {
			report.WastedItems++
			report.WastedValue += item.Price
		}

		category := item.Category
		if category == "" {
			category = domain.CategoryOther
		}
		stats := report.Categories[category]
		stats.Total++
		if item.Consumed {
			stats.Consumed++
		}
		if wasted {
			stats.Wasted++
		}
		report.Categories[category] = stats
	}

	if report.TotalItems > 0 {
		report.WastePercentage = float64(report.WastedItems) / float64(report.TotalItems) * 100
	}

	return report, nil
}

func (s *analyticsService) SaveSnapshot(ctx context.Context, userID string) (domain.AnalyticsSnapshotResponse, error) {
	report, err := s.ComputeWasteReport(ctx, userID)
	if err != nil {
		return domain.AnalyticsSnapshotResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.AnalyticsSnapshotResponse{}, domain.ErrParseUUID
	}

	categoriesJSON, err := json.Marshal(report.Categories)
	if err != nil {
		return domain.AnalyticsSnapshotResponse{}, err
	}

	snapshot := &entities.AnalyticsSnapshot{
		ID:              uuid.New(),
		UserID:          userUUID,
		Date:            time.Now(),
		TotalItems:      report.TotalItems,
		ConsumedItems:   report.ConsumedItems,
		WastedItems:     report.WastedItems,
		WastePercentage: report.WastePercentage,
		TotalValue:      report.TotalValue,
		WastedValue:     report.WastedValue,
		Categories:      string(categoriesJSON),
	}

	if err := s.analyticsRepository.SaveSnapshot(ctx, snapshot); err != nil {
		return domain.AnalyticsSnapshotResponse{}, err
	}

	return toSnapshotResponse(snapshot), nil
}

func (s *analyticsService) GetSnapshots(ctx context.Context, userID string) ([]domain.AnalyticsSnapshotResponse, error) {
	snapshots, err := s.analyticsRepository.GetSnapshots(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AnalyticsSnapshotResponse, 0, len(snapshots))
	for _, snapshot := range snapshots {
		response = append(response, toSnapshotResponse(snapshot))
	}

	return response, nil
}

func toSnapshotResponse(snapshot *entities.AnalyticsSnapshot) domain.AnalyticsSnapshotResponse {
	categories := make(map[string]domain.CategoryWasteStats)
	if snapshot.Categories != "" {
		// A snapshot we wrote ourselves always holds valid JSON.
		_ = json.Unmarshal([]byte(snapshot.Categories), &categories)
	}

	return domain.AnalyticsSnapshotResponse{
		ID:              snapshot.ID.String(),
		Date:            snapshot.Date,
		TotalItems:      snapshot.TotalItems,
		ConsumedItems:   snapshot.ConsumedItems,
		WastedItems:     snapshot.WastedItems,
		WastePercentage: snapshot.WastePercentage,
		TotalValue:      snapshot.TotalValue,
		WastedValue:     snapshot.WastedValue,
		Categories:      categories,
	}
}
