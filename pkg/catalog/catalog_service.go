package catalog

import (
	"context"
	"strings"

	"freshtrack/domain"
)

type (
	CatalogService interface {
		SearchFoods(ctx context.Context, query string) ([]domain.CatalogFoodResponse, error)
		GetFoodExpiry(ctx context.Context, foodName string) (domain.CatalogFoodResponse, error)
	}

	catalogService struct{}
)

func NewCatalogService() CatalogService {
	return &catalogService{}
}

func (s *catalogService) SearchFoods(_ context.Context, query string) ([]domain.CatalogFoodResponse, error) {
	query = strings.ToLower(query)

	results := make([]domain.CatalogFoodResponse, 0)
	for _, cat := range Categories {
		for _, entry := range cat.Entries {
			if strings.Contains(entry.Name, query) {
				results = append(results, domain.CatalogFoodResponse{
					Name:              entry.Name,
					Category:          cat.Name,
					TypicalExpiryDays: entry.Days,
				})
			}
		}
	}

	return results, nil
}

func (s *catalogService) GetFoodExpiry(_ context.Context, foodName string) (domain.CatalogFoodResponse, error) {
	foodName = strings.ToLower(foodName)

	for _, cat := range Categories {
		for _, entry := range cat.Entries {
			if entry.Name == foodName {
				return domain.CatalogFoodResponse{
					Name:              entry.Name,
					Category:          cat.Name,
					TypicalExpiryDays: entry.Days,
				}, nil
			}
		}
	}

	return domain.CatalogFoodResponse{}, domain.ErrFoodNotInCatalog
}
