package assets

import (
	"context"
	"net/url"

	"github.com/srm221B/cmms/internal/api"
	"github.com/srm221B/cmms/internal/query"
)

type Service struct {
	client    *api.Client
	endpoints api.Endpoints
}

func NewService(client *api.Client, endpoints api.Endpoints) *Service {
	return &Service{client: client, endpoints: endpoints}
}

func (s *Service) List(ctx context.Context, filters Filters, search string) ([]Asset, error) {
	var assets []Asset
	u := query.URL(s.endpoints.Assets(), filters.Values(search))
	if err := s.client.GetJSON(ctx, u, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *Service) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var options FilterOptions
	if err := s.client.GetJSON(ctx, s.endpoints.AssetsFilters(), &options); err != nil {
		return FilterOptions{}, err
	}
	return options, nil
}

// Filtered is the plant/category shortcut endpoint.
func (s *Service) Filtered(ctx context.Context, plant, assetCategory string) ([]Asset, error) {
	v := url.Values{}
	query.SetString(v, "plant", plant)
	query.SetString(v, "asset_category", assetCategory)

	var assets []Asset
	if err := s.client.GetJSON(ctx, query.URL(s.endpoints.AssetsFiltered(), v), &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *Service) Categories(ctx context.Context) ([]AssetCategory, error) {
	var categories []AssetCategory
	if err := s.client.GetJSON(ctx, s.endpoints.AssetCategories(), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
