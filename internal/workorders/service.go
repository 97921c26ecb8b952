package workorders

import (
	"context"

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

func (s *Service) List(ctx context.Context, filters Filters, search string) ([]WorkOrder, error) {
	var orders []WorkOrder
	u := query.URL(s.endpoints.WorkOrders(), filters.Values(search))
	if err := s.client.GetJSON(ctx, u, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, id int) (*WorkOrder, error) {
	var order WorkOrder
	if err := s.client.GetJSON(ctx, s.endpoints.WorkOrder(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*WorkOrder, error) {
	var created WorkOrder
	if err := s.client.PostJSON(ctx, s.endpoints.WorkOrders(), req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var options FilterOptions
	if err := s.client.GetJSON(ctx, s.endpoints.WorkOrdersFilters(), &options); err != nil {
		return FilterOptions{}, err
	}
	return options, nil
}

func (s *Service) Types(ctx context.Context) ([]WorkOrderType, error) {
	var types []WorkOrderType
	if err := s.client.GetJSON(ctx, s.endpoints.WorkOrderTypes(), &types); err != nil {
		return nil, err
	}
	return types, nil
}
