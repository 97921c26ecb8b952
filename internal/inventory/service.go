package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/srm221B/cmms/internal/api"
)

type Service struct {
	client    *api.Client
	endpoints api.Endpoints
	log       *zap.Logger
}

func NewService(client *api.Client, endpoints api.Endpoints, log *zap.Logger) *Service {
	return &Service{client: client, endpoints: endpoints, log: log}
}

func (s *Service) List(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := s.client.GetJSON(ctx, s.endpoints.Inventory(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListWithBalances loads the item list then attaches each item's per-location
// balances from the details endpoint. An item whose details fetch fails keeps
// an empty balance list rather than failing the whole load.
func (s *Service) ListWithBalances(ctx context.Context) ([]Item, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		details, err := s.Details(ctx, items[i].ID)
		if err != nil {
			s.log.Warn("failed to load balances",
				zap.Int("item_id", items[i].ID),
				zap.Error(err))
			continue
		}
		items[i].Balances = details.Balances
	}

	return items, nil
}

// Items is the lightweight part reference list used by pickers.
func (s *Service) Items(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := s.client.GetJSON(ctx, s.endpoints.InventoryItems(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Details(ctx context.Context, id int) (*Details, error) {
	var details Details
	if err := s.client.GetJSON(ctx, s.endpoints.InventoryDetails(id), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, s.endpoints.InventoryDelete(id))
}

func (s *Service) FilterOptions(ctx context.Context) (FilterOptions, error) {
	var options FilterOptions
	if err := s.client.GetJSON(ctx, s.endpoints.InventoryFilters(), &options); err != nil {
		return FilterOptions{}, err
	}
	return options, nil
}

func (s *Service) Locations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := s.client.GetJSON(ctx, s.endpoints.InventoryLocations(), &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// SubmitTransfer posts an assembled transfer and returns the new transfer ID.
func (s *Service) SubmitTransfer(ctx context.Context, req TransferRequest) (int, error) {
	var resp struct {
		Message    string `json:"message"`
		TransferID int    `json:"transfer_id"`
	}
	if err := s.client.PostJSON(ctx, s.endpoints.InventoryTransfer(), req, &resp); err != nil {
		return 0, err
	}
	return resp.TransferID, nil
}

// ReceiveParts posts one goods-receipt line and returns the inflow ID.
func (s *Service) ReceiveParts(ctx context.Context, req ReceiveRequest) (int, error) {
	var resp struct {
		Message  string `json:"message"`
		InflowID int    `json:"inflow_id"`
	}
	if err := s.client.PostJSON(ctx, s.endpoints.InventoryReceive(), req, &resp); err != nil {
		return 0, err
	}
	return resp.InflowID, nil
}

func (s *Service) Transfers(ctx context.Context) ([]TransferHistory, error) {
	var transfers []TransferHistory
	if err := s.client.GetJSON(ctx, s.endpoints.InventoryTransfers(), &transfers); err != nil {
		return nil, fmt.Errorf("failed to load transfer history: %w", err)
	}
	return transfers, nil
}

func (s *Service) Receipts(ctx context.Context) ([]ReceiptHistory, error) {
	var receipts []ReceiptHistory
	if err := s.client.GetJSON(ctx, s.endpoints.InventoryReceipts(), &receipts); err != nil {
		return nil, fmt.Errorf("failed to load receipt history: %w", err)
	}
	return receipts, nil
}
