// Package directory covers the flat reference lists: users, locations, and
// the health check.
package directory

import (
	"context"

	"github.com/srm221B/cmms/internal/api"
)

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type Health struct {
	Status string `json:"status"`
}

type Service struct {
	client    *api.Client
	endpoints api.Endpoints
}

func NewService(client *api.Client, endpoints api.Endpoints) *Service {
	return &Service{client: client, endpoints: endpoints}
}

func (s *Service) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.client.GetJSON(ctx, s.endpoints.Users(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) Locations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := s.client.GetJSON(ctx, s.endpoints.Locations(), &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Service) UniqueAddresses(ctx context.Context) ([]string, error) {
	var addresses []string
	if err := s.client.GetJSON(ctx, s.endpoints.LocationUniqueAddresses(), &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *Service) Health(ctx context.Context) (Health, error) {
	var health Health
	if err := s.client.GetJSON(ctx, s.endpoints.Health(), &health); err != nil {
		return Health{}, err
	}
	return health, nil
}
