package service

import (
	"context"
	"errors"
	"fmt"

	"spa_booking/internal/model"
	"spa_booking/internal/store"
)

var ErrServiceNotFound = errors.New("service not found")

// CatalogService manages the Service collection of bookable spa services.
type CatalogService interface {
	ListServices(ctx context.Context) ([]model.ServiceListing, error)
	CreateService(ctx context.Context, name string, price float64, creator string) (string, error)
	UpdateService(ctx context.Context, id, name string, price float64, creator string) error
	DeleteService(ctx context.Context, id string) error
}

type catalogService struct {
	store store.Store
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(st store.Store) CatalogService {
	return &catalogService{store: st}
}

// ListServices fetches a snapshot of the whole catalog
func (s *catalogService) ListServices(ctx context.Context) ([]model.ServiceListing, error) {
	records, err := s.store.ListAll(ctx, model.CollectionServices)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	listings := make([]model.ServiceListing, 0, len(records))
	for _, rec := range records {
		listing, err := decodeService(rec)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// CreateService validates the listing and adds it to the catalog
func (s *catalogService) CreateService(ctx context.Context, name string, price float64, creator string) (string, error) {
	if err := validateListing(name, price, creator); err != nil {
		return "", err
	}

	id, err := s.store.Insert(ctx, model.CollectionServices, serviceDocument(name, price, creator))
	if err != nil {
		return "", fmt.Errorf("failed to create service: %w", err)
	}
	return id, nil
}

// UpdateService replaces the full record. Last writer wins, no version check.
func (s *catalogService) UpdateService(ctx context.Context, id, name string, price float64, creator string) error {
	if err := validateListing(name, price, creator); err != nil {
		return err
	}

	if err := s.store.UpdateByID(ctx, model.CollectionServices, id, serviceDocument(name, price, creator)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to update service %s: %w", id, err)
	}
	return nil
}

// DeleteService removes a listing immediately and permanently
func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, model.CollectionServices, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrServiceNotFound
		}
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	return nil
}

// validateListing rejects bad input before any store call is made
func validateListing(name string, price float64, creator string) error {
	if name == "" || creator == "" {
		return fmt.Errorf("%w: service name and creator are required", ErrValidation)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be a positive number", ErrValidation)
	}
	return nil
}

func serviceDocument(name string, price float64, creator string) store.Document {
	return store.Document{
		"ServiceName": name,
		"Price":       price,
		"Creator":     creator,
	}
}
