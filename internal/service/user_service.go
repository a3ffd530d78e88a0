package service

import (
	"context"
	"errors"
	"fmt"

	"spa_booking/internal/model"
	"spa_booking/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

// UserService is the admin-side directory over the Login collection.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.UserAccount, error)
	UpsertUser(ctx context.Context, id, phone, password string, role bool) (string, error)
	DeleteUser(ctx context.Context, id string) error
}

type userService struct {
	store store.Store
}

// NewUserService creates a new UserService
func NewUserService(st store.Store) UserService {
	return &userService{store: st}
}

// ListUsers fetches a snapshot of every account
func (s *userService) ListUsers(ctx context.Context) ([]model.UserAccount, error) {
	records, err := s.store.ListAll(ctx, model.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]model.UserAccount, 0, len(records))
	for _, rec := range records {
		user, err := decodeUser(rec)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// UpsertUser updates the account when id is given and creates one otherwise.
// The admin path intentionally skips the phone-uniqueness check, matching
// edit-in-place semantics of the management screen.
func (s *userService) UpsertUser(ctx context.Context, id, phone, password string, role bool) (string, error) {
	if phone == "" || password == "" {
		return "", fmt.Errorf("%w: phone and password are required", ErrValidation)
	}

	doc := store.Document{
		"phone":    phone,
		"password": password,
		"role":     role,
	}

	if id != "" {
		if err := s.store.UpdateByID(ctx, model.CollectionUsers, id, doc); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return "", ErrUserNotFound
			}
			return "", fmt.Errorf("failed to update user %s: %w", id, err)
		}
		return id, nil
	}

	newID, err := s.store.Insert(ctx, model.CollectionUsers, doc)
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return newID, nil
}

// DeleteUser removes an account immediately and permanently
func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.store.DeleteByID(ctx, model.CollectionUsers, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}
