package service

import (
	"context"
	"errors"
	"fmt"

	"spa_booking/internal/model"
	"spa_booking/internal/store"
	"spa_booking/internal/utils"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrPhoneNotRegistered = errors.New("phone number is not registered")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrPhoneTaken         = errors.New("user with this phone number already exists")
)

// AuthService resolves login credentials into a role-tagged session and
// handles self-registration.
type AuthService interface {
	Login(ctx context.Context, phone, password string) (*model.Session, string, error)
	Register(ctx context.Context, phone, password string) (string, error)
}

type authService struct {
	store   store.Store
	jwtUtil *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(st store.Store, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{store: st, jwtUtil: jwtUtil}
}

// Login validates phone+password against the Login collection and returns the
// session plus a signed token. Passwords are compared as exact plaintext.
func (s *authService) Login(ctx context.Context, phone, password string) (*model.Session, string, error) {
	if phone == "" || password == "" {
		return nil, "", fmt.Errorf("%w: phone and password are required", ErrValidation)
	}

	records, err := s.store.FindWhere(ctx, model.CollectionUsers, "phone", phone)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by phone: %w", err)
	}
	if len(records) == 0 {
		return nil, "", ErrPhoneNotRegistered
	}

	// Nothing enforces phone uniqueness for accounts created by the admin
	// screen, so scan the matches in store order and take the first account
	// whose password matches.
	for _, rec := range records {
		user, err := decodeUser(rec)
		if err != nil {
			return nil, "", err
		}
		if user.Password != password {
			continue
		}

		token, err := s.jwtUtil.GenerateToken(user.ID, user.Role)
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate token: %w", err)
		}
		return &model.Session{Admin: user.Role}, token, nil
	}

	return nil, "", ErrWrongPassword
}

// Register creates a customer account (role is always false). Phone uniqueness
// is enforced here so logins stay deterministic for self-registered accounts.
func (s *authService) Register(ctx context.Context, phone, password string) (string, error) {
	if phone == "" || password == "" {
		return "", fmt.Errorf("%w: phone and password are required", ErrValidation)
	}

	existing, err := s.store.FindWhere(ctx, model.CollectionUsers, "phone", phone)
	if err != nil {
		return "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if len(existing) > 0 {
		return "", ErrPhoneTaken
	}

	id, err := s.store.Insert(ctx, model.CollectionUsers, store.Document{
		"phone":    phone,
		"password": password,
		"role":     false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}
