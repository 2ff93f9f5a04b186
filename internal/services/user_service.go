package services

import (
	"context"
	"errors"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/gymapi"
	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type userBackend interface {
	GetAllUsers(ctx context.Context, branchID string) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, input gymapi.UserInput) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserService fronts the backend's user collection and enforces the
// read-side soft-delete rule: flagged users are excluded from every view.
type UserService struct {
	backend userBackend
}

func NewUserService(backend userBackend) *UserService {
	return &UserService{backend: backend}
}

func (s *UserService) List(ctx context.Context, branchID string) ([]models.User, error) {
	users, err := s.backend.GetAllUsers(ctx, branchID)
	if err != nil {
		return nil, err
	}

	active := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.IsDeleted {
			continue
		}
		active = append(active, u)
	}
	return active, nil
}

// ListCoaches returns the active users holding the coach role, for the
// assign-coach picker.
func (s *UserService) ListCoaches(ctx context.Context, branchID string) ([]models.User, error) {
	users, err := s.List(ctx, branchID)
	if err != nil {
		return nil, err
	}

	coaches := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Role == "coach" {
			coaches = append(coaches, u)
		}
	}
	return coaches, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.backend.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, gymapi.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user == nil || user.IsDeleted {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, input gymapi.UserInput) (*models.User, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.backend.UpdateUser(ctx, id, input)
}

// Delete asks the backend to flag the user; the client never unsets the
// flag or deletes twice.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.backend.DeleteUser(ctx, id)
}
