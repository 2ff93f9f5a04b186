package services

import (
	"context"
	"errors"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotCoach     = errors.New("user is not an active coach")
)

type trainerBackend interface {
	GetAllTrainingSessions(ctx context.Context, branchID string) ([]models.TrainingSession, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	AssignCoach(ctx context.Context, sessionID, coachID string) (*models.TrainingSession, error)
}

type TrainerService struct {
	backend trainerBackend
}

func NewTrainerService(backend trainerBackend) *TrainerService {
	return &TrainerService{backend: backend}
}

func (s *TrainerService) ListSessions(ctx context.Context, branchID string) ([]models.TrainingSession, error) {
	return s.backend.GetAllTrainingSessions(ctx, branchID)
}

// AssignCoach validates the coach before issuing the backend's single-field
// update: the target must exist, hold the coach role, and not be
// soft-deleted.
func (s *TrainerService) AssignCoach(ctx context.Context, sessionID, coachID string) (*models.TrainingSession, error) {
	if sessionID == "" || coachID == "" {
		return nil, ErrInvalidInput
	}

	coach, err := s.backend.GetUser(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if coach == nil || coach.Role != "coach" || coach.IsDeleted {
		return nil, ErrNotCoach
	}

	return s.backend.AssignCoach(ctx, sessionID, coachID)
}
