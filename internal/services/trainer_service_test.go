package services

import (
	"context"
	"errors"
	"testing"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type stubTrainerBackend struct {
	sessions      []models.TrainingSession
	user          *models.User
	userErr       error
	assigned      *models.TrainingSession
	assignErr     error
	lastSessionID string
	lastCoachID   string
}

func (s *stubTrainerBackend) GetAllTrainingSessions(_ context.Context, _ string) ([]models.TrainingSession, error) {
	return s.sessions, nil
}

func (s *stubTrainerBackend) GetUser(_ context.Context, _ string) (*models.User, error) {
	return s.user, s.userErr
}

func (s *stubTrainerBackend) AssignCoach(_ context.Context, sessionID, coachID string) (*models.TrainingSession, error) {
	s.lastSessionID = sessionID
	s.lastCoachID = coachID
	return s.assigned, s.assignErr
}

func TestAssignCoachHappyPath(t *testing.T) {
	coachID := "coach1"
	backend := &stubTrainerBackend{
		user:     &models.User{ID: coachID, Role: "coach"},
		assigned: &models.TrainingSession{ID: "s1", CoachID: &coachID},
	}
	service := NewTrainerService(backend)

	updated, err := service.AssignCoach(context.Background(), "s1", coachID)
	if err != nil {
		t.Fatalf("AssignCoach: %v", err)
	}
	if backend.lastSessionID != "s1" || backend.lastCoachID != coachID {
		t.Fatalf("expected backend called with s1/coach1, got %s/%s", backend.lastSessionID, backend.lastCoachID)
	}
	if updated.CoachID == nil || *updated.CoachID != coachID {
		t.Fatalf("expected coach set on returned session, got %+v", updated)
	}
}

func TestAssignCoachRejectsEmptyIDs(t *testing.T) {
	service := NewTrainerService(&stubTrainerBackend{})

	if _, err := service.AssignCoach(context.Background(), "", "coach1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty session id, got %v", err)
	}
	if _, err := service.AssignCoach(context.Background(), "s1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty coach id, got %v", err)
	}
}

func TestAssignCoachRejectsNonCoachAndDeleted(t *testing.T) {
	backend := &stubTrainerBackend{user: &models.User{ID: "u1", Role: "user"}}
	service := NewTrainerService(backend)

	if _, err := service.AssignCoach(context.Background(), "s1", "u1"); !errors.Is(err, ErrNotCoach) {
		t.Fatalf("expected ErrNotCoach for a member, got %v", err)
	}

	backend.user = &models.User{ID: "c1", Role: "coach", IsDeleted: true}
	if _, err := service.AssignCoach(context.Background(), "s1", "c1"); !errors.Is(err, ErrNotCoach) {
		t.Fatalf("expected ErrNotCoach for a deleted coach, got %v", err)
	}
}

func TestAssignCoachPropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("backend down")
	service := NewTrainerService(&stubTrainerBackend{userErr: lookupErr})

	if _, err := service.AssignCoach(context.Background(), "s1", "c1"); !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error propagated, got %v", err)
	}
}
