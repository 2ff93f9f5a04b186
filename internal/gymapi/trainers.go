package gymapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

func (c *Client) GetAllTrainingSessions(ctx context.Context, branchID string) ([]models.TrainingSession, error) {
	query := url.Values{}
	if branchID != "" {
		query.Set("branch", branchID)
	}

	var response struct {
		Sessions []models.TrainingSession `json:"availTrainer"`
	}
	if err := c.getJSON(ctx, "/api/v1/availTrainer/get-all-training", query, &response); err != nil {
		return nil, fmt.Errorf("get training sessions: %w", err)
	}
	return response.Sessions, nil
}

type assignCoachRequest struct {
	CoachID string `json:"coachID"`
}

// AssignCoach fills the nullable coach field of a booked training session,
// the one mutation this module issues against training data.
func (c *Client) AssignCoach(ctx context.Context, sessionID, coachID string) (*models.TrainingSession, error) {
	var response struct {
		Session *models.TrainingSession `json:"availTrainer"`
	}
	err := c.putJSON(ctx, "/api/v1/availTrainer/assign-coach/"+sessionID, assignCoachRequest{CoachID: coachID}, &response)
	if err != nil {
		return nil, fmt.Errorf("assign coach: %w", err)
	}
	return response.Session, nil
}
