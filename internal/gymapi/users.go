package gymapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type UserInput struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Gender     string  `json:"gender"`
	BirthDate  string  `json:"birthDate"`
	Address    *string `json:"address,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	UserBranch *string `json:"userBranch,omitempty"`
}

// GetAllUsers lists users, optionally scoped to one branch. The result still
// contains soft-deleted users; read-side exclusion is the caller's duty.
func (c *Client) GetAllUsers(ctx context.Context, branchID string) ([]models.User, error) {
	query := url.Values{}
	if branchID != "" {
		query.Set("branch", branchID)
	}

	var response struct {
		Users []models.User `json:"users"`
	}
	if err := c.getJSON(ctx, "/api/v1/users/get-all-users", query, &response); err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return response.Users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var response struct {
		User *models.User `json:"user"`
	}
	if err := c.getJSON(ctx, "/api/v1/users/get-user/"+id, nil, &response); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return response.User, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, input UserInput) (*models.User, error) {
	var response struct {
		User *models.User `json:"user"`
	}
	if err := c.putJSON(ctx, "/api/v1/users/update/"+id, input, &response); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return response.User, nil
}

// DeleteUser asks the backend to flag the user as deleted. The flag itself
// is backend-owned; this client never unsets or re-deletes it.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/api/v1/users/delete/"+id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
