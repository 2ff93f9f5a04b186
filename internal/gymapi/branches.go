package gymapi

import (
	"context"
	"fmt"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

type BranchInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Place   string `json:"place"`
}

func (c *Client) GetAllBranches(ctx context.Context) ([]models.Branch, error) {
	var response struct {
		Branches []models.Branch `json:"branch"`
	}
	if err := c.getJSON(ctx, "/api/v1/branch/get-all-branch", nil, &response); err != nil {
		return nil, fmt.Errorf("get branches: %w", err)
	}
	return response.Branches, nil
}

func (c *Client) GetBranch(ctx context.Context, id string) (*models.Branch, error) {
	var response struct {
		Branch *models.Branch `json:"branch"`
	}
	if err := c.getJSON(ctx, "/api/v1/branch/get-branch/"+id, nil, &response); err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}
	return response.Branch, nil
}

func (c *Client) CreateBranch(ctx context.Context, input BranchInput) (*models.Branch, error) {
	var response struct {
		Branch *models.Branch `json:"branch"`
	}
	if err := c.postJSON(ctx, "/api/v1/branch/create", input, &response); err != nil {
		return nil, fmt.Errorf("create branch: %w", err)
	}
	return response.Branch, nil
}

func (c *Client) UpdateBranch(ctx context.Context, id string, input BranchInput) (*models.Branch, error) {
	var response struct {
		Branch *models.Branch `json:"branch"`
	}
	if err := c.putJSON(ctx, "/api/v1/branch/update/"+id, input, &response); err != nil {
		return nil, fmt.Errorf("update branch: %w", err)
	}
	return response.Branch, nil
}

func (c *Client) DeleteBranch(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/api/v1/branch/delete/"+id); err != nil {
		return fmt.Errorf("delete branch: %w", err)
	}
	return nil
}
