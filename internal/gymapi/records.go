package gymapi

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/CarlJazper/PSPWeb-AdminBack/internal/models"
)

// RecordQuery scopes the log and transaction listings. Zero value means all
// branches, no date bounds.
type RecordQuery struct {
	BranchID string
	From     *time.Time
	To       *time.Time
}

func (q RecordQuery) values() url.Values {
	query := url.Values{}
	if q.BranchID != "" {
		query.Set("branch", q.BranchID)
	}
	if q.From != nil {
		query.Set("from", q.From.Format("2006-01-02"))
	}
	if q.To != nil {
		query.Set("to", q.To.Format("2006-01-02"))
	}
	return query
}

func (c *Client) GetAllLogs(ctx context.Context, q RecordQuery) ([]models.AttendanceLog, error) {
	var response struct {
		Logs []models.AttendanceLog `json:"logs"`
	}
	if err := c.getJSON(ctx, "/api/v1/logs/get-all-logs", q.values(), &response); err != nil {
		return nil, fmt.Errorf("get logs: %w", err)
	}
	return response.Logs, nil
}

func (c *Client) GetAllTransactions(ctx context.Context, q RecordQuery) ([]models.Transaction, error) {
	var response struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := c.getJSON(ctx, "/api/v1/transaction/get-all-transactions", q.values(), &response); err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}
	return response.Transactions, nil
}
