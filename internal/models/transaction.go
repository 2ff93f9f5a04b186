package models

import "time"

// Transaction is immutable once created; this service only reads and sums.
type Transaction struct {
	ID              string    `json:"_id"`
	UserID          string    `json:"userId"`
	Amount          float64   `json:"amount"`
	TransactionType string    `json:"transactionType"`
	Promo           *string   `json:"promo,omitempty"`
	SubscribedDate  time.Time `json:"subscribedDate"`
	User            *User     `json:"user,omitempty"`
}
