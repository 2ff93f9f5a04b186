package models

import "time"

type Image struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

type User struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	BirthDate  time.Time `json:"birthDate"`
	Gender     string    `json:"gender"`
	Address    *string   `json:"address,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	UserBranch *string   `json:"userBranch,omitempty"`
	IsDeleted  bool      `json:"isDeleted"`
	Images     []Image   `json:"image"`
	CreatedAt  time.Time `json:"createdAt"`
}
