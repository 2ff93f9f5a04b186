package models

import "time"

type ScheduledSession struct {
	DateAssigned *time.Time `json:"dateAssigned,omitempty"`
	TimeAssigned *string    `json:"timeAssigned,omitempty"`
	Status       string     `json:"status"`
}

// TrainingSession is a booked personal-training package. CoachID stays nil
// until an admin assigns a coach.
type TrainingSession struct {
	ID          string             `json:"_id"`
	UserID      string             `json:"userId"`
	CoachID     *string            `json:"coachID,omitempty"`
	Package     string             `json:"package"`
	SessionRate float64            `json:"sessionRate"`
	Total       float64            `json:"total"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	Sessions    []ScheduledSession `json:"schedule"`
	User        *User              `json:"user,omitempty"`
}
