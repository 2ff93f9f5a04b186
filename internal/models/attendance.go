package models

import "time"

// AttendanceLog is a check-in record owned by the backend. TimeOut is nil
// while the member is still inside.
type AttendanceLog struct {
	ID      string     `json:"_id"`
	UserID  string     `json:"userId"`
	Date    *time.Time `json:"date,omitempty"`
	TimeIn  time.Time  `json:"timeIn"`
	TimeOut *time.Time `json:"timeOut,omitempty"`
	User    *User      `json:"user,omitempty"`
}

// Active reports whether the member has checked in but not out.
func (l AttendanceLog) Active() bool {
	return l.TimeOut == nil
}
