package domain

import "time"

// Suggestion is a course suggestion submitted by an authenticated user.
type Suggestion struct {
	ID          string
	UserID      string
	Title       string
	CourseURL   string // must point at YouTube
	Category    string
	Description string
	CreatedAt   time.Time
}
