package domain

import "time"

// Report is a problem report filed against a course.
type Report struct {
	ID          string
	UserID      string
	CourseID    string
	CourseSlug  string
	Description string
	CreatedAt   time.Time
}
