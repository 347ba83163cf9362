package domain

import "time"

// StudentSummary is the TPO-facing view of a student account.
type StudentSummary struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Branch         *string   `json:"branch"`
	GraduationYear *int      `json:"graduation_year"`
	CreatedAt      time.Time `json:"created_at"`
}

// Overview aggregates portal counts for the TPO dashboard.
type Overview struct {
	Users        []RoleCount   `json:"users"`
	Jobs         []StatusCount `json:"jobs"`
	Applications []StatusCount `json:"applications"`
}

// RoleCount counts users per role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// StatusCount counts rows per status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
