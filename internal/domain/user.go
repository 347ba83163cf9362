package domain

import "time"

// Role is the flat portal role carried by users and tokens.
type Role string

const (
	RoleStudent Role = "student"
	RoleTPO     Role = "tpo"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTPO
}

// User is the domain model for portal accounts.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	Branch         *string   `json:"branch"`
	GraduationYear *int      `json:"graduation_year"`
	CreatedAt      time.Time `json:"created_at"`
}
