package dto

import (
	"time"

	"github.com/placement-portal/api/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required"`
	Password       string  `json:"password" validate:"required"`
	Role           string  `json:"role" validate:"required,oneof=student tpo"`
	Branch         *string `json:"branch"`
	GraduationYear *Year   `json:"graduation_year" validate:"omitempty,eq=0|gte=1900,lte=2200"`
}

// Year is a calendar year sent as a JSON number or a numeric string. Zero
// means not given.
type Year int

func (y *Year) UnmarshalJSON(data []byte) error {
	n, err := parseFlexibleInt(data)
	if err != nil {
		return err
	}
	*y = Year(n)
	return nil
}

// Int returns the year as *int, nil when absent.
func (y *Year) Int() *int {
	if y == nil {
		return nil
	}
	v := int(*y)
	return &v
}

// LoginRequest payload for login. Role is an optional filter.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"`
}

// AuthResponse standard response for register and login.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}
