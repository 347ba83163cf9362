package dto

import (
	"fmt"
	"time"
)

// JobRequest payload for creating and updating jobs.
type JobRequest struct {
	Title        string  `json:"title" validate:"required"`
	Company      string  `json:"company" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	CTC          *string `json:"ctc"`
	Description  *string `json:"description"`
	Requirements *string `json:"requirements"`
	LastDate     *string `json:"last_date"`
	Status       string  `json:"status" validate:"omitempty,oneof=open closed"`
}

// ParseLastDate accepts YYYY-MM-DD or RFC 3339. Empty means no deadline.
func (r JobRequest) ParseLastDate() (*time.Time, error) {
	if r.LastDate == nil || *r.LastDate == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, *r.LastDate); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("last_date must be YYYY-MM-DD")
}
