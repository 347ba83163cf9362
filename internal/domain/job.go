package domain

import "time"

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// Job is a placement posting published by the TPO.
type Job struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Location     string     `json:"location"`
	CTC          *string    `json:"ctc"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	LastDate     *time.Time `json:"last_date"`
	Status       JobStatus  `json:"status"`
	CreatedBy    *int64     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	TPOName      *string    `json:"tpo_name,omitempty"`
	TPOEmail     *string    `json:"tpo_email,omitempty"`
}
