package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/placement-portal/api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventUserLoggedIn         EventType = "user_logged_in"
	EventApplicationSubmitted EventType = "application_submitted"
	EventJobCreated           EventType = "job_created"
	EventJobDeleted           EventType = "job_deleted"
)

// AllTypes lists every event type, for subscribers that want all of them.
var AllTypes = []EventType{
	EventUserRegistered,
	EventUserLoggedIn,
	EventApplicationSubmitted,
	EventJobCreated,
	EventJobDeleted,
}

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, actor Actor, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID int64 `json:"application_id"`
	JobID         int64 `json:"job_id"`
}

// JobPayload payload for job lifecycle events.
type JobPayload struct {
	JobID   int64  `json:"job_id"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
}
