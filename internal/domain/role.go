package domain

import (
	"context"
	"time"
)

// EventRole is a staffing role defined by the organizer for an event,
// e.g. "Logistics Lead" with a budget and a response deadline.
// swagger:model EventRole
type EventRole struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Budget           float64    `json:"budget"`
	Currency         string     `json:"currency"`
	Responsibilities string     `json:"responsibilities"`
	Requirements     string     `json:"requirements"`
	Deadline         *time.Time `json:"deadline"`
}

// EventRoleRepository defines storage operations for event staffing roles.
type EventRoleRepository interface {
	Create(ctx context.Context, role *EventRole) error
	GetByID(ctx context.Context, id string) (*EventRole, error)
	ListByEventID(ctx context.Context, eventID string) ([]*EventRole, error)
}
