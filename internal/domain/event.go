package domain

import (
	"context"
	"time"
)

// Event status labels set by the event service on create/update.
const (
	EventStatusCreated = "CREATED"
	EventStatusUpdated = "UPDATED"
)

// Event represents a volunteer event created by an organizer.
// swagger:model Event
type Event struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
	Location           string    `json:"location"`
	Cost               float64   `json:"cost"`
	RequiredVolunteers int       `json:"required_volunteers"`
	ManagedByManager   bool      `json:"managed_by_manager"`
	Status             string    `json:"status"`
	Category           string    `json:"category"`
	Tags               string    `json:"tags"`
	CreatedByID        string    `json:"created_by_id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description, location, category, tags, createdByID string, startAt, endAt time.Time, cost float64, requiredVolunteers int, managedByManager bool) *Event {
	now := time.Now()
	return &Event{
		Title:              title,
		Description:        description,
		StartAt:            startAt,
		EndAt:              endAt,
		Location:           location,
		Cost:               cost,
		RequiredVolunteers: requiredVolunteers,
		ManagedByManager:   managedByManager,
		Status:             EventStatusCreated,
		Category:           category,
		Tags:               tags,
		CreatedByID:        createdByID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// EventUpdate carries the mutable event fields for an organizer edit.
type EventUpdate struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
	Location           string    `json:"location"`
	Cost               float64   `json:"cost"`
	RequiredVolunteers int       `json:"required_volunteers"`
	ManagedByManager   bool      `json:"managed_by_manager"`
	Category           string    `json:"category"`
	Tags               string    `json:"tags"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetByIDAndCreator(ctx context.Context, id, creatorID string) (*Event, error)
	ListByCreatorID(ctx context.Context, creatorID string) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
}

// EventHomeData bundles everything the organizer's staffing page needs for one event.
type EventHomeData struct {
	Event       *Event              `json:"event"`
	Roles       []*EventRole        `json:"roles"`
	Invitations []*Invitation       `json:"invitations"`
	Managers    []*ManagerCandidate `json:"managers"`
}

// EventService defines organizer-facing event operations.
type EventService interface {
	// CreateEvent validates and stores a new event. EndAt must be after StartAt.
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	ListMyEvents(ctx context.Context, creatorID string) ([]*Event, error)
	// UpdateEvent applies upd to the event if it belongs to creatorID.
	UpdateEvent(ctx context.Context, eventID, creatorID string, upd *EventUpdate) (*Event, error)
	// GetHomeData returns the event together with its roles, invitations, and
	// the manager candidate directory for the organizer staffing page.
	GetHomeData(ctx context.Context, eventID string) (*EventHomeData, error)
	CreateRole(ctx context.Context, role *EventRole) ([]*EventRole, error)
}
