package domain

import (
	"context"
	"time"
)

// Registration statuses. PENDING on creation; the responsible manager moves
// registrations between APPROVED, REJECTED, and back to PENDING freely.
const (
	RegistrationStatusPending  = "PENDING"
	RegistrationStatusApproved = "APPROVED"
	RegistrationStatusRejected = "REJECTED"
)

// ValidRegistrationStatus reports whether s is one of the closed status set.
func ValidRegistrationStatus(s string) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

// Registration is a student's application to volunteer at an event.
// At most one registration exists per (event, student) pair; re-applying
// overwrites the previous answers in place.
// swagger:model Registration
type Registration struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	UserID              string    `json:"user_id"`
	PreviousExperience  string    `json:"previous_experience"`
	Reason              string    `json:"reason"`
	Skills              string    `json:"skills"`
	Notes               string    `json:"notes"`
	Availability        string    `json:"availability"`
	HasBike             bool      `json:"has_bike"`
	TransportMedium     string    `json:"transport_medium"`
	DietaryRestrictions string    `json:"dietary_restrictions"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// RegistrationStatusUpdate targets one registration in a batch review.
type RegistrationStatusUpdate struct {
	RegistrationID string `json:"registration_id"`
	Status         string `json:"status"`
}

// ApplicationState gates the registration form for a (student, event) pair.
type ApplicationState struct {
	ProfileCompleted bool `json:"profile_completed"`
	AlreadyApplied   bool `json:"already_applied"`
}

// RegistrationWithStudent is a registration joined with the applicant's user
// and student-profile records for the manager's review table.
// swagger:model RegistrationWithStudent
type RegistrationWithStudent struct {
	ID           string `json:"id"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	University   string `json:"university"`
	Degree       string `json:"degree"`
	CurrentYear  string `json:"current_year"`
	Marks        string `json:"marks"`
	Bio          string `json:"bio"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
	Status       string `json:"status"`
}

// EventRegistrations bundles the event header with its applicant rows.
type EventRegistrations struct {
	Event    *Event                     `json:"event"`
	Students []*RegistrationWithStudent `json:"students"`
}

// EventStaffingStats is the per-event registration breakdown shown to the
// selected manager for each upcoming event.
// swagger:model EventStaffingStats
type EventStaffingStats struct {
	EventID            string    `json:"event_id"`
	Title              string    `json:"title"`
	Location           string    `json:"location"`
	StartAt            time.Time `json:"start_at"`
	RequiredVolunteers int       `json:"required_volunteers"`
	TotalCount         int64     `json:"total_count"`
	PendingCount       int64     `json:"pending_count"`
	ApprovedCount      int64     `json:"approved_count"`
	RejectedCount      int64     `json:"rejected_count"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	Update(ctx context.Context, reg *Registration) error
	ListByEventID(ctx context.Context, eventID string) ([]*RegistrationWithStudent, error)
	// BatchUpdateStatus applies every update in one transaction. An update
	// whose registration id does not belong to eventID fails the whole batch
	// with ErrNotFound; no partial state is visible afterwards.
	BatchUpdateStatus(ctx context.Context, eventID string, updates []*RegistrationStatusUpdate) error
	// ListStaffingStatsByManager returns the registration breakdown for each
	// upcoming event where the manager's invitation is selected.
	ListStaffingStatsByManager(ctx context.Context, managerID string) ([]*EventStaffingStats, error)
}

// RegistrationService drives the student application and manager review flow.
type RegistrationService interface {
	// Register upserts the registration for (reg.EventID, reg.UserID):
	// creates it with status PENDING (or the supplied status) on first
	// application, overwrites all detail fields and status on re-application.
	// The bool result is true when a new registration was created.
	Register(ctx context.Context, reg *Registration) (*Registration, bool, error)
	CheckApplicationState(ctx context.Context, userID, eventID string) (*ApplicationState, error)
	// BatchUpdateStatus validates every status against the closed set before
	// writing, then applies the batch atomically.
	BatchUpdateStatus(ctx context.Context, eventID string, updates []*RegistrationStatusUpdate) error
	ListForEvent(ctx context.Context, eventID string) (*EventRegistrations, error)
	ListStaffingStats(ctx context.Context, managerID string) ([]*EventStaffingStats, error)
}
