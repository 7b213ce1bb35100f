package domain

import (
	"context"
	"time"
)

// Invitation statuses. An invitation starts PENDING, moves to COUNTER_OFFER,
// DECLINED, or ACCEPTED on the manager's response, and to SELECTED when the
// organizer picks that manager for the event.
const (
	InvitationStatusPending      = "PENDING"
	InvitationStatusCounterOffer = "COUNTER_OFFER"
	InvitationStatusDeclined     = "DECLINED"
	InvitationStatusAccepted     = "ACCEPTED"
	InvitationStatusSelected     = "SELECTED"
)

// Manager response actions accepted by Respond.
const (
	InvitationActionCounterOffer = "COUNTER_OFFER"
	InvitationActionDecline      = "DECLINE"
	InvitationActionAccept       = "ACCEPT"
)

// Invitation is a negotiation record between an organizer's staffing role and
// a candidate manager. At most one invitation exists per (role, manager) pair.
// swagger:model Invitation
type Invitation struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	RoleID         string     `json:"role_id"`
	ManagerID      string     `json:"manager_id"`
	ProposedBudget float64    `json:"proposed_budget"`
	ManagerMessage string     `json:"manager_message"`
	SentAt         time.Time  `json:"sent_at"`
	RespondedAt    *time.Time `json:"responded_at"`
	Status         string     `json:"status"`
	Selected       bool       `json:"selected"`
}

// NewInvitation returns a PENDING Invitation. ID is typically set by the repository on create.
func NewInvitation(eventID, roleID, managerID string, proposedBudget float64, message string, sentAt time.Time) *Invitation {
	return &Invitation{
		EventID:        eventID,
		RoleID:         roleID,
		ManagerID:      managerID,
		ProposedBudget: proposedBudget,
		ManagerMessage: message,
		SentAt:         sentAt,
		Status:         InvitationStatusPending,
	}
}

// InvitationResponse carries a manager's reply to an invitation.
type InvitationResponse struct {
	Action        string  `json:"action"`
	CounterBudget float64 `json:"counter_budget"`
	Message       string  `json:"message"`
}

// ManagerInvitationView is an invitation enriched with event, organizer, and
// role details for the manager's inbox.
// swagger:model ManagerInvitationView
type ManagerInvitationView struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	EventTitle       string     `json:"event_title"`
	OrganizerName    string     `json:"organizer_name"`
	RoleTitle        string     `json:"role_title"`
	RoleDescription  string     `json:"role_description"`
	RoleDeadline     *time.Time `json:"role_deadline"`
	Responsibilities string     `json:"responsibilities"`
	Requirements     string     `json:"requirements"`
	ProposedBudget   float64    `json:"proposed_budget"`
	ManagerMessage   string     `json:"manager_message"`
	SentAt           time.Time  `json:"sent_at"`
	Status           string     `json:"status"`
}

// ManagerCandidate is an entry in the manager directory shown to organizers
// when staffing an event.
// swagger:model ManagerCandidate
type ManagerCandidate struct {
	UserID          string `json:"user_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	YearsExperience int    `json:"years_experience"`
	Specializations string `json:"specializations"`
	Availability    string `json:"availability"`
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	GetByID(ctx context.Context, id string) (*Invitation, error)
	GetByRoleAndManager(ctx context.Context, roleID, managerID string) (*Invitation, error)
	GetByIDAndManager(ctx context.Context, id, managerID string) (*Invitation, error)
	// GetSelectedByEvent returns the selected invitation for the event, or ErrNotFound.
	GetSelectedByEvent(ctx context.Context, eventID string) (*Invitation, error)
	Update(ctx context.Context, inv *Invitation) error
	ListByEventID(ctx context.Context, eventID string) ([]*Invitation, error)
	ListByManagerID(ctx context.Context, managerID string) ([]*ManagerInvitationView, error)
	ListManagerCandidates(ctx context.Context) ([]*ManagerCandidate, error)
}

// InvitationService drives the organizer/manager staffing negotiation.
type InvitationService interface {
	// Invite creates a PENDING invitation for (roleID, managerID), or returns
	// the existing one unchanged. The bool result is true when a new
	// invitation was created.
	Invite(ctx context.Context, roleID, managerID string, proposedBudget float64, message string) (*Invitation, bool, error)
	// Respond applies the manager's reply. Action must be one of
	// InvitationActionCounterOffer, InvitationActionDecline,
	// InvitationActionAccept; anything else fails with ErrInvalidInput.
	Respond(ctx context.Context, invitationID string, resp *InvitationResponse) (*Invitation, error)
	// SelectManager marks the invitation as SELECTED if it belongs to
	// managerID and no other invitation for the same event is selected yet.
	// Returns all invitations for the event so the caller can refresh every
	// candidate's state.
	SelectManager(ctx context.Context, invitationID, managerID string) ([]*Invitation, error)
	ListForEvent(ctx context.Context, eventID string) ([]*Invitation, error)
	ListForManager(ctx context.Context, managerID string) ([]*ManagerInvitationView, error)
}
