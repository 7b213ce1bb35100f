package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// InvitationEmailData holds data for the invitation-notice email sent to a
// manager when an organizer first invites them to a role.
type InvitationEmailData struct {
	ManagerEmail   string
	ManagerName    string
	EventTitle     string
	RoleTitle      string
	ProposedBudget float64
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendInvitationNotice(ctx context.Context, data *InvitationEmailData) error
}
