package services

import (
	"context"
	"fmt"

	"eventstaffing/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService creates an EmailService backed by the given mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

func (s *emailService) SendInvitationNotice(ctx context.Context, data *domain.InvitationEmailData) error {
	subject := fmt.Sprintf("You have been invited to manage %q", data.EventTitle)
	text := fmt.Sprintf(
		"Hi %s,\n\nAn organizer invited you to take the %q role for %q with a proposed budget of %.2f.\nLog in to respond to the invitation.\n",
		data.ManagerName, data.RoleTitle, data.EventTitle, data.ProposedBudget,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>An organizer invited you to take the <b>%s</b> role for <b>%s</b> with a proposed budget of %.2f.</p><p>Log in to respond to the invitation.</p>",
		data.ManagerName, data.RoleTitle, data.EventTitle, data.ProposedBudget,
	)
	if err := s.mailer.Send(data.ManagerEmail, subject, html, text); err != nil {
		return fmt.Errorf("send invitation notice: %w", err)
	}
	return nil
}
