package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventstaffing/internal/domain"
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	roleRepo       domain.EventRoleRepository
	userRepo       domain.UserRepository
	eventRepo      domain.EventRepository
	emailService   domain.EmailService
	logger         *slog.Logger
}

// NewInvitationService creates an InvitationService with the given repositories.
// emailService may be nil; invitation notices are then skipped.
func NewInvitationService(
	invitationRepo domain.InvitationRepository,
	roleRepo domain.EventRoleRepository,
	userRepo domain.UserRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		emailService:   emailService,
		logger:         logger,
	}
}

func (s *invitationService) Invite(ctx context.Context, roleID, managerID string, proposedBudget float64, message string) (*domain.Invitation, bool, error) {
	role, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get role: %w", err)
	}

	manager, err := s.userRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get manager: %w", err)
	}

	// Re-inviting the same (role, manager) pair returns the existing record unchanged.
	if existing, err := s.invitationRepo.GetByRoleAndManager(ctx, roleID, managerID); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get invitation: %w", err)
	}

	inv := domain.NewInvitation(role.EventID, roleID, managerID, proposedBudget, message, time.Now())
	if err := s.invitationRepo.Create(ctx, inv); err != nil {
		// A concurrent identical invite won the insert; fetch and return its record.
		if errors.Is(err, domain.ErrConflict) {
			existing, getErr := s.invitationRepo.GetByRoleAndManager(ctx, roleID, managerID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get invitation after conflict: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create invitation: %w", err)
	}

	s.sendInvitationNotice(ctx, inv, role, manager)
	return inv, true, nil
}

// sendInvitationNotice emails the invited manager. Failures are logged, not surfaced.
func (s *invitationService) sendInvitationNotice(ctx context.Context, inv *domain.Invitation, role *domain.EventRole, manager *domain.User) {
	if s.emailService == nil {
		return
	}
	eventTitle := ""
	if event, err := s.eventRepo.GetByID(ctx, inv.EventID); err == nil {
		eventTitle = event.Title
	}
	data := &domain.InvitationEmailData{
		ManagerEmail:   manager.Email,
		ManagerName:    manager.Name,
		EventTitle:     eventTitle,
		RoleTitle:      role.Title,
		ProposedBudget: inv.ProposedBudget,
	}
	if err := s.emailService.SendInvitationNotice(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "invitation notice not sent", "invitation_id", inv.ID, "err", err)
	}
}

func (s *invitationService) Respond(ctx context.Context, invitationID string, resp *domain.InvitationResponse) (*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	switch resp.Action {
	case domain.InvitationActionCounterOffer:
		if resp.Message == "" {
			return nil, fmt.Errorf("%w: counter offer requires a message", domain.ErrInvalidInput)
		}
		if resp.CounterBudget <= 0 {
			return nil, fmt.Errorf("%w: counter offer requires a budget", domain.ErrInvalidInput)
		}
		inv.Status = domain.InvitationStatusCounterOffer
		inv.ProposedBudget = resp.CounterBudget
		inv.ManagerMessage = resp.Message
	case domain.InvitationActionDecline:
		inv.Status = domain.InvitationStatusDeclined
	case domain.InvitationActionAccept:
		inv.Status = domain.InvitationStatusAccepted
	default:
		return nil, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, resp.Action)
	}

	now := time.Now()
	inv.RespondedAt = &now
	if err := s.invitationRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) SelectManager(ctx context.Context, invitationID, managerID string) ([]*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByIDAndManager(ctx, invitationID, managerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}

	// At most one selected manager per event. Re-selecting the same
	// invitation is a no-op; selecting a second one is a conflict.
	if selected, err := s.invitationRepo.GetSelectedByEvent(ctx, inv.EventID); err == nil {
		if selected.ID != inv.ID {
			return nil, fmt.Errorf("%w: event %s already has a selected manager", domain.ErrConflict, inv.EventID)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get selected invitation: %w", err)
	}

	inv.Selected = true
	inv.Status = domain.InvitationStatusSelected
	if err := s.invitationRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update invitation: %w", err)
	}

	// Sibling invitations are left as-is; the caller refreshes all candidates
	// from this listing.
	invs, err := s.invitationRepo.ListByEventID(ctx, inv.EventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invs, nil
}

func (s *invitationService) ListForEvent(ctx context.Context, eventID string) ([]*domain.Invitation, error) {
	invs, err := s.invitationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invs, nil
}

func (s *invitationService) ListForManager(ctx context.Context, managerID string) ([]*domain.ManagerInvitationView, error) {
	views, err := s.invitationRepo.ListByManagerID(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list manager invitations: %w", err)
	}
	if views == nil {
		views = []*domain.ManagerInvitationView{}
	}
	return views, nil
}
