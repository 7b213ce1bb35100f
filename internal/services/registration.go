package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventstaffing/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	eventRepo        domain.EventRepository
	userRepo         domain.UserRepository
}

// NewRegistrationService creates a RegistrationService with the given repositories.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
	}
}

func (s *registrationService) Register(ctx context.Context, reg *domain.Registration) (*domain.Registration, bool, error) {
	if _, err := s.userRepo.GetByID(ctx, reg.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get user: %w", err)
	}
	if _, err := s.eventRepo.GetByID(ctx, reg.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrNotFound
		}
		return nil, false, fmt.Errorf("get event: %w", err)
	}

	if reg.Status == "" {
		reg.Status = domain.RegistrationStatusPending
	}
	if !domain.ValidRegistrationStatus(reg.Status) {
		return nil, false, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, reg.Status)
	}

	existing, err := s.registrationRepo.GetByEventAndUser(ctx, reg.EventID, reg.UserID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get registration: %w", err)
	}
	if existing != nil {
		return s.overwrite(ctx, existing, reg)
	}

	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		// A concurrent identical application won the insert; overwrite it instead.
		if errors.Is(err, domain.ErrConflict) {
			existing, getErr := s.registrationRepo.GetByEventAndUser(ctx, reg.EventID, reg.UserID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get registration after conflict: %w", getErr)
			}
			return s.overwrite(ctx, existing, reg)
		}
		return nil, false, fmt.Errorf("create registration: %w", err)
	}
	return reg, true, nil
}

// overwrite replaces the existing registration's detail fields and status
// with the new submission. No history is kept.
func (s *registrationService) overwrite(ctx context.Context, existing, reg *domain.Registration) (*domain.Registration, bool, error) {
	existing.PreviousExperience = reg.PreviousExperience
	existing.Reason = reg.Reason
	existing.Skills = reg.Skills
	existing.Notes = reg.Notes
	existing.Availability = reg.Availability
	existing.HasBike = reg.HasBike
	existing.TransportMedium = reg.TransportMedium
	existing.DietaryRestrictions = reg.DietaryRestrictions
	existing.Status = reg.Status
	existing.UpdatedAt = time.Now()
	if err := s.registrationRepo.Update(ctx, existing); err != nil {
		return nil, false, fmt.Errorf("update registration: %w", err)
	}
	return existing, false, nil
}

func (s *registrationService) CheckApplicationState(ctx context.Context, userID, eventID string) (*domain.ApplicationState, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	state := &domain.ApplicationState{ProfileCompleted: user.ProfileCompleted}
	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, userID); err == nil {
		state.AlreadyApplied = true
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return state, nil
}

func (s *registrationService) BatchUpdateStatus(ctx context.Context, eventID string, updates []*domain.RegistrationStatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}

	// Validate every status before touching storage; the batch is all-or-nothing.
	for _, upd := range updates {
		if !domain.ValidRegistrationStatus(upd.Status) {
			return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, upd.Status)
		}
	}

	if err := s.registrationRepo.BatchUpdateStatus(ctx, eventID, updates); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("batch update status: %w", err)
	}
	return nil
}

func (s *registrationService) ListForEvent(ctx context.Context, eventID string) (*domain.EventRegistrations, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	students, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if students == nil {
		students = []*domain.RegistrationWithStudent{}
	}
	return &domain.EventRegistrations{Event: event, Students: students}, nil
}

func (s *registrationService) ListStaffingStats(ctx context.Context, managerID string) ([]*domain.EventStaffingStats, error) {
	stats, err := s.registrationRepo.ListStaffingStatsByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list staffing stats: %w", err)
	}
	if stats == nil {
		stats = []*domain.EventStaffingStats{}
	}
	return stats, nil
}
