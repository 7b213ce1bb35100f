package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventstaffing/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	roleRepo       domain.EventRoleRepository
	invitationRepo domain.InvitationRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(
	eventRepo domain.EventRepository,
	roleRepo domain.EventRoleRepository,
	invitationRepo domain.InvitationRepository,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		roleRepo:       roleRepo,
		invitationRepo: invitationRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if !event.EndAt.After(event.StartAt) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}
	if event.RequiredVolunteers < 0 || event.Cost < 0 {
		return nil, fmt.Errorf("%w: cost and required volunteers must not be negative", domain.ErrInvalidInput)
	}

	now := time.Now()
	event.Status = domain.EventStatusCreated
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, creatorID string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID, creatorID string, upd *domain.EventUpdate) (*domain.Event, error) {
	event, err := s.eventRepo.GetByIDAndCreator(ctx, eventID, creatorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !upd.EndAt.After(upd.StartAt) {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrInvalidInput)
	}

	event.Title = upd.Title
	event.Description = upd.Description
	event.StartAt = upd.StartAt
	event.EndAt = upd.EndAt
	event.Location = upd.Location
	event.Cost = upd.Cost
	event.RequiredVolunteers = upd.RequiredVolunteers
	event.ManagedByManager = upd.ManagedByManager
	event.Category = upd.Category
	event.Tags = upd.Tags
	event.Status = domain.EventStatusUpdated
	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetHomeData(ctx context.Context, eventID string) (*domain.EventHomeData, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	roles, err := s.roleRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	invitations, err := s.invitationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	managers, err := s.invitationRepo.ListManagerCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list manager candidates: %w", err)
	}

	return &domain.EventHomeData{
		Event:       event,
		Roles:       roles,
		Invitations: invitations,
		Managers:    managers,
	}, nil
}

func (s *eventService) CreateRole(ctx context.Context, role *domain.EventRole) ([]*domain.EventRole, error) {
	role.Title = strings.TrimSpace(role.Title)
	if role.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if _, err := s.eventRepo.GetByID(ctx, role.EventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	roles, err := s.roleRepo.ListByEventID(ctx, role.EventID)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}
