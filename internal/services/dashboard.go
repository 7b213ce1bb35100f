package services

import (
	"context"
	"fmt"

	"eventstaffing/internal/domain"
)

type dashboardService struct {
	dashboardRepo    domain.DashboardRepository
	registrationRepo domain.RegistrationRepository
}

// NewDashboardService creates a DashboardService over the aggregate queries.
func NewDashboardService(dashboardRepo domain.DashboardRepository, registrationRepo domain.RegistrationRepository) domain.DashboardService {
	return &dashboardService{
		dashboardRepo:    dashboardRepo,
		registrationRepo: registrationRepo,
	}
}

func (s *dashboardService) StudentSummary(ctx context.Context, userID string) (*domain.StudentSummary, error) {
	counts, err := s.dashboardRepo.GetStudentCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("student counts: %w", err)
	}

	active, err := s.dashboardRepo.ListStudentActiveEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("student active events: %w", err)
	}
	open, err := s.dashboardRepo.ListStudentOpenEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("student open events: %w", err)
	}
	if active == nil {
		active = []*domain.Event{}
	}
	if open == nil {
		open = []*domain.Event{}
	}

	return &domain.StudentSummary{
		PastEventCount:     counts.PastEventCount,
		UpcomingEventCount: counts.UpcomingEventCount,
		TotalHours:         counts.TotalHours,
		ActiveEvents:       active,
		OpenEvents:         open,
	}, nil
}

func (s *dashboardService) ManagerSummary(ctx context.Context, userID string) (*domain.ManagerSummary, error) {
	counts, err := s.dashboardRepo.GetManagerCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("manager counts: %w", err)
	}

	stats, err := s.registrationRepo.ListStaffingStatsByManager(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("staffing stats: %w", err)
	}
	assigned, err := s.dashboardRepo.ListManagerAssignedEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("assigned events: %w", err)
	}
	if stats == nil {
		stats = []*domain.EventStaffingStats{}
	}
	if assigned == nil {
		assigned = []*domain.Event{}
	}

	return &domain.ManagerSummary{
		PastEventCount:        counts.PastEventCount,
		UpcomingEventCount:    counts.UpcomingEventCount,
		ApprovedUpcomingCount: counts.ApprovedUpcomingCount,
		UpcomingEventStats:    stats,
		AssignedEvents:        assigned,
	}, nil
}

func (s *dashboardService) OrganizerSummary(ctx context.Context, userID string) (*domain.OrganizerSummary, error) {
	counts, err := s.dashboardRepo.GetOrganizerCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("organizer counts: %w", err)
	}

	details, err := s.dashboardRepo.ListOrganizerEventDetails(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("organizer event details: %w", err)
	}
	if details == nil {
		details = []*domain.OrganizerEventDetail{}
	}

	return &domain.OrganizerSummary{
		TotalEventCount:    counts.TotalEventCount,
		UpcomingEventCount: counts.UpcomingEventCount,
		PastEventCount:     counts.PastEventCount,
		TotalPastEventCost: counts.TotalPastEventCost,
		EventDetails:       details,
	}, nil
}
