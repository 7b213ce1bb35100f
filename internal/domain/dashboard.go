package domain

import "context"

// StudentCounts are the headline numbers on the student dashboard.
type StudentCounts struct {
	PastEventCount     int64   `json:"past_event_count"`
	UpcomingEventCount int64   `json:"upcoming_event_count"`
	TotalHours         float64 `json:"total_hours"`
}

// StudentSummary is the student dashboard: counts plus the approved upcoming
// events and the open events the student has not applied to yet.
// swagger:model StudentSummary
type StudentSummary struct {
	PastEventCount     int64    `json:"past_event_count"`
	UpcomingEventCount int64    `json:"upcoming_event_count"`
	TotalHours         float64  `json:"total_hours"`
	ActiveEvents       []*Event `json:"active_events"`
	OpenEvents         []*Event `json:"open_events"`
}

// ManagerCounts are the headline numbers on the manager dashboard.
type ManagerCounts struct {
	PastEventCount        int64 `json:"past_event_count"`
	UpcomingEventCount    int64 `json:"upcoming_event_count"`
	ApprovedUpcomingCount int64 `json:"approved_upcoming_event_count"`
}

// ManagerSummary is the manager dashboard: counts over selected invitations,
// the staffing breakdown for each upcoming assigned event, and the assigned
// upcoming events themselves.
// swagger:model ManagerSummary
type ManagerSummary struct {
	PastEventCount        int64                 `json:"past_event_count"`
	UpcomingEventCount    int64                 `json:"upcoming_event_count"`
	ApprovedUpcomingCount int64                 `json:"approved_upcoming_event_count"`
	UpcomingEventStats    []*EventStaffingStats `json:"upcoming_event_stats"`
	AssignedEvents        []*Event              `json:"assigned_events"`
}

// OrganizerCounts are the headline numbers on the organizer dashboard.
type OrganizerCounts struct {
	TotalEventCount    int64   `json:"total_event_count"`
	UpcomingEventCount int64   `json:"upcoming_event_count"`
	PastEventCount     int64   `json:"past_event_count"`
	TotalPastEventCost float64 `json:"total_past_event_cost"`
}

// OrganizerEventDetail is one row of the organizer's per-event table:
// the event plus derived registration and budget figures.
// swagger:model OrganizerEventDetail
type OrganizerEventDetail struct {
	Event              *Event  `json:"event"`
	RegisteredStudents int64   `json:"registered_students"`
	TotalBudget        float64 `json:"total_budget"`
	UsedBudget         float64 `json:"used_budget"`
}

// OrganizerSummary is the organizer dashboard.
// swagger:model OrganizerSummary
type OrganizerSummary struct {
	TotalEventCount    int64                   `json:"total_event_count"`
	UpcomingEventCount int64                   `json:"upcoming_event_count"`
	PastEventCount     int64                   `json:"past_event_count"`
	TotalPastEventCost float64                 `json:"total_past_event_cost"`
	EventDetails       []*OrganizerEventDetail `json:"event_details"`
}

// DashboardRepository defines the read-only aggregate queries behind the
// dashboards. Every call recomputes from current state; there is no caching.
type DashboardRepository interface {
	GetStudentCounts(ctx context.Context, userID string) (*StudentCounts, error)
	ListStudentActiveEvents(ctx context.Context, userID string) ([]*Event, error)
	ListStudentOpenEvents(ctx context.Context, userID string) ([]*Event, error)
	GetManagerCounts(ctx context.Context, userID string) (*ManagerCounts, error)
	ListManagerAssignedEvents(ctx context.Context, userID string) ([]*Event, error)
	GetOrganizerCounts(ctx context.Context, userID string) (*OrganizerCounts, error)
	ListOrganizerEventDetails(ctx context.Context, userID string) ([]*OrganizerEventDetail, error)
}

// DashboardService computes per-actor dashboard summaries. A summary for an
// actor with no activity has every count zero and every list empty, never nil.
type DashboardService interface {
	StudentSummary(ctx context.Context, userID string) (*StudentSummary, error)
	ManagerSummary(ctx context.Context, userID string) (*ManagerSummary, error)
	OrganizerSummary(ctx context.Context, userID string) (*OrganizerSummary, error)
}
