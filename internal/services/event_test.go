package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventstaffing/internal/domain"
)

func TestEventService_CreateEvent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		event   *domain.Event
		wantErr error
	}{
		{
			name: "valid event",
			event: &domain.Event{
				Title: "City Marathon", StartAt: now, EndAt: now.Add(5 * time.Hour),
				Cost: 1000, RequiredVolunteers: 20, CreatedByID: "org-1",
			},
		},
		{
			name:    "empty title",
			event:   &domain.Event{Title: "  ", StartAt: now, EndAt: now.Add(time.Hour)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "end before start",
			event:   &domain.Event{Title: "City Marathon", StartAt: now, EndAt: now.Add(-time.Hour)},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "end equals start",
			event:   &domain.Event{Title: "City Marathon", StartAt: now, EndAt: now},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "negative cost",
			event:   &domain.Event{Title: "City Marathon", StartAt: now, EndAt: now.Add(time.Hour), Cost: -1},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &eventService{
				eventRepo:      &mockEventRepository{events: map[string]*domain.Event{}},
				roleRepo:       &mockEventRoleRepository{},
				invitationRepo: &mockInvitationRepository{},
			}

			created, err := svc.CreateEvent(context.Background(), tt.event)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.Status != domain.EventStatusCreated {
				t.Fatalf("expected status CREATED, got %s", created.Status)
			}
			if created.ID == "" {
				t.Fatal("expected ID to be set")
			}
		})
	}
}

func TestEventService_UpdateEvent(t *testing.T) {
	now := time.Now()
	upd := &domain.EventUpdate{
		Title: "New Title", StartAt: now, EndAt: now.Add(2 * time.Hour), Cost: 500,
	}

	t.Run("creator updates the event", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{
			"event-1": {ID: "event-1", Title: "Old Title", CreatedByID: "org-1", Status: domain.EventStatusCreated},
		}}
		svc := &eventService{eventRepo: eventRepo, roleRepo: &mockEventRoleRepository{}, invitationRepo: &mockInvitationRepository{}}

		event, err := svc.UpdateEvent(context.Background(), "event-1", "org-1", upd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Title != "New Title" || event.Status != domain.EventStatusUpdated {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("non-creator gets not found", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{
			"event-1": {ID: "event-1", CreatedByID: "org-1"},
		}}
		svc := &eventService{eventRepo: eventRepo, roleRepo: &mockEventRoleRepository{}, invitationRepo: &mockInvitationRepository{}}

		_, err := svc.UpdateEvent(context.Background(), "event-1", "org-2", upd)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("invalid time range", func(t *testing.T) {
		eventRepo := &mockEventRepository{events: map[string]*domain.Event{
			"event-1": {ID: "event-1", CreatedByID: "org-1"},
		}}
		svc := &eventService{eventRepo: eventRepo, roleRepo: &mockEventRoleRepository{}, invitationRepo: &mockInvitationRepository{}}

		bad := &domain.EventUpdate{Title: "x", StartAt: now, EndAt: now}
		_, err := svc.UpdateEvent(context.Background(), "event-1", "org-1", bad)
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestEventService_GetHomeData(t *testing.T) {
	svc := &eventService{
		eventRepo: &mockEventRepository{events: map[string]*domain.Event{
			"event-1": {ID: "event-1", Title: "City Marathon"},
		}},
		roleRepo: &mockEventRoleRepository{roles: map[string]*domain.EventRole{
			"role-1": {ID: "role-1", EventID: "event-1", Title: "Logistics Lead"},
		}},
		invitationRepo: &mockInvitationRepository{
			invs: map[string]*domain.Invitation{
				"inv-1": {ID: "inv-1", EventID: "event-1", RoleID: "role-1", ManagerID: "mgr-1"},
			},
			candidates: []*domain.ManagerCandidate{{UserID: "mgr-1", Name: "Mana Ger"}},
		},
	}

	data, err := svc.GetHomeData(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Event.Title != "City Marathon" {
		t.Fatalf("unexpected event: %+v", data.Event)
	}
	if len(data.Roles) != 1 || len(data.Invitations) != 1 || len(data.Managers) != 1 {
		t.Fatalf("unexpected home data: roles=%d invitations=%d managers=%d",
			len(data.Roles), len(data.Invitations), len(data.Managers))
	}
}

func TestEventService_CreateRole(t *testing.T) {
	t.Run("returns the full role list", func(t *testing.T) {
		roleRepo := &mockEventRoleRepository{roles: map[string]*domain.EventRole{
			"role-1": {ID: "role-1", EventID: "event-1", Title: "Existing"},
		}}
		svc := &eventService{
			eventRepo: &mockEventRepository{events: map[string]*domain.Event{
				"event-1": {ID: "event-1"},
			}},
			roleRepo:       roleRepo,
			invitationRepo: &mockInvitationRepository{},
		}

		roles, err := svc.CreateRole(context.Background(), &domain.EventRole{EventID: "event-1", Title: "Logistics Lead", Budget: 500})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(roles) != 2 {
			t.Fatalf("expected 2 roles, got %d", len(roles))
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := &eventService{
			eventRepo:      &mockEventRepository{events: map[string]*domain.Event{}},
			roleRepo:       &mockEventRoleRepository{},
			invitationRepo: &mockInvitationRepository{},
		}
		_, err := svc.CreateRole(context.Background(), &domain.EventRole{EventID: "event-missing", Title: "Logistics Lead"})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty title", func(t *testing.T) {
		svc := &eventService{
			eventRepo:      &mockEventRepository{events: map[string]*domain.Event{"event-1": {ID: "event-1"}}},
			roleRepo:       &mockEventRoleRepository{},
			invitationRepo: &mockInvitationRepository{},
		}
		_, err := svc.CreateRole(context.Background(), &domain.EventRole{EventID: "event-1", Title: " "})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
