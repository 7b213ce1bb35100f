package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventstaffing/internal/delivery/http/middleware"
	"eventstaffing/internal/domain"
)

type mockRegistrationService struct {
	reg     *domain.Registration
	created bool
	state   *domain.ApplicationState
	regs    *domain.EventRegistrations
	stats   []*domain.EventStaffingStats
	err     error
}

func (m *mockRegistrationService) Register(ctx context.Context, reg *domain.Registration) (*domain.Registration, bool, error) {
	if m.err != nil {
		return nil, false, m.err
	}
	return m.reg, m.created, nil
}

func (m *mockRegistrationService) CheckApplicationState(ctx context.Context, userID, eventID string) (*domain.ApplicationState, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.state, nil
}

func (m *mockRegistrationService) BatchUpdateStatus(ctx context.Context, eventID string, updates []*domain.RegistrationStatusUpdate) error {
	return m.err
}

func (m *mockRegistrationService) ListForEvent(ctx context.Context, eventID string) (*domain.EventRegistrations, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.regs, nil
}

func (m *mockRegistrationService) ListStaffingStats(ctx context.Context, managerID string) ([]*domain.EventStaffingStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

const (
	testEventID        = "55555555-5555-5555-5555-555555555555"
	testRegistrationID = "66666666-6666-6666-6666-666666666666"
	testStudentID      = "77777777-7777-7777-7777-777777777777"
)

func TestRegistrationController_Register(t *testing.T) {
	t.Run("first application returns 201", func(t *testing.T) {
		svc := &mockRegistrationService{
			reg:     &domain.Registration{ID: testRegistrationID, Status: domain.RegistrationStatusPending},
			created: true,
		}
		ctrl := NewRegistrationController(svc, discardLogger())

		req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations",
			strings.NewReader(`{"reason":"I want to help"}`))
		req.SetPathValue("eventID", testEventID)
		req = req.WithContext(middleware.SetUserID(req.Context(), testStudentID))
		w := httptest.NewRecorder()
		ctrl.Register(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
		}
	})

	t.Run("re-application returns 200", func(t *testing.T) {
		svc := &mockRegistrationService{
			reg: &domain.Registration{ID: testRegistrationID, Status: domain.RegistrationStatusPending},
		}
		ctrl := NewRegistrationController(svc, discardLogger())

		req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations",
			strings.NewReader(`{"reason":"updated"}`))
		req.SetPathValue("eventID", testEventID)
		req = req.WithContext(middleware.SetUserID(req.Context(), testStudentID))
		w := httptest.NewRecorder()
		ctrl.Register(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("invalid status returns 400 before the service runs", func(t *testing.T) {
		ctrl := NewRegistrationController(&mockRegistrationService{}, discardLogger())

		req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations",
			strings.NewReader(`{"status":"WAITLISTED"}`))
		req.SetPathValue("eventID", testEventID)
		req = req.WithContext(middleware.SetUserID(req.Context(), testStudentID))
		w := httptest.NewRecorder()
		ctrl.Register(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("unauthorized without user", func(t *testing.T) {
		ctrl := NewRegistrationController(&mockRegistrationService{}, discardLogger())

		req := httptest.NewRequest(http.MethodPost, "/events/"+testEventID+"/registrations",
			strings.NewReader(`{}`))
		req.SetPathValue("eventID", testEventID)
		w := httptest.NewRecorder()
		ctrl.Register(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
		}
	})
}

func TestRegistrationController_BatchUpdateStatus(t *testing.T) {
	t.Run("applies the batch and returns the refreshed list", func(t *testing.T) {
		svc := &mockRegistrationService{
			regs: &domain.EventRegistrations{
				Event:    &domain.Event{ID: testEventID},
				Students: []*domain.RegistrationWithStudent{{ID: testRegistrationID, Status: domain.RegistrationStatusApproved}},
			},
		}
		ctrl := NewRegistrationController(svc, discardLogger())

		body := `{"updates":[{"registration_id":"` + testRegistrationID + `","status":"APPROVED"}]}`
		req := httptest.NewRequest(http.MethodPut, "/events/"+testEventID+"/registrations/status", strings.NewReader(body))
		req.SetPathValue("eventID", testEventID)
		w := httptest.NewRecorder()
		ctrl.BatchUpdateStatus(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
		}
	})

	t.Run("invalid status in batch returns 400", func(t *testing.T) {
		ctrl := NewRegistrationController(&mockRegistrationService{}, discardLogger())

		body := `{"updates":[{"registration_id":"` + testRegistrationID + `","status":"WAITLISTED"}]}`
		req := httptest.NewRequest(http.MethodPut, "/events/"+testEventID+"/registrations/status", strings.NewReader(body))
		req.SetPathValue("eventID", testEventID)
		w := httptest.NewRecorder()
		ctrl.BatchUpdateStatus(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}
	})

	t.Run("unknown registration fails the whole batch with 404", func(t *testing.T) {
		ctrl := NewRegistrationController(&mockRegistrationService{err: domain.ErrNotFound}, discardLogger())

		body := `{"updates":[{"registration_id":"` + testRegistrationID + `","status":"APPROVED"}]}`
		req := httptest.NewRequest(http.MethodPut, "/events/"+testEventID+"/registrations/status", strings.NewReader(body))
		req.SetPathValue("eventID", testEventID)
		w := httptest.NewRecorder()
		ctrl.BatchUpdateStatus(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
		}
	})
}

func TestRegistrationController_ApplicationState(t *testing.T) {
	svc := &mockRegistrationService{state: &domain.ApplicationState{ProfileCompleted: true, AlreadyApplied: false}}
	ctrl := NewRegistrationController(svc, discardLogger())

	req := httptest.NewRequest(http.MethodGet, "/events/"+testEventID+"/application-state", nil)
	req.SetPathValue("eventID", testEventID)
	req = req.WithContext(middleware.SetUserID(req.Context(), testStudentID))
	w := httptest.NewRecorder()
	ctrl.ApplicationState(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}
