package controllers

import (
	"log/slog"
	"net/http"

	"eventstaffing/internal/delivery/http/helpers"
	"eventstaffing/internal/domain"
)

// RegistrationController handles student applications and manager review endpoints.
type RegistrationController struct {
	Service domain.RegistrationService
	Logger  *slog.Logger
}

// NewRegistrationController creates a new RegistrationController.
func NewRegistrationController(service domain.RegistrationService, logger *slog.Logger) *RegistrationController {
	return &RegistrationController{Service: service, Logger: logger}
}

type registerRequest struct {
	PreviousExperience  string `json:"previous_experience"`
	Reason              string `json:"reason"`
	Skills              string `json:"skills"`
	Notes               string `json:"notes"`
	Availability        string `json:"availability"`
	HasBike             bool   `json:"has_bike"`
	TransportMedium     string `json:"transport_medium"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Status              string `json:"status"`
}

func (req *registerRequest) Validate() []string {
	if req.Status != "" && !domain.ValidRegistrationStatus(req.Status) {
		return []string{"status must be PENDING, APPROVED, or REJECTED"}
	}
	return nil
}

type batchStatusRequest struct {
	Updates []*domain.RegistrationStatusUpdate `json:"updates"`
}

func (req *batchStatusRequest) Validate() []string {
	var errs []string
	for _, upd := range req.Updates {
		if upd == nil || !uuidRegex.MatchString(upd.RegistrationID) {
			errs = append(errs, "registration_id must be a valid UUID")
			continue
		}
		if !domain.ValidRegistrationStatus(upd.Status) {
			errs = append(errs, "status must be PENDING, APPROVED, or REJECTED")
		}
	}
	return errs
}

type registerResponse struct {
	Registration *domain.Registration `json:"registration"`
	Created      bool                 `json:"created"`
}

// Register godoc
// @Summary      Apply to an event
// @Description  Creates the authenticated student's registration for the event, or overwrites the previous application's answers.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Param        request body registerRequest true "Application payload"
// @Success      200 {object} helpers.APIResponse{data=registerResponse} "Application updated"
// @Success      201 {object} helpers.APIResponse{data=registerResponse} "Application created"
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	var req registerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	reg := &domain.Registration{
		EventID:             eventID,
		UserID:              userID,
		PreviousExperience:  req.PreviousExperience,
		Reason:              req.Reason,
		Skills:              req.Skills,
		Notes:               req.Notes,
		Availability:        req.Availability,
		HasBike:             req.HasBike,
		TransportMedium:     req.TransportMedium,
		DietaryRestrictions: req.DietaryRestrictions,
		Status:              req.Status,
	}
	saved, created, err := c.Service.Register(r.Context(), reg)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, registerResponse{Registration: saved, Created: created})
}

// ApplicationState godoc
// @Summary      Application form state
// @Description  Reports whether the authenticated student's profile is complete and whether they already applied to the event.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Success      200 {object} helpers.APIResponse{data=domain.ApplicationState}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID}/application-state [get]
func (c *RegistrationController) ApplicationState(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	state, err := c.Service.CheckApplicationState(r.Context(), userID, eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, state)
}

// ListForEvent godoc
// @Summary      Event applicants
// @Description  Returns the event header with each applicant's registration joined to their student profile.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Success      200 {object} helpers.APIResponse{data=domain.EventRegistrations}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID}/registrations [get]
func (c *RegistrationController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	regs, err := c.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// BatchUpdateStatus godoc
// @Summary      Review applications
// @Description  Applies a batch of registration status changes atomically. One unknown registration ID fails the whole batch.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Param        request body batchStatusRequest true "Status updates"
// @Success      200 {object} helpers.APIResponse{data=domain.EventRegistrations}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID}/registrations/status [put]
func (c *RegistrationController) BatchUpdateStatus(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	var req batchStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	if err := c.Service.BatchUpdateStatus(r.Context(), eventID, req.Updates); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	regs, err := c.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// StaffingStats godoc
// @Summary      Staffing stats for my events
// @Description  Returns the per-event registration breakdown for each upcoming event assigned to the authenticated manager.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=[]domain.EventStaffingStats}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /registrations/staffing-stats [get]
func (c *RegistrationController) StaffingStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	stats, err := c.Service.ListStaffingStats(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stats)
}
