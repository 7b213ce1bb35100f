package controllers

import (
	"log/slog"
	"net/http"

	"eventstaffing/internal/delivery/http/helpers"
	"eventstaffing/internal/domain"
)

// InvitationController handles the organizer/manager staffing negotiation endpoints.
type InvitationController struct {
	Service domain.InvitationService
	Logger  *slog.Logger
}

// NewInvitationController creates a new InvitationController.
func NewInvitationController(service domain.InvitationService, logger *slog.Logger) *InvitationController {
	return &InvitationController{Service: service, Logger: logger}
}

type inviteRequest struct {
	RoleID         string  `json:"role_id"`
	ManagerID      string  `json:"manager_id"`
	ProposedBudget float64 `json:"proposed_budget"`
	Message        string  `json:"message"`
}

func (req *inviteRequest) Validate() []string {
	var errs []string
	if !uuidRegex.MatchString(req.RoleID) {
		errs = append(errs, "role_id must be a valid UUID")
	}
	if !uuidRegex.MatchString(req.ManagerID) {
		errs = append(errs, "manager_id must be a valid UUID")
	}
	if req.ProposedBudget < 0 {
		errs = append(errs, "proposed_budget must not be negative")
	}
	return errs
}

type respondRequest struct {
	Action        string  `json:"action"`
	CounterBudget float64 `json:"counter_budget"`
	Message       string  `json:"message"`
}

func (req *respondRequest) Validate() []string {
	if req.Action == "" {
		return []string{"action is required"}
	}
	return nil
}

type selectManagerRequest struct {
	ManagerID string `json:"manager_id"`
}

func (req *selectManagerRequest) Validate() []string {
	if !uuidRegex.MatchString(req.ManagerID) {
		return []string{"manager_id must be a valid UUID"}
	}
	return nil
}

// Invite godoc
// @Summary      Invite a manager
// @Description  Sends a staffing invitation for a role to a manager. Repeating the call for the same role and manager returns the existing invitation unchanged.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body inviteRequest true "Invitation payload"
// @Success      200 {object} helpers.APIResponse{data=domain.Invitation} "Existing invitation"
// @Success      201 {object} helpers.APIResponse{data=domain.Invitation} "New invitation"
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /invitations [post]
func (c *InvitationController) Invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	inv, created, err := c.Service.Invite(r.Context(), req.RoleID, req.ManagerID, req.ProposedBudget, req.Message)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.WriteJSONSuccess(w, status, inv)
}

// Respond godoc
// @Summary      Respond to an invitation
// @Description  Applies the manager's reply: ACCEPT, DECLINE, or COUNTER_OFFER with a revised budget and message.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        invitationID path string true "Invitation ID"
// @Param        request body respondRequest true "Response payload"
// @Success      200 {object} helpers.APIResponse{data=domain.Invitation}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /invitations/{invitationID}/respond [post]
func (c *InvitationController) Respond(w http.ResponseWriter, r *http.Request) {
	invitationID, ok := pathID(w, r, "invitationID")
	if !ok {
		return
	}

	var req respondRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.Service.Respond(r.Context(), invitationID, &domain.InvitationResponse{
		Action:        req.Action,
		CounterBudget: req.CounterBudget,
		Message:       req.Message,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inv)
}

// Select godoc
// @Summary      Select a manager
// @Description  Marks the invitation as SELECTED for its event. Fails with 409 when a different manager is already selected. Returns all invitations for the event.
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        invitationID path string true "Invitation ID"
// @Param        request body selectManagerRequest true "Selection payload"
// @Success      200 {object} helpers.APIResponse{data=[]domain.Invitation}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      409 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /invitations/{invitationID}/select [post]
func (c *InvitationController) Select(w http.ResponseWriter, r *http.Request) {
	invitationID, ok := pathID(w, r, "invitationID")
	if !ok {
		return
	}

	var req selectManagerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	invitations, err := c.Service.SelectManager(r.Context(), invitationID, req.ManagerID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invitations)
}

// ListMine godoc
// @Summary      My invitations
// @Description  Lists the authenticated manager's invitations, newest first, enriched with event and role details.
// @Tags         invitations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=[]domain.ManagerInvitationView}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /invitations/my [get]
func (c *InvitationController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	views, err := c.Service.ListForManager(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, views)
}
