package controllers

import (
	"log/slog"
	"net/http"

	"eventstaffing/internal/delivery/http/helpers"
	"eventstaffing/internal/domain"
)

// DashboardController serves the three role dashboards.
type DashboardController struct {
	Service domain.DashboardService
	Logger  *slog.Logger
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(service domain.DashboardService, logger *slog.Logger) *DashboardController {
	return &DashboardController{Service: service, Logger: logger}
}

// Student godoc
// @Summary      Student dashboard
// @Description  Counts plus approved upcoming events and open events not yet applied to. Recomputed on every call.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=domain.StudentSummary}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /dashboard/student [get]
func (c *DashboardController) Student(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	summary, err := c.Service.StudentSummary(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// Manager godoc
// @Summary      Manager dashboard
// @Description  Counts over selected invitations plus the staffing breakdown and assigned upcoming events.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=domain.ManagerSummary}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /dashboard/manager [get]
func (c *DashboardController) Manager(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	summary, err := c.Service.ManagerSummary(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// Organizer godoc
// @Summary      Organizer dashboard
// @Description  Event counts, past-event spend, and the per-event registration and budget table.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=domain.OrganizerSummary}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /dashboard/organizer [get]
func (c *DashboardController) Organizer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	summary, err := c.Service.OrganizerSummary(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}
