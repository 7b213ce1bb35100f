package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventstaffing/internal/delivery/http/helpers"
	"eventstaffing/internal/domain"
)

// EventController handles organizer-facing event endpoints.
type EventController struct {
	Service domain.EventService
	Logger  *slog.Logger
}

// NewEventController creates a new EventController.
func NewEventController(service domain.EventService, logger *slog.Logger) *EventController {
	return &EventController{Service: service, Logger: logger}
}

type eventRequest struct {
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	StartAt            time.Time `json:"start_at"`
	EndAt              time.Time `json:"end_at"`
	Location           string    `json:"location"`
	Cost               float64   `json:"cost"`
	RequiredVolunteers int       `json:"required_volunteers"`
	ManagedByManager   bool      `json:"managed_by_manager"`
	Category           string    `json:"category"`
	Tags               string    `json:"tags"`
}

func (req *eventRequest) Validate() []string {
	var errs []string
	if req.Title == "" {
		errs = append(errs, "title is required")
	}
	if req.StartAt.IsZero() {
		errs = append(errs, "start_at is required")
	}
	if req.EndAt.IsZero() {
		errs = append(errs, "end_at is required")
	}
	if req.Cost < 0 {
		errs = append(errs, "cost must not be negative")
	}
	if req.RequiredVolunteers < 0 {
		errs = append(errs, "required_volunteers must not be negative")
	}
	return errs
}

type createRoleRequest struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Budget           float64    `json:"budget"`
	Currency         string     `json:"currency"`
	Responsibilities string     `json:"responsibilities"`
	Requirements     string     `json:"requirements"`
	Deadline         *time.Time `json:"deadline"`
}

func (req *createRoleRequest) Validate() []string {
	var errs []string
	if req.Title == "" {
		errs = append(errs, "title is required")
	}
	if req.Budget < 0 {
		errs = append(errs, "budget must not be negative")
	}
	return errs
}

// Create godoc
// @Summary      Create event
// @Description  Creates a new event owned by the authenticated organizer.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body eventRequest true "Event payload"
// @Success      201 {object} helpers.APIResponse{data=domain.Event}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	var req eventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	event := domain.NewEvent(req.Title, req.Description, req.Location, req.Category, req.Tags,
		userID, req.StartAt, req.EndAt, req.Cost, req.RequiredVolunteers, req.ManagedByManager)
	created, err := c.Service.CreateEvent(r.Context(), event)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// ListMine godoc
// @Summary      List my events
// @Description  Lists all events created by the authenticated organizer, newest first.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=[]domain.Event}
// @Failure      401 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events [get]
func (c *EventController) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	events, err := c.Service.ListMyEvents(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary      Get event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Success      200 {object} helpers.APIResponse{data=domain.Event}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	event, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary      Update event
// @Description  Updates an event. Only the creator may update; others get 404.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Param        request body eventRequest true "Event payload"
// @Success      200 {object} helpers.APIResponse{data=domain.Event}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	var req eventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	upd := &domain.EventUpdate{
		Title:              req.Title,
		Description:        req.Description,
		StartAt:            req.StartAt,
		EndAt:              req.EndAt,
		Location:           req.Location,
		Cost:               req.Cost,
		RequiredVolunteers: req.RequiredVolunteers,
		ManagedByManager:   req.ManagedByManager,
		Category:           req.Category,
		Tags:               req.Tags,
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, userID, upd)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// HomeData godoc
// @Summary      Event staffing page data
// @Description  Returns the event with its roles, invitations, and the manager candidate directory.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Success      200 {object} helpers.APIResponse{data=domain.EventHomeData}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID}/home [get]
func (c *EventController) HomeData(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	data, err := c.Service.GetHomeData(r.Context(), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, data)
}

// CreateRole godoc
// @Summary      Add staffing role
// @Description  Adds a staffing role to the event and returns the full role list.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path string true "Event ID"
// @Param        request body createRoleRequest true "Role payload"
// @Success      201 {object} helpers.APIResponse{data=[]domain.EventRole}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      404 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /events/{eventID}/roles [post]
func (c *EventController) CreateRole(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}

	var req createRoleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	role := &domain.EventRole{
		EventID:          eventID,
		Title:            req.Title,
		Description:      req.Description,
		Budget:           req.Budget,
		Currency:         req.Currency,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Deadline:         req.Deadline,
	}
	roles, err := c.Service.CreateRole(r.Context(), role)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, roles)
}
