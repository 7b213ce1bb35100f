package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"eventstaffing/internal/delivery/http/helpers"
	"eventstaffing/internal/domain"
)

// ProfileController handles student and manager profile reads and saves.
type ProfileController struct {
	Service domain.ProfileService
	Logger  *slog.Logger
}

// NewProfileController creates a new ProfileController.
func NewProfileController(service domain.ProfileService, logger *slog.Logger) *ProfileController {
	return &ProfileController{Service: service, Logger: logger}
}

type studentProfileRequest struct {
	Phone                    string     `json:"phone"`
	Birthdate                *time.Time `json:"birthdate"`
	Address                  string     `json:"address"`
	City                     string     `json:"city"`
	State                    string     `json:"state"`
	Zipcode                  string     `json:"zipcode"`
	University               string     `json:"university"`
	College                  string     `json:"college"`
	Degree                   string     `json:"degree"`
	Major                    string     `json:"major"`
	GraduationYear           string     `json:"graduation_year"`
	CurrentYear              string     `json:"current_year"`
	Marks                    string     `json:"marks"`
	Bio                      string     `json:"bio"`
	Interests                string     `json:"interests"`
	Skills                   string     `json:"skills"`
	Languages                string     `json:"languages"`
	EventTypes               string     `json:"event_types"`
	Availability             string     `json:"availability"`
	VolunteerExperience      string     `json:"volunteer_experience"`
	EmergencyContactName     string     `json:"emergency_contact_name"`
	EmergencyContactPhone    string     `json:"emergency_contact_phone"`
	EmergencyContactRelation string     `json:"emergency_contact_relation"`
	ProfileCompleted         bool       `json:"profile_completed"`
}

type managerProfileRequest struct {
	Phone            string `json:"phone"`
	YearsExperience  int    `json:"years_experience"`
	Specializations  string `json:"specializations"`
	Availability     string `json:"availability"`
	Bio              string `json:"bio"`
	ProfileCompleted bool   `json:"profile_completed"`
}

func (req *managerProfileRequest) Validate() []string {
	if req.YearsExperience < 0 {
		return []string{"years_experience must not be negative"}
	}
	return nil
}

// GetStudent returns the authenticated student's profile, or an empty one when
// none is saved yet.
//
// GetStudent godoc
// @Summary      Get student profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=domain.StudentProfileView}
// @Router       /profiles/student [get]
func (c *ProfileController) GetStudent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	view, err := c.Service.GetStudentProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// SaveStudent godoc
// @Summary      Save student profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body studentProfileRequest true "Profile payload"
// @Success      200 {object} helpers.APIResponse{data=domain.StudentProfile}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /profiles/student [put]
func (c *ProfileController) SaveStudent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	var req studentProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	profile := &domain.StudentProfile{
		UserID:                   userID,
		Phone:                    req.Phone,
		Birthdate:                req.Birthdate,
		Address:                  req.Address,
		City:                     req.City,
		State:                    req.State,
		Zipcode:                  req.Zipcode,
		University:               req.University,
		College:                  req.College,
		Degree:                   req.Degree,
		Major:                    req.Major,
		GraduationYear:           req.GraduationYear,
		CurrentYear:              req.CurrentYear,
		Marks:                    req.Marks,
		Bio:                      req.Bio,
		Interests:                req.Interests,
		Skills:                   req.Skills,
		Languages:                req.Languages,
		EventTypes:               req.EventTypes,
		Availability:             req.Availability,
		VolunteerExperience:      req.VolunteerExperience,
		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,
	}
	saved, err := c.Service.SaveStudentProfile(r.Context(), profile, req.ProfileCompleted)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}

// GetManager godoc
// @Summary      Get manager profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} helpers.APIResponse{data=domain.ManagerProfileView}
// @Router       /profiles/manager [get]
func (c *ProfileController) GetManager(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	view, err := c.Service.GetManagerProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, view)
}

// SaveManager godoc
// @Summary      Save manager profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body managerProfileRequest true "Profile payload"
// @Success      200 {object} helpers.APIResponse{data=domain.ManagerProfile}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /profiles/manager [put]
func (c *ProfileController) SaveManager(w http.ResponseWriter, r *http.Request) {
	userID, ok := middlewareUserID(w, r)
	if !ok {
		return
	}

	var req managerProfileRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	profile := &domain.ManagerProfile{
		UserID:          userID,
		Phone:           req.Phone,
		YearsExperience: req.YearsExperience,
		Specializations: req.Specializations,
		Availability:    req.Availability,
		Bio:             req.Bio,
	}
	saved, err := c.Service.SaveManagerProfile(r.Context(), profile, req.ProfileCompleted)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, saved)
}
