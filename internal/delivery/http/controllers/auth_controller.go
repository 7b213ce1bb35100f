package controllers

import (
	"log/slog"
	"net/http"

	"eventstaffing/internal/delivery/http/helpers"
	"eventstaffing/internal/domain"
)

// AuthController handles signup and login endpoints.
type AuthController struct {
	Service domain.AuthService
	Logger  *slog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(service domain.AuthService, logger *slog.Logger) *AuthController {
	return &AuthController{Service: service, Logger: logger}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
	Password string `json:"password"`
}

func (req *signUpRequest) Validate() []string {
	var errs []string
	if req.Email == "" {
		errs = append(errs, "email is required")
	}
	if req.Name == "" {
		errs = append(errs, "name is required")
	}
	if !domain.ValidUserType(req.UserType) {
		errs = append(errs, "user_type must be STUDENT, MANAGER, or ORGANIZER")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req *loginRequest) Validate() []string {
	var errs []string
	if req.Email == "" {
		errs = append(errs, "email is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// SignUp godoc
// @Summary      Sign up
// @Description  Registers a new user account with one of the three user types.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body signUpRequest true "Signup payload"
// @Success      201 {object} helpers.APIResponse{data=domain.User}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      409 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	user, err := c.Service.SignUp(r.Context(), req.Email, req.Name, req.UserType, req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token plus the user record.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login payload"
// @Success      200 {object} helpers.APIResponse{data=loginResponse}
// @Failure      400 {object} helpers.APIResponse{error=helpers.APIError}
// @Failure      403 {object} helpers.APIResponse{error=helpers.APIError}
// @Router       /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, loginResponse{Token: token, User: user})
}
