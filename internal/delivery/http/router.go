package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventstaffing/internal/delivery/http/controllers"
	"eventstaffing/internal/delivery/http/middleware"
	"eventstaffing/internal/domain"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Invitation   *controllers.InvitationController
	Registration *controllers.RegistrationController
	Dashboard    *controllers.DashboardController
	Profile      *controllers.ProfileController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything except signup, login, and swagger requires a bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, allowedOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Events
	mux.HandleFunc("POST /events", auth(c.Event.Create))
	mux.HandleFunc("GET /events", auth(c.Event.ListMine))
	mux.HandleFunc("GET /events/{eventID}", auth(c.Event.Get))
	mux.HandleFunc("PUT /events/{eventID}", auth(c.Event.Update))
	mux.HandleFunc("GET /events/{eventID}/home", auth(c.Event.HomeData))
	mux.HandleFunc("POST /events/{eventID}/roles", auth(c.Event.CreateRole))

	// Invitations
	mux.HandleFunc("POST /invitations", auth(c.Invitation.Invite))
	mux.HandleFunc("GET /invitations/my", auth(c.Invitation.ListMine))
	mux.HandleFunc("POST /invitations/{invitationID}/respond", auth(c.Invitation.Respond))
	mux.HandleFunc("POST /invitations/{invitationID}/select", auth(c.Invitation.Select))

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/registrations", auth(c.Registration.Register))
	mux.HandleFunc("GET /events/{eventID}/registrations", auth(c.Registration.ListForEvent))
	mux.HandleFunc("PUT /events/{eventID}/registrations/status", auth(c.Registration.BatchUpdateStatus))
	mux.HandleFunc("GET /events/{eventID}/application-state", auth(c.Registration.ApplicationState))
	mux.HandleFunc("GET /registrations/staffing-stats", auth(c.Registration.StaffingStats))

	// Dashboards
	mux.HandleFunc("GET /dashboard/student", auth(c.Dashboard.Student))
	mux.HandleFunc("GET /dashboard/manager", auth(c.Dashboard.Manager))
	mux.HandleFunc("GET /dashboard/organizer", auth(c.Dashboard.Organizer))

	// Profiles
	mux.HandleFunc("GET /profiles/student", auth(c.Profile.GetStudent))
	mux.HandleFunc("PUT /profiles/student", auth(c.Profile.SaveStudent))
	mux.HandleFunc("GET /profiles/manager", auth(c.Profile.GetManager))
	mux.HandleFunc("PUT /profiles/manager", auth(c.Profile.SaveManager))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux))
}
