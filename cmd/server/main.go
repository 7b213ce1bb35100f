package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"eventstaffing/config"
	"eventstaffing/internal/adapters/auth"
	"eventstaffing/internal/adapters/email"
	delivery "eventstaffing/internal/delivery/http"
	"eventstaffing/internal/delivery/http/controllers"
	"eventstaffing/internal/repository/postgres"
	"eventstaffing/internal/services"
)

// @title           Event Staffing API
// @version         1.0
// @description     Volunteer event staffing backend: organizers create events and staffing roles, managers negotiate invitations, students apply to volunteer.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("database connection established")

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	roleRepo := postgres.NewEventRoleRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	dashboardRepo := postgres.NewDashboardRepository(db)
	studentProfileRepo := postgres.NewStudentProfileRepository(db)
	managerProfileRepo := postgres.NewManagerProfileRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	authSvc := services.NewAuthService(userRepo, hasher, tokenIssuer, cfg.TokenExpiry)
	emailSvc := services.NewEmailService(mailer)
	eventSvc := services.NewEventService(eventRepo, roleRepo, invitationRepo)
	invitationSvc := services.NewInvitationService(invitationRepo, roleRepo, userRepo, eventRepo, emailSvc, logger)
	registrationSvc := services.NewRegistrationService(registrationRepo, eventRepo, userRepo)
	dashboardSvc := services.NewDashboardService(dashboardRepo, registrationRepo)
	profileSvc := services.NewProfileService(userRepo, studentProfileRepo, managerProfileRepo)

	router := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(authSvc, logger),
		Event:        controllers.NewEventController(eventSvc, logger),
		Invitation:   controllers.NewInvitationController(invitationSvc, logger),
		Registration: controllers.NewRegistrationController(registrationSvc, logger),
		Dashboard:    controllers.NewDashboardController(dashboardSvc, logger),
		Profile:      controllers.NewProfileController(profileSvc, logger),
	}, tokenVerifier, cfg.CORSAllowedOrigins, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
}
