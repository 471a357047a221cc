package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"medprep/config"
	_ "medprep/docs"
	authAdapter "medprep/internal/adapters/auth"
	"medprep/internal/adapters/bookings"
	emailAdapter "medprep/internal/adapters/email"
	deliveryHTTP "medprep/internal/delivery/http"
	"medprep/internal/delivery/http/controllers"
	"medprep/internal/delivery/http/middleware"
	"medprep/internal/repository/postgres"
	"medprep/internal/services"
)

// @title MedPrep Scheduling API
// @version 1.0
// @description Internal API for matching students to tutors and managing interview assignments.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewStaffUserRepository(db)
	hasher := authAdapter.NewBcryptHasher(bcrypt.DefaultCost)
	issuer, verifier := authAdapter.NewJWTCodec(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, hasher, issuer, cfg.JWTExpiry)

	mailer, err := emailAdapter.NewMailer(emailAdapter.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: emailAdapter.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailAdapter.NewTemplateRenderer(), cfg.OpsInbox, logger)

	bookingsClient := bookings.NewHTTPClient(
		&http.Client{Timeout: 30 * time.Second},
		cfg.BookingsBaseURL,
		cfg.BookingsAPIKey,
	)

	calendar := services.NewCalendar(bookingsClient, emailService, logger, cfg.DayStartHour, cfg.DayEndHour)

	// Prime the store with the current week so the first request does not
	// have to wait for a refresh.
	from, to := currentWeek()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := calendar.Refresh(ctx, from, to); err != nil {
		logger.Warn("initial calendar refresh failed", "error", err, "from", from, "to", to)
	}
	cancel()

	authController := controllers.NewAuthController(logger, authService)
	calendarController := controllers.NewCalendarController(logger, calendar)
	interviewController := controllers.NewInterviewController(logger, calendar)

	mux := deliveryHTTP.NewRouter(authController, calendarController, interviewController, verifier)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)

	logger.Info("starting server", "port", cfg.Port, "environment", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func currentWeek() (string, string) {
	now := time.Now()
	monday := now.AddDate(0, 0, -(int(now.Weekday())+6)%7)
	return monday.Format("2006-01-02"), monday.AddDate(0, 0, 6).Format("2006-01-02")
}
