package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"medprep/internal/delivery/http/controllers"
	"medprep/internal/delivery/http/middleware"
	"medprep/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Read routes are open to all staff roles; scheduling mutations are limited
// to admins and managers; availability mutations additionally check tutor
// ownership in the controller.
func NewRouter(
	authController *controllers.AuthController,
	calendarController *controllers.CalendarController,
	interviewController *controllers.InterviewController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()

	auth := middleware.RequireAuth(verifier)
	staff := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleTutor)(h))
	}
	manage := func(h http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)(h))
	}

	// Auth
	mux.HandleFunc("POST /auth/login", authController.Login)
	mux.HandleFunc("GET /users/me", auth(authController.Me))

	// Calendar
	mux.HandleFunc("GET /calendar", staff(calendarController.Grid))
	mux.HandleFunc("GET /calendar/matches", staff(calendarController.Matches))
	mux.HandleFunc("GET /calendar/pending", staff(calendarController.Pending))
	mux.HandleFunc("POST /calendar/refresh", staff(calendarController.Refresh))
	mux.HandleFunc("POST /calendar/availability", staff(calendarController.MarkAvailability))
	mux.HandleFunc("DELETE /calendar/availability/{slotID}", staff(calendarController.RemoveAvailability))
	mux.HandleFunc("POST /calendar/assignments", manage(calendarController.Assign))
	mux.HandleFunc("POST /calendar/commit", manage(calendarController.Commit))
	mux.HandleFunc("POST /calendar/discard", manage(calendarController.Discard))

	// Interviews
	mux.HandleFunc("GET /interviews/unassigned", staff(interviewController.Unassigned))
	mux.HandleFunc("GET /interviews/{interviewID}", staff(interviewController.Details))
	mux.HandleFunc("POST /interviews", manage(interviewController.Create))
	mux.HandleFunc("POST /interviews/{interviewID}/cancel", manage(interviewController.Cancel))
	mux.HandleFunc("DELETE /interviews/{interviewID}", manage(interviewController.Delete))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
