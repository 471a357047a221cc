package controllers

import (
	"log/slog"
	"net/http"

	"medprep/internal/delivery/http/helpers"
	"medprep/internal/delivery/http/middleware"
	"medprep/internal/domain"
)

// CalendarController exposes the tutor calendar: the grid read model,
// availability mutations, assignment staging, and the commit/discard cycle.
type CalendarController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewCalendarController(logger *slog.Logger, svc domain.CalendarService) *CalendarController {
	return &CalendarController{Logger: logger, Service: svc}
}

// canMutateTutor reports whether the caller may change the given tutor's
// availability: admins and managers always, tutors only for themselves.
func canMutateTutor(claims *domain.TokenClaims, tutorID string) bool {
	switch claims.Role {
	case domain.RoleAdmin, domain.RoleManager:
		return true
	case domain.RoleTutor:
		return claims.TutorID != "" && claims.TutorID == tutorID
	}
	return false
}

// GridResponse is the payload for GET /calendar.
type GridResponse struct {
	Date    string                  `json:"date"`
	Rows    []*domain.TutorRow      `json:"rows"`
	Pending []*domain.PendingChange `json:"pending"`
}

// Grid godoc
// @Summary Get the tutors-by-hour calendar grid for one date
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param date query string true "ISO date (2006-01-02)"
// @Success 200 {object} helpers.APIResponse "data contains grid rows and pending changes"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /calendar [get]
func (c *CalendarController) Grid(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if !domain.ValidDate(date) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be an ISO date (2006-01-02)")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, GridResponse{
		Date:    date,
		Rows:    c.Service.Grid(date),
		Pending: c.Service.PendingChanges(),
	})
}

// Matches godoc
// @Summary Get the cells where the dragged interview's student and tutors are both free
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param interview_id query string true "Unassigned interview id"
// @Success 200 {object} helpers.APIResponse "data contains match cells"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /calendar/matches [get]
func (c *CalendarController) Matches(w http.ResponseWriter, r *http.Request) {
	interviewID := r.URL.Query().Get("interview_id")
	if interviewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing interview_id")
		return
	}
	cells, err := c.Service.Matches(r.Context(), interviewID)
	if err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, cells)
}

// RefreshRequest is the request body for POST /calendar/refresh.
type RefreshRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Validate implements Validator.
func (r RefreshRequest) Validate() []string {
	var errs []string
	if !domain.ValidDate(r.From) {
		errs = append(errs, "from must be an ISO date")
	}
	if !domain.ValidDate(r.To) {
		errs = append(errs, "to must be an ISO date")
	}
	if len(errs) == 0 && r.To < r.From {
		errs = append(errs, "to must not precede from")
	}
	return errs
}

// Refresh godoc
// @Summary Reload the calendar from the bookings service for a date range
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param range body RefreshRequest true "Date range"
// @Success 204 "reloaded"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /calendar/refresh [post]
func (c *CalendarController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Refresh(r.Context(), req.From, req.To); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAvailabilityRequest is the request body for POST /calendar/availability.
// Hours lists the selected hour cells ("HH:00") for one tutor on one date;
// a selection can never span tutors.
type MarkAvailabilityRequest struct {
	TutorID string   `json:"tutor_id"`
	Date    string   `json:"date"`
	Hours   []string `json:"hours"`
}

// Validate implements Validator.
func (r MarkAvailabilityRequest) Validate() []string {
	var errs []string
	if r.TutorID == "" {
		errs = append(errs, "tutor_id is required")
	}
	if !domain.ValidDate(r.Date) {
		errs = append(errs, "date must be an ISO date")
	}
	if len(r.Hours) == 0 {
		errs = append(errs, "hours must not be empty")
	}
	for _, h := range r.Hours {
		if !domain.ValidHour(h) {
			errs = append(errs, "hours must be hour-aligned (HH:00)")
			break
		}
	}
	return errs
}

// MarkAvailability godoc
// @Summary Mark selected empty cells as available slots
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param slots body MarkAvailabilityRequest true "Tutor, date, and selected hours"
// @Success 204 "slots created"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /calendar/availability [post]
func (c *CalendarController) MarkAvailability(w http.ResponseWriter, r *http.Request) {
	var req MarkAvailabilityRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if !canMutateTutor(claims, req.TutorID) {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "tutors may only change their own availability")
		return
	}
	if err := c.Service.MarkAvailable(r.Context(), req.TutorID, req.Date, req.Hours); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveAvailability godoc
// @Summary Delete an existing available slot
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param slotID path string true "Availability slot id"
// @Param tutor_id query string true "Tutor owning the slot"
// @Success 204 "slot deleted"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /calendar/availability/{slotID} [delete]
func (c *CalendarController) RemoveAvailability(w http.ResponseWriter, r *http.Request) {
	slotID := r.PathValue("slotID")
	tutorID := r.URL.Query().Get("tutor_id")
	if slotID == "" || tutorID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slotID or tutor_id")
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if !canMutateTutor(claims, tutorID) {
		helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "tutors may only change their own availability")
		return
	}
	if err := c.Service.RemoveAvailable(r.Context(), tutorID, slotID); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignRequest is the request body for POST /calendar/assignments: the drop
// of an unassigned interview onto a tutor's slot.
type AssignRequest struct {
	InterviewID string `json:"interview_id"`
	TutorID     string `json:"tutor_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Validate implements Validator.
func (r AssignRequest) Validate() []string {
	var errs []string
	if r.InterviewID == "" {
		errs = append(errs, "interview_id is required")
	}
	if r.TutorID == "" {
		errs = append(errs, "tutor_id is required")
	}
	if !domain.ValidDate(r.Date) {
		errs = append(errs, "date must be an ISO date")
	}
	if !domain.ValidHour(r.Time) {
		errs = append(errs, "time must be hour-aligned (HH:00)")
	}
	return errs
}

// Assign godoc
// @Summary Stage an interview assignment onto a tutor's available slot
// @Description Validates and stages the assignment, applying it optimistically. Nothing is persisted until commit.
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param assignment body AssignRequest true "Assignment"
// @Success 200 {object} helpers.APIResponse "data contains the pending changes"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /calendar/assignments [post]
func (c *CalendarController) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Assign(req.TutorID, req.Date, req.Time, req.InterviewID); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.PendingChanges())
}

// Pending godoc
// @Summary List staged assignments awaiting commit
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains pending changes"
// @Router /calendar/pending [get]
func (c *CalendarController) Pending(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.PendingChanges())
}

// Commit godoc
// @Summary Persist all staged assignments
// @Description Commits staged changes sequentially; the first failure aborts the remainder and the calendar resyncs to server truth.
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 204 "all changes committed"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (a commit is already in flight)"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error (which step failed)"
// @Router /calendar/commit [post]
func (c *CalendarController) Commit(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.CommitAll(r.Context()); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Discard godoc
// @Summary Discard all staged assignments
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Success 204 "changes discarded, calendar resynced"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /calendar/discard [post]
func (c *CalendarController) Discard(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DiscardAll(r.Context()); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
