package controllers

import (
	"log/slog"
	"net/http"

	"medprep/internal/delivery/http/helpers"
	"medprep/internal/domain"
)

// InterviewController exposes the unassigned-interview list and the
// per-interview read and lifecycle operations.
type InterviewController struct {
	Logger  *slog.Logger
	Service domain.CalendarService
}

func NewInterviewController(logger *slog.Logger, svc domain.CalendarService) *InterviewController {
	return &InterviewController{Logger: logger, Service: svc}
}

// UnassignedResponse is the payload for GET /interviews/unassigned.
type UnassignedResponse struct {
	Interviews []*domain.UnassignedInterview `json:"interviews"`
	Meta       helpers.PaginationMeta        `json:"meta"`
}

// Unassigned godoc
// @Summary List interviews awaiting a tutor and time
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains interviews and pagination meta"
// @Router /interviews/unassigned [get]
func (c *InterviewController) Unassigned(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	all := c.Service.Unassigned()
	start, end := params.Slice(len(all))
	helpers.WriteJSONSuccess(w, http.StatusOK, UnassignedResponse{
		Interviews: all[start:end],
		Meta:       helpers.NewPaginationMeta(params.Page, params.PageSize, len(all)),
	})
}

// Details godoc
// @Summary Get the expanded view of one interview
// @Description Combines booking info, student availability, and tutor/Zoom info when assigned. Cached per interview id.
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param interviewID path string true "Interview id"
// @Success 200 {object} helpers.APIResponse "data contains interview details"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /interviews/{interviewID} [get]
func (c *InterviewController) Details(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("interviewID")
	if interviewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing interviewID")
		return
	}
	details, err := c.Service.Details(r.Context(), interviewID)
	if err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, details)
}

// CreateInterviewRequest is the request body for POST /interviews.
type CreateInterviewRequest struct {
	BookingID   string `json:"booking_id"`
	StudentID   string `json:"student_id"`
	University  string `json:"university"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Validate implements Validator.
func (r CreateInterviewRequest) Validate() []string {
	var errs []string
	if r.BookingID == "" {
		errs = append(errs, "booking_id is required")
	}
	if r.StudentID == "" {
		errs = append(errs, "student_id is required")
	}
	if r.University == "" {
		errs = append(errs, "university is required")
	}
	return errs
}

// Create godoc
// @Summary Create an interview for a paid booking
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interview body CreateInterviewRequest true "Interview data"
// @Success 201 {object} helpers.APIResponse "data contains the created interview"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /interviews [post]
func (c *InterviewController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInterviewRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	iv, err := c.Service.CreateInterview(r.Context(), domain.CreateInterviewInput{
		BookingID:   req.BookingID,
		StudentID:   req.StudentID,
		University:  req.University,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, iv)
}

// CancelInterviewRequest is the request body for POST /interviews/{id}/cancel.
type CancelInterviewRequest struct {
	Notes string `json:"notes,omitempty"`
}

// Cancel godoc
// @Summary Cancel a committed interview assignment
// @Description Unassigns the interview, clears its Zoom resource, and emails both parties (service-side). Immediate, not staged.
// @Tags interviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param interviewID path string true "Interview id"
// @Param cancellation body CancelInterviewRequest false "Optional notes"
// @Success 204 "interview cancelled"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /interviews/{interviewID}/cancel [post]
func (c *InterviewController) Cancel(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("interviewID")
	if interviewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing interviewID")
		return
	}
	var req CancelInterviewRequest
	if r.ContentLength > 0 && !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Cancel(r.Context(), interviewID, req.Notes); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete godoc
// @Summary Delete an interview record entirely
// @Tags interviews
// @Produce json
// @Security BearerAuth
// @Param interviewID path string true "Interview id"
// @Success 204 "interview deleted"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /interviews/{interviewID} [delete]
func (c *InterviewController) Delete(w http.ResponseWriter, r *http.Request) {
	interviewID := r.PathValue("interviewID")
	if interviewID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing interviewID")
		return
	}
	if err := c.Service.Delete(r.Context(), interviewID); err != nil {
		writeSchedulingError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
