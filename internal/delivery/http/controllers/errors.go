package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"medprep/internal/delivery/http/helpers"
	"medprep/internal/domain"
)

// writeSchedulingError maps scheduling-engine errors to HTTP responses.
// Local validation failures map to 404/409 with the sentinel's message since
// the precondition is visible in current UI state; external-service failures
// map to 502 so the client shows a retry affordance.
func writeSchedulingError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrInterviewNotFound), errors.Is(err, domain.ErrTutorNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrSlotNotAvailable), errors.Is(err, domain.ErrAlreadyStaged), errors.Is(err, domain.ErrCommitInFlight):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
	default:
		var fetchErr *domain.FetchError
		var mutErr *domain.MutationError
		var commitErr *domain.CommitError
		if errors.As(err, &fetchErr) || errors.As(err, &mutErr) || errors.As(err, &commitErr) {
			logger.ErrorContext(r.Context(), "bookings service call failed", "path", r.URL.Path, "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, err.Error())
			return
		}
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
