package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medprep/internal/delivery/http/middleware"
	"medprep/internal/domain"
)

// fakeCalendarService implements domain.CalendarService for handler tests.
type fakeCalendarService struct {
	tutors     []*domain.TutorSchedule
	unassigned []*domain.UnassignedInterview
	pending    []*domain.PendingChange
	grid       []*domain.TutorRow
	matches    []domain.MatchCell
	details    *domain.InterviewDetails
	created    *domain.UnassignedInterview

	refreshErr error
	matchesErr error
	assignErr  error
	markErr    error
	removeErr  error
	commitErr  error
	discardErr error
	cancelErr  error
	deleteErr  error
	detailsErr error
	createErr  error

	lastRefreshFrom, lastRefreshTo  string
	lastAssign                      [4]string
	lastMarkTutor, lastMarkDate     string
	lastMarkHours                   []string
	lastRemoveTutor, lastRemoveSlot string
	lastCancelID, lastCancelNotes   string
	lastDeleteID                    string
	lastDetailsID                   string
	lastCreate                      domain.CreateInterviewInput
	commitCalls                     int
	discardCalls                    int
}

func (f *fakeCalendarService) Refresh(ctx context.Context, from, to string) error {
	f.lastRefreshFrom, f.lastRefreshTo = from, to
	return f.refreshErr
}

func (f *fakeCalendarService) Tutors() []*domain.TutorSchedule { return f.tutors }

func (f *fakeCalendarService) Unassigned() []*domain.UnassignedInterview { return f.unassigned }

func (f *fakeCalendarService) PendingChanges() []*domain.PendingChange { return f.pending }

func (f *fakeCalendarService) Grid(date string) []*domain.TutorRow { return f.grid }

func (f *fakeCalendarService) Matches(ctx context.Context, interviewID string) ([]domain.MatchCell, error) {
	if f.matchesErr != nil {
		return nil, f.matchesErr
	}
	return f.matches, nil
}

func (f *fakeCalendarService) Assign(tutorID, date, hour, interviewID string) error {
	f.lastAssign = [4]string{tutorID, date, hour, interviewID}
	return f.assignErr
}

func (f *fakeCalendarService) MarkAvailable(ctx context.Context, tutorID, date string, hours []string) error {
	f.lastMarkTutor, f.lastMarkDate, f.lastMarkHours = tutorID, date, hours
	return f.markErr
}

func (f *fakeCalendarService) RemoveAvailable(ctx context.Context, tutorID, slotID string) error {
	f.lastRemoveTutor, f.lastRemoveSlot = tutorID, slotID
	return f.removeErr
}

func (f *fakeCalendarService) CommitAll(ctx context.Context) error {
	f.commitCalls++
	return f.commitErr
}

func (f *fakeCalendarService) DiscardAll(ctx context.Context) error {
	f.discardCalls++
	return f.discardErr
}

func (f *fakeCalendarService) Cancel(ctx context.Context, interviewID, notes string) error {
	f.lastCancelID, f.lastCancelNotes = interviewID, notes
	return f.cancelErr
}

func (f *fakeCalendarService) Delete(ctx context.Context, interviewID string) error {
	f.lastDeleteID = interviewID
	return f.deleteErr
}

func (f *fakeCalendarService) Details(ctx context.Context, interviewID string) (*domain.InterviewDetails, error) {
	f.lastDetailsID = interviewID
	if f.detailsErr != nil {
		return nil, f.detailsErr
	}
	return f.details, nil
}

func (f *fakeCalendarService) CreateInterview(ctx context.Context, in domain.CreateInterviewInput) (*domain.UnassignedInterview, error) {
	f.lastCreate = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func withClaims(r *http.Request, claims *domain.TokenClaims) *http.Request {
	return r.WithContext(middleware.SetClaims(r.Context(), claims))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) (json.RawMessage, string) {
	t.Helper()
	var body struct {
		Data  json.RawMessage `json:"data"`
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	if body.Error != nil {
		return body.Data, body.Error.Code
	}
	return body.Data, ""
}

func TestCalendarController_Grid(t *testing.T) {
	fake := &fakeCalendarService{
		grid: []*domain.TutorRow{{TutorID: "t1", TutorName: "Dr. Amara Okafor"}},
		pending: []*domain.PendingChange{
			{ID: "pc-1", InterviewID: "iv-1", TutorID: "t1", Date: "2024-06-10", Time: "14:00"},
		},
	}
	ctrl := NewCalendarController(testLogger(), fake)

	t.Run("success", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/calendar?date=2024-06-10", nil)
		rr := httptest.NewRecorder()
		ctrl.Grid(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		data, errCode := decodeEnvelope(t, rr)
		assert.Empty(t, errCode)
		var resp GridResponse
		require.NoError(t, json.Unmarshal(data, &resp))
		assert.Equal(t, "2024-06-10", resp.Date)
		require.Len(t, resp.Rows, 1)
		require.Len(t, resp.Pending, 1)
		assert.Equal(t, "pc-1", resp.Pending[0].ID)
	})

	t.Run("missing date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/calendar", nil)
		rr := httptest.NewRecorder()
		ctrl.Grid(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		_, errCode := decodeEnvelope(t, rr)
		assert.Equal(t, "bad_request", errCode)
	})

	t.Run("malformed date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/calendar?date=June+10th", nil)
		rr := httptest.NewRecorder()
		ctrl.Grid(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCalendarController_Matches(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fake := &fakeCalendarService{
			matches: []domain.MatchCell{{Date: "2024-06-10", Hour: "14:00", TutorIDs: []string{"t1"}}},
		}
		ctrl := NewCalendarController(testLogger(), fake)
		req := httptest.NewRequest(http.MethodGet, "/calendar/matches?interview_id=iv-1", nil)
		rr := httptest.NewRecorder()
		ctrl.Matches(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		data, _ := decodeEnvelope(t, rr)
		var cells []domain.MatchCell
		require.NoError(t, json.Unmarshal(data, &cells))
		require.Len(t, cells, 1)
		assert.Equal(t, []string{"t1"}, cells[0].TutorIDs)
	})

	t.Run("missing interview_id", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{})
		req := httptest.NewRequest(http.MethodGet, "/calendar/matches", nil)
		rr := httptest.NewRecorder()
		ctrl.Matches(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown interview", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{matchesErr: domain.ErrInterviewNotFound})
		req := httptest.NewRequest(http.MethodGet, "/calendar/matches?interview_id=iv-404", nil)
		rr := httptest.NewRecorder()
		ctrl.Matches(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		_, errCode := decodeEnvelope(t, rr)
		assert.Equal(t, "not_found", errCode)
	})
}

func TestCalendarController_Refresh(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		refreshErr error
		wantStatus int
	}{
		{"success", `{"from":"2024-06-10","to":"2024-06-16"}`, nil, http.StatusNoContent},
		{"invalid json", `{`, nil, http.StatusBadRequest},
		{"to precedes from", `{"from":"2024-06-16","to":"2024-06-10"}`, nil, http.StatusBadRequest},
		{"fetch failure", `{"from":"2024-06-10","to":"2024-06-16"}`, &domain.FetchError{Err: assert.AnError}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{refreshErr: tt.refreshErr}
			ctrl := NewCalendarController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/calendar/refresh", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			ctrl.Refresh(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "2024-06-10", fake.lastRefreshFrom)
				assert.Equal(t, "2024-06-16", fake.lastRefreshTo)
			}
		})
	}
}

func TestCalendarController_MarkAvailability(t *testing.T) {
	manager := &domain.TokenClaims{UserID: "u1", Role: domain.RoleManager}
	ownTutor := &domain.TokenClaims{UserID: "u2", Role: domain.RoleTutor, TutorID: "t1"}
	otherTutor := &domain.TokenClaims{UserID: "u3", Role: domain.RoleTutor, TutorID: "t2"}
	body := `{"tutor_id":"t1","date":"2024-06-10","hours":["09:00","10:00"]}`

	tests := []struct {
		name       string
		claims     *domain.TokenClaims
		body       string
		markErr    error
		wantStatus int
		wantCode   string
	}{
		{"manager may mutate any tutor", manager, body, nil, http.StatusNoContent, ""},
		{"tutor may mutate own calendar", ownTutor, body, nil, http.StatusNoContent, ""},
		{"tutor may not mutate another calendar", otherTutor, body, nil, http.StatusForbidden, "forbidden"},
		{"hour occupied", manager, body, domain.ErrSlotNotAvailable, http.StatusConflict, "conflict"},
		{"unknown tutor", manager, body, domain.ErrTutorNotFound, http.StatusNotFound, "not_found"},
		{"invalid hours", manager, `{"tutor_id":"t1","date":"2024-06-10","hours":["09:30"]}`, nil, http.StatusBadRequest, "bad_request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{markErr: tt.markErr}
			ctrl := NewCalendarController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/calendar/availability", bytes.NewBufferString(tt.body))
			req = withClaims(req, tt.claims)
			rr := httptest.NewRecorder()
			ctrl.MarkAvailability(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				_, errCode := decodeEnvelope(t, rr)
				assert.Equal(t, tt.wantCode, errCode)
			}
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "t1", fake.lastMarkTutor)
				assert.Equal(t, []string{"09:00", "10:00"}, fake.lastMarkHours)
			}
		})
	}

	t.Run("no claims in context", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{})
		req := httptest.NewRequest(http.MethodPost, "/calendar/availability", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		ctrl.MarkAvailability(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCalendarController_RemoveAvailability(t *testing.T) {
	ownTutor := &domain.TokenClaims{UserID: "u2", Role: domain.RoleTutor, TutorID: "t1"}

	t.Run("success", func(t *testing.T) {
		fake := &fakeCalendarService{}
		ctrl := NewCalendarController(testLogger(), fake)
		req := httptest.NewRequest(http.MethodDelete, "/calendar/availability/slot-2?tutor_id=t1", nil)
		req.SetPathValue("slotID", "slot-2")
		req = withClaims(req, ownTutor)
		rr := httptest.NewRecorder()
		ctrl.RemoveAvailability(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "t1", fake.lastRemoveTutor)
		assert.Equal(t, "slot-2", fake.lastRemoveSlot)
	})

	t.Run("missing tutor_id", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{})
		req := httptest.NewRequest(http.MethodDelete, "/calendar/availability/slot-2", nil)
		req.SetPathValue("slotID", "slot-2")
		req = withClaims(req, ownTutor)
		rr := httptest.NewRecorder()
		ctrl.RemoveAvailability(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("tutor removing another tutor's slot", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{})
		req := httptest.NewRequest(http.MethodDelete, "/calendar/availability/slot-9?tutor_id=t2", nil)
		req.SetPathValue("slotID", "slot-9")
		req = withClaims(req, ownTutor)
		rr := httptest.NewRecorder()
		ctrl.RemoveAvailability(rr, req)
		require.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestCalendarController_Assign(t *testing.T) {
	body := `{"interview_id":"iv-1","tutor_id":"t1","date":"2024-06-10","time":"14:00"}`

	t.Run("success returns pending changes", func(t *testing.T) {
		fake := &fakeCalendarService{
			pending: []*domain.PendingChange{{ID: "pc-1", InterviewID: "iv-1"}},
		}
		ctrl := NewCalendarController(testLogger(), fake)
		req := httptest.NewRequest(http.MethodPost, "/calendar/assignments", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		ctrl.Assign(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, [4]string{"t1", "2024-06-10", "14:00", "iv-1"}, fake.lastAssign)
		data, _ := decodeEnvelope(t, rr)
		var changes []*domain.PendingChange
		require.NoError(t, json.Unmarshal(data, &changes))
		require.Len(t, changes, 1)
	})

	t.Run("already staged", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{assignErr: domain.ErrAlreadyStaged})
		req := httptest.NewRequest(http.MethodPost, "/calendar/assignments", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		ctrl.Assign(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		_, errCode := decodeEnvelope(t, rr)
		assert.Equal(t, "conflict", errCode)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := NewCalendarController(testLogger(), &fakeCalendarService{})
		req := httptest.NewRequest(http.MethodPost, "/calendar/assignments", bytes.NewBufferString(`{"interview_id":"iv-1"}`))
		rr := httptest.NewRecorder()
		ctrl.Assign(rr, req)
		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCalendarController_Commit(t *testing.T) {
	tests := []struct {
		name       string
		commitErr  error
		wantStatus int
	}{
		{"success", nil, http.StatusNoContent},
		{"commit in flight", domain.ErrCommitInFlight, http.StatusConflict},
		{"assign step failed", &domain.CommitError{Step: "assign", ChangeIndex: 1, InterviewID: "iv-2", Err: assert.AnError}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCalendarService{commitErr: tt.commitErr}
			ctrl := NewCalendarController(testLogger(), fake)
			req := httptest.NewRequest(http.MethodPost, "/calendar/commit", nil)
			rr := httptest.NewRecorder()
			ctrl.Commit(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, 1, fake.commitCalls)
		})
	}
}

func TestCalendarController_Discard(t *testing.T) {
	fake := &fakeCalendarService{}
	ctrl := NewCalendarController(testLogger(), fake)
	req := httptest.NewRequest(http.MethodPost, "/calendar/discard", nil)
	rr := httptest.NewRecorder()
	ctrl.Discard(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, 1, fake.discardCalls)
}
