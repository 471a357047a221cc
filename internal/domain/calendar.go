package domain

import "context"

// MatchCell is one (date, hour) cell of a student's availability together with
// the tutors free at that hour. TutorIDs may be empty: demand with no supply
// is still surfaced so staff can see it.
// swagger:model MatchCell
type MatchCell struct {
	Date     string   `json:"date"`
	Hour     string   `json:"hour"`
	TutorIDs []string `json:"tutor_ids"`
}

// GridCell is one hour cell in the tutors-by-hour calendar grid. Selectable
// reports whether the cell may join a multi-select (interview cells may not).
// swagger:model GridCell
type GridCell struct {
	Hour       string    `json:"hour"`
	Slot       *TimeSlot `json:"slot,omitempty"`
	Selectable bool      `json:"selectable"`
}

// TutorRow is one tutor's row of grid cells for the selected date.
// swagger:model TutorRow
type TutorRow struct {
	TutorID   string     `json:"tutor_id"`
	TutorName string     `json:"tutor_name"`
	Color     string     `json:"color"`
	Cells     []GridCell `json:"cells"`
}

// CalendarService is the scheduling engine behind the tutor dashboard: the
// availability store, staged-change ledger, and assignment orchestration over
// the external bookings service.
type CalendarService interface {
	// Refresh replaces all in-memory state from the bookings service for the
	// given date range. Subsequent resyncs reuse the same range.
	Refresh(ctx context.Context, from, to string) error

	// Read accessors for rendering.
	Tutors() []*TutorSchedule
	Unassigned() []*UnassignedInterview
	PendingChanges() []*PendingChange
	Grid(date string) []*TutorRow
	Matches(ctx context.Context, interviewID string) ([]MatchCell, error)

	// Assign stages an assignment and applies it optimistically. Purely local.
	Assign(tutorID, date, hour, interviewID string) error

	// Availability mutations persist immediately and resync on success.
	MarkAvailable(ctx context.Context, tutorID, date string, hours []string) error
	RemoveAvailable(ctx context.Context, tutorID, slotID string) error

	// CommitAll flushes the ledger sequentially, stopping at the first
	// failure; DiscardAll drops it. Both end in a resync.
	CommitAll(ctx context.Context) error
	DiscardAll(ctx context.Context) error

	// Cancel and Delete act on committed interviews immediately (not staged).
	Cancel(ctx context.Context, interviewID, notes string) error
	Delete(ctx context.Context, interviewID string) error

	// Details lazily fetches and caches the expanded view of one interview.
	Details(ctx context.Context, interviewID string) (*InterviewDetails, error)

	// CreateInterview registers a new interview for a paid booking.
	CreateInterview(ctx context.Context, in CreateInterviewInput) (*UnassignedInterview, error)
}
