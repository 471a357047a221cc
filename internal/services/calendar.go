package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"medprep/internal/domain"
)

// Calendar is the scheduling context behind the tutor dashboard. It owns the
// availability store and the staged-change ledger, orchestrates assignment
// staging and the two-phase commit, and is the single entry point for every
// calendar mutation. The mutex spans external calls so mutations stay
// strictly ordered, matching the single-threaded contract of the dashboard.
type Calendar struct {
	mu     sync.Mutex
	store  *Store
	ledger *Ledger
	client domain.BookingsClient
	email  domain.EmailService
	logger *slog.Logger

	// committing makes a re-entrant commit fail fast instead of queueing.
	committing atomic.Bool

	// details caches expanded interview views keyed by interview id.
	details map[string]*domain.InterviewDetails

	dayStart, dayEnd int
}

// NewCalendar builds the scheduling context. email may be nil; the ops digest
// is then skipped.
func NewCalendar(client domain.BookingsClient, email domain.EmailService, logger *slog.Logger, dayStart, dayEnd int) *Calendar {
	return &Calendar{
		store:    NewStore(client),
		ledger:   NewLedger(),
		client:   client,
		email:    email,
		logger:   logger,
		details:  make(map[string]*domain.InterviewDetails),
		dayStart: dayStart,
		dayEnd:   dayEnd,
	}
}

// Refresh replaces all in-memory state from the bookings service for the
// given date range. Pending changes survive a refresh only in the ledger;
// their optimistic slot mutations are lost, so callers normally refresh with
// an empty ledger.
func (c *Calendar) Refresh(ctx context.Context, from, to string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Fetch(ctx, from, to)
}

// Tutors returns the current tutor schedules.
func (c *Calendar) Tutors() []*domain.TutorSchedule {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.TutorSchedule, len(c.store.Tutors()))
	copy(out, c.store.Tutors())
	return out
}

// Unassigned returns the interviews still awaiting a tutor and time.
func (c *Calendar) Unassigned() []*domain.UnassignedInterview {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.UnassignedInterview, len(c.store.Unassigned()))
	copy(out, c.store.Unassigned())
	return out
}

// PendingChanges returns the staged assignments in stage order.
func (c *Calendar) PendingChanges() []*domain.PendingChange {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Changes()
}

// Grid renders the tutors-by-hour read model for one date. Cells holding an
// interview slot are not selectable for availability multi-select.
func (c *Calendar) Grid(date string) []*domain.TutorRow {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]*domain.TutorRow, 0, len(c.store.Tutors()))
	for _, t := range c.store.Tutors() {
		row := &domain.TutorRow{
			TutorID:   t.TutorID,
			TutorName: t.TutorName,
			Color:     t.Color,
			Cells:     make([]domain.GridCell, 0, c.dayEnd-c.dayStart),
		}
		for h := c.dayStart; h < c.dayEnd; h++ {
			hour := domain.HourString(h)
			slot := t.SlotAt(date, hour)
			row.Cells = append(row.Cells, domain.GridCell{
				Hour:       hour,
				Slot:       slot,
				Selectable: slot == nil || slot.Type != domain.SlotInterview,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// Matches returns the (date, hour) cells where the dragged interview's
// student and at least zero tutors are simultaneously free. Drives the
// drag-highlighting of valid drop targets.
func (c *Calendar) Matches(ctx context.Context, interviewID string) ([]domain.MatchCell, error) {
	c.mu.Lock()
	iv, ok := c.store.UnassignedByID(interviewID)
	c.mu.Unlock()
	if !ok {
		return nil, domain.ErrInterviewNotFound
	}

	windows, err := c.client.GetStudentAvailability(ctx, iv.StudentID)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return MatchStudentAvailability(windows, c.store.Tutors()), nil
}

// Assign stages an assignment of an unassigned interview to (tutor, date,
// hour) and applies it optimistically: the slot flips to a pending interview
// and the interview leaves the unassigned list. Purely local; nothing is
// persisted until CommitAll.
func (c *Calendar) Assign(tutorID, date, hour, interviewID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	iv, ok := c.store.UnassignedByID(interviewID)
	if !ok {
		return domain.ErrInterviewNotFound
	}
	tutor, ok := c.store.Tutor(tutorID)
	if !ok {
		return domain.ErrTutorNotFound
	}
	slot := tutor.SlotAt(date, hour)
	if slot == nil || slot.Type != domain.SlotAvailable {
		return domain.ErrSlotNotAvailable
	}

	err := c.ledger.Stage(&domain.PendingChange{
		InterviewID:  interviewID,
		TutorID:      tutorID,
		TutorName:    tutor.TutorName,
		Date:         date,
		Time:         hour,
		StudentName:  iv.StudentName,
		StudentEmail: iv.StudentEmail,
	})
	if err != nil {
		return err
	}

	slot.Type = domain.SlotInterview
	slot.IsPending = true
	slot.InterviewID = iv.ID
	slot.Title = "Interview: " + iv.StudentName
	slot.Student = iv.StudentName
	slot.Package = iv.Package
	c.store.RemoveUnassigned(interviewID)
	return nil
}

// CommitAll flushes the ledger: for each staged change in order it re-derives
// the slot id from current store state, persists the assignment, then
// triggers confirmation-email dispatch service-side. Commits are sequential
// and stop at the first failure, after which the store resyncs so the view
// converges to server truth. Full success clears the ledger, resyncs, and
// sends a best-effort ops digest.
func (c *Calendar) CommitAll(ctx context.Context) error {
	if !c.committing.CompareAndSwap(false, true) {
		return domain.ErrCommitInFlight
	}
	defer c.committing.Store(false)

	c.mu.Lock()
	defer c.mu.Unlock()

	changes := c.ledger.Changes()
	if len(changes) == 0 {
		return nil
	}

	// Two staged changes must not target the same tutor slot; reject the
	// batch before any external call rather than relying on the second
	// assign failing server-side.
	type target struct{ tutorID, date, hour string }
	targets := make(map[target]string, len(changes))
	for i, ch := range changes {
		k := target{ch.TutorID, ch.Date, ch.Time}
		if firstID, dup := targets[k]; dup {
			return &domain.CommitError{
				Step:        "validate",
				ChangeIndex: i,
				InterviewID: ch.InterviewID,
				Err:         fmt.Errorf("slot %s %s for tutor %s already targeted by interview %s", ch.Date, ch.Time, ch.TutorID, firstID),
			}
		}
		targets[k] = ch.InterviewID
	}

	for i, ch := range changes {
		slot := c.store.SlotAt(ch.TutorID, ch.Date, ch.Time)
		if slot == nil || slot.ID == "" || slot.ID == domain.EmptySlotID {
			return c.failCommit(ctx, "resolve slot", i, ch, fmt.Errorf("no slot record at %s %s", ch.Date, ch.Time))
		}
		scheduledAt := ch.Date + "T" + ch.Time

		err := c.client.AssignInterview(ctx, ch.InterviewID, domain.AssignInterviewInput{
			TutorID:            ch.TutorID,
			ScheduledAt:        scheduledAt,
			AvailabilitySlotID: slot.ID,
		})
		if err != nil {
			return c.failCommit(ctx, "assign", i, ch, err)
		}

		tutorEmail := ""
		if tutor, ok := c.store.Tutor(ch.TutorID); ok {
			tutorEmail = tutor.TutorEmail
		}
		err = c.client.ConfirmInterview(ctx, ch.InterviewID, domain.ConfirmInterviewInput{
			TutorID:      ch.TutorID,
			TutorName:    ch.TutorName,
			TutorEmail:   tutorEmail,
			StudentName:  ch.StudentName,
			StudentEmail: ch.StudentEmail,
			ScheduledAt:  scheduledAt,
		})
		if err != nil {
			return c.failCommit(ctx, "confirm", i, ch, err)
		}
	}

	c.ledger.Clear()
	if err := c.store.Resync(ctx); err != nil {
		return err
	}
	c.sendDigest(ctx, changes)
	return nil
}

// failCommit aborts the remaining commits: the store resyncs to server truth
// (reverting all optimistic state, staged and already-committed alike) and
// the ledger is cleared, since its optimistic mutations no longer exist.
func (c *Calendar) failCommit(ctx context.Context, step string, index int, ch *domain.PendingChange, cause error) error {
	c.ledger.Clear()
	if rerr := c.store.Resync(ctx); rerr != nil {
		c.logger.Error("resync after failed commit", "err", rerr)
	}
	return &domain.CommitError{Step: step, ChangeIndex: index, InterviewID: ch.InterviewID, Err: cause}
}

// sendDigest emails the ops inbox a summary of the committed batch.
// Best-effort: a digest failure is logged, never surfaced as a commit failure.
func (c *Calendar) sendDigest(ctx context.Context, changes []*domain.PendingChange) {
	if c.email == nil {
		return
	}
	data := &domain.AssignmentDigestData{}
	for _, ch := range changes {
		data.Entries = append(data.Entries, domain.DigestEntry{
			StudentName: ch.StudentName,
			TutorName:   ch.TutorName,
			Date:        ch.Date,
			Time:        ch.Time,
		})
	}
	if err := c.email.SendAssignmentDigest(ctx, data); err != nil {
		c.logger.Error("assignment digest not sent", "err", err)
	}
}

// DiscardAll drops every staged change and resyncs, reverting all optimistic
// mutations to server truth.
func (c *Calendar) DiscardAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ledger.Clear()
	return c.store.Resync(ctx)
}

// MarkAvailable persists new available slots for a tutor. Validation and
// resync semantics live on the store.
func (c *Calendar) MarkAvailable(ctx context.Context, tutorID, date string, hours []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.MarkAvailable(ctx, tutorID, date, hours)
}

// RemoveAvailable deletes an existing available slot for a tutor.
func (c *Calendar) RemoveAvailable(ctx context.Context, tutorID, slotID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.RemoveAvailable(ctx, tutorID, slotID)
}

// Cancel unassigns a committed interview: the service clears the Zoom
// resource and emails both parties. Immediate, not staged. Any matching
// pending change is removed defensively and the store resyncs on success and
// on failure, so no optimistic state is left dangling.
func (c *Calendar) Cancel(ctx context.Context, interviewID, notes string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	callErr := c.client.CancelInterview(ctx, interviewID, notes)
	c.ledger.Remove(interviewID)
	delete(c.details, interviewID)
	if rerr := c.store.Resync(ctx); rerr != nil {
		c.logger.Error("resync after cancel", "interview_id", interviewID, "err", rerr)
	}
	if callErr != nil {
		return &domain.MutationError{Op: "cancel interview", Err: callErr}
	}
	return nil
}

// Delete removes an interview record entirely. Same immediate semantics as
// Cancel.
func (c *Calendar) Delete(ctx context.Context, interviewID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	callErr := c.client.DeleteInterview(ctx, interviewID)
	c.ledger.Remove(interviewID)
	delete(c.details, interviewID)
	if rerr := c.store.Resync(ctx); rerr != nil {
		c.logger.Error("resync after delete", "interview_id", interviewID, "err", rerr)
	}
	if callErr != nil {
		return &domain.MutationError{Op: "delete interview", Err: callErr}
	}
	return nil
}

// Details returns the expanded view of one interview, fetching interview,
// booking, and student availability lazily and caching the result by id.
func (c *Calendar) Details(ctx context.Context, interviewID string) (*domain.InterviewDetails, error) {
	c.mu.Lock()
	if d, ok := c.details[interviewID]; ok {
		c.mu.Unlock()
		return d, nil
	}
	c.mu.Unlock()

	rec, err := c.client.GetInterview(ctx, interviewID)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	d := &domain.InterviewDetails{
		ID:           rec.ID,
		BookingID:    rec.BookingID,
		StudentID:    rec.StudentID,
		StudentName:  rec.StudentName,
		StudentEmail: rec.StudentEmail,
		Package:      rec.Package,
		Universities: rec.Universities,
		Field:        rec.Field,
		Notes:        rec.Notes,
		Status:       rec.Status,
		ScheduledAt:  rec.ScheduledAt,
		TutorID:      rec.TutorID,
		TutorName:    rec.TutorName,
		ZoomJoinURL:  rec.ZoomJoinURL,
		Availability: []domain.StudentAvailabilitySlot{},
	}
	if rec.BookingID != "" {
		booking, err := c.client.GetBooking(ctx, rec.BookingID)
		if err != nil {
			return nil, &domain.FetchError{Err: err}
		}
		if d.Package == "" {
			d.Package = booking.Package
		}
	}
	if rec.StudentID != "" {
		windows, err := c.client.GetStudentAvailability(ctx, rec.StudentID)
		if err != nil {
			return nil, &domain.FetchError{Err: err}
		}
		d.Availability = windows
	}

	c.mu.Lock()
	c.details[interviewID] = d
	c.mu.Unlock()
	return d, nil
}

// CreateInterview registers a new interview for a paid booking and resyncs so
// it appears in the unassigned list.
func (c *Calendar) CreateInterview(ctx context.Context, in domain.CreateInterviewInput) (*domain.UnassignedInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	iv, err := c.client.CreateInterview(ctx, in)
	if err != nil {
		return nil, &domain.MutationError{Op: "create interview", Err: err}
	}
	if rerr := c.store.Resync(ctx); rerr != nil {
		c.logger.Error("resync after create interview", "err", rerr)
	}
	return iv, nil
}
