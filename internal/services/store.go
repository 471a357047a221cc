package services

import (
	"context"

	"medprep/internal/domain"
)

// Store is the availability store: every tutor's per-date slot map plus the
// unassigned-interview list, rebuilt wholesale from the bookings service. It
// is not safe for concurrent use on its own; the Calendar serializes access.
type Store struct {
	client domain.BookingsClient

	tutors     []*domain.TutorSchedule
	unassigned []*domain.UnassignedInterview

	// Date range of the last successful fetch, reused by Resync.
	from, to string
}

// NewStore returns an empty store backed by the given bookings client.
func NewStore(client domain.BookingsClient) *Store {
	return &Store{client: client}
}

// Fetch queries the bookings service for all tutors with their slots in range
// plus the unassigned interviews, transforms the wire records, and replaces
// the entire in-memory state. On failure the previous state is kept and a
// *domain.FetchError is returned.
func (s *Store) Fetch(ctx context.Context, from, to string) error {
	records, err := s.client.ListTutorAvailability(ctx, from, to)
	if err != nil {
		return &domain.FetchError{Err: err}
	}
	unassigned, err := s.client.ListUnassignedInterviews(ctx)
	if err != nil {
		return &domain.FetchError{Err: err}
	}

	tutors := make([]*domain.TutorSchedule, 0, len(records))
	for _, rec := range records {
		tutors = append(tutors, buildSchedule(rec))
	}

	s.tutors = tutors
	s.unassigned = unassigned
	s.from, s.to = from, to
	return nil
}

// Resync re-fetches using the range of the last successful fetch.
func (s *Store) Resync(ctx context.Context) error {
	return s.Fetch(ctx, s.from, s.to)
}

// Range returns the date range of the last successful fetch.
func (s *Store) Range() (from, to string) {
	return s.from, s.to
}

// buildSchedule transforms one wire record into a TutorSchedule, enforcing at
// most one slot per (date, hour): later duplicates are dropped.
func buildSchedule(rec domain.TutorAvailabilityRecord) *domain.TutorSchedule {
	t := domain.NewTutorSchedule(rec.TutorID, rec.TutorName, rec.TutorEmail, rec.Color)
	for _, sr := range rec.Slots {
		slot := &domain.TimeSlot{
			ID:        sr.ID,
			StartTime: sr.HourStart,
			EndTime:   sr.HourEnd,
			Type:      domain.SlotType(sr.Type),
		}
		if sr.Interview != nil {
			slot.Type = domain.SlotInterview
			slot.InterviewID = sr.Interview.InterviewID
			slot.Title = sr.Interview.Title
			slot.Student = sr.Interview.StudentName
			slot.Package = sr.Interview.Package
			slot.BookingID = sr.Interview.BookingID
		}
		t.AddSlot(sr.Date, slot)
	}
	return t
}

// Tutors returns the current schedules in store iteration order.
func (s *Store) Tutors() []*domain.TutorSchedule {
	return s.tutors
}

// Tutor returns the schedule for the given tutor id.
func (s *Store) Tutor(tutorID string) (*domain.TutorSchedule, bool) {
	for _, t := range s.tutors {
		if t.TutorID == tutorID {
			return t, true
		}
	}
	return nil, false
}

// SlotAt returns the slot at (tutor, date, hour), or nil if the tutor or slot
// does not exist.
func (s *Store) SlotAt(tutorID, date, hour string) *domain.TimeSlot {
	t, ok := s.Tutor(tutorID)
	if !ok {
		return nil
	}
	return t.SlotAt(date, hour)
}

// Unassigned returns the current unassigned interviews.
func (s *Store) Unassigned() []*domain.UnassignedInterview {
	return s.unassigned
}

// UnassignedByID returns the unassigned interview with the given id.
func (s *Store) UnassignedByID(id string) (*domain.UnassignedInterview, bool) {
	for _, iv := range s.unassigned {
		if iv.ID == id {
			return iv, true
		}
	}
	return nil, false
}

// RemoveUnassigned removes and returns the unassigned interview with the
// given id. Used for the optimistic side of staging; discard restores it via
// resync.
func (s *Store) RemoveUnassigned(id string) (*domain.UnassignedInterview, bool) {
	for i, iv := range s.unassigned {
		if iv.ID == id {
			s.unassigned = append(s.unassigned[:i], s.unassigned[i+1:]...)
			return iv, true
		}
	}
	return nil, false
}

// MarkAvailable persists new hour-long available slots for a tutor and
// resyncs on success. No optimistic mutation is attempted: slot ids are
// server-assigned, so a full refetch is the reconciliation strategy.
func (s *Store) MarkAvailable(ctx context.Context, tutorID, date string, hours []string) error {
	if _, ok := s.Tutor(tutorID); !ok {
		return domain.ErrTutorNotFound
	}
	if !domain.ValidDate(date) || len(hours) == 0 {
		return domain.ErrSlotNotAvailable
	}
	slots := make([]domain.AvailabilityInput, 0, len(hours))
	for _, h := range hours {
		if !domain.ValidHour(h) {
			return domain.ErrSlotNotAvailable
		}
		if existing := s.SlotAt(tutorID, date, h); existing != nil {
			return domain.ErrSlotNotAvailable
		}
		slots = append(slots, domain.AvailabilityInput{
			Date:      date,
			HourStart: h,
			HourEnd:   domain.NextHour(h),
			Type:      string(domain.SlotAvailable),
		})
	}
	if err := s.client.CreateAvailability(ctx, tutorID, slots); err != nil {
		return &domain.MutationError{Op: "mark available", Err: err}
	}
	return s.Resync(ctx)
}

// RemoveAvailable deletes an existing available slot and resyncs on success.
// Interview slots cannot be removed this way.
func (s *Store) RemoveAvailable(ctx context.Context, tutorID, slotID string) error {
	t, ok := s.Tutor(tutorID)
	if !ok {
		return domain.ErrTutorNotFound
	}
	var target *domain.TimeSlot
	for _, day := range t.Schedule {
		for _, slot := range day {
			if slot.ID == slotID {
				target = slot
			}
		}
	}
	if target == nil || target.Type != domain.SlotAvailable {
		return domain.ErrSlotNotAvailable
	}
	if err := s.client.DeleteAvailability(ctx, slotID); err != nil {
		return &domain.MutationError{Op: "remove availability", Err: err}
	}
	return s.Resync(ctx)
}
