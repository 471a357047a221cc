package domain

import (
	"fmt"
	"time"
)

// SlotType classifies an hour-aligned calendar slot on a tutor's day.
type SlotType string

const (
	SlotAvailable SlotType = "available"
	SlotInterview SlotType = "interview"
	SlotBlocked   SlotType = "blocked"
)

// EmptySlotID marks a grid cell with no backing slot record yet.
const EmptySlotID = "empty"

// TimeSlot is one hour-granularity slot within a tutor's day.
// StartTime and EndTime are hour-aligned "HH:00" strings.
// The interview fields are populated only when Type is SlotInterview;
// IsPending marks a staged-but-not-committed assignment.
// swagger:model TimeSlot
type TimeSlot struct {
	ID        string   `json:"id"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Type      SlotType `json:"type"`

	InterviewID string `json:"interview_id,omitempty"`
	Title       string `json:"title,omitempty"`
	Student     string `json:"student,omitempty"`
	Package     string `json:"package,omitempty"`
	BookingID   string `json:"booking_id,omitempty"`
	IsPending   bool   `json:"is_pending,omitempty"`
}

// TutorSchedule is one tutor's calendar: a mapping from ISO date ("2006-01-02")
// to that day's slots ordered by start time. It is rebuilt wholesale on every
// fetch from the bookings service and mutated in-memory by optimistic updates.
// swagger:model TutorSchedule
type TutorSchedule struct {
	TutorID    string                 `json:"tutor_id"`
	TutorName  string                 `json:"tutor_name"`
	TutorEmail string                 `json:"tutor_email"`
	Color      string                 `json:"color"`
	Schedule   map[string][]*TimeSlot `json:"schedule"`
}

// NewTutorSchedule returns a TutorSchedule with an empty schedule map.
func NewTutorSchedule(tutorID, name, email, color string) *TutorSchedule {
	return &TutorSchedule{
		TutorID:    tutorID,
		TutorName:  name,
		TutorEmail: email,
		Color:      color,
		Schedule:   make(map[string][]*TimeSlot),
	}
}

// SlotAt returns the slot starting at the given hour on the given date, or nil.
// At most one slot exists per (tutor, date, hour).
func (t *TutorSchedule) SlotAt(date, hour string) *TimeSlot {
	for _, s := range t.Schedule[date] {
		if s.StartTime == hour {
			return s
		}
	}
	return nil
}

// AddSlot inserts a slot keeping the day ordered by start time. It returns
// false without inserting when the hour is already occupied.
func (t *TutorSchedule) AddSlot(date string, slot *TimeSlot) bool {
	day := t.Schedule[date]
	for _, s := range day {
		if s.StartTime == slot.StartTime {
			return false
		}
	}
	i := 0
	for i < len(day) && day[i].StartTime < slot.StartTime {
		i++
	}
	day = append(day, nil)
	copy(day[i+1:], day[i:])
	day[i] = slot
	t.Schedule[date] = day
	return true
}

// HourString formats a whole hour as the wire "HH:00" form.
func HourString(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ValidDate reports whether s is an ISO calendar date ("2006-01-02").
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidHour reports whether s is an hour-aligned time of day ("HH:00").
func ValidHour(s string) bool {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return false
	}
	return t.Minute() == 0
}

// NextHour returns the "HH:00" string one hour after the given hour-aligned
// time, capping at "24:00" for the last slot of the day.
func NextHour(hour string) string {
	t, err := time.Parse("15:04", hour)
	if err != nil {
		return hour
	}
	if t.Hour() == 23 {
		return "24:00"
	}
	return HourString(t.Hour() + 1)
}
