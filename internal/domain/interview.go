package domain

import "time"

// UnassignedInterview is a booking-derived interview awaiting a tutor and time.
// It leaves the unassigned set the moment an assignment is staged and returns
// if the stage is discarded.
// swagger:model UnassignedInterview
type UnassignedInterview struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	StudentEmail  string    `json:"student_email"`
	Package       string    `json:"package"`
	Universities  []string  `json:"universities"`
	PreferredTime string    `json:"preferred_time,omitempty"`
	Field         string    `json:"field"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// StudentAvailabilitySlot is a student-declared availability window. It is
// read-only input to matching; this subsystem never mutates it.
// swagger:model StudentAvailabilitySlot
type StudentAvailabilitySlot struct {
	Date      string `json:"date"`
	DayOfWeek int    `json:"day_of_week"`
	HourStart int    `json:"hour_start"`
	HourEnd   int    `json:"hour_end"`
}

// InterviewDetails is the expanded on-demand view of one interview: booking
// info, the student's availability, and tutor/schedule/Zoom info once assigned.
// swagger:model InterviewDetails
type InterviewDetails struct {
	ID           string                    `json:"id"`
	BookingID    string                    `json:"booking_id"`
	StudentID    string                    `json:"student_id"`
	StudentName  string                    `json:"student_name"`
	StudentEmail string                    `json:"student_email"`
	Package      string                    `json:"package"`
	Universities []string                  `json:"universities"`
	Field        string                    `json:"field"`
	Notes        string                    `json:"notes,omitempty"`
	Status       string                    `json:"status"`
	ScheduledAt  *time.Time                `json:"scheduled_at,omitempty"`
	TutorID      string                    `json:"tutor_id,omitempty"`
	TutorName    string                    `json:"tutor_name,omitempty"`
	ZoomJoinURL  string                    `json:"zoom_join_url,omitempty"`
	Availability []StudentAvailabilitySlot `json:"availability"`
}
