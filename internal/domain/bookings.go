package domain

import (
	"context"
	"time"
)

// Wire records returned by the external Bookings/Scheduling Service. The
// availability store transforms these into TutorSchedule values on fetch.

// TutorAvailabilityRecord is one tutor with their slot records in range.
type TutorAvailabilityRecord struct {
	TutorID    string                   `json:"tutor_id"`
	TutorName  string                   `json:"tutor_name"`
	TutorEmail string                   `json:"tutor_email"`
	Color      string                   `json:"color"`
	Slots      []AvailabilitySlotRecord `json:"slots"`
}

// AvailabilitySlotRecord is one availability or interview slot on the wire.
type AvailabilitySlotRecord struct {
	ID        string               `json:"id"`
	Date      string               `json:"date"`
	HourStart string               `json:"hour_start"`
	HourEnd   string               `json:"hour_end"`
	Type      string               `json:"type"`
	Interview *InterviewSlotRecord `json:"interview,omitempty"`
}

// InterviewSlotRecord carries the interview fields nested under a booked slot.
type InterviewSlotRecord struct {
	InterviewID string `json:"interview_id"`
	Title       string `json:"title"`
	StudentName string `json:"student_name"`
	Package     string `json:"package"`
	BookingID   string `json:"booking_id"`
}

// InterviewRecord is the detail view of one interview, assigned or not.
type InterviewRecord struct {
	ID           string     `json:"id"`
	BookingID    string     `json:"booking_id"`
	StudentID    string     `json:"student_id"`
	StudentName  string     `json:"student_name"`
	StudentEmail string     `json:"student_email"`
	Package      string     `json:"package"`
	Universities []string   `json:"universities"`
	Field        string     `json:"field"`
	Notes        string     `json:"notes"`
	Status       string     `json:"status"`
	ScheduledAt  *time.Time `json:"scheduled_at"`
	TutorID      string     `json:"tutor_id"`
	TutorName    string     `json:"tutor_name"`
	ZoomJoinURL  string     `json:"zoom_join_url"`
}

// BookingRecord is the booking composite behind an interview.
type BookingRecord struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	Package     string    `json:"package"`
	Status      string    `json:"status"`
	AmountPence int       `json:"amount_pence"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityInput is one slot in an availability bulk-create request.
type AvailabilityInput struct {
	Date      string `json:"date"`
	HourStart string `json:"hour_start"`
	HourEnd   string `json:"hour_end"`
	Type      string `json:"type"`
}

// AssignInterviewInput binds an interview to a tutor's availability slot.
// ScheduledAt is the local-naive "2006-01-02T15:04" timestamp the service expects.
type AssignInterviewInput struct {
	TutorID            string `json:"tutor_id"`
	ScheduledAt        string `json:"scheduled_at"`
	AvailabilitySlotID string `json:"availability_slot_id"`
}

// ConfirmInterviewInput triggers confirmation-email dispatch service-side.
type ConfirmInterviewInput struct {
	TutorID      string `json:"tutor_id"`
	TutorName    string `json:"tutor_name"`
	TutorEmail   string `json:"tutor_email"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	ScheduledAt  string `json:"scheduled_at"`
}

// CreateInterviewInput creates a new interview record for a paid booking.
type CreateInterviewInput struct {
	BookingID   string `json:"booking_id"`
	StudentID   string `json:"student_id"`
	University  string `json:"university"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// BookingsClient is the port to the external Bookings/Scheduling Service.
// Implementations must treat both a non-2xx status and a success:false
// envelope as failures.
type BookingsClient interface {
	ListTutorAvailability(ctx context.Context, from, to string) ([]TutorAvailabilityRecord, error)
	CreateAvailability(ctx context.Context, tutorID string, slots []AvailabilityInput) error
	DeleteAvailability(ctx context.Context, slotID string) error
	ListUnassignedInterviews(ctx context.Context) ([]*UnassignedInterview, error)
	GetInterview(ctx context.Context, interviewID string) (*InterviewRecord, error)
	GetBooking(ctx context.Context, bookingID string) (*BookingRecord, error)
	GetStudentAvailability(ctx context.Context, studentID string) ([]StudentAvailabilitySlot, error)
	AssignInterview(ctx context.Context, interviewID string, in AssignInterviewInput) error
	ConfirmInterview(ctx context.Context, interviewID string, in ConfirmInterviewInput) error
	CancelInterview(ctx context.Context, interviewID, notes string) error
	DeleteInterview(ctx context.Context, interviewID string) error
	CreateInterview(ctx context.Context, in CreateInterviewInput) (*UnassignedInterview, error)
}
