package domain

// PendingChangeAssignment is the only change type the ledger currently stages.
const PendingChangeAssignment = "assignment"

// PendingChange is one staged assignment: proposed in the UI, applied
// optimistically, not yet persisted to the bookings service.
// swagger:model PendingChange
type PendingChange struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	InterviewID  string `json:"interview_id"`
	TutorID      string `json:"tutor_id"`
	TutorName    string `json:"tutor_name"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
}
