package domain

import (
	"errors"
	"fmt"
)

// Local validation failures. These never touch the network and leave all
// in-memory state untouched.
var (
	ErrInterviewNotFound = errors.New("interview not found in unassigned list")
	ErrTutorNotFound     = errors.New("tutor not found")
	ErrSlotNotAvailable  = errors.New("slot does not exist or is not available")
	ErrAlreadyStaged     = errors.New("interview already has a pending change")
	ErrCommitInFlight    = errors.New("a commit is already in progress")
)

// ErrNotFound is the generic not-found sentinel for lookups against the
// bookings service and local repositories.
var ErrNotFound = errors.New("not found")

// FetchError wraps a failed store resync. Callers show a retry affordance.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("fetch schedules: %v", e.Err) }
func (e *FetchError) Unwrap() error { return e.Err }

// MutationError wraps a failed availability/cancel/delete call. The paths that
// return it resync on both success and failure, so no optimistic state is left
// dangling.
type MutationError struct {
	Op  string
	Err error
}

func (e *MutationError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *MutationError) Unwrap() error { return e.Err }

// CommitError reports which staged change and which external step failed
// during a commit. Changes after the failing one were not attempted.
type CommitError struct {
	Step        string // "validate", "assign" or "confirm"
	ChangeIndex int
	InterviewID string
	Err         error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit change %d (interview %s) failed at %s: %v", e.ChangeIndex, e.InterviewID, e.Step, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }
