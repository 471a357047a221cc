package services

import (
	"github.com/google/uuid"

	"medprep/internal/domain"
)

// Ledger is the staged-change ledger: the ordered list of assignments
// proposed in this session but not yet persisted. Commit and discard
// semantics live on the Calendar; the ledger only tracks the list and its
// one invariant: at most one pending change per interview.
type Ledger struct {
	changes []*domain.PendingChange
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Stage appends a pending change, generating its local id. It fails with
// ErrAlreadyStaged when the interview already has a pending change, leaving
// the ledger unchanged.
func (l *Ledger) Stage(c *domain.PendingChange) error {
	if l.Has(c.InterviewID) {
		return domain.ErrAlreadyStaged
	}
	c.ID = uuid.NewString()
	c.Type = domain.PendingChangeAssignment
	l.changes = append(l.changes, c)
	return nil
}

// Has reports whether the interview has a pending change.
func (l *Ledger) Has(interviewID string) bool {
	for _, c := range l.changes {
		if c.InterviewID == interviewID {
			return true
		}
	}
	return false
}

// Remove deletes the pending change for the given interview, if present.
func (l *Ledger) Remove(interviewID string) bool {
	for i, c := range l.changes {
		if c.InterviewID == interviewID {
			l.changes = append(l.changes[:i], l.changes[i+1:]...)
			return true
		}
	}
	return false
}

// Clear drops all pending changes.
func (l *Ledger) Clear() {
	l.changes = nil
}

// Changes returns a copy of the pending changes in stage order.
func (l *Ledger) Changes() []*domain.PendingChange {
	out := make([]*domain.PendingChange, len(l.changes))
	copy(out, l.changes)
	return out
}

// Len returns the number of pending changes.
func (l *Ledger) Len() int {
	return len(l.changes)
}
