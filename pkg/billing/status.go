package billing

import "fmt"

// Status is the lifecycle state of an invoice.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// transitions lists the allowed moves. paid and cancelled are terminal.
// overdue can still be settled; without overdue->paid it would be an
// accidental dead end.
var transitions = map[Status][]Status{
	StatusDraft:   {StatusSent, StatusCancelled},
	StatusSent:    {StatusPaid, StatusOverdue, StatusCancelled},
	StatusOverdue: {StatusPaid, StatusCancelled},
}

// ValidStatus reports whether s belongs to the fixed status set.
func ValidStatus(s Status) bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func Terminal(s Status) bool {
	return ValidStatus(s) && len(transitions[s]) == 0
}

// Transition validates a status change. Re-asserting the current status is
// allowed as a no-op; anything outside the fixed set or the transition
// table is rejected.
func Transition(from, to Status) error {
	if !ValidStatus(to) {
		return fmt.Errorf("billing: unknown status %q", to)
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("billing: cannot change status from %s to %s", from, to)
}
