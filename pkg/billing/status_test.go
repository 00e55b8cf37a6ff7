package billing

import "testing"

func TestTransitionTable(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusDraft, StatusSent},
		{StatusDraft, StatusCancelled},
		{StatusSent, StatusPaid},
		{StatusSent, StatusOverdue},
		{StatusSent, StatusCancelled},
		{StatusOverdue, StatusPaid},
		{StatusOverdue, StatusCancelled},
		{StatusDraft, StatusDraft}, // no-op
		{StatusPaid, StatusPaid},   // no-op on a terminal state
	}
	for _, tc := range allowed {
		if err := Transition(tc.from, tc.to); err != nil {
			t.Errorf("Transition(%s, %s): unexpected error %v", tc.from, tc.to, err)
		}
	}

	rejected := []struct{ from, to Status }{
		{StatusDraft, StatusPaid},
		{StatusDraft, StatusOverdue},
		{StatusPaid, StatusSent},
		{StatusPaid, StatusCancelled},
		{StatusCancelled, StatusDraft},
		{StatusCancelled, StatusSent},
		{StatusSent, StatusDraft},
	}
	for _, tc := range rejected {
		if err := Transition(tc.from, tc.to); err == nil {
			t.Errorf("Transition(%s, %s): expected error", tc.from, tc.to)
		}
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	if err := Transition(StatusDraft, "archived"); err == nil {
		t.Fatal("expected error for status outside the fixed set")
	}
	if err := Transition(StatusDraft, ""); err == nil {
		t.Fatal("expected error for empty status")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidStatus("deleted") {
		t.Error("deleted should not be valid")
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(StatusPaid) || !Terminal(StatusCancelled) {
		t.Error("paid and cancelled are terminal")
	}
	if Terminal(StatusDraft) || Terminal(StatusSent) || Terminal(StatusOverdue) {
		t.Error("draft, sent and overdue are not terminal")
	}
	if Terminal("archived") {
		t.Error("unknown status is not terminal")
	}
}
