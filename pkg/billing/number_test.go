package billing

import "testing"

func TestNextNumberSequence(t *testing.T) {
	current := ""
	for i := 1; i <= 12; i++ {
		next, err := NextNumber(current)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if want := FormatNumber(i); next != want {
			t.Fatalf("expected %s got %s", want, next)
		}
		current = next
	}
}

func TestNextNumberPadding(t *testing.T) {
	cases := map[string]string{
		"":          "INV-0001",
		"INV-0001":  "INV-0002",
		"INV-0099":  "INV-0100",
		"INV-9999":  "INV-10000",
		"INV-10000": "INV-10001",
	}
	for current, want := range cases {
		got, err := NextNumber(current)
		if err != nil {
			t.Fatalf("NextNumber(%q): %v", current, err)
		}
		if got != want {
			t.Fatalf("NextNumber(%q): expected %s got %s", current, want, got)
		}
	}
}

func TestNextNumberMalformed(t *testing.T) {
	for _, bad := range []string{"0001", "INV-", "INV-abc", "FOO-0001"} {
		if _, err := NextNumber(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
