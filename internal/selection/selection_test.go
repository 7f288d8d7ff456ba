package selection

import (
	"testing"

	"go.seanlatimer.dev/amhub/internal/catalog"
)

func TestInitialStateIsIdle(t *testing.T) {
	var s Selection
	if s.State() != Idle {
		t.Errorf("State() = %v, want idle", s.State())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() reported a preset while idle")
	}
}

func TestSelectThenDismiss(t *testing.T) {
	var s Selection
	s.Select(catalog.Preset{ID: 1, Title: "ADITYA EDITZZ 3K PACK"})

	if s.State() != Viewing {
		t.Fatalf("State() = %v, want viewing", s.State())
	}
	p, ok := s.Current()
	if !ok || p.ID != 1 {
		t.Fatalf("Current() = (%d, %v), want (1, true)", p.ID, ok)
	}

	s.Dismiss()
	if s.State() != Idle {
		t.Errorf("State() after Dismiss = %v, want idle", s.State())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() reported a preset after Dismiss")
	}
}

func TestSelectWhileViewing(t *testing.T) {
	var s Selection
	var seen []State
	s.Select(catalog.Preset{ID: 1})
	seen = append(seen, s.State())
	s.Select(catalog.Preset{ID: 2})
	seen = append(seen, s.State())

	for i, st := range seen {
		if st != Viewing {
			t.Errorf("state %d = %v, want viewing", i, st)
		}
	}
	p, ok := s.Current()
	if !ok || p.ID != 2 {
		t.Errorf("Current() = (%d, %v), want (2, true)", p.ID, ok)
	}
}

func TestDismissWhileIdle(t *testing.T) {
	var s Selection
	s.Dismiss()
	if s.State() != Idle {
		t.Errorf("State() = %v, want idle", s.State())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		Idle:     "idle",
		Viewing:  "viewing",
		State(9): "unknown",
	}
	for st, want := range tests {
		if got := st.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(st), got, want)
		}
	}
}
