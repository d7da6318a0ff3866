package state

import "testing"

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(3, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampCursor(1, 3); got != 1 {
		t.Fatalf("expected keep 1, got %d", got)
	}
	if got := ClampCursor(5, 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestPageStep(t *testing.T) {
	if got := PageStep(0, false); got != 10 {
		t.Fatalf("expected default step 10, got %d", got)
	}
	if got := PageStep(12, false); got != 8 {
		t.Fatalf("expected step 8, got %d", got)
	}
	if got := PageStep(12, true); got != 7 {
		t.Fatalf("expected step 7 with status, got %d", got)
	}
	if got := PageStep(5, true); got != 3 {
		t.Fatalf("expected minimum step 3, got %d", got)
	}
}

func TestListHeight(t *testing.T) {
	if got := ListHeight(0, false); got != 0 {
		t.Fatalf("expected unbounded height 0, got %d", got)
	}
	if got := ListHeight(20, true); got != 15 {
		t.Fatalf("expected 15 rows, got %d", got)
	}
	if got := ListHeight(3, true); got != 1 {
		t.Fatalf("expected at least one row, got %d", got)
	}
}

func TestCenteredWindow(t *testing.T) {
	cases := []struct {
		name               string
		total, cursor, h   int
		wantStart, wantEnd int
	}{
		{name: "empty", total: 0, cursor: 0, h: 5, wantStart: 0, wantEnd: 0},
		{name: "fits", total: 3, cursor: 2, h: 5, wantStart: 0, wantEnd: 3},
		{name: "centred", total: 20, cursor: 10, h: 5, wantStart: 8, wantEnd: 13},
		{name: "top", total: 20, cursor: 1, h: 5, wantStart: 0, wantEnd: 5},
		{name: "bottom", total: 20, cursor: 19, h: 5, wantStart: 15, wantEnd: 20},
		{name: "cursor out of range", total: 20, cursor: 50, h: 4, wantStart: 16, wantEnd: 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := CenteredWindow(tc.total, tc.cursor, tc.h)
			if start != tc.wantStart || end != tc.wantEnd {
				t.Fatalf("unexpected window: start=%d end=%d", start, end)
			}
		})
	}
}

func TestPosition(t *testing.T) {
	if got := Position(0, 0); got != "0/0" {
		t.Fatalf("unexpected empty position %q", got)
	}
	if got := Position(4, 10); got != "5/10" {
		t.Fatalf("unexpected position %q", got)
	}
}
