package board

import "testing"

func TestMoveStringRoundTrip(t *testing.T) {
	for _, s := range []string{"e2e4", "a1a8", "e7e8q", "b7b8n"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", s, err)
		}
		if got := MoveString(m); got != s {
			t.Errorf("MoveString = %q, want %q", got, s)
		}
	}
}

func TestMoveStringNoMove(t *testing.T) {
	if got := MoveString(NoMove); got != "0000" {
		t.Errorf("MoveString(NoMove) = %q, want 0000", got)
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "e2", "e2e9", "zzzz"} {
		if _, err := ParseMove(s); err == nil {
			t.Errorf("ParseMove(%q) should fail", s)
		}
	}
}
