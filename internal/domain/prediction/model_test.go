package prediction

import "testing"

func TestMatrix(t *testing.T) {
	m := make(Matrix)
	m.Set(7, 3, 5.5)

	if got := m.At(7, 3); got != 5.5 {
		t.Fatalf("At = %v, want 5.5", got)
	}
	if got := m.At(7, 4); got != 0 {
		t.Fatalf("missing gameweek should predict 0, got %v", got)
	}
	if got := m.At(8, 3); got != 0 {
		t.Fatalf("missing player should predict 0, got %v", got)
	}

	row := m.Gameweek(3)
	if row[7] != 5.5 {
		t.Fatalf("Gameweek row = %v", row)
	}
	if m.Gameweek(9) != nil {
		t.Fatalf("absent gameweek should be nil")
	}
}
