package internal

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelSet(t *testing.T) {
	s := NewLevelSet(LevelDebug, LevelError)

	if !s.Has(LevelDebug) || !s.Has(LevelError) {
		t.Error("set should contain debug and error")
	}
	if s.Has(LevelInfo) || s.Has(LevelWarn) {
		t.Error("set should not contain info or warn")
	}
	if s.Has(Level(-1)) || s.Has(Level(99)) {
		t.Error("invalid levels are never members")
	}

	s2 := s.With(LevelInfo)
	if !s2.Has(LevelInfo) {
		t.Error("With should add the level")
	}
	if s.Has(LevelInfo) {
		t.Error("With must not mutate the receiver")
	}

	s3 := s2.Without(LevelDebug)
	if s3.Has(LevelDebug) {
		t.Error("Without should remove the level")
	}
	if !s3.Has(LevelInfo) || !s3.Has(LevelError) {
		t.Error("Without should keep other members")
	}
}

func TestLevelSetEmpty(t *testing.T) {
	var s LevelSet
	if !s.IsEmpty() {
		t.Error("zero LevelSet should be empty")
	}
	if s.Has(LevelDebug) {
		t.Error("empty set has no members")
	}
	if got := len(s.Levels()); got != 0 {
		t.Errorf("empty set Levels() length = %d, want 0", got)
	}
}

func TestLevelSetLevelsOrder(t *testing.T) {
	s := NewLevelSet(LevelError, LevelDebug, LevelWarn)
	levels := s.Levels()

	want := []Level{LevelDebug, LevelWarn, LevelError}
	if len(levels) != len(want) {
		t.Fatalf("Levels() length = %d, want %d", len(levels), len(want))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("Levels()[%d] = %v, want %v", i, levels[i], want[i])
		}
	}
}

func TestLevelSetIgnoresInvalid(t *testing.T) {
	s := NewLevelSet(Level(-3), Level(42), LevelDebug)
	if got := len(s.Levels()); got != 1 {
		t.Errorf("set size = %d, want 1 (invalid levels ignored)", got)
	}
}
