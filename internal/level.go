package internal

// Level identifies the severity of a log event.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) IsValid() bool {
	return l >= LevelDebug && l <= LevelError
}

// LevelSet is a set of severities, represented as a bitmask.
// The zero value is the empty set.
type LevelSet uint8

// NewLevelSet builds a set from the given levels.
// Invalid levels are ignored.
func NewLevelSet(levels ...Level) LevelSet {
	var s LevelSet
	for _, l := range levels {
		s = s.With(l)
	}
	return s
}

// Has reports whether the set contains the given level.
func (s LevelSet) Has(l Level) bool {
	if !l.IsValid() {
		return false
	}
	return s&(1<<uint(l)) != 0
}

// With returns a copy of the set with the given level added.
func (s LevelSet) With(l Level) LevelSet {
	if !l.IsValid() {
		return s
	}
	return s | 1<<uint(l)
}

// Without returns a copy of the set with the given level removed.
func (s LevelSet) Without(l Level) LevelSet {
	if !l.IsValid() {
		return s
	}
	return s &^ (1 << uint(l))
}

// IsEmpty reports whether the set contains no levels.
func (s LevelSet) IsEmpty() bool {
	return s == 0
}

// Levels returns the members of the set in severity order.
func (s LevelSet) Levels() []Level {
	levels := make([]Level, 0, 4)
	for l := LevelDebug; l <= LevelError; l++ {
		if s.Has(l) {
			levels = append(levels, l)
		}
	}
	return levels
}
