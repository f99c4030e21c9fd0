package dbg

// Truncation controls the rendered-length limit for metadata values.
// The zero value truncates at DefaultTruncateThreshold.
type Truncation struct {
	off       bool
	threshold int
	set       bool
}

// TruncateOff disables truncation entirely: values render at full
// length and the truncation marker is never appended.
func TruncateOff() Truncation {
	return Truncation{off: true, set: true}
}

// TruncateOn enables truncation at the implicit default threshold.
func TruncateOn() Truncation {
	return Truncation{threshold: DefaultTruncateThreshold, set: true}
}

// TruncateAt enables truncation at threshold n. Negative values fall
// back to the default threshold.
func TruncateAt(n int) Truncation {
	if n < 0 {
		return TruncateOn()
	}
	return Truncation{threshold: n, set: true}
}

// Off reports whether truncation is disabled.
func (t Truncation) Off() bool {
	return t.off
}

// Threshold returns the active threshold. Meaningless when Off.
func (t Truncation) Threshold() int {
	if !t.set && !t.off {
		return DefaultTruncateThreshold
	}
	return t.threshold
}

// Config is the effective, fully-resolved option set for one log call.
// It is a plain value object: resolution constructs it fresh and
// nothing mutates it afterwards.
type Config struct {
	// Enabled gates emission entirely, orthogonally to the namespace
	// filter. Both gates must pass.
	Enabled bool

	// Levels is the set of severities this call site may emit at.
	// A severity outside the set is silently dropped.
	Levels LevelSet

	// MaxDepth bounds nested-structure rendering in metadata values.
	MaxDepth int

	// IncludeTiming enables elapsed-time capture in traced sections.
	IncludeTiming bool

	// IncludeStack enables call-site capture in traced sections.
	IncludeStack bool

	// Truncate is the metadata value length limit.
	Truncate Truncation
}

// DefaultConfig returns the hard-coded baseline used when no layer
// specifies a key.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		Levels:        Levels(LevelDebug, LevelError),
		MaxDepth:      DefaultMaxDepth,
		IncludeTiming: true,
		IncludeStack:  true,
		Truncate:      TruncateAt(DefaultTruncateThreshold),
	}
}

// Layer is one partial contributor to Config resolution. Nil fields
// mean "not set here; keep the lower layer's value". Layers come from
// four sources, lowest to highest precedence: explicit defaults, the
// application, the registering module, and the call site.
type Layer struct {
	Enabled       *bool
	Levels        *LevelSet
	MaxDepth      *int
	IncludeTiming *bool
	IncludeStack  *bool
	Truncate      *Truncation

	// TruncateThreshold is the historical spelling of the truncation
	// setting. When set anywhere in the resolution chain it is
	// authoritative over Truncate and lands in the canonical Truncate
	// field of the resolved Config.
	TruncateThreshold *int
}

// IsZero reports whether the layer sets no keys at all.
func (l Layer) IsZero() bool {
	return l.Enabled == nil && l.Levels == nil && l.MaxDepth == nil &&
		l.IncludeTiming == nil && l.IncludeStack == nil &&
		l.Truncate == nil && l.TruncateThreshold == nil
}

// apply overrides cfg with the keys this layer sets. Malformed values
// (negative depth) are treated as absent — resolution never fails.
func (l Layer) apply(cfg Config) Config {
	if l.Enabled != nil {
		cfg.Enabled = *l.Enabled
	}
	if l.Levels != nil {
		cfg.Levels = *l.Levels
	}
	if l.MaxDepth != nil && *l.MaxDepth >= 0 {
		cfg.MaxDepth = *l.MaxDepth
	}
	if l.IncludeTiming != nil {
		cfg.IncludeTiming = *l.IncludeTiming
	}
	if l.IncludeStack != nil {
		cfg.IncludeStack = *l.IncludeStack
	}
	if l.Truncate != nil {
		cfg.Truncate = *l.Truncate
	}
	return cfg
}

// Chainable builders in the WithX-returns-a-copy style. Layer values
// stay cheap to copy; the pointer fields are shared, never mutated.

func (l Layer) WithEnabled(enabled bool) Layer {
	l.Enabled = &enabled
	return l
}

func (l Layer) WithLevels(levels ...Level) Layer {
	set := Levels(levels...)
	l.Levels = &set
	return l
}

func (l Layer) WithMaxDepth(depth int) Layer {
	l.MaxDepth = &depth
	return l
}

func (l Layer) WithTiming(include bool) Layer {
	l.IncludeTiming = &include
	return l
}

func (l Layer) WithStack(include bool) Layer {
	l.IncludeStack = &include
	return l
}

func (l Layer) WithTruncate(t Truncation) Layer {
	l.Truncate = &t
	return l
}

func (l Layer) WithTruncateThreshold(n int) Layer {
	l.TruncateThreshold = &n
	return l
}

// Resolve merges the four ordered layers into one effective Config.
//
// The merge is a left fold over the baseline: each layer overrides the
// keys it sets, later (higher-precedence) layers win per key. After
// the fold, a TruncateThreshold set by any layer — highest-precedence
// setter winning — overrides whatever the Truncate key resolved to.
// Resolve is pure and never fails; unknown states fall through to the
// baseline silently.
func Resolve(defaults, app, module, callSite Layer) Config {
	cfg := DefaultConfig()

	var legacy *int
	for _, layer := range [...]Layer{defaults, app, module, callSite} {
		cfg = layer.apply(cfg)
		if layer.TruncateThreshold != nil && *layer.TruncateThreshold >= 0 {
			legacy = layer.TruncateThreshold
		}
	}
	if legacy != nil {
		cfg.Truncate = TruncateAt(*legacy)
	}

	return cfg
}
