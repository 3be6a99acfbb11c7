package core

// Mode selects the equivalence a comparison checks.
type Mode uint8

const (
	// Equality checks structural equality.
	Equality Mode = iota
	// Clone checks structural equality with no composite reference shared
	// between the two sides.
	Clone
)

func (m Mode) String() string {
	if m == Clone {
		return "clone"
	}
	return "equality"
}

// Config holds the options of one comparison.
type Config struct {
	CompareSetOrder bool
	CompareMapOrder bool
	StrictNumbers   bool

	// Clone mode only.
	AllowSharedFunctions bool
	AllowSharedErrors    bool

	// IgnoredPaths holds normalized JSON Pointers whose subtrees always
	// compare equal.
	IgnoredPaths map[string]bool
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		StrictNumbers:        true,
		AllowSharedFunctions: true,
		AllowSharedErrors:    true,
	}
}

// IgnorePath adds path, in dotted or JSON Pointer form, to the ignored set.
func (c *Config) IgnorePath(path string) {
	if c.IgnoredPaths == nil {
		c.IgnoredPaths = make(map[string]bool)
	}
	c.IgnoredPaths[NormalizePath(path)] = true
}
