package deepcmp

import (
	"github.com/brunoga/deepcmp/internal/core"
)

// IsDeepEqual reports whether a and b are structurally equal.
// It supports cyclic references and unexported fields.
// You can customize behavior using EqualOption (e.g., CompareSetOrder).
func IsDeepEqual(a, b any, opts ...EqualOption) bool {
	cfg := core.DefaultConfig()
	for _, opt := range opts {
		opt.applyEqual(cfg)
	}
	return core.Compare(a, b, core.Equality, cfg) == nil
}

// IsDeepClone reports whether b is a deep clone of a: structurally equal,
// with no pointer, map, slice or chan shared between them. Shared funcs and
// errors are accepted unless disabled with AllowSharedFunctions or
// AllowSharedErrors.
func IsDeepClone(a, b any, opts ...CloneOption) bool {
	return DeepCompare(a, b, Clone, opts...) == nil
}

// DeepCompare compares a and b under mode and returns the first mismatch,
// or nil if there is none. Clone-only options are ignored in Equality mode.
func DeepCompare(a, b any, mode Mode, opts ...CloneOption) *Mismatch {
	cfg := core.DefaultConfig()
	for _, opt := range opts {
		opt.applyClone(cfg)
	}
	return core.Compare(a, b, mode, cfg)
}
