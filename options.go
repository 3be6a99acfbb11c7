package deepcmp

import (
	"github.com/brunoga/deepcmp/internal/core"
)

// EqualOption configures IsDeepEqual.
type EqualOption interface {
	applyEqual(*core.Config)
}

// CloneOption configures IsDeepClone and DeepCompare.
type CloneOption interface {
	applyClone(*core.Config)
}

// Option configures every comparison entry point.
type Option interface {
	EqualOption
	CloneOption
}

type option func(*core.Config)

func (o option) applyEqual(c *core.Config) { o(c) }
func (o option) applyClone(c *core.Config) { o(c) }

type cloneOption func(*core.Config)

func (o cloneOption) applyClone(c *core.Config) { o(c) }

// CompareSetOrder makes Set comparison order sensitive. Native
// map[K]struct{} sets have no order and are always compared unordered.
func CompareSetOrder(enable bool) Option {
	return option(func(c *core.Config) {
		c.CompareSetOrder = enable
	})
}

// CompareMapOrder makes Map comparison order sensitive. Native Go maps
// have no order and are always compared unordered.
func CompareMapOrder(enable bool) Option {
	return option(func(c *core.Config) {
		c.CompareMapOrder = enable
	})
}

// StrictNumbers controls number semantics. When enabled (the default) 0
// and -0 differ and numbers of different Go types never compare equal. When
// disabled, numbers are compared by mathematical value across types and the
// sign of zero is ignored. NaN equals NaN either way.
func StrictNumbers(enable bool) Option {
	return option(func(c *core.Config) {
		c.StrictNumbers = enable
	})
}

// IgnorePath returns an option that makes the comparison skip the subtree at
// path. The path may use the rendered notation ("root.A[1]", "A[1]") or
// JSON Pointer notation ("/A/1").
func IgnorePath(path string) Option {
	return option(func(c *core.Config) {
		c.IgnorePath(path)
	})
}

// AllowSharedFunctions controls whether clone checks accept the same func
// value on both sides. Enabled by default.
func AllowSharedFunctions(enable bool) CloneOption {
	return cloneOption(func(c *core.Config) {
		c.AllowSharedFunctions = enable
	})
}

// AllowSharedErrors controls whether clone checks accept the same error
// value on both sides. Enabled by default.
func AllowSharedErrors(enable bool) CloneOption {
	return cloneOption(func(c *core.Config) {
		c.AllowSharedErrors = enable
	})
}
