// Package assert turns deepcmp mismatches into errors suitable for tests and
// runtime checks.
package assert

import (
	"fmt"
	"strings"

	"github.com/brunoga/deepcmp"
)

// Error reports a failed assertion. It unwraps to the underlying
// *deepcmp.Mismatch.
type Error struct {
	Label string
	Hint  string

	// Path is the rendered location of the first divergence, "root.a[1]".
	Path   string
	Reason deepcmp.Reason
	Detail string

	mode     deepcmp.Mode
	mismatch *deepcmp.Mismatch
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Label != "" {
		b.WriteString(e.Label)
		b.WriteString(": ")
	}
	if e.mode == deepcmp.Clone {
		b.WriteString("values are not deep clones")
	} else {
		b.WriteString("values are not deep equal")
	}
	fmt.Fprintf(&b, " at %s: %s", e.Path, e.Reason)
	if e.Detail != "" {
		fmt.Fprintf(&b, " (%s)", e.Detail)
	}
	if e.Hint != "" {
		b.WriteString("; ")
		b.WriteString(e.Hint)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.mismatch
}

// Mismatch returns the engine result the error was built from.
func (e *Error) Mismatch() *deepcmp.Mismatch {
	return e.mismatch
}

type config struct {
	label string
	hint  string
	opts  []deepcmp.CloneOption
}

// Option configures an assertion.
type Option func(*config)

// Label prefixes the error message, e.g. with the name of the checked value.
func Label(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// Hint is appended to the error message.
func Hint(hint string) Option {
	return func(c *config) {
		c.hint = hint
	}
}

// Compare passes comparison options through to the engine.
func Compare(opts ...deepcmp.CloneOption) Option {
	return func(c *config) {
		c.opts = append(c.opts, opts...)
	}
}

// DeepEqual returns nil if actual and expected are structurally equal and an
// *Error describing the first divergence otherwise.
func DeepEqual(actual, expected any, opts ...Option) error {
	return check(actual, expected, deepcmp.Equality, opts)
}

// DeepClone returns nil if actual is a deep clone of expected and an *Error
// describing the first divergence or shared reference otherwise.
func DeepClone(actual, expected any, opts ...Option) error {
	return check(actual, expected, deepcmp.Clone, opts)
}

// MustDeepEqual panics with an *Error unless actual and expected are
// structurally equal.
func MustDeepEqual(actual, expected any, opts ...Option) {
	if err := DeepEqual(actual, expected, opts...); err != nil {
		panic(err)
	}
}

// MustDeepClone panics with an *Error unless actual is a deep clone of
// expected.
func MustDeepClone(actual, expected any, opts ...Option) {
	if err := DeepClone(actual, expected, opts...); err != nil {
		panic(err)
	}
}

func check(actual, expected any, mode deepcmp.Mode, opts []Option) error {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := deepcmp.DeepCompare(actual, expected, mode, cfg.opts...)
	if m == nil {
		return nil
	}
	return &Error{
		Label:    cfg.label,
		Hint:     cfg.hint,
		Path:     m.Path.String(),
		Reason:   m.Reason,
		Detail:   m.Detail,
		mode:     mode,
		mismatch: m,
	}
}
