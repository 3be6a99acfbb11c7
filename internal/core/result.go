package core

import (
	"fmt"
)

// Mismatch describes the first point at which two values diverge. A nil
// *Mismatch means the values compared equal.
type Mismatch struct {
	// Path locates the divergence relative to the two roots. An empty path
	// is a root-level mismatch.
	Path Path

	// Reason is the stable category of the mismatch.
	Reason Reason

	// Detail is a human readable elaboration and may be empty.
	Detail string
}

func (m *Mismatch) Error() string {
	if m.Detail == "" {
		return fmt.Sprintf("%s at %s", m.Reason, m.Path)
	}
	return fmt.Sprintf("%s at %s: %s", m.Reason, m.Path, m.Detail)
}

func mismatch(path Path, reason Reason, format string, args ...any) *Mismatch {
	return &Mismatch{
		Path:   path,
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
	}
}
