// Package deepcmp decides whether two Go values are deeply equal, or are deep
// clones of each other, and pinpoints the first place where they diverge.
//
// Comparison is structural: pointers are followed, slices, maps and structs
// are compared by content, and cyclic graphs terminate. A clone check also
// requires that no composite reference (pointer, map, slice, chan) is shared
// between the two sides, which catches accidental aliasing after a copy.
//
// On failure DeepCompare returns a *Mismatch holding the path to the first
// divergence (rendered as "root.a[1]") and a stable Reason code.
package deepcmp

import (
	"github.com/brunoga/deepcmp/internal/core"
)

// Mode selects between equality and clone semantics.
type Mode = core.Mode

const (
	Equality = core.Equality
	Clone    = core.Clone
)

type (
	// Mismatch is the diagnostic for two values that do not compare equal.
	Mismatch = core.Mismatch
	// Path locates a node relative to the comparison roots.
	Path = core.Path
	// PathStep is a single key, index or marker of a Path.
	PathStep = core.PathStep
	// StepKind identifies the kind of a PathStep.
	StepKind = core.StepKind
	// Reason is a stable mismatch category.
	Reason = core.Reason
)

const (
	StepKey    = core.StepKey
	StepIndex  = core.StepIndex
	StepMarker = core.StepMarker
)

// Reason codes.
const (
	ReasonSharedReference        = core.ReasonSharedReference
	ReasonNumberValueMismatch    = core.ReasonNumberValueMismatch
	ReasonTypeMismatch           = core.ReasonTypeMismatch
	ReasonNullMismatch           = core.ReasonNullMismatch
	ReasonValueMismatch          = core.ReasonValueMismatch
	ReasonInstanceMismatch       = core.ReasonInstanceMismatch
	ReasonDateMismatch           = core.ReasonDateMismatch
	ReasonRegexpMismatch         = core.ReasonRegexpMismatch
	ReasonBufferLengthMismatch   = core.ReasonBufferLengthMismatch
	ReasonBufferByteMismatch     = core.ReasonBufferByteMismatch
	ReasonDataViewLengthMismatch = core.ReasonDataViewLengthMismatch
	ReasonDataViewByteMismatch   = core.ReasonDataViewByteMismatch
	ReasonTypedArrayCtorMismatch = core.ReasonTypedArrayCtorMismatch
	ReasonTypedArrayLenMismatch  = core.ReasonTypedArrayLenMismatch
	ReasonTypedArrayElemMismatch = core.ReasonTypedArrayElemMismatch
	ReasonArrayLengthMismatch    = core.ReasonArrayLengthMismatch
	ReasonMapSizeMismatch        = core.ReasonMapSizeMismatch
	ReasonMapEntryMismatch       = core.ReasonMapEntryMismatch
	ReasonSetSizeMismatch        = core.ReasonSetSizeMismatch
	ReasonSetElementMismatch     = core.ReasonSetElementMismatch
	ReasonObjectKeyCountMismatch = core.ReasonObjectKeyCountMismatch
	ReasonObjectMissingKey       = core.ReasonObjectMissingKey
)

type (
	// Map is an insertion ordered associative collection whose keys may be
	// any value. Its order matters only with CompareMapOrder.
	Map = core.Map
	// MapEntry is a key/value pair of a Map.
	MapEntry = core.MapEntry
	// Set is an insertion ordered collection of distinct values. Its order
	// matters only with CompareSetOrder.
	Set = core.Set
	// DataView is an untyped window over a byte buffer.
	DataView = core.DataView
)

// NewMap returns a Map holding the given key/value pairs in order.
func NewMap(pairs ...any) *Map {
	return core.NewMap(pairs...)
}

// NewSet returns a Set holding elems in order, without duplicates.
func NewSet(elems ...any) *Set {
	return core.NewSet(elems...)
}

// NewDataView returns a view of buf[offset:offset+length].
func NewDataView(buf []byte, offset, length int) DataView {
	return core.NewDataView(buf, offset, length)
}
