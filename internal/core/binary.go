package core

import (
	"bytes"
	"reflect"
)

func compareBytes(x, y []byte, path Path, lengthReason, byteReason Reason) *Mismatch {
	if len(x) != len(y) {
		return mismatch(path, lengthReason, "%d vs %d bytes", len(x), len(y))
	}
	if bytes.Equal(x, y) {
		return nil
	}
	for i := range x {
		if x[i] != y[i] {
			return mismatch(path.Extend(IndexStep(i)), byteReason, "0x%02x vs 0x%02x", x[i], y[i])
		}
	}
	return nil
}

// compareTypedArrays compares numeric slices. The slice type plays the role
// of a constructor: []int16 never equals []uint16, whatever the content.
func (c *comparer) compareTypedArrays(a, b reflect.Value, path Path) *Mismatch {
	if a.Type() != b.Type() {
		return mismatch(path, ReasonTypedArrayCtorMismatch, "%s vs %s", a.Type(), b.Type())
	}
	if a.Len() != b.Len() {
		return mismatch(path, ReasonTypedArrayLenMismatch, "%d vs %d elements", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		ea, eb := a.Index(i), b.Index(i)
		if !numbersEqual(ea, eb, c.cfg.StrictNumbers) {
			return mismatch(path.Extend(IndexStep(i)), ReasonTypedArrayElemMismatch,
				"%v vs %v", ValueToInterface(ea), ValueToInterface(eb))
		}
	}
	return nil
}
