package core

import (
	"math/big"
	"reflect"
	"regexp"
	"time"

	"github.com/brunoga/deepcmp/internal/unsafe"
)

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	timeType     = reflect.TypeOf(time.Time{})
	regexpType   = reflect.TypeOf((*regexp.Regexp)(nil))
	dataViewType = reflect.TypeOf(DataView{})
	mapType      = reflect.TypeOf((*Map)(nil))
	setType      = reflect.TypeOf((*Set)(nil))
	mapValueType = reflect.TypeOf(Map{})
	setValueType = reflect.TypeOf(Set{})
	bigIntType   = reflect.TypeOf((*big.Int)(nil))
	bigFloatType = reflect.TypeOf((*big.Float)(nil))
	bigRatType   = reflect.TypeOf((*big.Rat)(nil))
)

// class is the coarse category checked before any composite dispatch.
// Values of different classes can never be equal.
type class uint8

const (
	classComposite class = iota // includes nil interfaces
	classBool
	classNumber
	classString
	classFunc
	classChan
	classUnsafePointer
	classBig
)

func classOf(v reflect.Value) class {
	if !v.IsValid() {
		return classComposite
	}
	switch v.Type() {
	case bigIntType, bigFloatType, bigRatType:
		return classBig
	}
	switch v.Kind() {
	case reflect.Bool:
		return classBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return classNumber
	case reflect.String:
		return classString
	case reflect.Func:
		return classFunc
	case reflect.Chan:
		return classChan
	case reflect.UnsafePointer:
		return classUnsafePointer
	}
	return classComposite
}

func (c class) String() string {
	switch c {
	case classBool:
		return "bool"
	case classNumber:
		return "number"
	case classString:
		return "string"
	case classFunc:
		return "func"
	case classChan:
		return "chan"
	case classUnsafePointer:
		return "unsafe pointer"
	case classBig:
		return "big number"
	}
	return "composite"
}

// unwrap strips interface layers and makes the result readable even when
// it was reached through an unexported field.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	if v.IsValid() && !v.CanInterface() {
		unsafe.DisableRO(&v)
	}
	return v
}

func ValueToInterface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if !v.CanInterface() {
		unsafe.DisableRO(&v)
	}
	return v.Interface()
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.UnsafePointer, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// identityOf returns the reference identity of v. Values without one (nil
// references, zero capacity slices, pointers to zero-sized values, plain
// values) report false.
func identityOf(v reflect.Value) (identity, bool) {
	if !v.IsValid() || isNil(v) {
		return identity{}, false
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.Type().Elem().Size() == 0 {
			return identity{}, false
		}
		return identity{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Map, reflect.Func, reflect.Chan:
		return identity{typ: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		return sliceIdentity(v.Type(), v)
	case reflect.Struct:
		switch v.Type() {
		case dataViewType:
			dv := ValueToInterface(v).(DataView)
			room := cap(dv.buf) - dv.offset
			if room == 0 {
				return identity{}, false
			}
			id := identity{typ: dataViewType, ptr: reflect.ValueOf(dv.buf).Pointer() + uintptr(dv.offset), len: dv.length}
			if dv.length == 0 {
				id.cap = room
			}
			return id, true
		case mapValueType, setValueType:
			// Copies of a Map or Set value share their backing storage.
			return sliceIdentity(v.Type(), v.Field(0))
		}
	}
	return identity{}, false
}

// sliceIdentity identifies the storage behind s under typ. A slice with no
// capacity owns no storage and has no identity.
func sliceIdentity(typ reflect.Type, s reflect.Value) (identity, bool) {
	if s.IsNil() || s.Cap() == 0 || s.Type().Elem().Size() == 0 {
		return identity{}, false
	}
	id := identity{typ: typ, ptr: s.Pointer(), len: s.Len()}
	if s.Len() == 0 {
		id.cap = s.Cap()
	}
	return id, true
}

// sameReference reports whether a and b are the very same reference.
func sameReference(a, b reflect.Value) bool {
	ia, ok := identityOf(a)
	if !ok {
		return false
	}
	ib, ok := identityOf(b)
	return ok && ia == ib
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}
