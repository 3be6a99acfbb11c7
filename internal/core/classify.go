package core

import (
	"reflect"
)

// Kind is the comparison strategy selected for a composite value.
type Kind uint8

const (
	KindPointer Kind = iota
	KindDate
	KindPattern
	KindBuffer
	KindDataView
	KindTypedArray
	KindArray
	KindMap
	KindSet
	KindObject
)

var kindNames = [...]string{
	KindPointer:    "pointer",
	KindDate:       "date",
	KindPattern:    "regexp",
	KindBuffer:     "byte buffer",
	KindDataView:   "data view",
	KindTypedArray: "numeric array",
	KindArray:      "array",
	KindMap:        "map",
	KindSet:        "set",
	KindObject:     "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Classify selects the strategy for a non-nil composite value. It is called
// once per node and side.
func Classify(v reflect.Value) Kind {
	switch v.Type() {
	case timeType:
		return KindDate
	case regexpType:
		return KindPattern
	case dataViewType:
		return KindDataView
	case mapType, mapValueType:
		return KindMap
	case setType, setValueType:
		return KindSet
	}

	switch v.Kind() {
	case reflect.Slice:
		switch elem := v.Type().Elem().Kind(); {
		case elem == reflect.Uint8:
			return KindBuffer
		case isTypedElem(elem):
			return KindTypedArray
		}
		return KindArray
	case reflect.Array:
		return KindArray
	case reflect.Map:
		if isEmptyStruct(v.Type().Elem()) {
			return KindSet
		}
		if v.Type().Key().Kind() == reflect.String {
			return KindObject
		}
		return KindMap
	case reflect.Pointer:
		return KindPointer
	}
	return KindObject
}

// isTypedElem reports whether slices of k are numeric array views. uint8 is
// excluded since byte slices are buffers.
func isTypedElem(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isEmptyStruct(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}
