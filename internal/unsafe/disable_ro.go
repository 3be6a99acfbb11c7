// Package unsafe lets the comparison engine read struct fields that reflection
// would otherwise refuse to hand out as interfaces.
package unsafe

import (
	"reflect"
	"unsafe"
)

type flag uintptr

const (
	flagStickyRO flag = 1 << 5
	flagEmbedRO  flag = 1 << 6
	flagRO       flag = flagStickyRO | flagEmbedRO
)

// DisableRO clears the read-only flag of v so values obtained through
// unexported struct fields can be passed to Interface(). Only v itself is
// modified, the value it refers to is untouched.
func DisableRO(v *reflect.Value) {
	flagField := reflect.ValueOf(v).Elem().FieldByName("flag")
	ptr := (*uintptr)(unsafe.Pointer(flagField.UnsafeAddr()))
	*ptr &^= uintptr(flagRO)
}
