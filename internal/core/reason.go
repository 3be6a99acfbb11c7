package core

// Reason names the category of the first mismatch found by a comparison.
// The string values are stable and safe to match on.
type Reason string

const (
	ReasonSharedReference        Reason = "sharedReference"
	ReasonNumberValueMismatch    Reason = "numberValueMismatch"
	ReasonTypeMismatch           Reason = "typeMismatch"
	ReasonNullMismatch           Reason = "nullMismatch"
	ReasonValueMismatch          Reason = "valueMismatch"
	ReasonInstanceMismatch       Reason = "instanceMismatch"
	ReasonDateMismatch           Reason = "dateMismatch"
	ReasonRegexpMismatch         Reason = "regexpMismatch"
	ReasonBufferLengthMismatch   Reason = "bufferLengthMismatch"
	ReasonBufferByteMismatch     Reason = "bufferByteMismatch"
	ReasonDataViewLengthMismatch Reason = "dataViewLengthMismatch"
	ReasonDataViewByteMismatch   Reason = "dataViewByteMismatch"
	ReasonTypedArrayCtorMismatch Reason = "typedArrayCtorMismatch"
	ReasonTypedArrayLenMismatch  Reason = "typedArrayLengthMismatch"
	ReasonTypedArrayElemMismatch Reason = "typedArrayElementMismatch"
	ReasonArrayLengthMismatch    Reason = "arrayLengthMismatch"
	ReasonMapSizeMismatch        Reason = "mapSizeMismatch"
	ReasonMapEntryMismatch       Reason = "mapEntryMismatch"
	ReasonSetSizeMismatch        Reason = "setSizeMismatch"
	ReasonSetElementMismatch     Reason = "setElementMismatch"
	ReasonObjectKeyCountMismatch Reason = "objectKeyCountMismatch"
	ReasonObjectMissingKey       Reason = "objectMissingKey"
)

func (r Reason) String() string {
	return string(r)
}
