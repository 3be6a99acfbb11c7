package core

import (
	"reflect"
	"strings"
)

// StructTag holds the options of a `deep:"..."` struct tag.
type StructTag struct {
	// Ignore ("-") drops the field from comparisons.
	Ignore bool
	// Shared ("shared") lets clone checks accept the same reference on both
	// sides of this field, e.g. a logger or a cache handle.
	Shared bool
}

func ParseTag(field reflect.StructField) StructTag {
	tag := field.Tag.Get("deep")
	if tag == "" {
		return StructTag{}
	}

	st := StructTag{}
	parts := strings.Split(tag, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "-":
			st.Ignore = true
		case "shared":
			st.Shared = true
		}
	}

	return st
}
