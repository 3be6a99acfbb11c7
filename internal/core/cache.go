package core

import (
	"reflect"
	"strings"
)

type FieldInfo struct {
	Index int
	Name  string
	// Key is the name the field is compared under: its json tag name when
	// present, its Go name otherwise.
	Key string
	Tag StructTag
}

type TypeInfo struct {
	Fields []FieldInfo
}

// typeCache memoizes struct metadata for the duration of one comparison.
// It is owned by a single comparer and never shared between calls.
type typeCache map[reflect.Type]*TypeInfo

func (c typeCache) get(typ reflect.Type) *TypeInfo {
	if info, ok := c[typ]; ok {
		return info
	}
	info := newTypeInfo(typ)
	c[typ] = info
	return info
}

func newTypeInfo(typ reflect.Type) *TypeInfo {
	info := &TypeInfo{}
	if typ.Kind() != reflect.Struct {
		return info
	}
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Name == "_" {
			continue
		}
		tag := ParseTag(field)
		if tag.Ignore {
			continue
		}
		key := field.Name
		if jsonTag, ok := field.Tag.Lookup("json"); ok {
			name := strings.Split(jsonTag, ",")[0]
			if name == "-" && !strings.HasPrefix(jsonTag, "-,") {
				continue
			}
			if name != "" {
				key = name
			}
		}
		info.Fields = append(info.Fields, FieldInfo{
			Index: i,
			Name:  field.Name,
			Key:   key,
			Tag:   tag,
		})
	}
	return info
}
