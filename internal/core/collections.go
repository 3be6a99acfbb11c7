package core

import (
	"fmt"
	"math"
	"reflect"
)

// MapEntry is a key/value pair of a Map.
type MapEntry struct {
	Key   any
	Value any
}

// Map is an insertion ordered associative collection. Unlike a Go map its
// keys may be any value, including maps and slices, which are keyed by
// reference.
type Map struct {
	entries []MapEntry
}

// NewMap returns a Map holding the given key/value pairs in order. It panics
// if pairs has an odd length.
func NewMap(pairs ...any) *Map {
	if len(pairs)%2 != 0 {
		panic(fmt.Sprintf("deepcmp: NewMap called with %d arguments, want key/value pairs", len(pairs)))
	}
	m := &Map{entries: make([]MapEntry, 0, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key, value any) *Map {
	if i := m.find(key); i >= 0 {
		m.entries[i].Value = value
		return m
	}
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
	return m
}

func (m *Map) Get(key any) (any, bool) {
	if i := m.find(key); i >= 0 {
		return m.entries[i].Value, true
	}
	return nil, false
}

func (m *Map) Delete(key any) bool {
	i := m.find(key)
	if i < 0 {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return true
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *Map) Entries() []MapEntry {
	return append([]MapEntry(nil), m.entries...)
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key, value any) bool) {
	for _, e := range m.entries {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

func (m *Map) find(key any) int {
	for i, e := range m.entries {
		if sameKey(e.Key, key) {
			return i
		}
	}
	return -1
}

// Set is an insertion ordered collection of distinct values. Elements that
// are maps, slices or funcs are distinguished by reference.
type Set struct {
	elems []any
}

func NewSet(elems ...any) *Set {
	s := &Set{elems: make([]any, 0, len(elems))}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts elem unless it is already present.
func (s *Set) Add(elem any) *Set {
	if !s.Has(elem) {
		s.elems = append(s.elems, elem)
	}
	return s
}

func (s *Set) Has(elem any) bool {
	for _, e := range s.elems {
		if sameKey(e, elem) {
			return true
		}
	}
	return false
}

func (s *Set) Delete(elem any) bool {
	for i, e := range s.elems {
		if sameKey(e, elem) {
			s.elems = append(s.elems[:i], s.elems[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// Values returns a copy of the elements in insertion order.
func (s *Set) Values() []any {
	return append([]any(nil), s.elems...)
}

func (s *Set) Range(fn func(elem any) bool) {
	for _, e := range s.elems {
		if !fn(e) {
			return
		}
	}
}

// DataView is an untyped window over a byte buffer. Two views compare by the
// bytes inside their windows.
type DataView struct {
	buf    []byte
	offset int
	length int
}

// NewDataView returns a view of buf[offset:offset+length]. It panics if the
// window does not fit in buf.
func NewDataView(buf []byte, offset, length int) DataView {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		panic(fmt.Sprintf("deepcmp: view [%d:%d] out of range for buffer of length %d", offset, offset+length, len(buf)))
	}
	return DataView{buf: buf, offset: offset, length: length}
}

// Buffer returns the whole underlying buffer.
func (v DataView) Buffer() []byte { return v.buf }

func (v DataView) Offset() int { return v.offset }

func (v DataView) Len() int { return v.length }

// Bytes returns the bytes inside the window. The result aliases the buffer.
func (v DataView) Bytes() []byte {
	return v.buf[v.offset : v.offset+v.length : v.offset+v.length]
}

// sameKey reports whether x and y denote the same collection key: equal
// comparable values (NaN matching NaN), or the same reference otherwise.
func sameKey(x, y any) bool {
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if !vx.IsValid() || !vy.IsValid() {
		return vx.IsValid() == vy.IsValid()
	}
	if vx.Type() != vy.Type() {
		return false
	}
	if vx.Comparable() && vy.Comparable() {
		if x == y {
			return true
		}
		switch vx.Kind() {
		case reflect.Float32, reflect.Float64:
			return math.IsNaN(vx.Float()) && math.IsNaN(vy.Float())
		}
		return false
	}
	id, ok := identityOf(vx)
	if !ok {
		return false
	}
	other, _ := identityOf(vy)
	return id == other
}
