package deepcmp

import (
	"errors"
	"testing"

	"github.com/barkimedes/go-deepcopy"
	"github.com/huandu/go-clone"
	"github.com/mitchellh/copystructure"
)

type innerStruct struct {
	Description string
	ID          int
	Points      *innerStruct
}

type nestedStruct struct {
	Title     string
	InnerData innerStruct
	MoreData  *nestedStruct
}

type complexStruct struct {
	Name        string
	Age         int
	Data        map[string]interface{}
	Nested      nestedStruct
	Pointers    []*innerStruct
	Scores      []float64
	Tags        map[string]struct{}
	IsAvailable bool
}

func newComplex(cyclic bool) complexStruct {
	src := complexStruct{
		Name:        "Complex Example",
		Age:         42,
		Data:        map[string]interface{}{"key1": "value1", "key2": 12345, "list": []interface{}{1, "two"}},
		Scores:      []float64{1.5, 2.5},
		Tags:        map[string]struct{}{"a": {}, "b": {}},
		IsAvailable: true,
	}

	inner := &innerStruct{Description: "Inner struct instance", ID: 1}
	nested := nestedStruct{Title: "Nested Instance", InnerData: *inner}
	if cyclic {
		inner.Points = inner
		nested.InnerData.Points = inner
		nested.MoreData = &nested
	}

	src.Nested = nested
	src.Pointers = append(src.Pointers, inner)
	return src
}

func TestIsDeepClone_Basic(t *testing.T) {
	m := map[string]int{"a": 1}

	if IsDeepClone(m, m) {
		t.Error("a map is a clone of itself")
	}
	if !IsDeepClone(m, map[string]int{"a": 1}) {
		t.Error("a fresh map is not a clone")
	}
	if IsDeepClone(m, map[string]int{"a": 2}) {
		t.Error("a different map is a clone")
	}

	// Plain values carry no references.
	if !IsDeepClone(42, 42) {
		t.Error("42 is not a clone of 42")
	}
	if !IsDeepClone("s", "s") {
		t.Error(`"s" is not a clone of "s"`)
	}
}

func TestIsDeepClone_ShallowCopy(t *testing.T) {
	src := newComplex(false)
	dst := src

	if !IsDeepEqual(src, dst) {
		t.Fatal("shallow copy is not equal")
	}
	m := DeepCompare(src, dst, Clone)
	if m == nil {
		t.Fatal("shallow copy is a clone")
	}
	if m.Reason != ReasonSharedReference || m.Path.String() != "root.Data" {
		t.Errorf("unexpected mismatch: %v", m)
	}

	// Sharing deeper down is found as well.
	dst.Data = map[string]interface{}{"key1": "value1", "key2": 12345, "list": src.Data["list"]}
	m = DeepCompare(src, dst, Clone)
	if m == nil || m.Path.String() != "root.Data.list" {
		t.Errorf("unexpected mismatch: %v", m)
	}
}

func TestIsDeepClone_CopyStructure(t *testing.T) {
	// copystructure does not support cyclic references.
	src := newComplex(false)

	dst, err := copystructure.Copy(src)
	if err != nil {
		t.Fatalf("Copy failed: %v", err)
	}
	if m := DeepCompare(src, dst, Clone); m != nil {
		t.Errorf("copystructure result is not a clone: %v", m)
	}
}

func TestIsDeepClone_GoDeepCopy(t *testing.T) {
	src := newComplex(true)

	dst, err := deepcopy.Anything(src)
	if err != nil {
		t.Fatalf("Anything failed: %v", err)
	}
	if m := DeepCompare(src, dst, Clone); m != nil {
		t.Errorf("go-deepcopy result is not a clone: %v", m)
	}

	// The copy is independent.
	copied := dst.(complexStruct)
	copied.Pointers[0].ID = 7
	if IsDeepEqual(src, copied) {
		t.Error("modified copy is still equal")
	}
}

func TestIsDeepClone_GoClone(t *testing.T) {
	src := newComplex(false)
	if m := DeepCompare(src, clone.Clone(src), Clone); m != nil {
		t.Errorf("go-clone result is not a clone: %v", m)
	}

	cyclic := newComplex(true)
	if m := DeepCompare(cyclic, clone.Slowly(cyclic), Clone); m != nil {
		t.Errorf("go-clone slow result is not a clone: %v", m)
	}
}

func TestIsDeepClone_SharedFunctions(t *testing.T) {
	type S struct{ F func() int }
	fn := func() int { return 1 }
	a, b := S{F: fn}, S{F: fn}

	if !IsDeepClone(a, b) {
		t.Error("shared func rejected by default")
	}
	m := DeepCompare(a, b, Clone, AllowSharedFunctions(false))
	if m == nil || m.Reason != ReasonSharedReference || m.Path.String() != "root.F" {
		t.Errorf("unexpected mismatch: %v", m)
	}
}

func TestIsDeepClone_SharedErrors(t *testing.T) {
	type S struct{ Err error }
	err := errors.New("boom")
	a, b := S{Err: err}, S{Err: err}

	if !IsDeepClone(a, b) {
		t.Error("shared error rejected by default")
	}
	m := DeepCompare(a, b, Clone, AllowSharedErrors(false))
	if m == nil || m.Reason != ReasonSharedReference || m.Path.String() != "root.Err" {
		t.Errorf("unexpected mismatch: %v", m)
	}

	// Distinct errors with the same text are compared structurally.
	if !IsDeepClone(S{Err: errors.New("x")}, S{Err: errors.New("x")}, AllowSharedErrors(false)) {
		t.Error("distinct errors rejected")
	}
}

func TestIsDeepClone_SharedTag(t *testing.T) {
	type Logger struct{ Lines []string }
	type Service struct {
		Name string
		Log  *Logger `deep:"shared"`
	}
	log := &Logger{}

	if !IsDeepClone(Service{"a", log}, Service{"a", log}) {
		t.Error("field tagged shared was rejected")
	}
	if IsDeepClone(Service{"a", log}, Service{"b", log}) {
		t.Error("differing names accepted")
	}
	if !IsDeepClone(Service{"a", log}, Service{"a", &Logger{}}) {
		t.Error("distinct loggers rejected")
	}
}

func TestIsDeepClone_EqualityModeAllowsSharing(t *testing.T) {
	shared := []int{1, 2}
	a := map[string][]int{"x": shared}
	b := map[string][]int{"x": shared}

	if !IsDeepEqual(a, b) {
		t.Error("shared slice not equal")
	}
	if IsDeepClone(a, b) {
		t.Error("shared slice is a clone")
	}
}

func TestIsDeepClone_EmptySliceWithCapacity(t *testing.T) {
	type S struct{ Items []int }
	s := make([]int, 0, 8)

	if IsDeepClone(s, s) {
		t.Error("an empty slice with capacity is a clone of itself")
	}
	m := DeepCompare(S{s}, S{s}, Clone)
	if m == nil || m.Reason != ReasonSharedReference || m.Path.String() != "root.Items" {
		t.Errorf("unexpected mismatch: %v", m)
	}
	if !IsDeepEqual(S{s}, S{s}) {
		t.Error("shared empty slice is not equal")
	}

	if !IsDeepClone(S{make([]int, 0, 8)}, S{make([]int, 0, 8)}) {
		t.Error("distinct empty slices rejected")
	}
	// Without capacity there is no storage to share.
	if !IsDeepClone([]int{}, []int{}) {
		t.Error("zero capacity slices rejected")
	}
}

func TestIsDeepClone_CollectionValues(t *testing.T) {
	m := *NewMap(1, "a")
	alias := m
	if IsDeepClone(m, alias) {
		t.Error("Map values sharing storage are clones")
	}
	if !IsDeepClone(m, *NewMap(1, "a")) {
		t.Error("distinct Map values rejected")
	}

	s := *NewSet(1)
	if IsDeepClone(s, s) {
		t.Error("a Set value is a clone of itself")
	}
}
