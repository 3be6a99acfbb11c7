package core

import (
	"math"
	"reflect"
	"testing"
)

type node struct {
	V    int
	Next *node
}

func TestCompare_TrialRollback(t *testing.T) {
	p1, p2 := &node{V: 1}, &node{V: 2}
	q1, q2 := &node{V: 1}, &node{V: 2}

	// Matching the set tries p1 against q2 first, which fails. That failed
	// trial must not make the later p1/q2 comparison succeed.
	left := []any{NewSet(p1, p2), p1}
	right := []any{NewSet(q2, q1), q2}

	m := Compare(left, right, Equality, nil)
	if m == nil {
		t.Fatal("expected a mismatch")
	}
	if m.Reason != ReasonNumberValueMismatch || m.Path.String() != "root[1].V" {
		t.Errorf("unexpected mismatch: %v", m)
	}
}

func TestCompare_CycleThroughPointers(t *testing.T) {
	a := &node{V: 1}
	a.Next = &node{V: 2, Next: a}
	b := &node{V: 1}
	b.Next = &node{V: 2, Next: b}

	if m := Compare(a, b, Equality, nil); m != nil {
		t.Errorf("unexpected mismatch: %v", m)
	}

	b.Next.V = 3
	m := Compare(a, b, Equality, nil)
	if m == nil || m.Path.String() != "root.Next.V" {
		t.Errorf("unexpected result: %v", m)
	}
}

func TestCompare_FreshStatePerCall(t *testing.T) {
	a := &node{V: 1}
	b := &node{V: 2}
	cfg := DefaultConfig()
	for i := 0; i < 2; i++ {
		if m := Compare(a, b, Equality, cfg); m == nil || m.Reason != ReasonNumberValueMismatch {
			t.Errorf("call %d: unexpected result %v", i, m)
		}
	}
}

func TestCompare_NilConfig(t *testing.T) {
	if Compare(0.0, math.Copysign(0, -1), Equality, nil) == nil {
		t.Error("nil config must use strict numbers")
	}
}

func TestNumbersEqual(t *testing.T) {
	negZero := math.Copysign(0, -1)
	nan := math.NaN()
	tests := []struct {
		name   string
		a, b   any
		strict bool
		want   bool
	}{
		{"ints", 1, 1, true, true},
		{"zero sign strict", 0.0, negZero, true, false},
		{"zero sign loose", 0.0, negZero, false, true},
		{"nan strict", nan, nan, true, true},
		{"nan loose", nan, nan, false, true},
		{"nan vs number", nan, 1.0, false, false},
		{"float32 nan", float32(nan), float32(nan), true, true},
		{"int vs float", 1, 1.0, false, true},
		{"int vs fraction", 1, 1.5, false, false},
		{"int vs uint", 3, uint(3), false, true},
		{"negative int vs uint", -1, uint64(math.MaxUint64), false, false},
		{"large int vs rounded float", int64(math.MaxInt64), float64(math.MaxInt64), false, false},
		{"complex vs real", complex(2, 0), 2, false, true},
		{"complex with imag", complex(2, 1), 2.0, false, false},
		{"complex zero sign strict", complex(0, 0), complex(negZero, 0), true, false},
		{"infinities", math.Inf(1), math.Inf(1), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numbersEqual(reflect.ValueOf(tt.a), reflect.ValueOf(tt.b), tt.strict)
			if got != tt.want {
				t.Errorf("numbersEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.strict, got, tt.want)
			}
		})
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[any]int{"b": 1, 2: 2, "a": 3, 1: 4, true: 5}
	keys := sortedKeys(reflect.ValueOf(m))

	var got []any
	for _, k := range keys {
		got = append(got, k.Interface())
	}
	want := []any{true, 1, 2, "a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedKeys = %v, want %v", got, want)
	}

	type pair struct {
		A int
		B string
	}
	pm := map[pair]bool{{2, "a"}: true, {1, "b"}: true, {1, "a"}: true}
	var pairs []pair
	for _, k := range sortedKeys(reflect.ValueOf(pm)) {
		pairs = append(pairs, k.Interface().(pair))
	}
	if !reflect.DeepEqual(pairs, []pair{{1, "a"}, {1, "b"}, {2, "a"}}) {
		t.Errorf("struct keys sorted as %v", pairs)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		v    any
		want Kind
	}{
		{[]byte{1}, KindBuffer},
		{[]int8{1}, KindTypedArray},
		{[]float64{1}, KindTypedArray},
		{[]int{1}, KindTypedArray},
		{[]string{"a"}, KindArray},
		{[2]int{}, KindArray},
		{map[string]int{}, KindObject},
		{map[int]string{}, KindMap},
		{map[string]struct{}{}, KindSet},
		{NewMap(), KindMap},
		{NewSet(), KindSet},
		{NewDataView([]byte{1}, 0, 1), KindDataView},
		{struct{}{}, KindObject},
		{&struct{}{}, KindPointer},
	}

	for _, tt := range tests {
		if got := Classify(reflect.ValueOf(tt.v)); got != tt.want {
			t.Errorf("Classify(%T) = %s, want %s", tt.v, got, tt.want)
		}
	}
}
