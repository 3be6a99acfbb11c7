package core

import (
	"reflect"
	"testing"
)

func TestTracker_Visit(t *testing.T) {
	typ := reflect.TypeOf(&struct{ A int }{})
	l := identity{typ: typ, ptr: 1}
	r1 := identity{typ: typ, ptr: 2}
	r2 := identity{typ: typ, ptr: 3}

	tr := newTracker()
	if tr.visit(l, r1) {
		t.Fatal("first visit reported as seen")
	}
	if !tr.visit(l, r1) {
		t.Error("second visit not reported as seen")
	}
	if tr.visit(l, r2) {
		t.Error("different right side reported as seen")
	}
	if tr.visit(r1, l) {
		t.Error("pairs are ordered, reversed pair reported as seen")
	}
}

func TestTracker_Rollback(t *testing.T) {
	typ := reflect.TypeOf(&struct{ A int }{})
	a := identity{typ: typ, ptr: 1}
	b := identity{typ: typ, ptr: 2}
	c := identity{typ: typ, ptr: 3}

	tr := newTracker()
	tr.visit(a, b)

	cp := tr.checkpoint()
	tr.visit(a, c)
	tr.visit(b, c)
	tr.rollback(cp)

	if !tr.visit(a, b) {
		t.Error("pair marked before the checkpoint was forgotten")
	}
	if tr.visit(a, c) {
		t.Error("pair marked after the checkpoint survived rollback")
	}
	if _, ok := tr.pairs[b]; ok {
		t.Error("empty inner set left behind")
	}
}
