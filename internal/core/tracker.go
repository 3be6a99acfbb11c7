package core

import (
	"reflect"
)

// identity is the reference identity of a pointer, map, slice, func, chan
// or byte window. Slices include their length since sub-slices share a data
// pointer; empty slices that still own storage are told apart by capacity.
type identity struct {
	typ reflect.Type
	ptr uintptr
	len int
	cap int
}

type visitedPair struct {
	left, right identity
}

// tracker records the (left, right) reference pairs already entered during
// one comparison. A pair seen again is assumed equal, which is what makes
// comparison of cyclic graphs terminate.
//
// Pairs are journaled so trial comparisons (unordered collection matching)
// can forget what they marked when the trial fails.
type tracker struct {
	pairs   map[identity]map[identity]struct{}
	journal []visitedPair
}

func newTracker() *tracker {
	return &tracker{
		pairs: make(map[identity]map[identity]struct{}),
	}
}

// visit reports whether the pair was already entered and marks it if not.
func (t *tracker) visit(left, right identity) bool {
	rights, ok := t.pairs[left]
	if !ok {
		rights = make(map[identity]struct{})
		t.pairs[left] = rights
	} else if _, seen := rights[right]; seen {
		return true
	}
	rights[right] = struct{}{}
	t.journal = append(t.journal, visitedPair{left, right})
	return false
}

func (t *tracker) checkpoint() int {
	return len(t.journal)
}

// rollback forgets every pair marked after checkpoint cp.
func (t *tracker) rollback(cp int) {
	for i := len(t.journal) - 1; i >= cp; i-- {
		p := t.journal[i]
		rights := t.pairs[p.left]
		delete(rights, p.right)
		if len(rights) == 0 {
			delete(t.pairs, p.left)
		}
	}
	t.journal = t.journal[:cp]
}
