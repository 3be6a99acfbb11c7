package core

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

type entry struct {
	key, val reflect.Value
}

// mapEntries lists the entries of a Map in insertion order, or of a native
// map in key order. ordered reports whether the order is meaningful.
func mapEntries(v reflect.Value) (entries []entry, ordered bool) {
	if m := asMap(v); m != nil {
		entries = make([]entry, len(m.entries))
		for i, e := range m.entries {
			entries[i] = entry{reflect.ValueOf(e.Key), reflect.ValueOf(e.Value)}
		}
		return entries, true
	}
	keys := sortedKeys(v)
	entries = make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{k, v.MapIndex(k)}
	}
	return entries, false
}

// setElements lists the elements of a Set in insertion order, or the keys
// of a native map[K]struct{} in key order.
func setElements(v reflect.Value) (elems []reflect.Value, ordered bool) {
	if s := asSet(v); s != nil {
		elems = make([]reflect.Value, len(s.elems))
		for i, e := range s.elems {
			elems[i] = reflect.ValueOf(e)
		}
		return elems, true
	}
	return sortedKeys(v), false
}

// asMap returns the Map held by v, a *Map or a Map value, or nil.
func asMap(v reflect.Value) *Map {
	switch v.Type() {
	case mapType:
		return ValueToInterface(v).(*Map)
	case mapValueType:
		m := ValueToInterface(v).(Map)
		return &m
	}
	return nil
}

func asSet(v reflect.Value) *Set {
	switch v.Type() {
	case setType:
		return ValueToInterface(v).(*Set)
	case setValueType:
		s := ValueToInterface(v).(Set)
		return &s
	}
	return nil
}

func (c *comparer) compareMaps(a, b reflect.Value, path Path) *Mismatch {
	ea, orderedA := mapEntries(a)
	eb, orderedB := mapEntries(b)
	if len(ea) != len(eb) {
		return mismatch(path, ReasonMapSizeMismatch, "%d vs %d entries", len(ea), len(eb))
	}

	if c.cfg.CompareMapOrder && orderedA && orderedB {
		for i := range ea {
			if m := c.compare(ea[i].key, eb[i].key, path.Extend(MarkerStep("key", i))); m != nil {
				return m
			}
			if m := c.compare(ea[i].val, eb[i].val, path.Extend(IndexStep(i))); m != nil {
				return m
			}
		}
		return nil
	}

	keysB := make([]reflect.Value, len(eb))
	for j, e := range eb {
		keysB[j] = e.key
	}
	hint := exactKeyHint(a, b, keysB)

	used := make([]bool, len(eb))
	for i, e := range ea {
		step := path.Extend(MarkerStep("entry", i))
		j, near := c.firstFit(used, hint(e.key), func(j int) *Mismatch {
			if m := c.compare(e.key, eb[j].key, step); m != nil {
				return m
			}
			return c.compare(e.val, eb[j].val, step)
		})
		if j < 0 {
			return mismatch(step, ReasonMapEntryMismatch, "no entry on the right matches key %s%s",
				formatValue(e.key), nearMiss(near))
		}
		used[j] = true
	}
	return nil
}

func (c *comparer) compareSets(a, b reflect.Value, path Path) *Mismatch {
	ea, orderedA := setElements(a)
	eb, orderedB := setElements(b)
	if len(ea) != len(eb) {
		return mismatch(path, ReasonSetSizeMismatch, "%d vs %d elements", len(ea), len(eb))
	}

	if c.cfg.CompareSetOrder && orderedA && orderedB {
		for i := range ea {
			if m := c.compare(ea[i], eb[i], path.Extend(IndexStep(i))); m != nil {
				return m
			}
		}
		return nil
	}

	hint := exactKeyHint(a, b, eb)
	used := make([]bool, len(eb))
	for i, e := range ea {
		step := path.Extend(MarkerStep("element", i))
		j, near := c.firstFit(used, hint(e), func(j int) *Mismatch {
			return c.compare(e, eb[j], step)
		})
		if j < 0 {
			return mismatch(step, ReasonSetElementMismatch, "no element on the right matches %s%s",
				formatValue(e), nearMiss(near))
		}
		used[j] = true
	}
	return nil
}

// firstFit returns the first unused candidate that compares equal, trying
// hint before the others. Matching is greedy: a taken candidate is never
// reconsidered. When nothing matches it returns -1 and, if the hinted
// candidate was tried, its mismatch.
func (c *comparer) firstFit(used []bool, hint int, try func(j int) *Mismatch) (int, *Mismatch) {
	var near *Mismatch
	if hint >= 0 && !used[hint] {
		if near = c.trial(func() *Mismatch { return try(hint) }); near == nil {
			return hint, nil
		}
	}
	for j := range used {
		if used[j] || j == hint {
			continue
		}
		if c.trial(func() *Mismatch { return try(j) }) == nil {
			return j, nil
		}
	}
	return -1, near
}

// trial runs a comparison whose failure must not leave visited pairs
// behind.
func (c *comparer) trial(fn func() *Mismatch) *Mismatch {
	cp := c.visited.checkpoint()
	m := fn()
	if m != nil {
		c.visited.rollback(cp)
	}
	return m
}

// exactKeyHint returns a lookup from a left key to the position of the
// equal right key, for two native maps of the same type. It returns -1 when
// there is no such key or no lookup is possible.
func exactKeyHint(a, b reflect.Value, keysB []reflect.Value) func(reflect.Value) int {
	if a.Kind() != reflect.Map || a.Type() != b.Type() {
		return func(reflect.Value) int { return -1 }
	}
	index := make(map[any]int, len(keysB))
	for j, k := range keysB {
		index[ValueToInterface(k)] = j
	}
	return func(k reflect.Value) int {
		if j, ok := index[ValueToInterface(k)]; ok {
			return j
		}
		return -1
	}
}

type field struct {
	key    string
	val    reflect.Value
	shared bool
}

// objectFields lists the keys of a struct (in declaration order) or of a
// string keyed map (in key order) with their values.
func (c *comparer) objectFields(v reflect.Value) []field {
	if v.Kind() == reflect.Map {
		keys := sortedKeys(v)
		fields := make([]field, len(keys))
		for i, k := range keys {
			fields[i] = field{key: k.String(), val: v.MapIndex(k)}
		}
		return fields
	}
	info := c.types.get(v.Type())
	fields := make([]field, len(info.Fields))
	for i, f := range info.Fields {
		fields[i] = field{key: f.Key, val: v.Field(f.Index), shared: f.Tag.Shared}
	}
	return fields
}

func (c *comparer) compareObjects(a, b reflect.Value, path Path) *Mismatch {
	fa, fb := c.objectFields(a), c.objectFields(b)
	if len(fa) != len(fb) {
		return mismatch(path, ReasonObjectKeyCountMismatch, "%d vs %d keys", len(fa), len(fb))
	}

	index := make(map[string]int, len(fb))
	for j, f := range fb {
		index[f.key] = j
	}
	for _, f := range fa {
		if _, ok := index[f.key]; !ok {
			return mismatch(path.Extend(KeyStep(f.key)), ReasonObjectMissingKey, "key %q is missing on the right", f.key)
		}
	}

	for _, f := range fa {
		g := fb[index[f.key]]
		if c.clone && (f.shared || g.shared) && sameReference(unwrap(f.val), unwrap(g.val)) {
			continue
		}
		if m := c.compare(f.val, g.val, path.Extend(KeyStep(f.key))); m != nil {
			return m
		}
	}
	return nil
}

// formatValue renders scalars for details. Composites are named by type
// only since they may be cyclic.
func formatValue(v reflect.Value) string {
	v = unwrap(v)
	if !v.IsValid() {
		return "nil"
	}
	if classOf(v) == classComposite {
		return typeName(v)
	}
	s := fmt.Sprintf("%#v", ValueToInterface(v))
	if len(s) > 64 {
		cut := 61
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return s
}

func nearMiss(m *Mismatch) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf(" (closest candidate: %s)", m.Error())
}
