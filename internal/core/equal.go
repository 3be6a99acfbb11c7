package core

import (
	"math/big"
	"reflect"
)

type comparer struct {
	cfg     *Config
	clone   bool
	visited *tracker
	types   typeCache
}

// Compare walks a and b in lockstep and returns the first mismatch, or nil
// if they are equal under mode. All state lives for the duration of the
// call only.
func Compare(a, b any, mode Mode, cfg *Config) *Mismatch {
	return ValueCompare(reflect.ValueOf(a), reflect.ValueOf(b), mode, cfg)
}

// ValueCompare is Compare for values already in reflect form.
func ValueCompare(a, b reflect.Value, mode Mode, cfg *Config) *Mismatch {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := &comparer{
		cfg:     cfg,
		clone:   mode == Clone,
		visited: newTracker(),
		types:   make(typeCache),
	}
	return c.compare(a, b, nil)
}

func (c *comparer) compare(a, b reflect.Value, path Path) *Mismatch {
	if len(c.cfg.IgnoredPaths) > 0 && c.cfg.IgnoredPaths[path.Pointer()] {
		return nil
	}
	a, b = unwrap(a), unwrap(b)

	if sameReference(a, b) {
		if c.clone && !c.sharingAllowed(a) {
			return mismatch(path, ReasonSharedReference, "both sides hold the same %s", typeName(a))
		}
		return nil
	}

	ca, cb := classOf(a), classOf(b)
	if ca == classNumber && cb == classNumber {
		return c.compareNumbers(a, b, path)
	}
	if ca != cb {
		return mismatch(path, ReasonTypeMismatch, "%s (%s) vs %s (%s)", ca, typeName(a), cb, typeName(b))
	}
	if ca != classComposite && a.Type() != b.Type() {
		return mismatch(path, ReasonTypeMismatch, "%s vs %s", typeName(a), typeName(b))
	}

	if na, nb := isNil(a), isNil(b); na || nb {
		if na && nb {
			return nil
		}
		return mismatch(path, ReasonNullMismatch, "%s vs %s", nilName(a), nilName(b))
	}

	switch ca {
	case classBool:
		if a.Bool() != b.Bool() {
			return mismatch(path, ReasonValueMismatch, "%t vs %t", a.Bool(), b.Bool())
		}
		return nil
	case classString:
		if a.String() != b.String() {
			return mismatch(path, ReasonValueMismatch, "%q vs %q", a.String(), b.String())
		}
		return nil
	case classFunc, classChan, classUnsafePointer:
		if a.Pointer() != b.Pointer() {
			return mismatch(path, ReasonValueMismatch, "different %s values", ca)
		}
		return nil
	case classBig:
		return compareBig(a, b, path)
	}

	return c.compareComposite(a, b, path)
}

// sharingAllowed reports whether clone checks accept v on both sides.
func (c *comparer) sharingAllowed(v reflect.Value) bool {
	if v.Kind() == reflect.Func {
		return c.cfg.AllowSharedFunctions
	}
	return c.cfg.AllowSharedErrors && v.Type().Implements(errorType)
}

func (c *comparer) compareComposite(a, b reflect.Value, path Path) *Mismatch {
	if ia, ok := identityOf(a); ok {
		if ib, ok := identityOf(b); ok && c.visited.visit(ia, ib) {
			return nil
		}
	}

	ka, kb := Classify(a), Classify(b)
	if ka != kb {
		return mismatch(path, ReasonInstanceMismatch, "%s (%s) vs %s (%s)", ka, typeName(a), kb, typeName(b))
	}

	switch ka {
	case KindPointer:
		return c.compare(a.Elem(), b.Elem(), path)
	case KindDate:
		return compareDates(a, b, path)
	case KindPattern:
		return comparePatterns(a, b, path)
	case KindBuffer:
		return compareBytes(a.Bytes(), b.Bytes(), path, ReasonBufferLengthMismatch, ReasonBufferByteMismatch)
	case KindDataView:
		va := ValueToInterface(a).(DataView)
		vb := ValueToInterface(b).(DataView)
		return compareBytes(va.Bytes(), vb.Bytes(), path, ReasonDataViewLengthMismatch, ReasonDataViewByteMismatch)
	case KindTypedArray:
		return c.compareTypedArrays(a, b, path)
	case KindArray:
		return c.compareArrays(a, b, path)
	case KindMap:
		return c.compareMaps(a, b, path)
	case KindSet:
		return c.compareSets(a, b, path)
	}
	return c.compareObjects(a, b, path)
}

func (c *comparer) compareArrays(a, b reflect.Value, path Path) *Mismatch {
	if a.Len() != b.Len() {
		return mismatch(path, ReasonArrayLengthMismatch, "%d vs %d elements", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if m := c.compare(a.Index(i), b.Index(i), path.Extend(IndexStep(i))); m != nil {
			return m
		}
	}
	return nil
}

func compareBig(a, b reflect.Value, path Path) *Mismatch {
	var equal bool
	switch x := ValueToInterface(a).(type) {
	case *big.Int:
		equal = x.Cmp(ValueToInterface(b).(*big.Int)) == 0
	case *big.Float:
		equal = x.Cmp(ValueToInterface(b).(*big.Float)) == 0
	case *big.Rat:
		equal = x.Cmp(ValueToInterface(b).(*big.Rat)) == 0
	}
	if equal {
		return nil
	}
	return mismatch(path, ReasonValueMismatch, "%v vs %v", ValueToInterface(a), ValueToInterface(b))
}

func nilName(v reflect.Value) string {
	if isNil(v) {
		return "nil"
	}
	return "non-nil " + typeName(v)
}
