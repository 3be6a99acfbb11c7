package core

import (
	"math"
	"math/big"
	"reflect"
)

type numKind uint8

const (
	numInt numKind = iota
	numUint
	numFloat
	numComplex
)

func numKindOf(k reflect.Kind) numKind {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numUint
	case reflect.Float32, reflect.Float64:
		return numFloat
	}
	return numComplex
}

func (c *comparer) compareNumbers(a, b reflect.Value, path Path) *Mismatch {
	if a.Type() != b.Type() && c.cfg.StrictNumbers {
		return mismatch(path, ReasonTypeMismatch, "%s vs %s", a.Type(), b.Type())
	}
	if numbersEqual(a, b, c.cfg.StrictNumbers) {
		return nil
	}
	return mismatch(path, ReasonNumberValueMismatch, "%v vs %v", ValueToInterface(a), ValueToInterface(b))
}

// numbersEqual compares two numeric values. NaN always equals NaN. Under
// strict, zeros of different sign differ. Values of different numeric
// kinds are compared by exact mathematical value.
func numbersEqual(a, b reflect.Value, strict bool) bool {
	ka, kb := numKindOf(a.Kind()), numKindOf(b.Kind())
	if ka == kb {
		switch ka {
		case numInt:
			return a.Int() == b.Int()
		case numUint:
			return a.Uint() == b.Uint()
		case numFloat:
			return floatsEqual(a.Float(), b.Float(), strict)
		default:
			x, y := a.Complex(), b.Complex()
			return floatsEqual(real(x), real(y), strict) && floatsEqual(imag(x), imag(y), strict)
		}
	}

	reA, imA := exactParts(a, ka)
	reB, imB := exactParts(b, kb)
	return reA.equal(reB) && imA.equal(imB)
}

func floatsEqual(x, y float64, strict bool) bool {
	if x != x && y != y {
		return true
	}
	if x != y {
		return false
	}
	return !strict || x != 0 || math.Signbit(x) == math.Signbit(y)
}

// exact is a real number without rounding; nan marks NaN, which big.Float
// cannot hold.
type exact struct {
	f   *big.Float
	nan bool
}

func exactFloat(x float64) exact {
	if math.IsNaN(x) {
		return exact{nan: true}
	}
	return exact{f: big.NewFloat(x)}
}

func exactParts(v reflect.Value, k numKind) (re, im exact) {
	zero := exact{f: new(big.Float)}
	switch k {
	case numInt:
		return exact{f: new(big.Float).SetInt64(v.Int())}, zero
	case numUint:
		return exact{f: new(big.Float).SetUint64(v.Uint())}, zero
	case numFloat:
		return exactFloat(v.Float()), zero
	}
	x := v.Complex()
	return exactFloat(real(x)), exactFloat(imag(x))
}

// equal ignores the sign of zero.
func (x exact) equal(y exact) bool {
	if x.nan || y.nan {
		return x.nan && y.nan
	}
	return x.f.Cmp(y.f) == 0
}
