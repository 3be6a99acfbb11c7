package core

import (
	"reflect"
	"regexp"
	"slices"
	"time"
)

func compareDates(a, b reflect.Value, path Path) *Mismatch {
	ta := ValueToInterface(a).(time.Time)
	tb := ValueToInterface(b).(time.Time)
	if ta.Equal(tb) {
		return nil
	}
	return mismatch(path, ReasonDateMismatch, "%s vs %s",
		ta.Format(time.RFC3339Nano), tb.Format(time.RFC3339Nano))
}

var flagPrefix = regexp.MustCompile(`^\(\?([imsU]+)\)`)

func comparePatterns(a, b reflect.Value, path Path) *Mismatch {
	srcA, flagsA := splitFlags(ValueToInterface(a).(*regexp.Regexp).String())
	srcB, flagsB := splitFlags(ValueToInterface(b).(*regexp.Regexp).String())
	if srcA != srcB {
		return mismatch(path, ReasonRegexpMismatch, "source %q vs %q", srcA, srcB)
	}
	if flagsA != flagsB {
		return mismatch(path, ReasonRegexpMismatch, "flags %q vs %q", flagsA, flagsB)
	}
	if la, lb := longestMatch(a), longestMatch(b); la != lb {
		return mismatch(path, ReasonRegexpMismatch, "%s vs %s", matchMode(la), matchMode(lb))
	}
	return nil
}

// longestMatch reports whether re was compiled with CompilePOSIX or had
// Longest called on it. Regexp has no accessor for it.
func longestMatch(re reflect.Value) bool {
	f := re.Elem().FieldByName("longest")
	return f.IsValid() && f.Kind() == reflect.Bool && f.Bool()
}

func matchMode(longest bool) string {
	if longest {
		return "leftmost-longest"
	}
	return "leftmost-first"
}

// splitFlags separates a leading flag group, "(?is)", from the expression.
// Flags are returned sorted so "(?si)" and "(?is)" agree.
func splitFlags(expr string) (source, flags string) {
	m := flagPrefix.FindStringSubmatch(expr)
	if m == nil {
		return expr, ""
	}
	f := []byte(m[1])
	slices.Sort(f)
	return expr[len(m[0]):], string(slices.Compact(f))
}
