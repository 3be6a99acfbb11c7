package assert

import (
	"errors"
	"strings"
	"testing"

	"github.com/brunoga/deepcmp"
)

func TestDeepEqual(t *testing.T) {
	if err := DeepEqual(map[string]any{"a": []any{1, 2}}, map[string]any{"a": []any{1, 2}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := DeepEqual(map[string]any{"a": []any{1, 2}}, map[string]any{"a": []any{1, 3}})
	if err == nil {
		t.Fatal("expected an error")
	}

	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if ae.Path != "root.a[1]" {
		t.Errorf("Path = %s", ae.Path)
	}
	if ae.Reason != deepcmp.ReasonNumberValueMismatch {
		t.Errorf("Reason = %s", ae.Reason)
	}
	if ae.Detail == "" {
		t.Error("empty Detail")
	}

	var m *deepcmp.Mismatch
	if !errors.As(err, &m) {
		t.Fatal("error does not unwrap to *deepcmp.Mismatch")
	}
	if m != ae.Mismatch() {
		t.Error("Mismatch() differs from the unwrapped value")
	}
}

func TestDeepClone(t *testing.T) {
	shared := []string{"x"}
	type S struct{ Tags []string }

	if err := DeepClone(S{[]string{"x"}}, S{[]string{"x"}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := DeepClone(S{shared}, S{shared})
	var ae *Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if ae.Reason != deepcmp.ReasonSharedReference || ae.Path != "root.Tags" {
		t.Errorf("unexpected error: %v", ae)
	}
	if !strings.Contains(err.Error(), "not deep clones") {
		t.Errorf("message does not mention clones: %s", err)
	}
}

func TestLabelAndHint(t *testing.T) {
	err := DeepEqual(1, 2, Label("config.port"), Hint("did the default change?"))
	if err == nil {
		t.Fatal("expected an error")
	}

	want := "config.port: values are not deep equal at root: numberValueMismatch (1 vs 2); did the default change?"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var ae *Error
	errors.As(err, &ae)
	if ae.Label != "config.port" || ae.Hint != "did the default change?" {
		t.Errorf("unexpected label/hint: %q %q", ae.Label, ae.Hint)
	}
}

func TestCompareOptions(t *testing.T) {
	a, b := deepcmp.NewSet(1, 2), deepcmp.NewSet(2, 1)

	if err := DeepEqual(a, b); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := DeepEqual(a, b, Compare(deepcmp.CompareSetOrder(true))); err == nil {
		t.Error("expected an error with CompareSetOrder")
	}
	if err := DeepEqual(1, 1.0, Compare(deepcmp.StrictNumbers(false))); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	fn := func() {}
	type S struct{ F func() }
	if err := DeepClone(S{fn}, S{fn}, Compare(deepcmp.AllowSharedFunctions(false))); err == nil {
		t.Error("expected an error with AllowSharedFunctions(false)")
	}
}

func TestMust(t *testing.T) {
	MustDeepEqual([]int{1}, []int{1})
	MustDeepClone([]int{1}, []int{1})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if _, ok := r.(*Error); !ok {
			t.Errorf("panic value is %T, want *Error", r)
		}
	}()
	s := []int{1}
	MustDeepClone(s, s)
}
