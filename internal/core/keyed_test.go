package core

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatValue(t *testing.T) {
	if got := formatValue(reflect.ValueOf(42)); got != "42" {
		t.Errorf("formatValue(42) = %s", got)
	}
	if got := formatValue(reflect.Value{}); got != "nil" {
		t.Errorf("formatValue(invalid) = %s", got)
	}
	if got := formatValue(reflect.ValueOf([]int{1})); got != "[]int" {
		t.Errorf("formatValue([]int) = %s", got)
	}

	for _, s := range []string{strings.Repeat("é", 40), strings.Repeat("a", 10) + strings.Repeat("日本", 20)} {
		got := formatValue(reflect.ValueOf(s))
		if !utf8.ValidString(got) {
			t.Errorf("formatValue cut a rune: %q", got)
		}
		if !strings.HasSuffix(got, "...") || len(got) > 64 {
			t.Errorf("formatValue did not truncate: %q", got)
		}
	}
}
