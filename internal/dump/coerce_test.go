package dump_test

import (
	"testing"

	"github.com/stackslice/stackslice/internal/dump"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		in   string
		want *int64
	}{
		{"42", int64p(42)},
		{"-7", int64p(-7)},
		{"0", int64p(0)},
		{"", nil},
		{"abc", nil},
		{"1.5", nil},
		{"1e3", nil},
	}

	for _, tt := range tests {
		got := dump.ToInt(tt.in)
		if !int64Eq(got, tt.want) {
			t.Errorf("ToInt(%q) = %v, want %v", tt.in, deref(got), deref(tt.want))
		}
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		in   string
		want *bool
	}{
		{"True", boolp(true)},
		{"true", boolp(true)},
		{"TRUE", boolp(true)},
		{"false", boolp(false)},
		{"False", boolp(false)},
		{"", nil},
		// Permissive, lossy mapping: any non-"true" value is false,
		// never an error.
		{"yes", boolp(false)},
		{"1", boolp(false)},
	}

	for _, tt := range tests {
		got := dump.ToBool(tt.in)
		if !boolEq(got, tt.want) {
			t.Errorf("ToBool(%q) = %v, want %v", tt.in, deref(got), deref(tt.want))
		}
	}
}

func TestToTimestamp(t *testing.T) {
	// Recognized inputs pass through unmodified.
	passthrough := []string{
		"2008-07-31T21:42:52.667",
		"2008-07-31T21:42:52",
		"2008-07-31T21:42:52Z",
		"2008-07-31 21:42:52",
		"2008-07-31",
	}

	for _, in := range passthrough {
		got := dump.ToTimestamp(in)
		if got == nil || *got != in {
			t.Errorf("ToTimestamp(%q) = %v, want passthrough", in, deref(got))
		}
	}

	// Everything else nulls out rather than failing the row.
	rejected := []string{"", "not-a-date", "31/07/2008", "2008-13-45T99:99:99"}

	for _, in := range rejected {
		if got := dump.ToTimestamp(in); got != nil {
			t.Errorf("ToTimestamp(%q) = %q, want nil", in, *got)
		}
	}
}

func TestToText(t *testing.T) {
	if got := dump.ToText(""); got != nil {
		t.Errorf("ToText(\"\") = %q, want nil", *got)
	}

	if got := dump.ToText("|go|sql|"); got == nil || *got != "|go|sql|" {
		t.Errorf("ToText(%q) = %v, want passthrough", "|go|sql|", deref(got))
	}
}

func int64p(n int64) *int64 { return &n }
func boolp(b bool) *bool    { return &b }

func int64Eq(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func boolEq(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(v any) any {
	switch p := v.(type) {
	case *int64:
		if p != nil {
			return *p
		}
	case *bool:
		if p != nil {
			return *p
		}
	case *string:
		if p != nil {
			return *p
		}
	}
	return nil
}
