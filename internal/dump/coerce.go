package dump

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayouts covers the date-time spellings seen in the dumps:
// ISO-8601 with the literal 'T' separator, optional fractional seconds,
// optional trailing 'Z', plus space-separated and date-only long-tail forms.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ToInt converts a raw attribute to an integer. Nil on empty or unparseable
// input; dump values are always plain base-10, so no locale handling.
func ToInt(s string) *int64 {
	if s == "" {
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}

	return &n
}

// ToBool converts a raw attribute to a bool. Nil on empty input; any other
// value maps to whether it equals the literal "true" case-insensitively.
// This permissive, lossy mapping matches the dump format's boolean spelling
// ("True"/"False") and must not be tightened: "yes" is false, not an error.
func ToBool(s string) *bool {
	if s == "" {
		return nil
	}

	b := strings.EqualFold(s, "true")

	return &b
}

// ToTimestamp validates a raw attribute as an ISO-8601-like date-time and
// passes the original string through unmodified. Nil on empty or
// unrecognized input: a malformed date nulls the field, never the row, and
// the pipeline never invents a value.
func ToTimestamp(s string) *string {
	if s == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return &s
		}
	}

	return nil
}

// ToText returns the raw attribute as-is, nil when absent or empty.
func ToText(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
