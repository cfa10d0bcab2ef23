package syntax

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the native representation of a cell value. String covers
// everything read from a text source such as CSV; the remaining kinds cover
// cells that arrive pre-typed from a typed tabular structure.
type Kind int

const (
	// KindMissing marks an absent cell (no value at all, as opposed to an
	// empty string). It never passes syntax checking and only triggers a
	// finding when the field is required.
	KindMissing Kind = iota
	KindString
	KindBool
	KindFloat
	KindInt
	KindTime
)

// String returns the kind name, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindTime:
		return "timestamp"
	}
	return "unknown"
}

// Value is a cell value together with its native kind. The matcher uses the
// kind tag to decide between textual syntax checking and typed consistency
// checking, so callers never rely on runtime type inspection.
type Value struct {
	kind Kind
	str  string
	b    bool
	f    float64
	i    int64
	t    time.Time
}

// Missing returns the absent-cell value.
func Missing() Value { return Value{kind: KindMissing} }

// String wraps a textual cell value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a pre-typed boolean cell value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Float wraps a pre-typed floating-point cell value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Int wraps a pre-typed integer cell value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Time wraps a pre-typed timestamp cell value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Kind returns the native kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell holds no usable value: either an absent
// cell or a string that is empty after normalization.
func (v Value) IsMissing() bool {
	if v.kind == KindMissing {
		return true
	}
	return v.kind == KindString && normalize(v.str) == ""
}

// StringForm renders the value as text. For string values this is the
// normalized text; typed values use their canonical rendering.
func (v Value) StringForm() string {
	switch v.kind {
	case KindString:
		return normalize(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindTime:
		return v.t.Format(time.RFC3339)
	}
	return ""
}

// normalize collapses whitespace runs to single spaces, trims the edges and
// removes the space following commas. Applied to string values and to every
// descriptor before matching.
func normalize(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, ", ", ",")
}
