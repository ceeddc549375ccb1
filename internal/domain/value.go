package domain

import "strings"

// Kind tags the shape of a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindSequence
	KindMapping
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a loosely-typed field as a model wrote it. Scalars keep their
// literal text in Text (numbers keep the JSON literal, booleans are
// "true"/"false"). Mappings keep key order.
type Value struct {
	Kind   Kind
	Text   string
	Items  []Value
	Fields []Field
}

// Field is one key/value pair of a mapping.
type Field struct {
	Key   string
	Value Value
}

// Absent returns the zero Value.
func Absent() Value { return Value{} }

// Null returns a JSON null.
func Null() Value { return Value{Kind: KindNull} }

// String returns a text scalar.
func String(s string) Value { return Value{Kind: KindString, Text: s} }

// Number returns a numeric scalar from its literal text.
func Number(lit string) Value { return Value{Kind: KindNumber, Text: lit} }

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	if b {
		return Value{Kind: KindBool, Text: "true"}
	}
	return Value{Kind: KindBool, Text: "false"}
}

// Sequence returns a list value.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindSequence, Items: items}
}

// Mapping returns a keyed value with fields in the given order.
func Mapping(fields ...Field) Value {
	if fields == nil {
		fields = []Field{}
	}
	return Value{Kind: KindMapping, Fields: fields}
}

// Strings is a shorthand for a sequence of text scalars.
func Strings(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Sequence(items...)
}

// IsAbsent reports whether the field was missing.
func (v Value) IsAbsent() bool { return v.Kind == KindAbsent }

// IsScalar reports whether v is null, text, number or boolean.
func (v Value) IsScalar() bool {
	switch v.Kind {
	case KindNull, KindString, KindNumber, KindBool:
		return true
	}
	return false
}

// Get looks up a mapping key, ignoring case. The first match wins.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if strings.EqualFold(f.Key, key) {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Flatten renders v as plain text. Sequences are joined with sep, mappings
// contribute their values in order. Absent and null values are empty.
func (v Value) Flatten(sep string) string {
	switch v.Kind {
	case KindString, KindNumber, KindBool:
		return v.Text
	case KindSequence:
		parts := make([]string, 0, len(v.Items))
		for _, it := range v.Items {
			if s := it.Flatten(sep); strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	case KindMapping:
		parts := make([]string, 0, len(v.Fields))
		for _, f := range v.Fields {
			if s := f.Value.Flatten(sep); strings.TrimSpace(s) != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, sep)
	}
	return ""
}
