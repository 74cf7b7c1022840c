// Package lvjson models JSON values discovered while navigating a document
// by path, without materializing a parse tree. Objects and arrays carry the
// raw span of text they occupy; decoding into sub-values happens lazily,
// only for the parts actually accessed.
// Created by dhawalhost (2026-08-26 10:42:17)
package lvjson

// String constants for common literals
const (
	constNull  = "null"
	constTrue  = "true"
	constFalse = "false"
)

// ValueType represents the kind of a JSON value
type ValueType uint8

const (
	TypeNull ValueType = iota
	TypeString
	TypeNumber
	TypeBoolean
	TypeObject
	TypeArray
)

// String returns the kind name
func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return constNull
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is one JSON value of exactly six kinds. A Value is immutable once
// constructed and owns its payload outright: the object/array Raw span is a
// syntactically complete literal (braces/brackets included) that re-parses
// on its own, with no reference back to the document it was cut from.
//
// All fields are comparable, so == is structural equality between Values.
// The zero Value is JSON null.
type Value struct {
	Type    ValueType
	Str     string // TypeString: decoded text, escapes already resolved
	Num     Number // TypeNumber: the literal, undecoded until queried
	Boolean bool   // TypeBoolean
	Raw     string // TypeObject/TypeArray: self-contained raw span
}

//------------------------------------------------------------------------------
// CONSTRUCTORS
//------------------------------------------------------------------------------

// String wraps decoded text as a JSON string value.
func String(s string) Value {
	return Value{Type: TypeString, Str: s}
}

// NumberValue wraps a numeric literal as a JSON number value.
func NumberValue(n Number) Value {
	return Value{Type: TypeNumber, Num: n}
}

// Object wraps a complete raw object literal, braces included. The span
// must be valid standalone JSON for the lazy accessors to find anything.
func Object(raw string) Value {
	return Value{Type: TypeObject, Raw: raw}
}

// Array wraps a complete raw array literal, brackets included.
func Array(raw string) Value {
	return Value{Type: TypeArray, Raw: raw}
}

// Bool wraps a JSON boolean.
func Bool(b bool) Value {
	return Value{Type: TypeBoolean, Boolean: b}
}

// Null returns the JSON null value.
func Null() Value {
	return Value{Type: TypeNull}
}

//------------------------------------------------------------------------------
// PREDICATES
//------------------------------------------------------------------------------

// IsString reports whether the value is a JSON string.
func (v Value) IsString() bool { return v.Type == TypeString }

// IsNumber reports whether the value is a JSON number.
func (v Value) IsNumber() bool { return v.Type == TypeNumber }

// IsArray reports whether the value is a JSON array.
func (v Value) IsArray() bool { return v.Type == TypeArray }

// IsObject reports whether the value is a JSON object.
func (v Value) IsObject() bool { return v.Type == TypeObject }

// IsBool reports whether the value is a JSON boolean.
func (v Value) IsBool() bool { return v.Type == TypeBoolean }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.Type == TypeNull }

//------------------------------------------------------------------------------
// RENDERING
//------------------------------------------------------------------------------

// String returns the canonical textual form: the decoded text for strings,
// the original literal for numbers (source precision preserved), the raw
// span for objects and arrays, "true"/"false" for booleans and "null" for
// null. This is also what %v and %s print.
func (v Value) String() string {
	switch v.Type {
	case TypeString:
		return v.Str
	case TypeNumber:
		return v.Num.String()
	case TypeBoolean:
		if v.Boolean {
			return constTrue
		}
		return constFalse
	case TypeObject, TypeArray:
		return v.Raw
	default:
		return constNull
	}
}

// GoString renders for %#v: strings come out wrapped in double quotes,
// every other kind prints exactly as String does.
func (v Value) GoString() string {
	if v.Type == TypeString {
		return `"` + v.Str + `"`
	}
	return v.String()
}

//------------------------------------------------------------------------------
// PATH NAVIGATION
//------------------------------------------------------------------------------

// Get resolves a path against an object or array value and reports whether
// anything was found. The path grammar (dot keys, numeric indices, escapes,
// wildcards) belongs to the Getter; the bytes pass through untouched. Every
// call scans the span from scratch — nothing is cached. Strings, numbers,
// booleans and null have no addressable children and always miss.
func (v Value) Get(path string) (Value, bool) {
	switch v.Type {
	case TypeObject, TypeArray:
		return NewGetter(v.Raw).Lookup(path)
	default:
		return Value{}, false
	}
}

// GetBytes is Get for a path already held as bytes.
func (v Value) GetBytes(path []byte) (Value, bool) {
	switch v.Type {
	case TypeObject, TypeArray:
		return NewGetter(v.Raw).LookupBytes(path)
	default:
		return Value{}, false
	}
}

//------------------------------------------------------------------------------
// SCALAR CONVERSIONS
//------------------------------------------------------------------------------

// Every conversion below is total: a kind that doesn't match yields the
// type's zero value instead of an error. Callers needing strictness check
// the Is* predicates first.

// Float returns the value as a float64. Booleans convert to 1 and 0;
// strings re-parse through Number, so a string and a number with the same
// text convert identically; objects, arrays and null yield 0.
func (v Value) Float() float64 {
	switch v.Type {
	case TypeNumber:
		return v.Num.Float()
	case TypeBoolean:
		if v.Boolean {
			return 1
		}
		return 0
	case TypeString:
		return NumberFromString(v.Str).Float()
	default:
		return 0
	}
}

// Uint returns the value as a uint64, with the same coercions as Float.
func (v Value) Uint() uint64 {
	switch v.Type {
	case TypeNumber:
		return v.Num.Uint()
	case TypeBoolean:
		if v.Boolean {
			return 1
		}
		return 0
	case TypeString:
		return NumberFromString(v.Str).Uint()
	default:
		return 0
	}
}

// Int returns the value as an int64, with the same coercions as Float.
func (v Value) Int() int64 {
	switch v.Type {
	case TypeNumber:
		return v.Num.Int()
	case TypeBoolean:
		if v.Boolean {
			return 1
		}
		return 0
	case TypeString:
		return NumberFromString(v.Str).Int()
	default:
		return 0
	}
}

// Bool returns the boolean payload, or false for every other kind. Note
// that numbers and the strings "true"/"1" do NOT coerce — only an actual
// JSON boolean reads back true.
func (v Value) Bool() bool {
	return v.Type == TypeBoolean && v.Boolean
}

//------------------------------------------------------------------------------
// COLLECTION CONVERSIONS
//------------------------------------------------------------------------------

// Vec decodes an array span into its elements in source order, duplicates
// preserved. Null yields an empty slice. Any other kind — objects included —
// comes back as a one-element slice holding the receiver, treating a lone
// value as a single-item list.
func (v Value) Vec() []Value {
	switch v.Type {
	case TypeArray:
		return NewGetter(v.Raw).Vec()
	case TypeNull:
		return nil
	default:
		return []Value{v}
	}
}

// Map decodes an object span into its key/value pairs. Duplicate keys
// resolve last-wins. Every non-object kind yields an empty map.
func (v Value) Map() map[string]Value {
	if v.Type != TypeObject {
		return map[string]Value{}
	}
	return NewGetter(v.Raw).Map()
}

// ForEach walks the elements of an object or array in source order. Array
// keys are the decimal element indices. Return false to stop early. Other
// kinds have nothing to walk.
func (v Value) ForEach(fn func(key string, val Value) bool) {
	switch v.Type {
	case TypeObject, TypeArray:
		NewGetter(v.Raw).ForEach(fn)
	}
}

//------------------------------------------------------------------------------
// LOOSE COMPARISONS
//------------------------------------------------------------------------------

// EqualString reports whether the value's textual form equals s. A number
// or boolean therefore compares equal to a string matching its literal —
// deliberate loosening for path-result comparisons.
func (v Value) EqualString(s string) bool {
	return v.String() == s
}

// EqualFloat reports whether the value converts to f, using the same lossy
// coercions as Float.
func (v Value) EqualFloat(f float64) bool {
	return v.Float() == f
}
