package lvjson

import (
	"fmt"
	"sync"
	"testing"
)

// TestPredicates tests that each kind answers exactly its own predicate
func TestPredicates(t *testing.T) {
	values := []struct {
		name string
		v    Value
		want ValueType
	}{
		{"string", String("ajson"), TypeString},
		{"number", NumberValue(NumberFromBytes([]byte("3"))), TypeNumber},
		{"object", Object(`{"a":1}`), TypeObject},
		{"array", Array(`[1,2,3]`), TypeArray},
		{"bool", Bool(true), TypeBoolean},
		{"null", Null(), TypeNull},
	}

	for _, tt := range values {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Type != tt.want {
				t.Fatalf("Expected type %v, got %v", tt.want, tt.v.Type)
			}
			preds := map[ValueType]bool{
				TypeString:  tt.v.IsString(),
				TypeNumber:  tt.v.IsNumber(),
				TypeObject:  tt.v.IsObject(),
				TypeArray:   tt.v.IsArray(),
				TypeBoolean: tt.v.IsBool(),
				TypeNull:    tt.v.IsNull(),
			}
			for typ, got := range preds {
				if want := typ == tt.want; got != want {
					t.Errorf("Predicate for %v = %v, want %v", typ, got, want)
				}
			}
		})
	}
}

// TestZeroValueIsNull tests that a zero Value behaves like JSON null
func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() {
		t.Error("Expected zero Value to be null")
	}
	if v.String() != "null" {
		t.Errorf("Expected 'null', got %q", v.String())
	}
}

// TestStringRendering tests the String/GoString split: %#v quotes string
// values, %v never quotes anything
func TestStringRendering(t *testing.T) {
	v := String("ajson")
	if got := fmt.Sprintf("%#v", v); got != `"ajson"` {
		t.Errorf("Expected %q, got %q", `"ajson"`, got)
	}
	if got := fmt.Sprintf("%v", v); got != "ajson" {
		t.Errorf("Expected %q, got %q", "ajson", got)
	}

	// Every other kind renders identically both ways
	others := []Value{
		NumberValue(NumberFromString("3.14")),
		Object(`{"a":1}`),
		Array(`[1,2]`),
		Bool(true),
		Null(),
	}
	for _, v := range others {
		if fmt.Sprintf("%#v", v) != fmt.Sprintf("%v", v) {
			t.Errorf("Expected identical renderings for %v", v.Type)
		}
	}
}

// TestAsString tests the canonical textual forms
func TestAsString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{String("hello"), "hello"},
		{NumberValue(NumberFromString("3.140")), "3.140"}, // source formatting survives
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Object(`{"name":"ajson"}`), `{"name":"ajson"}`},
		{Array(`[1, 2, 3]`), `[1, 2, 3]`},
		{Null(), "null"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}

// TestScalarConversionDefaults pins the full coercion table. The asymmetry
// (Boolean(true) -> 1, everything unmatched -> 0) is deliberate: accessor
// chains over path results should never have to thread errors.
func TestScalarConversionDefaults(t *testing.T) {
	tests := []struct {
		name      string
		v         Value
		wantFloat float64
		wantUint  uint64
		wantInt   int64
		wantBool  bool
	}{
		{"number", NumberValue(NumberFromString("42")), 42, 42, 42, false},
		{"negative number", NumberValue(NumberFromString("-7")), -7, 0, -7, false},
		{"true", Bool(true), 1, 1, 1, true},
		{"false", Bool(false), 0, 0, 0, false},
		{"numeric string", String("12.5"), 12.5, 12, 12, false},
		{"non-numeric string", String("ajson"), 0, 0, 0, false},
		{"object", Object(`{"a":1}`), 0, 0, 0, false},
		{"array", Array(`[1]`), 0, 0, 0, false},
		{"null", Null(), 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Float(); got != tt.wantFloat {
				t.Errorf("Float() = %v, want %v", got, tt.wantFloat)
			}
			if got := tt.v.Uint(); got != tt.wantUint {
				t.Errorf("Uint() = %v, want %v", got, tt.wantUint)
			}
			if got := tt.v.Int(); got != tt.wantInt {
				t.Errorf("Int() = %v, want %v", got, tt.wantInt)
			}
			if got := tt.v.Bool(); got != tt.wantBool {
				t.Errorf("Bool() = %v, want %v", got, tt.wantBool)
			}
		})
	}
}

// TestBoolNoCoercion tests that only a real boolean reads back true
func TestBoolNoCoercion(t *testing.T) {
	if String("true").Bool() {
		t.Error("Expected String(\"true\").Bool() to be false")
	}
	if NumberValue(NumberFromString("1")).Bool() {
		t.Error("Expected number 1 to not coerce to true")
	}
	if !Bool(true).Bool() {
		t.Error("Expected Bool(true).Bool() to be true")
	}
}

// TestStringReparsesAsNumber tests that a string and a number with the
// same text convert identically
func TestStringReparsesAsNumber(t *testing.T) {
	s := String("3.5")
	n := NumberValue(NumberFromString("3.5"))
	if s.Float() != n.Float() {
		t.Errorf("Expected %v, got %v", n.Float(), s.Float())
	}
	if s.Int() != n.Int() {
		t.Errorf("Expected %v, got %v", n.Int(), s.Int())
	}
	if s.Uint() != n.Uint() {
		t.Errorf("Expected %v, got %v", n.Uint(), s.Uint())
	}
}

// TestVec tests sequence decoding and the scalar-as-1-element-list rule
func TestVec(t *testing.T) {
	// Array decodes in source order, duplicates preserved
	got := Array(`[1, "two", true, null, 1]`).Vec()
	if len(got) != 5 {
		t.Fatalf("Expected 5 elements, got %d", len(got))
	}
	if got[0].Int() != 1 {
		t.Errorf("Expected 1, got %d", got[0].Int())
	}
	if got[1].String() != "two" {
		t.Errorf("Expected 'two', got %q", got[1].String())
	}
	if !got[2].Bool() {
		t.Error("Expected true")
	}
	if !got[3].IsNull() {
		t.Error("Expected null")
	}
	if got[4] != got[0] {
		t.Error("Expected duplicate elements to be preserved and equal")
	}

	// Null decodes to nothing
	if got := Null().Vec(); len(got) != 0 {
		t.Errorf("Expected empty slice for null, got %d elements", len(got))
	}

	// Everything else, objects included, becomes a 1-element list
	for _, v := range []Value{
		String("ajson"),
		NumberValue(NumberFromString("3")),
		Bool(false),
		Object(`{"a":1}`),
	} {
		seq := v.Vec()
		if len(seq) != 1 {
			t.Fatalf("Expected 1 element for %v, got %d", v.Type, len(seq))
		}
		if seq[0] != v {
			t.Errorf("Expected element to equal receiver for %v", v.Type)
		}
	}
}

// TestMap tests mapping decoding and the empty-map default
func TestMap(t *testing.T) {
	got := Object(`{"name":"ajson","count":3,"nested":{"x":1}}`).Map()
	if len(got) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(got))
	}
	if got["name"].String() != "ajson" {
		t.Errorf("Expected 'ajson', got %q", got["name"].String())
	}
	if got["count"].Int() != 3 {
		t.Errorf("Expected 3, got %d", got["count"].Int())
	}
	if !got["nested"].IsObject() {
		t.Error("Expected nested object")
	}

	// Every non-object kind yields an empty map
	for _, v := range []Value{
		String("ajson"),
		NumberValue(NumberFromString("3")),
		Array(`[1]`),
		Bool(true),
		Null(),
	} {
		if m := v.Map(); len(m) != 0 {
			t.Errorf("Expected empty map for %v, got %d entries", v.Type, len(m))
		}
	}
}

// TestCrossEquality tests the loose comparisons against strings and floats
func TestCrossEquality(t *testing.T) {
	n := NumberValue(NumberFromBytes([]byte("3")))
	if !n.EqualString("3") {
		t.Error("Expected number 3 to equal the string \"3\"")
	}
	if !n.EqualFloat(3.0) {
		t.Error("Expected number 3 to equal 3.0")
	}

	if !Bool(true).EqualString("true") {
		t.Error("Expected true to equal the string \"true\"")
	}
	if !Bool(true).EqualFloat(1.0) {
		t.Error("Expected true to equal 1.0")
	}
	if !Null().EqualString("null") {
		t.Error("Expected null to equal the string \"null\"")
	}
	if !Object(`{"a":1}`).EqualFloat(0) {
		t.Error("Expected object to equal 0 under float coercion")
	}
	if String("ajson").EqualString("other") {
		t.Error("Expected mismatched strings to not be equal")
	}
}

// TestValueGet tests path dispatch from composite values
func TestValueGet(t *testing.T) {
	arr := Array("[1,2,3]")
	v, ok := arr.Get("0")
	if !ok {
		t.Fatal("Expected element 0 to exist")
	}
	if v.Int() != 1 {
		t.Errorf("Expected 1, got %d", v.Int())
	}

	obj := Object(`{"name":"ajson"}`)
	v, ok = obj.Get("name")
	if !ok {
		t.Fatal("Expected name to exist")
	}
	if !v.IsString() {
		t.Error("Expected a string value")
	}
	if v.String() != "ajson" {
		t.Errorf("Expected 'ajson', got %q", v.String())
	}

	// Non-addressable kinds always miss
	for _, v := range []Value{
		String("ajson"),
		NumberValue(NumberFromString("3")),
		Bool(true),
		Null(),
	} {
		if _, ok := v.Get("anything"); ok {
			t.Errorf("Expected no children for %v", v.Type)
		}
	}

	// Missing paths miss
	if _, ok := obj.Get("absent"); ok {
		t.Error("Expected absent key to not resolve")
	}
}

// TestValueGetBytes tests the byte-path variant
func TestValueGetBytes(t *testing.T) {
	v, ok := Object(`{"a":{"b":2}}`).GetBytes([]byte("a.b"))
	if !ok {
		t.Fatal("Expected a.b to exist")
	}
	if v.Int() != 2 {
		t.Errorf("Expected 2, got %d", v.Int())
	}
}

// TestNestedLookupReturnsSelfContainedSpans tests that composite results
// re-parse on their own, with no surrounding context
func TestNestedLookupReturnsSelfContainedSpans(t *testing.T) {
	doc := Object(`{"outer":{"inner":[{"deep":true}]}}`)
	outer, ok := doc.Get("outer")
	if !ok || !outer.IsObject() {
		t.Fatal("Expected outer object")
	}
	inner, ok := outer.Get("inner")
	if !ok || !inner.IsArray() {
		t.Fatal("Expected inner array")
	}
	deep, ok := inner.Get("0.deep")
	if !ok || !deep.Bool() {
		t.Fatal("Expected deep to be true")
	}
}

// TestValueForEach tests ordered iteration and early stop
func TestValueForEach(t *testing.T) {
	var keys []string
	Array(`[10,20,30]`).ForEach(func(key string, val Value) bool {
		keys = append(keys, key)
		return key != "1"
	})
	if len(keys) != 2 || keys[0] != "0" || keys[1] != "1" {
		t.Errorf("Expected keys [0 1], got %v", keys)
	}

	count := 0
	String("ajson").ForEach(func(string, Value) bool {
		count++
		return true
	})
	if count != 0 {
		t.Error("Expected nothing to walk on a string")
	}
}

// TestConcurrentReads tests that an immutable Value tolerates many readers
func TestConcurrentReads(t *testing.T) {
	doc := Object(`{"items":[1,2,3],"name":"ajson","n":42}`)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v, ok := doc.Get("items.1"); !ok || v.Int() != 2 {
					t.Error("Expected items.1 to be 2")
					return
				}
				if v, ok := doc.Get("name"); !ok || v.String() != "ajson" {
					t.Error("Expected name to be 'ajson'")
					return
				}
				if len(doc.Map()) != 3 {
					t.Error("Expected 3 entries")
					return
				}
			}
		}()
	}
	wg.Wait()
}
