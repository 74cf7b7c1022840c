package lvjson

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/match"
)

// Getter walks a raw JSON span without building a tree. Every operation is
// a fresh bounded scan over the span; nothing is cached between calls, so
// repeated lookups re-pay the scan — the cost of lazy decoding is only ever
// charged for the paths actually queried.
type Getter struct {
	json string
}

// NewGetter wraps a raw JSON span.
func NewGetter(json string) Getter {
	return Getter{json: json}
}

//------------------------------------------------------------------------------
// PACKAGE-LEVEL CONVENIENCES
//------------------------------------------------------------------------------

// Get looks up path inside a JSON document and reports whether it resolved.
func Get(json, path string) (Value, bool) {
	return NewGetter(json).Lookup(path)
}

// GetBytes is Get for a document held as bytes.
func GetBytes(json []byte, path string) (Value, bool) {
	return NewGetter(string(json)).Lookup(path)
}

// Parse tags the top-level value of a span. Empty or unrecognized input
// comes back as null.
func Parse(json string) Value {
	i := skipSpaces(json, 0)
	if i >= len(json) {
		return Value{}
	}
	v, _, ok := parseValueAt(json, i)
	if !ok {
		return Value{}
	}
	return v
}

//------------------------------------------------------------------------------
// PATH GRAMMAR
//------------------------------------------------------------------------------

// Path segments are separated by '.'; a backslash escapes the next byte in
// a segment. A segment of pure digits addresses an array index (and still
// matches an object key of the same spelling). '*' and '?' in a segment
// make it a wildcard that matches object keys, first match wins.

type pathSegment struct {
	key      string
	index    int // -1 unless the segment is pure digits
	isIndex  bool
	wildcard bool
}

func parsePath(path string) []pathSegment {
	var segs []pathSegment
	for {
		raw, rest, more := splitSegment(path)
		segs = append(segs, makeSegment(raw))
		if !more {
			return segs
		}
		path = rest
	}
}

// splitSegment cuts path at the first unescaped dot.
func splitSegment(path string) (seg, rest string, more bool) {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '\\':
			i++
		case '.':
			return path[:i], path[i+1:], true
		}
	}
	return path, "", false
}

func makeSegment(raw string) pathSegment {
	seg := pathSegment{index: -1}
	escaped := false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			escaped = true
			i++
		case '*', '?':
			seg.wildcard = true
		}
	}
	if seg.wildcard {
		// match.Match understands the backslash escapes, keep them.
		seg.key = raw
		return seg
	}
	key := raw
	if escaped {
		key = unescapeSegment(raw)
	}
	seg.key = key
	if idx, ok := parseIdx(key); ok {
		seg.index = idx
		seg.isIndex = true
	}
	return seg
}

// unescapeSegment drops the backslashes from a literal segment.
func unescapeSegment(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

func (seg pathSegment) matches(key string) bool {
	if seg.wildcard {
		return match.Match(key, seg.key)
	}
	return key == seg.key
}

// parseIdx reads a segment as a non-negative array index.
func parseIdx(s string) (int, bool) {
	if len(s) == 0 || len(s) > 10 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

//------------------------------------------------------------------------------
// LOOKUP
//------------------------------------------------------------------------------

// Lookup resolves a path against the span and reports whether it hit.
// Missing keys, out-of-range indices, wrong container kinds and malformed
// spans all read as absence, never as an error.
func (g Getter) Lookup(path string) (Value, bool) {
	if path == "" {
		return Value{}, false
	}
	span := g.json
	for _, seg := range parsePath(path) {
		i := skipSpaces(span, 0)
		if i >= len(span) {
			return Value{}, false
		}
		var start, end int
		switch span[i] {
		case '{':
			start, end = objectFind(span, i, seg)
		case '[':
			if !seg.isIndex {
				return Value{}, false
			}
			start, end = arrayFind(span, i, seg.index)
		default:
			return Value{}, false
		}
		if start == -1 {
			return Value{}, false
		}
		span = span[start:end]
	}
	i := skipSpaces(span, 0)
	if i >= len(span) {
		return Value{}, false
	}
	v, _, ok := parseValueAt(span, i)
	if !ok {
		return Value{}, false
	}
	return v, true
}

// LookupBytes is Lookup for a path already held as bytes.
func (g Getter) LookupBytes(path []byte) (Value, bool) {
	return g.Lookup(string(path))
}

// objectFind scans the object starting at s[i] for the first entry whose
// key matches seg and returns the bounds of its value span.
func objectFind(s string, i int, seg pathSegment) (int, int) {
	pos := i + 1
	for {
		pos = skipSpaces(s, pos)
		if pos >= len(s) || s[pos] != '"' {
			return -1, -1
		}
		keyEnd, hasEsc, ok := scanString(s, pos)
		if !ok {
			return -1, -1
		}
		key := s[pos+1 : keyEnd-1]
		if hasEsc {
			key = unescape(key)
		}
		pos = skipSpaces(s, keyEnd)
		if pos >= len(s) || s[pos] != ':' {
			return -1, -1
		}
		pos = skipSpaces(s, pos+1)
		if pos >= len(s) {
			return -1, -1
		}
		valEnd := scanValueEnd(s, pos)
		if valEnd == -1 {
			return -1, -1
		}
		if seg.matches(key) {
			return pos, valEnd
		}
		pos = skipSpaces(s, valEnd)
		if pos >= len(s) || s[pos] == '}' {
			return -1, -1
		}
		if s[pos] == ',' {
			pos++
		}
	}
}

// arrayFind scans the array starting at s[i] and returns the bounds of the
// element at idx.
func arrayFind(s string, i, idx int) (int, int) {
	pos := i + 1
	for n := 0; ; n++ {
		pos = skipSpaces(s, pos)
		if pos >= len(s) || s[pos] == ']' {
			return -1, -1
		}
		valEnd := scanValueEnd(s, pos)
		if valEnd == -1 {
			return -1, -1
		}
		if n == idx {
			return pos, valEnd
		}
		pos = skipSpaces(s, valEnd)
		if pos >= len(s) || s[pos] == ']' {
			return -1, -1
		}
		if s[pos] == ',' {
			pos++
		}
	}
}

//------------------------------------------------------------------------------
// COLLECTION DECODING
//------------------------------------------------------------------------------

// Vec decodes the span's top-level array into its elements, source order
// and duplicates preserved. Non-array spans decode to nothing.
func (g Getter) Vec() []Value {
	i := skipSpaces(g.json, 0)
	if i >= len(g.json) || g.json[i] != '[' {
		return nil
	}
	var out []Value
	forEachArray(g.json, i, func(_ string, v Value) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Map decodes the span's top-level object into its pairs. A key appearing
// twice resolves to its last occurrence. Non-object spans decode to an
// empty map.
func (g Getter) Map() map[string]Value {
	out := make(map[string]Value)
	i := skipSpaces(g.json, 0)
	if i >= len(g.json) || g.json[i] != '{' {
		return out
	}
	forEachObject(g.json, i, func(key string, v Value) bool {
		out[key] = v
		return true
	})
	return out
}

// ForEach walks the span's top-level elements in source order. Array keys
// are the decimal element indices. Return false to stop early.
func (g Getter) ForEach(fn func(key string, v Value) bool) {
	i := skipSpaces(g.json, 0)
	if i >= len(g.json) {
		return
	}
	switch g.json[i] {
	case '[':
		forEachArray(g.json, i, fn)
	case '{':
		forEachObject(g.json, i, fn)
	}
}

func forEachArray(s string, i int, fn func(key string, v Value) bool) {
	pos := i + 1
	for n := 0; ; n++ {
		pos = skipSpaces(s, pos)
		if pos >= len(s) || s[pos] == ']' {
			return
		}
		v, end, ok := parseValueAt(s, pos)
		if !ok {
			return
		}
		if !fn(strconv.Itoa(n), v) {
			return
		}
		pos = skipSpaces(s, end)
		if pos >= len(s) || s[pos] == ']' {
			return
		}
		if s[pos] == ',' {
			pos++
		}
	}
}

func forEachObject(s string, i int, fn func(key string, v Value) bool) {
	pos := i + 1
	for {
		pos = skipSpaces(s, pos)
		if pos >= len(s) || s[pos] != '"' {
			return
		}
		keyEnd, hasEsc, ok := scanString(s, pos)
		if !ok {
			return
		}
		key := s[pos+1 : keyEnd-1]
		if hasEsc {
			key = unescape(key)
		} else {
			key = strings.Clone(key)
		}
		pos = skipSpaces(s, keyEnd)
		if pos >= len(s) || s[pos] != ':' {
			return
		}
		pos = skipSpaces(s, pos+1)
		if pos >= len(s) {
			return
		}
		v, end, ok := parseValueAt(s, pos)
		if !ok {
			return
		}
		if !fn(key, v) {
			return
		}
		pos = skipSpaces(s, end)
		if pos >= len(s) || s[pos] == '}' {
			return
		}
		if s[pos] == ',' {
			pos++
		}
	}
}

//------------------------------------------------------------------------------
// SPAN SCANNING
//------------------------------------------------------------------------------

// parseValueAt tags the value starting at s[i] and returns its end offset.
// Composite payloads are copied out so a Value never pins the document it
// was cut from.
func parseValueAt(s string, i int) (Value, int, bool) {
	switch s[i] {
	case '"':
		end, hasEsc, ok := scanString(s, i)
		if !ok {
			return Value{}, 0, false
		}
		inner := s[i+1 : end-1]
		if hasEsc {
			inner = unescape(inner)
		} else {
			inner = strings.Clone(inner)
		}
		return Value{Type: TypeString, Str: inner}, end, true
	case '{':
		end := scanBlock(s, i, '{', '}')
		if end == -1 {
			return Value{}, 0, false
		}
		return Value{Type: TypeObject, Raw: strings.Clone(s[i:end])}, end, true
	case '[':
		end := scanBlock(s, i, '[', ']')
		if end == -1 {
			return Value{}, 0, false
		}
		return Value{Type: TypeArray, Raw: strings.Clone(s[i:end])}, end, true
	case 't':
		if strings.HasPrefix(s[i:], constTrue) {
			return Value{Type: TypeBoolean, Boolean: true}, i + 4, true
		}
	case 'f':
		if strings.HasPrefix(s[i:], constFalse) {
			return Value{Type: TypeBoolean, Boolean: false}, i + 5, true
		}
	case 'n':
		if strings.HasPrefix(s[i:], constNull) {
			return Value{Type: TypeNull}, i + 4, true
		}
	default:
		if s[i] == '-' || (s[i] >= '0' && s[i] <= '9') {
			end := scanNumber(s, i)
			return Value{Type: TypeNumber, Num: NumberFromString(strings.Clone(s[i:end]))}, end, true
		}
	}
	return Value{}, 0, false
}

func skipSpaces(s string, i int) int {
	for ; i < len(s); i++ {
		if s[i] > ' ' {
			break
		}
	}
	return i
}

// scanString finds the end of the string starting at the quote s[i] and
// reports whether it contains escapes. end is the offset past the closing
// quote.
func scanString(s string, i int) (end int, hasEsc, ok bool) {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			hasEsc = true
			j++
		case '"':
			return j + 1, hasEsc, true
		}
	}
	return 0, false, false
}

// scanBlock finds the offset past the bracket closing the block opened at
// s[i], counting depth and skipping strings. -1 when unterminated.
func scanBlock(s string, i int, open, close byte) int {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '"':
			end, _, ok := scanString(s, j)
			if !ok {
				return -1
			}
			j = end - 1
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j + 1
			}
		}
	}
	return -1
}

func scanNumber(s string, i int) int {
	j := i
	for ; j < len(s); j++ {
		switch s[j] {
		case '-', '+', '.', 'e', 'E',
			'0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		default:
			return j
		}
	}
	return j
}

// scanValueEnd finds the offset past the value starting at s[i] without
// decoding it.
func scanValueEnd(s string, i int) int {
	switch s[i] {
	case '"':
		end, _, ok := scanString(s, i)
		if !ok {
			return -1
		}
		return end
	case '{':
		return scanBlock(s, i, '{', '}')
	case '[':
		return scanBlock(s, i, '[', ']')
	default:
		j := i
		for ; j < len(s); j++ {
			c := s[j]
			if c <= ' ' || c == ',' || c == '}' || c == ']' {
				break
			}
		}
		return j
	}
}

//------------------------------------------------------------------------------
// STRING UNESCAPING
//------------------------------------------------------------------------------

// unescape resolves JSON string escapes, including \uXXXX with surrogate
// pairs. Malformed escapes degrade to the replacement rune rather than
// failing — absence-not-error applies here too.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			b.WriteRune(utf8.RuneError)
			break
		}
		switch s[i] {
		case '"', '\\', '/':
			b.WriteByte(s[i])
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			r, ok := hex4(s, i+1)
			if !ok {
				b.WriteRune(utf8.RuneError)
				continue
			}
			i += 4
			if utf16.IsSurrogate(r) && i+2 < len(s) && s[i+1] == '\\' && s[i+2] == 'u' {
				if r2, ok2 := hex4(s, i+3); ok2 {
					if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
						r = dec
						i += 6
					}
				}
			}
			b.WriteRune(r)
		default:
			b.WriteRune(utf8.RuneError)
		}
	}
	return b.String()
}

// hex4 reads four hex digits starting at s[i].
func hex4(s string, i int) (rune, bool) {
	if i+4 > len(s) {
		return 0, false
	}
	var r rune
	for j := i; j < i+4; j++ {
		r <<= 4
		c := s[j]
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}
