package arr

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// valueClass buckets a dynamic value for comparison purposes.
type valueClass int

const (
	classNull valueClass = iota
	classBool
	classInt
	classFloat
	classString
	classArray
	classObject
)

// scalar is the normalized form of a value taking part in a comparison.
type scalar struct {
	class valueClass
	b     bool
	i     int64
	f     float64
	s     string
	raw   any
}

func normalize(v any) scalar {
	switch t := v.(type) {
	case nil:
		return scalar{class: classNull}
	case bool:
		return scalar{class: classBool, b: t}
	case int:
		return scalar{class: classInt, i: int64(t)}
	case int64:
		return scalar{class: classInt, i: t}
	case float64:
		return scalar{class: classFloat, f: t}
	case string:
		return scalar{class: classString, s: t}
	case Key:
		return normalize(t.Value())
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return scalar{class: classInt, i: n}
		}
		f, _ := t.Float64()
		return scalar{class: classFloat, f: f}
	case Traversable:
		return scalar{class: classArray, raw: v}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return scalar{class: classBool, b: rv.Bool()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return scalar{class: classInt, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return scalar{class: classFloat, f: float64(u)}
		}
		return scalar{class: classInt, i: int64(u)}
	case reflect.Float32, reflect.Float64:
		return scalar{class: classFloat, f: rv.Float()}
	case reflect.String:
		return scalar{class: classString, s: rv.String()}
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Kind() != reflect.Array && rv.IsNil() {
			return scalar{class: classNull}
		}
		return scalar{class: classArray, raw: v}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return scalar{class: classNull}
		}
	}
	return scalar{class: classObject, raw: v}
}

// IsObject reports whether v is a composite record: a struct, or a non-nil
// pointer to one. Slices, maps and [Traversable] containers are arrays, not
// objects.
func IsObject(v any) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case Traversable, Key:
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

// IsTextual reports whether v is a string or has a string form.
func IsTextual(v any) bool {
	if _, ok := v.(Traversable); ok {
		return false
	}
	if _, ok := v.(fmt.Stringer); ok {
		return true
	}
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.String
}

// Truthy converts v to a boolean: nil, false, zero numbers, "", "0" and empty
// containers are false; everything else is true.
func Truthy(v any) bool {
	n := normalize(v)
	switch n.class {
	case classNull:
		return false
	case classBool:
		return n.b
	case classInt:
		return n.i != 0
	case classFloat:
		return n.f != 0
	case classString:
		return n.s != "" && n.s != "0"
	case classArray:
		return containerLen(n.raw) > 0
	}
	return true
}

// IsNumeric reports whether v is a number or a numeric string.
func IsNumeric(v any) bool {
	n := normalize(v)
	switch n.class {
	case classInt, classFloat:
		return true
	case classString:
		_, ok := parseNumeric(n.s)
		return ok
	}
	return false
}

// ToFloat converts v to a float64. Strings contribute their leading numeric
// prefix ("12abc" is 12); non-numeric values convert to 0. The second result
// reports whether v was wholly numeric.
func ToFloat(v any) (float64, bool) {
	n := normalize(v)
	switch n.class {
	case classNull:
		return 0, false
	case classBool:
		if n.b {
			return 1, false
		}
		return 0, false
	case classInt:
		return float64(n.i), true
	case classFloat:
		return n.f, true
	case classString:
		if f, ok := parseNumeric(n.s); ok {
			return f, true
		}
		return leadingNumber(n.s), false
	case classArray:
		if containerLen(n.raw) > 0 {
			return 1, false
		}
		return 0, false
	}
	return 1, false
}

// StringOf converts v to its string form: nil and false become "", true
// becomes "1", numbers use their shortest decimal form, Stringers use
// String, and composites use their JSON encoding.
func StringOf(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	n := normalize(v)
	switch n.class {
	case classNull:
		return ""
	case classBool:
		if n.b {
			return "1"
		}
		return ""
	case classInt:
		return strconv.FormatInt(n.i, 10)
	case classFloat:
		return formatFloat(n.f)
	case classString:
		return n.s
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NAN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'G', 14, 64)
}

// parseNumeric parses a numeric string: optional surrounding whitespace, an
// optional sign, digits with an optional fraction and exponent.
func parseNumeric(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	digits := false
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return 0, false
		}
	}
	if !digits {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// leadingNumber returns the numeric value of the longest numeric prefix of s.
func leadingNumber(s string) float64 {
	t := strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
	for i := 0; i < len(t); i++ {
		c := t[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
			end = i + 1
		case (c == '+' || c == '-') && (i == 0 || t[i-1] == 'e' || t[i-1] == 'E'):
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		default:
			i = len(t)
		}
	}
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(t[:end], 64)
	if err != nil {
		return 0
	}
	return f
}

// LooseEqual reports whether a and b are equal after type juggling:
// numbers compare numerically with each other and with numeric strings, bool
// and nil compare by truthiness, and containers compare entry by entry.
func LooseEqual(a, b any) bool { return Compare(a, b) == 0 }

// StrictEqual reports whether a and b have the same dynamic type and value.
// Containers are compared deeply.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if ta, ok := a.(Traversable); ok {
		tb := b.(Traversable)
		if ta.Len() != tb.Len() {
			return false
		}
		next, stop := iter.Pull2(tb.Entries())
		defer stop()
		for ka, va := range ta.Entries() {
			kb, vb, ok := next()
			if !ok || ka != kb || !StrictEqual(va, vb) {
				return false
			}
		}
		return true
	}
	if reflect.TypeOf(a).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// Compare returns -1, 0 or 1 ordering a against b with type juggling:
//
//   - nil against a string compares "" with the string
//   - bool or nil against anything compares truthiness (false < true)
//   - numbers compare numerically; a number against a numeric string too,
//     against a non-numeric string the number's string form is compared
//   - two numeric strings compare numerically, other strings byte-wise
//   - containers order by length, then entry by entry; a container is greater
//     than any scalar
//   - objects of the same type are 0 when deeply equal; otherwise the left
//     operand is reported as greater
func Compare(a, b any) int {
	x, y := normalize(a), normalize(b)

	switch {
	case x.class == classNull && y.class == classNull:
		return 0
	case x.class == classNull && y.class == classString:
		return sign(strings.Compare("", y.s))
	case x.class == classString && y.class == classNull:
		return sign(strings.Compare(x.s, ""))
	case x.class == classBool || y.class == classBool || x.class == classNull || y.class == classNull:
		return compareBool(Truthy(a), Truthy(b))
	}

	xNum := x.class == classInt || x.class == classFloat
	yNum := y.class == classInt || y.class == classFloat
	switch {
	case xNum && yNum:
		return compareNumbers(x, y)
	case xNum && y.class == classString:
		if f, ok := parseNumeric(y.s); ok {
			return compareFloat(asFloat(x), f)
		}
		return sign(strings.Compare(StringOf(a), y.s))
	case x.class == classString && yNum:
		if f, ok := parseNumeric(x.s); ok {
			return compareFloat(f, asFloat(y))
		}
		return sign(strings.Compare(x.s, StringOf(b)))
	case x.class == classString && y.class == classString:
		fx, okx := parseNumeric(x.s)
		fy, oky := parseNumeric(y.s)
		if okx && oky {
			return compareFloat(fx, fy)
		}
		return sign(strings.Compare(x.s, y.s))
	case x.class == classArray && y.class == classArray:
		return compareContainers(x.raw, y.raw)
	case x.class == classArray:
		return 1
	case y.class == classArray:
		return -1
	}

	// At least one side is an object.
	if x.class == classObject && y.class == classString {
		if s, ok := a.(fmt.Stringer); ok {
			return sign(strings.Compare(s.String(), y.s))
		}
		return 1
	}
	if y.class == classObject && x.class == classString {
		if s, ok := b.(fmt.Stringer); ok {
			return sign(strings.Compare(x.s, s.String()))
		}
		return -1
	}
	if x.class == classObject && y.class == classObject {
		if reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.DeepEqual(a, b) {
			return 0
		}
		return 1
	}
	if x.class == classObject {
		return 1
	}
	return -1
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareNumbers(x, y scalar) int {
	if x.class == classInt && y.class == classInt {
		switch {
		case x.i < y.i:
			return -1
		case x.i > y.i:
			return 1
		}
		return 0
	}
	return compareFloat(asFloat(x), asFloat(y))
}

func asFloat(s scalar) float64 {
	if s.class == classInt {
		return float64(s.i)
	}
	return s.f
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	}
	// NaN is never equal.
	return 1
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func compareContainers(a, b any) int {
	ta, _ := From(a)
	tb, _ := From(b)
	if la, lb := ta.Len(), tb.Len(); la != lb {
		return compareNumbers(scalar{class: classInt, i: int64(la)}, scalar{class: classInt, i: int64(lb)})
	}
	for k, va := range ta.Entries() {
		vb, ok := tb.Lookup(k)
		if !ok {
			return 1
		}
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return 0
}

func containerLen(v any) int {
	if t, ok := v.(Traversable); ok {
		return t.Len()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return 0
}

// LooseKey returns a hashable form of v such that LooseEqual numbers,
// strings and composites share a key: numbers and numeric strings hash by
// numeric value, other strings by content and composites by their JSON
// form. Bools and nil compare by truthiness, which no single key captures;
// [LooseSet] handles them.
func LooseKey(v any) string {
	n := normalize(v)
	switch n.class {
	case classNull:
		return "s:"
	case classBool:
		if n.b {
			return "n:1"
		}
		return "n:0"
	case classInt:
		return "n:" + strconv.FormatInt(n.i, 10)
	case classFloat:
		return "n:" + formatFloat(n.f)
	case classString:
		if f, ok := parseNumeric(n.s); ok {
			return "n:" + formatFloat(f)
		}
		return "s:" + n.s
	}
	if s, ok := v.(fmt.Stringer); ok && n.class == classObject {
		return "s:" + s.String()
	}
	return "c:" + StringOf(v)
}

// StrictKey returns a hashable form of v such that StrictEqual values share
// a key.
func StrictKey(v any) any {
	if v == nil {
		return nil
	}
	if _, ok := v.(Traversable); !ok && reflect.ValueOf(v).Comparable() {
		return v
	}
	return fmt.Sprintf("%T|%s", v, StringOf(v))
}

// LooseSet is a set of values under [LooseEqual]. A bool matches every
// member of the same truthiness; nil matches nil, false, "" and falsy
// non-strings.
type LooseSet struct {
	keys map[string]struct{}

	truthy, falsy       bool // any member
	trueBool, falseBool bool
	null                bool
	falsyNonString      bool
	emptyString         bool
}

// NewLooseSet returns an empty LooseSet.
func NewLooseSet() *LooseSet { return &LooseSet{keys: make(map[string]struct{})} }

// Has reports whether some member is loosely equal to v.
func (s *LooseSet) Has(v any) bool {
	n := normalize(v)
	switch n.class {
	case classBool:
		if n.b {
			return s.truthy
		}
		return s.falsy
	case classNull:
		return s.falsyNonString || s.emptyString
	}
	truthy := Truthy(v)
	if (truthy && s.trueBool) || (!truthy && s.falseBool) {
		return true
	}
	if s.null && ((n.class == classString && n.s == "") || (n.class != classString && !truthy)) {
		return true
	}
	_, ok := s.keys[LooseKey(v)]
	return ok
}

// Add inserts v and reports whether no loosely equal member was present.
func (s *LooseSet) Add(v any) bool {
	if s.Has(v) {
		return false
	}
	n := normalize(v)
	truthy := Truthy(v)
	if truthy {
		s.truthy = true
	} else {
		s.falsy = true
		if n.class != classString {
			s.falsyNonString = true
		}
	}
	switch n.class {
	case classBool:
		if n.b {
			s.trueBool = true
		} else {
			s.falseBool = true
		}
	case classNull:
		s.null = true
	default:
		if n.class == classString && n.s == "" {
			s.emptyString = true
		}
		s.keys[LooseKey(v)] = struct{}{}
	}
	return true
}
