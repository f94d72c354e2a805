package arr

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// Key is a mapping key of an [Array]. A Key holds either an int or a string;
// the zero Key is the integer 0.
//
// Keys are comparable and may be used directly as Go map keys.
type Key struct {
	str   string
	num   int
	isStr bool
}

// IntKey returns the integer key n.
func IntKey(n int) Key { return Key{num: n} }

// StringKey returns the string key s verbatim. Unlike [CanonicalKey] it does
// not turn decimal strings such as "7" into integer keys.
func StringKey(s string) Key { return Key{str: s, isStr: true} }

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// Int returns the integer value of k and whether k is an integer key.
func (k Key) Int() (int, bool) { return k.num, !k.isStr }

// String returns the textual form of k. Integer keys are rendered in base 10.
func (k Key) String() string {
	if k.isStr {
		return k.str
	}
	return strconv.Itoa(k.num)
}

// Value returns k as an int or a string.
func (k Key) Value() any {
	if k.isStr {
		return k.str
	}
	return k.num
}

// CompareKeys orders two keys. Integer keys compare numerically, string keys
// compare with the same rules as [Compare].
func CompareKeys(a, b Key) int {
	if !a.isStr && !b.isStr {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	return Compare(a.Value(), b.Value())
}

// EnumValuer is implemented by enumerated types that are backed by a scalar.
// [CanonicalKey] uses the backing value instead of the enum itself.
type EnumValuer interface {
	EnumValue() any
}

// CanonicalKey coerces an arbitrary derived value into a mapping key:
//
//   - bool becomes 0 or 1
//   - an [EnumValuer] becomes the canonical key of its backing value
//   - nil becomes ""
//   - a string becomes an integer key when it is a canonical decimal integer
//     ("7", "-3" but not "07" or "+3"), otherwise a string key
//   - a [fmt.Stringer] is treated as its string form
//   - integers become integer keys, floats are truncated toward zero
//   - anything else becomes the string produced by fmt.Sprint
func CanonicalKey(v any) Key {
	switch t := v.(type) {
	case Key:
		return t
	case nil:
		return StringKey("")
	case bool:
		if t {
			return IntKey(1)
		}
		return IntKey(0)
	case EnumValuer:
		return CanonicalKey(t.EnumValue())
	case string:
		return keyFromString(t)
	case int:
		return IntKey(t)
	case fmt.Stringer:
		return keyFromString(t.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKey(int(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return IntKey(int(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return IntKey(0)
		}
		return IntKey(int(f))
	case reflect.Bool:
		return CanonicalKey(rv.Bool())
	case reflect.String:
		return keyFromString(rv.String())
	}
	return StringKey(fmt.Sprint(v))
}

func keyFromString(s string) Key {
	if isCanonicalInt(s) {
		if n, err := strconv.Atoi(s); err == nil {
			return IntKey(n)
		}
	}
	return StringKey(s)
}

// isCanonicalInt reports whether s is a decimal integer written without a
// plus sign, padding or leading zeros.
func isCanonicalInt(s string) bool {
	if s == "" {
		return false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
		if digits == "" || digits == "0" {
			return false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
