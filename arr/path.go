package arr

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Path segments with special meaning in [DataGet].
const (
	Wildcard    = "*"
	FirstMarker = "{first}"
	LastMarker  = "{last}"
)

// DataGet resolves a dot-notation path against a nested structure made of
// *Array values, [Traversable] containers, Go maps, slices and structs.
//
//   - "*" fans out over the current target and resolves the rest of the path
//     against every element; a miss inside the fan-out yields nil rather than
//     def. When the rest of the path holds another "*" the results are
//     collapsed by one level.
//   - "{first}" and "{last}" select the first and last key of the target.
//   - "\*", "\{first}" and "\{last}" match those literal keys.
//
// Struct fields match by Go name or by their json tag name. A nil field is
// treated as missing. Any segment that cannot be resolved returns def.
//
//	DataGet(payload, "user.address.city", "unknown")
//	DataGet(payload, "orders.*.total", nil)
func DataGet(target any, path string, def any) any {
	return dataGet(target, strings.Split(path, "."), def)
}

// DataGetSegments is [DataGet] with a pre-split path.
func DataGetSegments(target any, segments []string, def any) any {
	return dataGet(target, segments, def)
}

// missing is the default used to tell "absent" from "present but nil".
type missing struct{}

// DataHas reports whether path resolves to a value (which may be nil).
func DataHas(target any, path string) bool {
	_, isMissing := DataGet(target, path, missing{}).(missing)
	return !isMissing
}

func dataGet(target any, segments []string, def any) any {
	for i, seg := range segments {
		switch seg {
		case Wildcard:
			if !isIterable(target) {
				return def
			}
			rest := segments[i+1:]
			items, _ := From(target)
			result := New[any](items.Len())
			for _, item := range items.All() {
				result.Append(dataGet(item, rest, nil))
			}
			if slices.Contains(rest, Wildcard) {
				return Collapse(result)
			}
			return result
		case `\*`:
			seg = Wildcard
		case `\{first}`:
			seg = FirstMarker
		case `\{last}`:
			seg = LastMarker
		case FirstMarker, LastMarker:
			k, ok := edgeKey(target, seg == FirstMarker)
			if !ok {
				return def
			}
			next, ok := lookupKey(target, k)
			if !ok {
				return def
			}
			target = next
			continue
		}

		next, ok := lookupSegment(target, seg)
		if !ok {
			return def
		}
		target = next
	}
	return target
}

func lookupKey(target any, k Key) (any, bool) {
	if t, ok := target.(Traversable); ok {
		return t.Lookup(k)
	}
	return lookupSegment(target, k.String())
}

// lookupSegment reads one path segment from target.
func lookupSegment(target any, seg string) (any, bool) {
	if t, ok := target.(Traversable); ok {
		return t.Lookup(CanonicalKey(seg))
	}
	if target == nil {
		return nil, false
	}
	rv := reflect.ValueOf(target)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kv, ok := mapKeyFor(rv.Type().Key(), seg)
		if !ok {
			return nil, false
		}
		v := rv.MapIndex(kv)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 || n >= rv.Len() {
			return nil, false
		}
		return rv.Index(n).Interface(), true
	case reflect.Struct:
		f, ok := structField(rv, seg)
		if !ok {
			return nil, false
		}
		switch f.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
			if f.IsNil() {
				return nil, false
			}
		}
		return f.Interface(), true
	}
	return nil, false
}

func mapKeyFor(t reflect.Type, seg string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(seg).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(seg, 10, 64)
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Interface:
		k := CanonicalKey(seg)
		return reflect.ValueOf(k.Value()), true
	}
	return reflect.Value{}, false
}

// structField finds an exported field by Go name or json tag name.
func structField(rv reflect.Value, name string) (reflect.Value, bool) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Name == name || jsonName(sf) == name {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func edgeKey(target any, first bool) (Key, bool) {
	a, ok := From(target)
	if !ok {
		return Key{}, false
	}
	if first {
		return a.FirstKey()
	}
	return a.LastKey()
}

func isIterable(v any) bool {
	if _, ok := v.(Traversable); ok {
		return true
	}
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// From converts a container into a new *Array[any]: a [Traversable] keeps
// its keys, slices and Go arrays become lists, Go maps are sorted by key and
// structs expose their exported fields (named by json tag when present). The
// second result is false for scalars and nil.
func From(v any) (*Array[any], bool) {
	if t, ok := v.(Traversable); ok {
		out := New[any](t.Len())
		for k, val := range t.Entries() {
			out.Set(k, val)
		}
		return out, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := New[any](rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Append(rv.Index(i).Interface())
		}
		return out, true
	case reflect.Map:
		type entry struct {
			key Key
			val any
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{CanonicalKey(iter.Key().Interface()), iter.Value().Interface()})
		}
		slices.SortFunc(entries, func(a, b entry) int { return CompareKeys(a.key, b.key) })
		out := New[any](len(entries))
		for _, e := range entries {
			out.Set(e.key, e.val)
		}
		return out, true
	case reflect.Struct:
		t := rv.Type()
		out := New[any](t.NumField())
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name := sf.Name
			if jn := jsonName(sf); jn != "" {
				name = jn
			}
			out.Set(StringKey(name), rv.Field(i).Interface())
		}
		return out, true
	}
	return nil, false
}
