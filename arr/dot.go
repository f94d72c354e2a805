package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These functions read, write and test values in nested *Array[any]
// structures using dot-separated key paths, mirroring Laravel's Arr::dot,
// Arr::get, Arr::set, Arr::has and Arr::forget. Unlike [DataGet] they give no
// special meaning to "*", "{first}" or "{last}".
//
//	a := List[any](...)          // or decoded with DecodeJSON
//	Get(a, "user.address.city")  → "London"
//	Set(a, "user.age", 30)
//	Has(a, "user.name")          → true
//	Forget(a, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens nested containers into a single-level array whose keys are
// dot paths. Empty containers are kept as leaves.
//
//	Dot({"a": {"b": 1}}, "") → {"a.b": 1}
func Dot(t Traversable, prefix string) *Array[any] {
	out := New[any]()
	dotFlatten(prefix, t, out)
	return out
}

func dotFlatten(prefix string, t Traversable, out *Array[any]) {
	for k, v := range t.Entries() {
		key := prefix + k.String()
		if nested, ok := From(v); ok && nested.Len() > 0 {
			dotFlatten(key+".", nested, out)
			continue
		}
		out.Set(key, v)
	}
}

// Undot expands a flat dot-notation array into nested arrays.
//
//	Undot({"a.b": 1, "a.c": 2}) → {"a": {"b": 1, "c": 2}}
func Undot(t Traversable) *Array[any] {
	out := New[any]()
	for k, v := range t.Entries() {
		Set(out, k.String(), v)
	}
	return out
}

// Get returns the value at key, where key may be a dot path. A key stored
// literally (dots included) wins over the nested walk. def[0], or nil, is
// returned when the path does not resolve.
func Get[V any](a *Array[V], key string, def ...any) any {
	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}
	if v, ok := a.Get(key); ok {
		return v
	}
	if !strings.Contains(key, ".") {
		return fallback
	}
	var cur any = a
	for _, seg := range strings.Split(key, ".") {
		next, ok := lookupSegment(cur, seg)
		if !ok {
			return fallback
		}
		cur = next
	}
	return cur
}

// Has reports whether every key (dot paths allowed) is present. It returns
// false when no keys are given.
func Has[V any](a *Array[V], keys ...string) bool {
	if len(keys) == 0 || a.Len() == 0 {
		return false
	}
	for _, k := range keys {
		if !hasPath(a, k) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one key (dot paths allowed) is present.
func HasAny[V any](a *Array[V], keys ...string) bool {
	for _, k := range keys {
		if hasPath(a, k) {
			return true
		}
	}
	return false
}

func hasPath[V any](a *Array[V], key string) bool {
	if a.Has(key) {
		return true
	}
	var cur any = a
	for _, seg := range strings.Split(key, ".") {
		next, ok := lookupSegment(cur, seg)
		if !ok {
			return false
		}
		cur = next
	}
	return true
}

// Set stores value at a dot path inside a, creating intermediate arrays as
// needed. A non-array value in the way is replaced by a new array.
func Set(a *Array[any], key string, value any) {
	segs := strings.Split(key, ".")
	cur := a
	for _, seg := range segs[:len(segs)-1] {
		existing, _ := cur.Get(seg)
		child, ok := existing.(*Array[any])
		if !ok {
			child = New[any]()
			cur.Set(seg, child)
		}
		cur = child
	}
	cur.Set(segs[len(segs)-1], value)
}

// Forget removes the given keys (dot paths allowed) from a in place. Paths
// that do not resolve are ignored.
func Forget(a *Array[any], keys ...string) {
	for _, key := range keys {
		if a.Delete(key) {
			continue
		}
		segs := strings.Split(key, ".")
		cur := a
		for _, seg := range segs[:len(segs)-1] {
			v, _ := cur.Get(seg)
			child, ok := v.(*Array[any])
			if !ok {
				cur = nil
				break
			}
			cur = child
		}
		if cur != nil {
			cur.Delete(segs[len(segs)-1])
		}
	}
}

// Only returns the entries of a whose key is one of keys, in the order of a.
func Only[V any](a *Array[V], keys ...any) *Array[V] {
	want := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		want[CanonicalKey(k)] = struct{}{}
	}
	return Where(a, func(_ V, k Key) bool {
		_, ok := want[k]
		return ok
	})
}

// Except returns the entries of a whose key is not one of keys.
func Except[V any](a *Array[V], keys ...any) *Array[V] {
	drop := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		drop[CanonicalKey(k)] = struct{}{}
	}
	return Where(a, func(_ V, k Key) bool {
		_, ok := drop[k]
		return !ok
	})
}
