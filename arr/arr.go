package arr

import (
	"fmt"
	"math/rand"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Searching & testing
// ─────────────────────────────────────────────────────────────────────────────

// Exists reports whether key is present in a, even when its value is nil.
func Exists[V any](a *Array[V], key any) bool { return a.Has(key) }

// First returns the first value, optionally the first one matching fns[0].
// Returns the zero value and false when a is empty or nothing matches.
func First[V any](a *Array[V], fns ...func(V, Key) bool) (V, bool) {
	var zero V
	for _, k := range a.keys {
		v := a.values[k]
		if len(fns) == 0 || fns[0](v, k) {
			return v, true
		}
	}
	return zero, false
}

// Last returns the last value, optionally the last one matching fns[0]. The
// scan runs from the end.
func Last[V any](a *Array[V], fns ...func(V, Key) bool) (V, bool) {
	var zero V
	for i := len(a.keys) - 1; i >= 0; i-- {
		k := a.keys[i]
		v := a.values[k]
		if len(fns) == 0 || fns[0](v, k) {
			return v, true
		}
	}
	return zero, false
}

// Pull returns the value stored under key together with a copy of a that no
// longer holds it. a itself is not modified.
func Pull[V any](a *Array[V], key any) (V, *Array[V], bool) {
	out := a.Clone()
	v, ok := out.Get(key)
	out.Delete(key)
	return v, out, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every entry and keeps the keys.
func Map[V, U any](a *Array[V], fn func(V, Key) U) *Array[U] {
	out := New[U](a.Len())
	for _, k := range a.keys {
		out.Set(k, fn(a.values[k], k))
	}
	return out
}

// MapWithKeys builds a new array from one key/value pair per entry. Derived
// keys are canonicalized; a later duplicate overwrites the earlier value but
// keeps its position.
func MapWithKeys[V, U any](a *Array[V], fn func(V, Key) (any, U)) *Array[U] {
	out := New[U](a.Len())
	for _, k := range a.keys {
		nk, nv := fn(a.values[k], k)
		out.Set(CanonicalKey(nk), nv)
	}
	return out
}

// Where keeps the entries for which fn returns true, with their keys.
func Where[V any](a *Array[V], fn func(V, Key) bool) *Array[V] {
	out := New[V]()
	for _, k := range a.keys {
		if v := a.values[k]; fn(v, k) {
			out.Set(k, v)
		}
	}
	return out
}

// Reject keeps the entries for which fn returns false.
func Reject[V any](a *Array[V], fn func(V, Key) bool) *Array[V] {
	return Where(a, func(v V, k Key) bool { return !fn(v, k) })
}

// Flatten flattens nested containers into a list. depth limits how many
// levels are opened; depth <= 0 flattens completely.
func Flatten(v any, depth int) *Array[any] {
	out := New[any]()
	flattenInto(out, v, depth)
	return out
}

func flattenInto(out *Array[any], v any, depth int) {
	items, ok := From(v)
	if !ok {
		return
	}
	for _, item := range items.All() {
		if !isIterable(item) {
			out.Append(item)
			continue
		}
		if depth == 1 {
			inner, _ := From(item)
			for _, iv := range inner.All() {
				out.Append(iv)
			}
			continue
		}
		flattenInto(out, item, depth-1)
	}
}

// Collapse merges the container values of a into one list, one level deep.
// Keys of the inner containers are discarded and scalar values are skipped.
func Collapse(a Traversable) *Array[any] {
	out := New[any]()
	for _, v := range a.Entries() {
		inner, ok := From(v)
		if !ok {
			continue
		}
		for _, iv := range inner.All() {
			out.Append(iv)
		}
	}
	return out
}

// Wrap returns v as an array: nil becomes empty, containers are converted by
// [From] and anything else becomes a one-element list.
func Wrap(v any) *Array[any] {
	if v == nil {
		return New[any]()
	}
	if a, ok := From(v); ok {
		return a
	}
	return List(v)
}

// Prepend puts v in front of a. Without a key the integer keys of a are
// renumbered from 1 and v takes key 0; with a key, v is stored under it and
// any existing entry for that key is dropped.
func Prepend[V any](a *Array[V], v V, key ...any) *Array[V] {
	out := New[V](a.Len() + 1)
	if len(key) > 0 {
		out.Set(key[0], v)
		for _, k := range a.keys {
			if !out.Has(k) {
				out.Set(k, a.values[k])
			}
		}
		return out
	}
	out.Append(v)
	for _, k := range a.keys {
		if k.IsInt() {
			out.Append(a.values[k])
		} else {
			out.Set(k, a.values[k])
		}
	}
	return out
}

// Merge combines arrays left to right: string keys overwrite earlier values
// in place, integer-keyed values are appended and renumbered.
func Merge[V any](arrays ...*Array[V]) *Array[V] {
	out := New[V]()
	for _, a := range arrays {
		for _, k := range a.keys {
			if k.IsInt() {
				out.Append(a.values[k])
			} else {
				out.Set(k, a.values[k])
			}
		}
	}
	return out
}

// Combine pairs keys with values. Returns [ErrMismatchedLengths] when the
// slices differ in length.
func Combine[V any](keys []any, values []V) (*Array[V], error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := New[V](len(keys))
	for i, k := range keys {
		out.Set(k, values[i])
	}
	return out, nil
}

// Select keeps only the given keys of every record in a. Records may be any
// container or struct; missing keys are left out.
func Select(a Traversable, keys ...string) *Array[any] {
	out := New[any](a.Len())
	for k, item := range a.Entries() {
		picked := New[any](len(keys))
		for _, want := range keys {
			if v, ok := lookupSegment(item, want); ok {
				picked.Set(want, v)
			}
		}
		out.Set(k, picked)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Combinatorics & randomisation
// ─────────────────────────────────────────────────────────────────────────────

// CrossJoin returns the cartesian product of the value lists of arrays. Each
// combination is a list with one value from every input, in input order.
func CrossJoin(arrays ...Traversable) *Array[any] {
	results := List[any](New[any]())
	for _, in := range arrays {
		next := New[any]()
		for _, partial := range results.Values() {
			for _, v := range in.Entries() {
				combo := partial.(*Array[any]).Clone()
				combo.Append(v)
				next.Append(combo)
			}
		}
		results = next
	}
	return results
}

// Partition splits a into the entries that satisfy fn and those that do not.
// Both halves keep their keys.
func Partition[V any](a *Array[V], fn func(V, Key) bool) (*Array[V], *Array[V]) {
	pass, fail := New[V](), New[V]()
	for _, k := range a.keys {
		v := a.values[k]
		if fn(v, k) {
			pass.Set(k, v)
		} else {
			fail.Set(k, v)
		}
	}
	return pass, fail
}

// Shuffle returns the values of a in random order as a list.
func Shuffle[V any](a *Array[V]) *Array[V] {
	vals := a.Values()
	rand.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	return List(vals...)
}

// Random picks n distinct entries at random and returns their values as a
// list, in the order they appear in a. Asking for more entries than a holds,
// or a negative n, returns [ErrInvalidArgument].
func Random[V any](a *Array[V], n int) (*Array[V], error) {
	if n < 0 || n > a.Len() {
		return nil, fmt.Errorf("%w: requested %d items, but there are only %d items available",
			ErrInvalidArgument, n, a.Len())
	}
	picks := rand.Perm(a.Len())[:n]
	slices.Sort(picks)
	out := New[V](n)
	for _, i := range picks {
		_, v := a.At(i)
		out.Append(v)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a copy of a ordered by cmp, keeping keys. The sort is stable.
func Sort[V any](a *Array[V], cmp func(x, y V) int) *Array[V] {
	out := a.Clone()
	out.SortStable(func(_ Key, x V, _ Key, y V) int { return cmp(x, y) })
	return out
}

// SortKeys returns a copy of a ordered by key.
func SortKeys[V any](a *Array[V], descending bool) *Array[V] {
	out := a.Clone()
	out.SortStable(func(x Key, _ V, y Key, _ V) int {
		if descending {
			return CompareKeys(y, x)
		}
		return CompareKeys(x, y)
	})
	return out
}
