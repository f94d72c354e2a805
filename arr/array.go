package arr

import (
	"iter"
	"slices"
)

// Array is an ordered mapping from [Key] to V. Iteration follows insertion
// order; overwriting an existing key keeps its original position.
//
// The zero value is not usable; create arrays with [New], [List] or
// [FromMap]. An Array is not safe for concurrent mutation.
type Array[V any] struct {
	keys   []Key
	values map[Key]V
	next   int
}

// Traversable is implemented by keyed containers that [DataGet] and the
// collection engine can walk without knowing their element type, such as
// *Array[V] and *collections.Collection[T].
type Traversable interface {
	// Entries yields every key/value pair in order.
	Entries() iter.Seq2[Key, any]
	// Lookup returns the value stored under key.
	Lookup(key Key) (any, bool)
	// Len returns the number of entries.
	Len() int
}

// New returns an empty Array with room for size entries.
func New[V any](size ...int) *Array[V] {
	n := 0
	if len(size) > 0 && size[0] > 0 {
		n = size[0]
	}
	return &Array[V]{keys: make([]Key, 0, n), values: make(map[Key]V, n)}
}

// List returns an Array holding values under the keys 0..len(values)-1.
func List[V any](values ...V) *Array[V] {
	a := New[V](len(values))
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// FromMap copies a Go map into an Array. Go maps have no order, so the keys
// are canonicalized and sorted with [CompareKeys] to keep the result
// deterministic.
func FromMap[K comparable, V any](m map[K]V) *Array[V] {
	type entry struct {
		key Key
		val V
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{CanonicalKey(k), v})
	}
	slices.SortFunc(entries, func(a, b entry) int { return CompareKeys(a.key, b.key) })
	a := New[V](len(entries))
	for _, e := range entries {
		a.Set(e.key, e.val)
	}
	return a
}

// Len returns the number of entries.
func (a *Array[V]) Len() int { return len(a.keys) }

// Get returns the value stored under key. key is canonicalized with
// [CanonicalKey].
func (a *Array[V]) Get(key any) (V, bool) {
	v, ok := a.values[CanonicalKey(key)]
	return v, ok
}

// Has reports whether key exists, regardless of the stored value.
func (a *Array[V]) Has(key any) bool {
	_, ok := a.values[CanonicalKey(key)]
	return ok
}

// Set stores v under key. A new key is appended; an existing key keeps its
// position.
func (a *Array[V]) Set(key any, v V) {
	k := CanonicalKey(key)
	if _, ok := a.values[k]; !ok {
		a.keys = append(a.keys, k)
		if n, isInt := k.Int(); isInt && n >= a.next {
			a.next = n + 1
		}
	}
	a.values[k] = v
}

// Append stores v under the next free integer key and returns that key.
// The next free key is one past the largest integer key ever stored.
func (a *Array[V]) Append(v V) Key {
	k := IntKey(a.next)
	a.Set(k, v)
	return k
}

// Delete removes key and reports whether it was present.
func (a *Array[V]) Delete(key any) bool {
	k := CanonicalKey(key)
	if _, ok := a.values[k]; !ok {
		return false
	}
	delete(a.values, k)
	if n := len(a.keys); a.keys[n-1] == k {
		a.keys = a.keys[:n-1]
		return true
	}
	i := slices.Index(a.keys, k)
	a.keys = slices.Delete(a.keys, i, i+1)
	return true
}

// Pop removes the last entry and returns it. When that entry holds the
// highest integer key, the next free integer key moves back to it.
func (a *Array[V]) Pop() (Key, V, bool) {
	n := len(a.keys)
	if n == 0 {
		var zero V
		return Key{}, zero, false
	}
	k := a.keys[n-1]
	v := a.values[k]
	delete(a.values, k)
	a.keys = a.keys[:n-1]
	if i, ok := k.Int(); ok && i == a.next-1 {
		a.next = i
	}
	return k, v, true
}

// Keys returns a copy of the keys in order.
func (a *Array[V]) Keys() []Key { return slices.Clone(a.keys) }

// Values returns the values in order.
func (a *Array[V]) Values() []V {
	out := make([]V, len(a.keys))
	for i, k := range a.keys {
		out[i] = a.values[k]
	}
	return out
}

// At returns the entry at position i (0-based, in iteration order).
func (a *Array[V]) At(i int) (Key, V) {
	k := a.keys[i]
	return k, a.values[k]
}

// FirstKey returns the first key, or false when a is empty.
func (a *Array[V]) FirstKey() (Key, bool) {
	if len(a.keys) == 0 {
		return Key{}, false
	}
	return a.keys[0], true
}

// LastKey returns the last key, or false when a is empty.
func (a *Array[V]) LastKey() (Key, bool) {
	if len(a.keys) == 0 {
		return Key{}, false
	}
	return a.keys[len(a.keys)-1], true
}

// All yields every entry in order. Iterating twice without mutation yields
// identical sequences.
func (a *Array[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Entries implements [Traversable].
func (a *Array[V]) Entries() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Lookup implements [Traversable].
func (a *Array[V]) Lookup(key Key) (any, bool) {
	v, ok := a.values[key]
	if !ok {
		return nil, false
	}
	return v, true
}

// Clone returns a shallow copy of a. Values are copied by assignment.
func (a *Array[V]) Clone() *Array[V] {
	out := &Array[V]{
		keys:   slices.Clone(a.keys),
		values: make(map[Key]V, len(a.values)),
		next:   a.next,
	}
	for k, v := range a.values {
		out.values[k] = v
	}
	return out
}

// IsList reports whether the keys are exactly the integers 0..Len()-1 in
// order. This is the rule that decides between the sequence and the object
// projection in JSON and YAML.
func (a *Array[V]) IsList() bool {
	for i, k := range a.keys {
		if n, ok := k.Int(); !ok || n != i {
			return false
		}
	}
	return true
}

// Reindexed returns the values of a under the keys 0..Len()-1.
func (a *Array[V]) Reindexed() *Array[V] { return List(a.Values()...) }

// SortStable reorders a in place with cmp applied to whole entries.
func (a *Array[V]) SortStable(compare func(ka Key, va V, kb Key, vb V) int) {
	slices.SortStableFunc(a.keys, func(x, y Key) int {
		return compare(x, a.values[x], y, a.values[y])
	})
}
