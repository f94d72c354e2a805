package collections

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// Collection is a generic, ordered, keyed container built on [arr.Array].
//
// Keys are ints or strings ([arr.Key]) and iteration follows insertion
// order. Every method that transforms the collection returns a *new*
// Collection backed by a freshly built array, leaving the receiver
// unchanged. Only the mutators listed under "In-place mutation" modify the
// receiver, and they return nothing or the removed portion, never the
// receiver itself.
//
// # Creating a collection
//
//	c := collections.New(1, 2, 3, 4, 5)
//	c := collections.From([]string{"a", "b", "c"})
//	c := collections.FromMap(map[string]int{"a": 1})
//	c := collections.Collect(decodedJSON)
//	c := collections.Empty[int]()
//
// # Method chaining
//
//	result := collections.New(5, 3, 8, 1).
//	    Filter(func(n int, _ arr.Key) bool { return n > 2 }).
//	    Sort().
//	    Values()
//
// # Selectors
//
// Methods that derive a value from each item (Where, SortBy, GroupBy, Pluck,
// Sum, ...) take a selector of type any:
//
//   - a string is a dot path resolved with [arr.DataGet] ("user.name",
//     "tags.*")
//   - func(T) any or func(T, arr.Key) any is called for each item
//   - an int or [arr.Key] reads that key of the item
//   - nil selects the item itself
//
// Any other selector type panics, as does a function with a different
// signature.
//
// # Type-transforming operations
//
// Go methods cannot introduce new type parameters, so methods that change
// the element type return *Collection[any]. Typed versions are package-level
// functions ([Map], [FlatMap], [Reduce], [GroupBy], [Zip], ...). Nested
// results such as groups and chunks are *Collection[any] values that hold
// *Collection[T] elements.
//
// A Collection is not safe for concurrent mutation.
type Collection[T any] struct {
	items *arr.Array[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection holding items under the keys 0..len(items)-1.
func New[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: arr.List(items...)}
}

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	return New(items...)
}

// FromArray creates a Collection from a copy of a.
func FromArray[T any](a *arr.Array[T]) *Collection[T] {
	return &Collection[T]{items: a.Clone()}
}

// FromMap creates a Collection from a Go map. Keys are canonicalized and
// sorted so the result does not depend on map iteration order.
func FromMap[K comparable, T any](m map[K]T) *Collection[T] {
	return &Collection[T]{items: arr.FromMap(m)}
}

// Collect wraps an arbitrary value: nil becomes an empty collection,
// slices, Go arrays, maps and keyed containers contribute their entries, and
// any other value becomes a one-element collection.
func Collect(source any) *Collection[any] {
	if source == nil {
		return Empty[any]()
	}
	if isSequence(source) || isMapLike(source) {
		a, _ := arr.From(source)
		return &Collection[any]{items: a}
	}
	return New(source)
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: arr.New[T]()}
}

// Times creates a Collection by calling fn with 1..n.
func Times[T any](n int, fn func(int) T) *Collection[T] {
	out := arr.New[T](max(n, 0))
	for i := 1; i <= n; i++ {
		out.Append(fn(i))
	}
	return &Collection[T]{items: out}
}

// Range returns the integers from..to inclusive, counting down when from is
// greater than to.
func Range(from, to int) *Collection[int] {
	step := 1
	if from > to {
		step = -1
	}
	out := arr.New[int]()
	for i := from; ; i += step {
		out.Append(i)
		if i == to {
			break
		}
	}
	return &Collection[int]{items: out}
}

func wrap[T any](a *arr.Array[T]) *Collection[T] {
	return &Collection[T]{items: a}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns the values in iteration order as a new slice.
func (c *Collection[T]) All() []T { return c.items.Values() }

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// ToMap returns the entries as a Go map. Order is lost.
func (c *Collection[T]) ToMap() map[arr.Key]T {
	out := make(map[arr.Key]T, c.items.Len())
	for k, v := range c.items.All() {
		out[k] = v
	}
	return out
}

// Items returns a copy of the backing array.
func (c *Collection[T]) Items() *arr.Array[T] { return c.items.Clone() }

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return c.items.Len() }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return c.items.Len() == 0 }

// IsNotEmpty reports whether the collection has at least one item.
func (c *Collection[T]) IsNotEmpty() bool { return c.items.Len() > 0 }

// Get returns the item stored under key together with a presence flag.
func (c *Collection[T]) Get(key any) (T, bool) { return c.items.Get(key) }

// GetOr returns the item stored under key, or def when key is absent.
func (c *Collection[T]) GetOr(key any, def T) T {
	if v, ok := c.items.Get(key); ok {
		return v
	}
	return def
}

// Has reports whether every key is present. A key holding a nil or falsy
// value still counts as present.
func (c *Collection[T]) Has(keys ...any) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		if !c.items.Has(k) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one key is present.
func (c *Collection[T]) HasAny(keys ...any) bool {
	for _, k := range keys {
		if c.items.Has(k) {
			return true
		}
	}
	return false
}

// Keys returns the keys in iteration order.
func (c *Collection[T]) Keys() []arr.Key { return c.items.Keys() }

// Values returns a new collection with the same values under the keys
// 0..Count()-1.
func (c *Collection[T]) Values() *Collection[T] { return wrap(c.items.Reindexed()) }

// String returns a JSON representation of the collection.
// It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items.Values())
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Iter returns an iterator over the entries. Iterating twice without
// mutation yields identical sequences.
func (c *Collection[T]) Iter() iter.Seq2[arr.Key, T] { return c.items.All() }

// Entries implements [arr.Traversable], which lets [arr.DataGet] and the
// comparison helpers walk nested collections.
func (c *Collection[T]) Entries() iter.Seq2[arr.Key, any] { return c.items.Entries() }

// Lookup implements [arr.Traversable].
func (c *Collection[T]) Lookup(key arr.Key) (any, bool) { return c.items.Lookup(key) }

// Len implements [arr.Traversable]; it is the same as [Collection.Count].
func (c *Collection[T]) Len() int { return c.items.Len() }

// Each calls fn(item, key) for every item, stopping early when fn returns
// false.
func (c *Collection[T]) Each(fn func(T, arr.Key) bool) {
	for k, v := range c.items.All() {
		if !fn(v, k) {
			return
		}
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Pipe passes the collection to fn and returns its result.
func (c *Collection[T]) Pipe(fn func(*Collection[T]) any) any { return fn(c) }

// ─────────────────────────────────────────────────────────────────────────────
// Conditional
// ─────────────────────────────────────────────────────────────────────────────

// When returns fn(c) when condition is true. Otherwise it returns
// fallback[0](c) when a fallback is given, or c.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T], fallback ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	if len(fallback) > 0 {
		return fallback[0](c)
	}
	return c
}

// Unless is the inverse of [Collection.When].
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T], fallback ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn, fallback...)
}

// WhenEmpty calls fn(c) when the collection is empty.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T], fallback ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn, fallback...)
}

// WhenNotEmpty calls fn(c) when the collection has at least one item.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T], fallback ...func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn, fallback...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Value retrieval
// ─────────────────────────────────────────────────────────────────────────────

// valueRetriever turns a selector into a function deriving one value per
// item. See the Selectors section of [Collection].
func valueRetriever[T any](selector any) func(T, arr.Key) any {
	switch s := selector.(type) {
	case nil:
		return func(v T, _ arr.Key) any { return v }
	case string:
		segments := splitPath(s)
		return func(v T, _ arr.Key) any { return arr.DataGetSegments(v, segments, nil) }
	case func(T) any:
		return func(v T, _ arr.Key) any { return s(v) }
	case func(T, arr.Key) any:
		return s
	case func(T) string:
		return func(v T, _ arr.Key) any { return s(v) }
	case func(T) int:
		return func(v T, _ arr.Key) any { return s(v) }
	case func(T) float64:
		return func(v T, _ arr.Key) any { return s(v) }
	case func(T) bool:
		return func(v T, _ arr.Key) any { return s(v) }
	case int, arr.Key:
		segments := []string{arr.CanonicalKey(s).String()}
		return func(v T, _ arr.Key) any { return arr.DataGetSegments(v, segments, nil) }
	}
	panic(fmt.Sprintf("collections: unsupported selector type %T", selector))
}

func splitPath(path string) []string { return strings.Split(path, ".") }

func optionalSelector(selector []any) any {
	if len(selector) == 0 {
		return nil
	}
	return selector[0]
}

func isSequence(v any) bool {
	if _, ok := v.(arr.Traversable); ok {
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isMapLike(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}
