package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// This file contains package-level generic functions for operations that
// transform a Collection[T] to a Collection[U] (T ≠ U).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They are designed to be
// composable with method-chaining calls:
//
//	result := collections.Map(
//	    collections.New(1, 2, 3, 4, 5).Filter(func(n int, _ arr.Key) bool { return n%2 == 0 }),
//	    func(n int, _ arr.Key) string { return strconv.Itoa(n) },
//	)

// Map applies fn to every item, keeping keys, and returns a new
// Collection[U].
//
//	doubled := collections.Map(collections.New(1, 2, 3),
//	    func(n int, _ arr.Key) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Collection[T], fn func(T, arr.Key) U) *Collection[U] {
	return wrap(arr.Map(c.items, fn))
}

// MapWithKeys builds a Collection[U] from one key/value pair per item.
func MapWithKeys[T, U any](c *Collection[T], fn func(T, arr.Key) (any, U)) *Collection[U] {
	return wrap(arr.MapWithKeys(c.items, fn))
}

// FlatMap applies fn to every item (producing a []U per item) and flattens
// the results into a single list.
//
//	words := collections.FlatMap(collections.New("hello world", "foo bar"),
//	    func(s string, _ arr.Key) []string { return strings.Fields(s) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Collection[T], fn func(T, arr.Key) []U) *Collection[U] {
	out := arr.New[U](c.items.Len())
	for k, item := range c.items.All() {
		for _, u := range fn(item, k) {
			out.Append(u)
		}
	}
	return wrap(out)
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3, 4),
//	    func(acc int, n int, _ arr.Key) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, arr.Key) U, initial U) U {
	result := initial
	for k, item := range c.items.All() {
		result = fn(result, item, k)
	}
	return result
}

// Pluck extracts a single field U from every item T as a list.
//
//	names := collections.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := arr.New[U](c.items.Len())
	for _, item := range c.items.All() {
		out.Append(fn(item))
	}
	return wrap(out)
}

// GroupBy groups items by a typed key, in order of first appearance. Keys
// are canonicalized with [arr.CanonicalKey]; items are renumbered inside
// each group.
//
//	byLen := collections.GroupBy(words, func(s string) int { return len(s) })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[*Collection[T]] {
	groups := arr.New[*Collection[T]]()
	for _, item := range c.items.All() {
		k := arr.CanonicalKey(fn(item))
		g, ok := groups.Get(k)
		if !ok {
			g = Empty[T]()
			groups.Set(k, g)
		}
		g.items.Append(item)
	}
	return wrap(groups)
}

// KeyBy keys items by a typed key; a later item replaces an earlier one
// with the same key.
//
//	byID := collections.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[T] {
	return wrap(arr.MapWithKeys(c.items, func(item T, _ arr.Key) (any, T) {
		return fn(item), item
	}))
}

// Zip pairs items from a and b by position. The result is as long as the
// shorter input.
//
//	pairs := collections.Zip(collections.New(1, 2, 3), collections.New("a", "b", "c"))
//	// → [(1, a), (2, b), (3, c)]
func Zip[A, B any](a *Collection[A], b *Collection[B]) *Collection[Pair[A, B]] {
	as, bs := a.All(), b.All()
	n := min(len(as), len(bs))
	out := arr.New[Pair[A, B]](n)
	for i := range n {
		out.Append(Pair[A, B]{First: as[i], Second: bs[i]})
	}
	return wrap(out)
}

// Combine pairs keys with values. Returns [ErrMismatchedLengths] when the
// slices differ in length.
//
//	m, err := collections.Combine([]string{"a", "b"}, []int{1, 2})
//	// → {"a": 1, "b": 2}
func Combine[K comparable, V any](keys []K, values []V) (*Collection[V], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(values))
	}
	out := arr.New[V](len(keys))
	for i, k := range keys {
		out.Set(k, values[i])
	}
	return wrap(out), nil
}

// Collapse flattens a collection of slices into a single list.
//
//	flat := collections.Collapse(collections.New([]int{1, 2}, []int{3, 4}))
//	// → [1, 2, 3, 4]
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	out := arr.New[T]()
	for _, s := range c.items.All() {
		for _, v := range s {
			out.Append(v)
		}
	}
	return wrap(out)
}

// Ensure converts every item to U, keeping keys. It returns
// [ErrTypeMismatch] naming the key of the first item that is not a U.
//
//	ids, err := collections.Ensure[int](payload.Pluck("id"))
func Ensure[U, T any](c *Collection[T]) (*Collection[U], error) {
	out := arr.New[U](c.items.Len())
	for k, item := range c.items.All() {
		u, ok := any(item).(U)
		if !ok {
			return nil, fmt.Errorf("%w: item at key %s is %T, not %T", ErrTypeMismatch, k, item, *new(U))
		}
		out.Set(k, u)
	}
	return wrap(out), nil
}
