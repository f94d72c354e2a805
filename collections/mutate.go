package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-place mutation
//
// These are the only methods that modify the receiver. They return nothing
// or the removed portion. Arguments are validated before anything changes.
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items under the next free integer keys.
func (c *Collection[T]) Push(items ...T) {
	for _, item := range items {
		c.items.Append(item)
	}
}

// Add is an alias for [Collection.Push] with a single item.
func (c *Collection[T]) Add(item T) { c.items.Append(item) }

// Prepend puts value at the front. Without a key, integer keys are
// renumbered and value takes key 0; with a key, value is stored under it.
func (c *Collection[T]) Prepend(value T, key ...any) {
	c.items = arr.Prepend(c.items, value, key...)
}

// Unshift puts values at the front, in the order given, and renumbers
// integer keys.
func (c *Collection[T]) Unshift(values ...T) {
	c.items = arr.Merge(arr.List(values...), c.items)
}

// Put stores value under key. An existing key keeps its position.
func (c *Collection[T]) Put(key any, value T) { c.items.Set(key, value) }

// Forget removes the given keys.
func (c *Collection[T]) Forget(keys ...any) {
	for _, k := range keys {
		c.items.Delete(k)
	}
}

// Pull removes the item stored under key and returns it.
func (c *Collection[T]) Pull(key any) (T, bool) {
	v, ok := c.items.Get(key)
	if ok {
		c.items.Delete(key)
	}
	return v, ok
}

// Pop removes and returns the last item.
func (c *Collection[T]) Pop() (T, bool) {
	_, v, ok := c.items.Pop()
	return v, ok
}

// PopN removes the last n items and returns them, last item first. Returns
// [ErrInvalidArgument] for a negative n, leaving c unchanged.
func (c *Collection[T]) PopN(n int) (*Collection[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: number of items to pop must not be negative, got %d", ErrInvalidArgument, n)
	}
	out := arr.New[T](n)
	for range min(n, c.items.Len()) {
		v, _ := c.Pop()
		out.Append(v)
	}
	return wrap(out), nil
}

// Shift removes and returns the first item. Remaining integer keys are
// renumbered from 0.
func (c *Collection[T]) Shift() (T, bool) {
	k, ok := c.items.FirstKey()
	if !ok {
		var zero T
		return zero, false
	}
	v, _ := c.items.Get(k)
	rest := arr.New[T](c.items.Len() - 1)
	for rk, rv := range c.items.All() {
		switch {
		case rk == k:
		case rk.IsInt():
			rest.Append(rv)
		default:
			rest.Set(rk, rv)
		}
	}
	c.items = rest
	return v, true
}

// ShiftN removes the first n items and returns them in order. Returns
// [ErrInvalidArgument] for a negative n, leaving c unchanged.
func (c *Collection[T]) ShiftN(n int) (*Collection[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: number of items to shift must not be negative, got %d", ErrInvalidArgument, n)
	}
	n = min(n, c.items.Len())
	removed := c.span(0, n, false)
	c.items = c.span(n, c.items.Len(), false)
	return wrap(removed.Reindexed()), nil
}

// Splice removes every item from position offset to the end and returns
// them. A negative offset counts from the end.
func (c *Collection[T]) Splice(offset int) *Collection[T] {
	return c.SpliceReplace(offset, c.items.Len())
}

// SpliceReplace removes length items starting at position offset, inserts
// replacement in their place and returns the removed items. Negative offset
// and length count from the end, as in [Collection.Slice]. Integer keys of
// the receiver are renumbered; string keys are kept.
func (c *Collection[T]) SpliceReplace(offset, length int, replacement ...T) *Collection[T] {
	n := c.items.Len()
	start, end := sliceBounds(n, offset, length)
	removed := c.span(start, end, false)

	out := arr.New[T](n - (end - start) + len(replacement))
	appendSpan := func(from, to int) {
		for i := from; i < to; i++ {
			k, v := c.items.At(i)
			if k.IsInt() {
				out.Append(v)
			} else {
				out.Set(k, v)
			}
		}
	}
	appendSpan(0, start)
	for _, r := range replacement {
		out.Append(r)
	}
	appendSpan(end, n)
	c.items = out
	return wrap(removed)
}

// Transform replaces every item with fn(item, key) in place.
func (c *Collection[T]) Transform(fn func(T, arr.Key) T) {
	c.items = arr.Map(c.items, fn)
}
