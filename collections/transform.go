package collections

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every item and keeps the keys. Use the package-level
// [Map] for a typed result.
func (c *Collection[T]) Map(fn func(T, arr.Key) any) *Collection[any] {
	return wrap(arr.Map(c.items, fn))
}

// MapWithKeys builds a collection from one key/value pair per item. Derived
// keys are canonicalized; when two items derive the same key the later
// value wins and the first position is kept.
func (c *Collection[T]) MapWithKeys(fn func(T, arr.Key) (any, any)) *Collection[any] {
	return wrap(arr.MapWithKeys(c.items, fn))
}

// MapInto is Map with the result collected as T again.
func (c *Collection[T]) MapInto(fn func(T, arr.Key) T) *Collection[T] {
	return wrap(arr.Map(c.items, fn))
}

// FlatMap maps every item and collapses the results by one level.
func (c *Collection[T]) FlatMap(fn func(T, arr.Key) any) *Collection[any] {
	return c.Map(fn).Collapse()
}

// Collapse merges container items into one list, one level deep. Inner keys
// are discarded and scalar items are dropped.
func (c *Collection[T]) Collapse() *Collection[any] {
	return wrap(arr.Collapse(c.items))
}

// Flatten flattens nested containers into a list. depth limits how many
// levels are opened; depth <= 0 flattens completely.
func (c *Collection[T]) Flatten(depth int) *Collection[any] {
	return wrap(arr.Flatten(c.items, depth))
}

// Pluck returns the value valuePath selects from every item. valuePath is a
// selector; as a dot path, "*" fans out and chained wildcards collapse one
// level. When keyPath is given the results are keyed by the canonical form of
// the value it selects.
//
//	users.Pluck("name")
//	users.Pluck("email", "id")
//	orders.Pluck("lines.*.sku")
func (c *Collection[T]) Pluck(valuePath any, keyPath ...any) *Collection[any] {
	value := valueRetriever[T](valuePath)
	out := arr.New[any](c.items.Len())
	if len(keyPath) == 0 || keyPath[0] == nil {
		for k, v := range c.items.All() {
			out.Append(value(v, k))
		}
		return wrap(out)
	}
	key := valueRetriever[T](keyPath[0])
	for k, v := range c.items.All() {
		out.Set(arr.CanonicalKey(key(v, k)), value(v, k))
	}
	return wrap(out)
}

// Flip swaps keys and values. Values are canonicalized into keys; a later
// duplicate overwrites an earlier one.
func (c *Collection[T]) Flip() *Collection[any] {
	return wrap(arr.MapWithKeys(c.items, func(v T, k arr.Key) (any, any) {
		return v, k.Value()
	}))
}

// Combine uses the values of c as keys for values, which may be a slice or
// any keyed container. Returns [ErrMismatchedLengths] when the counts
// differ.
func (c *Collection[T]) Combine(values any) (*Collection[any], error) {
	vals := Collect(values).All()
	keys := make([]any, 0, c.items.Len())
	for _, v := range c.items.All() {
		keys = append(keys, v)
	}
	out, err := arr.Combine(keys, vals)
	if err != nil {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrMismatchedLengths, len(keys), len(vals))
	}
	return wrap(out), nil
}

// Pad extends the collection to |size| items with value. A positive size
// pads at the end, a negative one at the start. Integer keys are renumbered.
func (c *Collection[T]) Pad(size int, value T) *Collection[T] {
	n := c.items.Len()
	want := size
	if want < 0 {
		want = -want
	}
	if want <= n {
		return wrap(c.items.Clone())
	}
	pad := arr.New[T](want - n)
	for range want - n {
		pad.Append(value)
	}
	if size > 0 {
		return wrap(arr.Merge(c.items, pad))
	}
	return wrap(arr.Merge(pad, c.items))
}

// Reverse returns the items in reverse order, keeping keys.
func (c *Collection[T]) Reverse() *Collection[T] {
	keys := c.items.Keys()
	out := arr.New[T](len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		v, _ := c.items.Get(keys[i])
		out.Set(keys[i], v)
	}
	return wrap(out)
}

// Implode joins the string forms of the items, or of the values selected by
// selector[0], with glue.
func (c *Collection[T]) Implode(glue string, selector ...any) string {
	retrieve := valueRetriever[T](optionalSelector(selector))
	parts := make([]string, 0, c.items.Len())
	for k, v := range c.items.All() {
		parts = append(parts, arr.StringOf(retrieve(v, k)))
	}
	return strings.Join(parts, glue)
}

// Join joins the items with glue, using finalGlue before the last one.
//
//	New("a", "b", "c").Join(", ", " and ") // "a, b and c"
func (c *Collection[T]) Join(glue, finalGlue string) string {
	parts := make([]string, 0, c.items.Len())
	for _, v := range c.items.All() {
		parts = append(parts, arr.StringOf(v))
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], glue) + finalGlue + parts[len(parts)-1]
}

// Concat appends the values of other under new integer keys. The receiver's
// keys are kept.
func (c *Collection[T]) Concat(other *Collection[T]) *Collection[T] {
	out := c.items.Clone()
	for _, v := range other.items.All() {
		out.Append(v)
	}
	return wrap(out)
}

// Merge combines c with other: string keys of other overwrite in place,
// integer-keyed values are appended and all integer keys renumbered.
func (c *Collection[T]) Merge(other *Collection[T]) *Collection[T] {
	return wrap(arr.Merge(c.items, other.items))
}

// Replace overwrites the items of c with the items of other under the same
// keys, integer keys included. New keys are appended.
func (c *Collection[T]) Replace(other *Collection[T]) *Collection[T] {
	out := c.items.Clone()
	for k, v := range other.items.All() {
		out.Set(k, v)
	}
	return wrap(out)
}

// Select keeps only the given keys of every item. Items may be any keyed
// container or struct.
func (c *Collection[T]) Select(keys ...string) *Collection[any] {
	return wrap(arr.Select(c.items, keys...))
}

// Zip pairs the items of c with the items of others at the same position.
// Every element is a *Collection[any]; missing positions are nil. The
// result is as long as the longest input.
func (c *Collection[T]) Zip(others ...*Collection[T]) *Collection[any] {
	lists := make([][]T, 0, len(others)+1)
	lists = append(lists, c.All())
	longest := c.items.Len()
	for _, o := range others {
		lists = append(lists, o.All())
		longest = max(longest, o.items.Len())
	}
	out := arr.New[any](longest)
	for i := range longest {
		row := arr.New[any](len(lists))
		for _, l := range lists {
			if i < len(l) {
				row.Append(l[i])
			} else {
				row.Append(nil)
			}
		}
		out.Append(wrap(row))
	}
	return wrap(out)
}
