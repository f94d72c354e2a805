package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first item, optionally the first one matching fns[0].
// Returns the zero value and false when the collection is empty or no item
// satisfies the predicate.
func (c *Collection[T]) First(fns ...func(T, arr.Key) bool) (T, bool) {
	return arr.First(c.items, fns...)
}

// FirstOrFail returns the first item, optionally matching fns[0], or
// [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fns ...func(T, arr.Key) bool) (T, error) {
	item, ok := c.First(fns...)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// FirstWhere returns the first item matching the [Collection.Where]
// condition built from key and args.
func (c *Collection[T]) FirstWhere(key any, args ...any) (T, bool) {
	return c.First(whereCondition[T](key, args))
}

// Last returns the last item, optionally the last one matching fns[0]. The
// scan runs from the end.
func (c *Collection[T]) Last(fns ...func(T, arr.Key) bool) (T, bool) {
	return arr.Last(c.items, fns...)
}

// LastOrFail returns the last item, optionally matching fns[0], or
// [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fns ...func(T, arr.Key) bool) (T, error) {
	item, ok := c.Last(fns...)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Sole returns the only item, optionally the only one matching fns[0].
// Returns [ErrNoMatchingItems] when nothing matches and
// [ErrMultipleItemsFound] when more than one item does.
func (c *Collection[T]) Sole(fns ...func(T, arr.Key) bool) (T, error) {
	var (
		found T
		count int
	)
	for k, v := range c.items.All() {
		if len(fns) > 0 && !fns[0](v, k) {
			continue
		}
		count++
		found = v
	}
	switch {
	case count == 0:
		var zero T
		return zero, ErrNoMatchingItems
	case count > 1:
		var zero T
		return zero, fmt.Errorf("%w: %d items", ErrMultipleItemsFound, count)
	}
	return found, nil
}

// Search returns the key of the first item equal to value. Equality is loose
// unless strict is set.
func (c *Collection[T]) Search(value any, strict bool) (arr.Key, bool) {
	equal := arr.LooseEqual
	if strict {
		equal = arr.StrictEqual
	}
	return c.SearchFunc(func(v T, _ arr.Key) bool { return equal(v, value) })
}

// SearchFunc returns the key of the first item for which fn returns true.
func (c *Collection[T]) SearchFunc(fn func(T, arr.Key) bool) (arr.Key, bool) {
	for k, v := range c.items.All() {
		if fn(v, k) {
			return k, true
		}
	}
	return arr.Key{}, false
}

// Contains reports whether at least one item satisfies fn.
func (c *Collection[T]) Contains(fn func(T, arr.Key) bool) bool {
	_, ok := c.SearchFunc(fn)
	return ok
}

// ContainsValue reports whether an item is loosely equal to value.
func (c *Collection[T]) ContainsValue(value any) bool {
	_, ok := c.Search(value, false)
	return ok
}

// ContainsStrict reports whether an item has the same type and value as
// value.
func (c *Collection[T]) ContainsStrict(value any) bool {
	_, ok := c.Search(value, true)
	return ok
}

// DoesntContain is the inverse of [Collection.Contains].
func (c *Collection[T]) DoesntContain(fn func(T, arr.Key) bool) bool {
	return !c.Contains(fn)
}
