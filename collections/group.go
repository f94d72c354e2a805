package collections

import (
	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Grouping & keying
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups the items by the value selector derives, canonicalized
// with [arr.CanonicalKey] (so true and false group under 1 and 0). When the
// derived value is a sequence the item joins every group it names.
//
// The result holds one *Collection[T] per group, in order of first
// appearance. Items keep their original keys when preserveKeys is set and
// are renumbered otherwise.
func (c *Collection[T]) GroupBy(selector any, preserveKeys bool) *Collection[any] {
	retrieve := valueRetriever[T](selector)
	groups := arr.New[any]()
	for k, v := range c.items.All() {
		for _, gk := range groupKeys(retrieve(v, k)) {
			var group *Collection[T]
			if existing, ok := groups.Get(gk); ok {
				group = existing.(*Collection[T])
			} else {
				group = Empty[T]()
				groups.Set(gk, group)
			}
			if preserveKeys {
				group.items.Set(k, v)
			} else {
				group.items.Append(v)
			}
		}
	}
	return wrap(groups)
}

// GroupByNested groups by selectors[0], then every group by selectors[1],
// and so on. Leaf groups are *Collection[T]; inner levels are
// *Collection[any].
func (c *Collection[T]) GroupByNested(selectors []any, preserveKeys bool) *Collection[any] {
	if len(selectors) == 0 {
		return Collect(c.items)
	}
	grouped := c.GroupBy(selectors[0], preserveKeys)
	if len(selectors) == 1 {
		return grouped
	}
	return wrap(arr.Map(grouped.items, func(g any, _ arr.Key) any {
		return g.(*Collection[T]).GroupByNested(selectors[1:], preserveKeys)
	}))
}

func groupKeys(derived any) []arr.Key {
	if !isSequence(derived) {
		return []arr.Key{arr.CanonicalKey(derived)}
	}
	a, _ := arr.From(derived)
	keys := make([]arr.Key, 0, a.Len())
	for _, v := range a.All() {
		keys = append(keys, arr.CanonicalKey(v))
	}
	return keys
}

// KeyBy keys every item by the canonical form of the value selector
// derives. A later item with the same key replaces the earlier one.
func (c *Collection[T]) KeyBy(selector any) *Collection[T] {
	retrieve := valueRetriever[T](selector)
	return wrap(arr.MapWithKeys(c.items, func(v T, k arr.Key) (any, T) {
		return retrieve(v, k), v
	}))
}

// CountBy counts the items per canonical derived value. A nil selector
// counts the items themselves.
func (c *Collection[T]) CountBy(selector any) *Collection[int] {
	retrieve := valueRetriever[T](selector)
	out := arr.New[int]()
	for k, v := range c.items.All() {
		key := arr.CanonicalKey(retrieve(v, k))
		n, _ := out.Get(key)
		out.Set(key, n+1)
	}
	return wrap(out)
}

// Partition splits the collection into the items that satisfy fn and those
// that do not. Both halves keep their keys.
func (c *Collection[T]) Partition(fn func(T, arr.Key) bool) (*Collection[T], *Collection[T]) {
	pass, fail := arr.Partition(c.items, fn)
	return wrap(pass), wrap(fail)
}
