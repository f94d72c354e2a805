package collections

import (
	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Set algebra
//
// The default variants hash values with loose equality and run in O(n+m).
// The Using variants take a comparator (0 means equal) and run in O(n·m).
// Results keep the receiver's keys.
// ─────────────────────────────────────────────────────────────────────────────

// Diff returns the items of c whose value is not present in other.
func (c *Collection[T]) Diff(other *Collection[T]) *Collection[T] {
	set := valuesOf(other, false)
	return c.Filter(func(v T, _ arr.Key) bool { return !set.has(v) })
}

// DiffUsing is [Collection.Diff] with a value comparator.
func (c *Collection[T]) DiffUsing(other *Collection[T], cmp func(a, b T) int) *Collection[T] {
	return c.Filter(func(v T, _ arr.Key) bool {
		return !other.Contains(func(o T, _ arr.Key) bool { return cmp(v, o) == 0 })
	})
}

// DiffAssoc returns the items of c whose key is missing from other or whose
// value differs from other's value under that key.
func (c *Collection[T]) DiffAssoc(other *Collection[T]) *Collection[T] {
	return c.Filter(func(v T, k arr.Key) bool {
		o, ok := other.items.Get(k)
		return !ok || !arr.LooseEqual(v, o)
	})
}

// DiffAssocUsing is [Collection.DiffAssoc] with a key comparator.
func (c *Collection[T]) DiffAssocUsing(other *Collection[T], cmp func(a, b arr.Key) int) *Collection[T] {
	return c.Filter(func(v T, k arr.Key) bool {
		return !other.Contains(func(o T, otherKey arr.Key) bool {
			return cmp(k, otherKey) == 0 && arr.LooseEqual(v, o)
		})
	})
}

// DiffKeys returns the items of c whose key is missing from other.
func (c *Collection[T]) DiffKeys(other *Collection[T]) *Collection[T] {
	return c.Filter(func(_ T, k arr.Key) bool { return !other.items.Has(k) })
}

// DiffKeysUsing is [Collection.DiffKeys] with a key comparator.
func (c *Collection[T]) DiffKeysUsing(other *Collection[T], cmp func(a, b arr.Key) int) *Collection[T] {
	return c.Filter(func(_ T, k arr.Key) bool {
		return !other.Contains(func(_ T, otherKey arr.Key) bool { return cmp(k, otherKey) == 0 })
	})
}

// Intersect returns the items of c whose value is present in other.
func (c *Collection[T]) Intersect(other *Collection[T]) *Collection[T] {
	set := valuesOf(other, false)
	return c.Filter(func(v T, _ arr.Key) bool { return set.has(v) })
}

// IntersectUsing is [Collection.Intersect] with a value comparator.
func (c *Collection[T]) IntersectUsing(other *Collection[T], cmp func(a, b T) int) *Collection[T] {
	return c.Filter(func(v T, _ arr.Key) bool {
		return other.Contains(func(o T, _ arr.Key) bool { return cmp(v, o) == 0 })
	})
}

// IntersectAssoc returns the items of c present in other under the same key
// with an equal value.
func (c *Collection[T]) IntersectAssoc(other *Collection[T]) *Collection[T] {
	return c.Filter(func(v T, k arr.Key) bool {
		o, ok := other.items.Get(k)
		return ok && arr.LooseEqual(v, o)
	})
}

// IntersectAssocUsing is [Collection.IntersectAssoc] with a key comparator.
func (c *Collection[T]) IntersectAssocUsing(other *Collection[T], cmp func(a, b arr.Key) int) *Collection[T] {
	return c.Filter(func(v T, k arr.Key) bool {
		return other.Contains(func(o T, otherKey arr.Key) bool {
			return cmp(k, otherKey) == 0 && arr.LooseEqual(v, o)
		})
	})
}

// IntersectByKeys returns the items of c whose key is present in other.
func (c *Collection[T]) IntersectByKeys(other *Collection[T]) *Collection[T] {
	return c.Filter(func(_ T, k arr.Key) bool { return other.items.Has(k) })
}

// Union adds the items of other whose key c does not have. On a collision
// the receiver wins; new keys are appended in other's order.
func (c *Collection[T]) Union(other *Collection[T]) *Collection[T] {
	out := c.items.Clone()
	for k, v := range other.items.All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return wrap(out)
}

// CrossJoin returns every combination of one item from c and one from each
// of others. Each combination is a *Collection[any] list.
func (c *Collection[T]) CrossJoin(others ...*Collection[T]) *Collection[any] {
	inputs := make([]arr.Traversable, 0, len(others)+1)
	inputs = append(inputs, c.items)
	for _, o := range others {
		inputs = append(inputs, o.items)
	}
	return wrap(arr.Map(arr.CrossJoin(inputs...), func(row any, _ arr.Key) any {
		return wrap(row.(*arr.Array[any]))
	}))
}

func valuesOf[T any](c *Collection[T], strict bool) *valueSet {
	set := newValueSet(strict)
	for _, v := range c.items.All() {
		set.add(v)
	}
	return set
}
