package collections

import "github.com/hasbyte1/go-laravel-relay/arr"

// Duplicates returns the derived value of every item whose derived value
// already appeared earlier, keyed by the item's original key. Equality is
// loose.
//
//	New(1, 2, 2, 3, 3, 3).Duplicates(nil) // {2: 2, 4: 3, 5: 3}
func (c *Collection[T]) Duplicates(selector any) *Collection[any] {
	return c.duplicates(selector, false)
}

// DuplicatesStrict is [Collection.Duplicates] with strict equality.
func (c *Collection[T]) DuplicatesStrict(selector any) *Collection[any] {
	return c.duplicates(selector, true)
}

func (c *Collection[T]) duplicates(selector any, strict bool) *Collection[any] {
	retrieve := valueRetriever[T](selector)
	seen := newValueSet(strict)
	out := arr.New[any]()
	for k, v := range c.items.All() {
		d := retrieve(v, k)
		if !seen.add(d) {
			out.Set(k, d)
		}
	}
	return wrap(out)
}
