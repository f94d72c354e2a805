package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
//
// All sorts are stable and keep keys; call Values afterwards for a list.
// ─────────────────────────────────────────────────────────────────────────────

// Sort orders the items with cmp[0], or ascending by [arr.Compare] without
// a comparator.
func (c *Collection[T]) Sort(cmp ...func(a, b T) int) *Collection[T] {
	if len(cmp) > 0 {
		return wrap(arr.Sort(c.items, cmp[0]))
	}
	return wrap(arr.Sort(c.items, func(a, b T) int { return arr.Compare(a, b) }))
}

// SortDesc orders the items descending by [arr.Compare]. Equal items keep
// their relative order.
func (c *Collection[T]) SortDesc() *Collection[T] {
	return wrap(arr.Sort(c.items, func(a, b T) int { return arr.Compare(b, a) }))
}

// SortBy orders the items by the value selector derives, compared with
// flags (default [arr.SortRegular]).
func (c *Collection[T]) SortBy(selector any, flags ...arr.SortFlag) *Collection[T] {
	return c.sortBy(selector, false, flags)
}

// SortByDesc is [Collection.SortBy] in descending order.
func (c *Collection[T]) SortByDesc(selector any, flags ...arr.SortFlag) *Collection[T] {
	return c.sortBy(selector, true, flags)
}

func (c *Collection[T]) sortBy(selector any, descending bool, flags []arr.SortFlag) *Collection[T] {
	var flag arr.SortFlag
	for _, f := range flags {
		flag |= f
	}
	compare := arr.Comparator(flag)
	retrieve := valueRetriever[T](selector)

	derived := make(map[arr.Key]any, c.items.Len())
	for k, v := range c.items.All() {
		derived[k] = retrieve(v, k)
	}
	out := c.items.Clone()
	out.SortStable(func(ka arr.Key, _ T, kb arr.Key, _ T) int {
		if descending {
			return compare(derived[kb], derived[ka])
		}
		return compare(derived[ka], derived[kb])
	})
	return wrap(out)
}

// SortSpec is one criterion of [Collection.SortByMany]. Selector follows the
// Selectors rules of [Collection], or is a func(a, b T) int comparator, in
// which case Descending reverses its result.
type SortSpec struct {
	Selector   any
	Descending bool
}

// Asc returns an ascending [SortSpec].
func Asc(selector any) SortSpec { return SortSpec{Selector: selector} }

// Desc returns a descending [SortSpec].
func Desc(selector any) SortSpec { return SortSpec{Selector: selector, Descending: true} }

// SortByMany orders the items by several criteria: the first criterion that
// does not compare equal decides.
//
//	people.SortByMany(collections.Asc("last"), collections.Desc("age"))
func (c *Collection[T]) SortByMany(specs ...SortSpec) *Collection[T] {
	type criterion struct {
		derive func(T, arr.Key) any
		cmp    func(a, b T) int
		desc   bool
	}
	criteria := make([]criterion, len(specs))
	for i, s := range specs {
		if cmp, ok := s.Selector.(func(a, b T) int); ok {
			criteria[i] = criterion{cmp: cmp, desc: s.Descending}
			continue
		}
		criteria[i] = criterion{derive: valueRetriever[T](s.Selector), desc: s.Descending}
	}

	derived := make([]map[arr.Key]any, len(criteria))
	for i, cr := range criteria {
		if cr.derive == nil {
			continue
		}
		derived[i] = make(map[arr.Key]any, c.items.Len())
		for k, v := range c.items.All() {
			derived[i][k] = cr.derive(v, k)
		}
	}

	out := c.items.Clone()
	out.SortStable(func(ka arr.Key, va T, kb arr.Key, vb T) int {
		for i, cr := range criteria {
			var r int
			if cr.cmp != nil {
				r = cr.cmp(va, vb)
			} else {
				r = arr.Compare(derived[i][ka], derived[i][kb])
			}
			if cr.desc {
				r = -r
			}
			if r != 0 {
				return r
			}
		}
		return 0
	})
	return wrap(out)
}

// SortKeys orders the items by key, compared with flags.
func (c *Collection[T]) SortKeys(flags ...arr.SortFlag) *Collection[T] {
	return c.sortKeys(false, flags)
}

// SortKeysDesc orders the items by key, descending.
func (c *Collection[T]) SortKeysDesc(flags ...arr.SortFlag) *Collection[T] {
	return c.sortKeys(true, flags)
}

func (c *Collection[T]) sortKeys(descending bool, flags []arr.SortFlag) *Collection[T] {
	var flag arr.SortFlag
	for _, f := range flags {
		flag |= f
	}
	compare := arr.Comparator(flag)
	return c.SortKeysUsing(func(a, b arr.Key) int {
		if descending {
			return compare(b.Value(), a.Value())
		}
		return compare(a.Value(), b.Value())
	})
}

// SortKeysUsing orders the items by key with cmp.
func (c *Collection[T]) SortKeysUsing(cmp func(a, b arr.Key) int) *Collection[T] {
	out := c.items.Clone()
	out.SortStable(func(ka arr.Key, _ T, kb arr.Key, _ T) int { return cmp(ka, kb) })
	return wrap(out)
}

// Shuffle returns the items in random order under the keys 0..Count()-1.
func (c *Collection[T]) Shuffle() *Collection[T] {
	return wrap(arr.Shuffle(c.items))
}

// Random returns n randomly chosen items as a list. Returns
// [ErrInvalidArgument] when n is negative or larger than Count().
func (c *Collection[T]) Random(n int) (*Collection[T], error) {
	out, err := arr.Random(c.items, n)
	if err != nil {
		return nil, fmt.Errorf("%w: requested %d items, but there are only %d items available",
			ErrInvalidArgument, n, c.items.Len())
	}
	return wrap(out), nil
}

// RandomItem returns one randomly chosen item, or [ErrEmptyCollection].
func (c *Collection[T]) RandomItem() (T, error) {
	if c.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	out, _ := arr.Random(c.items, 1)
	_, v := out.At(0)
	return v, nil
}
