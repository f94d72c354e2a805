package collections

import (
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
//
// The optional selector follows the Selectors rules of [Collection]. Values
// are converted with [arr.ToFloat], so numeric strings count by value.
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the items, or the values selector[0] derives. nil counts as 0.
func (c *Collection[T]) Sum(selector ...any) float64 {
	retrieve := valueRetriever[T](optionalSelector(selector))
	var total float64
	for k, v := range c.items.All() {
		f, _ := arr.ToFloat(retrieve(v, k))
		total += f
	}
	return total
}

// nonNil returns the derived values that are not nil.
func (c *Collection[T]) nonNil(selector []any) []any {
	retrieve := valueRetriever[T](optionalSelector(selector))
	out := make([]any, 0, c.items.Len())
	for k, v := range c.items.All() {
		if d := retrieve(v, k); !isNil(d) {
			out = append(out, d)
		}
	}
	return out
}

// Avg returns the mean of the non-nil values. The second result is false
// when there are none.
func (c *Collection[T]) Avg(selector ...any) (float64, bool) {
	values := c.nonNil(selector)
	if len(values) == 0 {
		return 0, false
	}
	var total float64
	for _, v := range values {
		f, _ := arr.ToFloat(v)
		total += f
	}
	return total / float64(len(values)), true
}

// Average is an alias for [Collection.Avg].
func (c *Collection[T]) Average(selector ...any) (float64, bool) { return c.Avg(selector...) }

// Min returns the smallest non-nil value by [arr.Compare].
func (c *Collection[T]) Min(selector ...any) (any, bool) {
	return extreme(c.nonNil(selector), -1)
}

// Max returns the largest non-nil value by [arr.Compare].
func (c *Collection[T]) Max(selector ...any) (any, bool) {
	return extreme(c.nonNil(selector), 1)
}

func extreme(values []any, want int) (any, bool) {
	if len(values) == 0 {
		return nil, false
	}
	best := values[0]
	for _, v := range values[1:] {
		if arr.Compare(v, best) == want {
			best = v
		}
	}
	return best, true
}

// Median returns the middle of the sorted non-nil values, or the mean of the
// two middle values when their count is even.
func (c *Collection[T]) Median(selector ...any) (float64, bool) {
	values := c.nonNil(selector)
	if len(values) == 0 {
		return 0, false
	}
	slices.SortStableFunc(values, arr.Compare)
	mid := len(values) / 2
	upper, _ := arr.ToFloat(values[mid])
	if len(values)%2 == 1 {
		return upper, true
	}
	lower, _ := arr.ToFloat(values[mid-1])
	return (lower + upper) / 2, true
}

// Mode returns every value tied for the highest frequency. Values are
// canonicalized with [arr.CanonicalKey] before counting and returned in
// ascending order. The second result is false for an empty collection.
func (c *Collection[T]) Mode(selector ...any) ([]any, bool) {
	counts := c.CountBy(optionalSelector(selector))
	if counts.IsEmpty() {
		return nil, false
	}
	highest := slices.Max(counts.All())
	modes := make([]any, 0)
	for k, n := range counts.items.All() {
		if n == highest {
			modes = append(modes, k.Value())
		}
	}
	slices.SortStableFunc(modes, arr.Compare)
	return modes, true
}

// Reduce folds the items into a single value. Use the package-level
// [Reduce] for a typed accumulator.
func (c *Collection[T]) Reduce(fn func(carry any, item T, key arr.Key) any, initial any) any {
	carry := initial
	for k, v := range c.items.All() {
		carry = fn(carry, v, k)
	}
	return carry
}

// ReduceSpread folds the items into several values at once. fn receives the
// current values and must return the same number of values; otherwise
// [ErrTypeMismatch] is returned.
func (c *Collection[T]) ReduceSpread(fn func(carry []any, item T, key arr.Key) []any, initial ...any) ([]any, error) {
	carry := slices.Clone(initial)
	for k, v := range c.items.All() {
		next := fn(carry, v, k)
		if len(next) != len(initial) {
			return nil, fmt.Errorf("%w: reducer returned %d values at key %s, want %d",
				ErrTypeMismatch, len(next), k, len(initial))
		}
		carry = next
	}
	return carry, nil
}

// Percentage returns the share of items for which fn returns true, as a
// percentage rounded to precision[0] decimals (default 2). The second
// result is false for an empty collection.
func (c *Collection[T]) Percentage(fn func(T, arr.Key) bool, precision ...int) (float64, bool) {
	if c.IsEmpty() {
		return 0, false
	}
	p := 2
	if len(precision) > 0 {
		p = precision[0]
	}
	matched := c.Filter(fn).Count()
	pct := float64(matched) * 100 / float64(c.Count())
	scale := math.Pow(10, float64(p))
	return math.Round(pct*scale) / scale, true
}

// isNil reports whether v is nil or a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
