package collections

import (
	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Filtering
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns the items for which fns[0] returns true, keeping their
// keys. Without a predicate it keeps the truthy items.
func (c *Collection[T]) Filter(fns ...func(T, arr.Key) bool) *Collection[T] {
	if len(fns) == 0 {
		return wrap(arr.Where(c.items, func(v T, _ arr.Key) bool { return arr.Truthy(v) }))
	}
	return wrap(arr.Where(c.items, fns[0]))
}

// Reject is the complement of [Collection.Filter]: it removes the items for
// which fn returns true.
func (c *Collection[T]) Reject(fn func(T, arr.Key) bool) *Collection[T] {
	return wrap(arr.Reject(c.items, fn))
}

// Where filters by the value key selects from each item:
//
//	c.Where("active")               // truthy
//	c.Where("status", "paid")       // loosely equal
//	c.Where("total", ">=", 100)     // operator symbol or Operator
//
// An unknown operator symbol compares for loose equality.
func (c *Collection[T]) Where(key any, args ...any) *Collection[T] {
	return c.Filter(whereCondition[T](key, args))
}

func whereCondition[T any](key any, args []any) func(T, arr.Key) bool {
	switch len(args) {
	case 0:
		return operatorForWhere[T](key, OpEqual, true)
	case 1:
		return operatorForWhere[T](key, OpEqual, args[0])
	}
	var op Operator
	switch o := args[0].(type) {
	case Operator:
		op = o
	case string:
		op, _ = ParseOperator(o)
	}
	return operatorForWhere[T](key, op, args[1])
}

// WhereOp filters with an explicit operator.
func (c *Collection[T]) WhereOp(key any, op Operator, value any) *Collection[T] {
	return c.Filter(operatorForWhere[T](key, op, value))
}

// WhereStrict keeps the items whose selected value is identical to value.
func (c *Collection[T]) WhereStrict(key any, value any) *Collection[T] {
	return c.WhereOp(key, OpIdentical, value)
}

// WhereNot removes the items matching the [Collection.Where] condition.
func (c *Collection[T]) WhereNot(key any, args ...any) *Collection[T] {
	return c.Reject(whereCondition[T](key, args))
}

// WhereIn keeps the items whose selected value is loosely equal to one of
// values.
func (c *Collection[T]) WhereIn(key any, values []any) *Collection[T] {
	return c.Filter(inCondition[T](key, values, false))
}

// WhereInStrict is [Collection.WhereIn] with strict equality.
func (c *Collection[T]) WhereInStrict(key any, values []any) *Collection[T] {
	return c.Filter(inCondition[T](key, values, true))
}

// WhereNotIn removes the items whose selected value is loosely equal to one
// of values.
func (c *Collection[T]) WhereNotIn(key any, values []any) *Collection[T] {
	return c.Reject(inCondition[T](key, values, false))
}

// WhereNotInStrict is [Collection.WhereNotIn] with strict equality.
func (c *Collection[T]) WhereNotInStrict(key any, values []any) *Collection[T] {
	return c.Reject(inCondition[T](key, values, true))
}

func inCondition[T any](key any, values []any, strict bool) func(T, arr.Key) bool {
	retrieve := valueRetriever[T](key)
	set := newValueSet(strict)
	for _, v := range values {
		set.add(v)
	}
	return func(item T, k arr.Key) bool { return set.has(retrieve(item, k)) }
}

// WhereBetween keeps the items whose selected value lies in [low, high].
func (c *Collection[T]) WhereBetween(key any, low, high any) *Collection[T] {
	return c.Filter(betweenCondition[T](key, low, high))
}

// WhereNotBetween keeps the items whose selected value lies outside
// [low, high].
func (c *Collection[T]) WhereNotBetween(key any, low, high any) *Collection[T] {
	return c.Reject(betweenCondition[T](key, low, high))
}

func betweenCondition[T any](key any, low, high any) func(T, arr.Key) bool {
	retrieve := valueRetriever[T](key)
	return func(item T, k arr.Key) bool {
		v := retrieve(item, k)
		return arr.Compare(v, low) >= 0 && arr.Compare(v, high) <= 0
	}
}

// WhereNull keeps the items whose selected value is nil.
func (c *Collection[T]) WhereNull(key any) *Collection[T] {
	return c.WhereOp(key, OpIdentical, nil)
}

// WhereNotNull keeps the items whose selected value is not nil.
func (c *Collection[T]) WhereNotNull(key any) *Collection[T] {
	return c.WhereOp(key, OpNotIdentical, nil)
}

// Only returns the items stored under keys, in collection order.
func (c *Collection[T]) Only(keys ...any) *Collection[T] {
	return wrap(arr.Only(c.items, keys...))
}

// Except returns the items not stored under keys.
func (c *Collection[T]) Except(keys ...any) *Collection[T] {
	return wrap(arr.Except(c.items, keys...))
}

// ─────────────────────────────────────────────────────────────────────────────
// Take / Skip by condition
// ─────────────────────────────────────────────────────────────────────────────

// TakeUntil returns items up to (not including) the first one for which fn
// returns true.
func (c *Collection[T]) TakeUntil(fn func(T, arr.Key) bool) *Collection[T] {
	out := arr.New[T]()
	for k, v := range c.items.All() {
		if fn(v, k) {
			break
		}
		out.Set(k, v)
	}
	return wrap(out)
}

// TakeWhile returns items while fn returns true.
func (c *Collection[T]) TakeWhile(fn func(T, arr.Key) bool) *Collection[T] {
	return c.TakeUntil(func(v T, k arr.Key) bool { return !fn(v, k) })
}

// SkipUntil skips items until fn returns true and returns the rest.
func (c *Collection[T]) SkipUntil(fn func(T, arr.Key) bool) *Collection[T] {
	out := arr.New[T]()
	taking := false
	for k, v := range c.items.All() {
		if !taking && fn(v, k) {
			taking = true
		}
		if taking {
			out.Set(k, v)
		}
	}
	return wrap(out)
}

// SkipWhile skips items while fn returns true and returns the rest.
func (c *Collection[T]) SkipWhile(fn func(T, arr.Key) bool) *Collection[T] {
	return c.SkipUntil(func(v T, k arr.Key) bool { return !fn(v, k) })
}

// ─────────────────────────────────────────────────────────────────────────────
// Uniqueness
// ─────────────────────────────────────────────────────────────────────────────

// Unique keeps the first item for every distinct selected value, keeping
// keys. selector follows the Selectors rules of [Collection]; equality is
// loose unless strict is set.
func (c *Collection[T]) Unique(selector any, strict bool) *Collection[T] {
	retrieve := valueRetriever[T](selector)
	seen := newValueSet(strict)
	return wrap(arr.Where(c.items, func(v T, k arr.Key) bool {
		return seen.add(retrieve(v, k))
	}))
}

// UniqueStrict is Unique(selector, true).
func (c *Collection[T]) UniqueStrict(selector any) *Collection[T] {
	return c.Unique(selector, true)
}

// valueSet is a hashed set of values under loose or strict equality.
type valueSet struct {
	strict bool
	loose  *arr.LooseSet
	exact  map[any]struct{}
}

func newValueSet(strict bool) *valueSet {
	if strict {
		return &valueSet{strict: true, exact: make(map[any]struct{})}
	}
	return &valueSet{loose: arr.NewLooseSet()}
}

// add inserts v and reports whether it was new.
func (s *valueSet) add(v any) bool {
	if !s.strict {
		return s.loose.Add(v)
	}
	k := arr.StrictKey(v)
	if _, ok := s.exact[k]; ok {
		return false
	}
	s.exact[k] = struct{}{}
	return true
}

func (s *valueSet) has(v any) bool {
	if !s.strict {
		return s.loose.Has(v)
	}
	_, ok := s.exact[arr.StrictKey(v)]
	return ok
}
