package relay

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/collections"
)

// Matches reports whether payload satisfies every where clause of route.
// A clause path is resolved with [arr.DataGet], so "*" fans out over lists.
func Matches(payload *collections.Collection[any], route RouteConfig) bool {
	if len(route.Where) == 0 {
		return true
	}
	candidates := collections.New[any](payload)
	for _, w := range route.Where {
		op, _ := collections.ParseOperator(w.Operator)
		candidates = candidates.WhereOp(w.Path, op, w.Value)
	}
	return candidates.IsNotEmpty()
}

// Shape builds the outbound body for payload. It returns false when a where
// clause does not match and the delivery should be skipped.
//
// When route.Fields is set the body holds exactly those keys, each taken
// from its source path; otherwise route.Only keeps the listed dotted paths;
// otherwise the whole payload is forwarded.
func Shape(payload *collections.Collection[any], route RouteConfig) (*arr.Array[any], bool) {
	if !Matches(payload, route) {
		return nil, false
	}

	switch {
	case len(route.Fields) > 0:
		out := arr.New[any](len(route.Fields))
		for key, path := range arr.FromMap(route.Fields).All() {
			arr.Set(out, key.String(), arr.DataGet(payload, path, nil))
		}
		return out, true

	case len(route.Only) > 0:
		items := payload.Items()
		out := arr.New[any](len(route.Only))
		for _, path := range route.Only {
			if arr.Has(items, path) {
				arr.Set(out, path, arr.Get(items, path))
			}
		}
		return out, true
	}
	return payload.Items(), true
}

// ApplyMacros runs the named collection macros over body, in order. Each
// macro receives the previous result as a *collections.Collection[any] and
// must return one.
func ApplyMacros(body *arr.Array[any], names []string) (*arr.Array[any], error) {
	if len(names) == 0 {
		return body, nil
	}
	current := collections.FromArray(body)
	for _, name := range names {
		result, err := current.Macro(name)
		if err != nil {
			return nil, err
		}
		next, ok := result.(*collections.Collection[any])
		if !ok {
			return nil, fmt.Errorf("%w: %q returned %T", ErrMacroResult, name, result)
		}
		current = next
	}
	return current.Items(), nil
}

// RegisterDefaultMacros registers the body macros every relay ships with:
//
//	compact    drops top-level null values
//	sort_keys  orders top-level keys
//	dot        flattens nested values into dotted keys
//	values     discards keys, leaving a list
func RegisterDefaultMacros() {
	collections.RegisterTypedMacro("compact", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.Reject(func(v any, _ arr.Key) bool { return v == nil }), nil
	})
	collections.RegisterTypedMacro("sort_keys", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.SortKeys(), nil
	})
	collections.RegisterTypedMacro("dot", func(c *collections.Collection[any], _ ...any) (any, error) {
		return collections.FromArray(arr.Dot(c, "")), nil
	})
	collections.RegisterTypedMacro("values", func(c *collections.Collection[any], _ ...any) (any, error) {
		return c.Values(), nil
	})
}
