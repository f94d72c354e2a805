// Package collections provides a generic, fluent, ordered keyed Collection
// type inspired by Laravel's Illuminate/Collections.
//
// # Overview
//
// The central type is [Collection][T], a wrapper around an [arr.Array] of T
// whose keys are ints or strings and whose iteration follows insertion
// order:
//
//	total := collections.New(12, 7, 30, 4).
//	    Filter(func(n int, _ arr.Key) bool { return n > 5 }).
//	    Sum() // → 49
//
// Payloads decoded from JSON keep their key order:
//
//	var orders collections.Collection[any]
//	_ = json.Unmarshal(body, &orders)
//	paid := orders.Where("status", "paid").Pluck("total")
//
// # Combinators and mutators
//
// Transformation methods return a *new* Collection backed by a freshly built
// array; the receiver is never aliased. The in-place mutators (Push, Pop,
// PopN, Shift, ShiftN, Prepend, Unshift, Put, Forget, Pull, Splice,
// SpliceReplace, Transform) return nothing or the removed portion.
//
// # Comparison
//
// Where, Diff, Intersect, Unique, Duplicates, Search and the aggregates use
// the loose comparison of [arr.Compare] (numeric strings equal numbers, nil
// equals false). Strict variants compare type and value.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// typed transformations are package-level functions: [Map], [MapWithKeys],
// [FlatMap], [Reduce], [Pluck], [GroupBy], [KeyBy], [Zip], [Combine],
// [Collapse] and [Ensure].
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] or
// [RegisterTypedMacro] and call them through [Collection.Macro].
package collections
