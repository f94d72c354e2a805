// Package arr provides the ordered keyed array that backs the collections
// package, together with standalone helpers inspired by Laravel's Arr facade
// and PHP's array_* functions.
//
// # Ordered arrays
//
// [Array] maps [Key] values (an int or a string) to values while remembering
// insertion order. Keys are canonicalized the way PHP does it: decimal
// strings such as "7" become integer keys, bools become 0 and 1, nil becomes
// "" and floats are truncated.
//
//	a := arr.List("a", "b")   // {0: "a", 1: "b"}
//	a.Set("7", "c")           // stored under int key 7
//	a.Append("d")             // stored under 8
//
// # Comparison
//
// [Compare], [LooseEqual] and [StrictEqual] implement loose (type-juggling)
// and strict comparison. [Comparator] builds sort comparators for the
// [SortFlag] modes, including natural order and locale collation.
//
// # Paths
//
// [DataGet] walks nested arrays, Go maps, slices and structs with dot paths
// and understands the "*", "{first}" and "{last}" segments. [Get], [Set],
// [Has] and [Forget] are the plain dot-notation accessors:
//
//	arr.DataGet(payload, "orders.*.total", nil)
//	arr.Set(doc, "user.address.postcode", "EC1")
//	flat := arr.Dot(doc, "")  // → {"user.name": "Alice", ...}
//
// # Serialization
//
// An Array encodes as a JSON array when its keys are exactly 0..n-1 in order
// and as a JSON object otherwise. [DecodeJSON] decodes documents keeping
// object key order.
package arr
