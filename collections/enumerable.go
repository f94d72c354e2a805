package collections

import (
	"iter"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// implementation without depending on the concrete *Collection type. The
// relay package, for example, only reads payloads through it.
type Enumerable[T any] interface {
	arr.Traversable

	// All returns the values in iteration order.
	All() []T

	// Count returns the number of items.
	Count() int

	// Get returns the item stored under key.
	Get(key any) (T, bool)

	// Iter iterates over the entries in order.
	Iter() iter.Seq2[arr.Key, T]

	// Keys returns the keys in order.
	Keys() []arr.Key

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(T, arr.Key) bool) (T, bool)

	// Last returns the last item, optionally matching fns[0].
	Last(fns ...func(T, arr.Key) bool) (T, bool)

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection contains at least one item.
	IsNotEmpty() bool

	// ToJSON encodes the collection with the list/object rule.
	ToJSON() ([]byte, error)
}

var _ Enumerable[any] = (*Collection[any])(nil)
