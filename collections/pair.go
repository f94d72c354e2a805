package collections

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by the package-level [Zip].
type Pair[A, B any] struct {
	First  A
	Second B
}

// Unpack returns both values.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// MarshalJSON encodes p as a two-element JSON array.
func (p Pair[A, B]) MarshalJSON() ([]byte, error) {
	return marshalPair(p.First, p.Second)
}
