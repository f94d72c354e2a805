package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// JSONSerializer is implemented by values that provide their own JSON
// projection to [Collection.JSONSerialize].
type JSONSerializer interface {
	JSONSerialize() any
}

// Arrayable is implemented by values that can convert themselves into a
// plain nested array.
type Arrayable interface {
	ToArray() (*arr.Array[any], error)
}

// JSONSerialize returns the items with every [JSONSerializer] value replaced
// by its JSONSerialize result and every [Arrayable] value by its array.
// Other values pass through unchanged.
func (c *Collection[T]) JSONSerialize() any {
	return arr.Map(c.items, func(v T, _ arr.Key) any {
		switch x := any(v).(type) {
		case JSONSerializer:
			return x.JSONSerialize()
		case Arrayable:
			if a, err := x.ToArray(); err == nil {
				return a
			}
		}
		return v
	})
}

// ToArray converts the collection and everything inside it into nested
// *arr.Array[any] values holding only JSON scalars (nil, bool, int,
// float64, string), by encoding to JSON and decoding back with order kept.
func (c *Collection[T]) ToArray() (*arr.Array[any], error) {
	b, err := c.MarshalJSON()
	if err != nil {
		return nil, err
	}
	v, err := arr.DecodeJSON(b)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*arr.Array[any])
	if !ok {
		return nil, fmt.Errorf("%w: JSON projection is not a container", ErrTypeMismatch)
	}
	return a, nil
}

// ToJSON encodes the collection as a JSON array when its keys are exactly
// 0..n-1 in order and as a JSON object otherwise.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.JSONSerialize())
}

// MarshalJSON implements [json.Marshaler]; it is the same as
// [Collection.ToJSON].
func (c *Collection[T]) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// UnmarshalJSON implements [json.Unmarshaler]. Object keys keep their
// document order.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	items := arr.New[T]()
	if err := items.UnmarshalJSON(data); err != nil {
		return err
	}
	c.items = items
	return nil
}

// MarshalYAML implements yaml.Marshaler with the same sequence/mapping rule
// as the JSON projection.
func (c *Collection[T]) MarshalYAML() (any, error) {
	return c.JSONSerialize().(*arr.Array[any]).MarshalYAML()
}

// Dump prints the collection to stdout and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	fmt.Println(c.String())
	return c
}

func marshalPair(first, second any) ([]byte, error) {
	return json.Marshal([2]any{first, second})
}
