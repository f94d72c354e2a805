package arr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes a as a JSON array when its keys are exactly 0..n-1 in
// order, and as a JSON object (keys in iteration order) otherwise.
func (a *Array[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if a.IsList() {
		buf.WriteByte('[')
		for i, k := range a.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(a.values[k])
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	}

	buf.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON array or object into a, replacing its
// contents. Object keys keep their document order. When V is any, nested
// arrays and objects decode into *Array[any] and numbers into int or
// float64.
func (a *Array[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	out := New[V]()
	switch tok {
	case json.Delim('['):
		for dec.More() {
			v, err := decodeElement[V](dec)
			if err != nil {
				return err
			}
			out.Append(v)
		}
	case json.Delim('{'):
		for dec.More() {
			kt, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := kt.(string)
			v, err := decodeElement[V](dec)
			if err != nil {
				return err
			}
			out.Set(key, v)
		}
	default:
		return fmt.Errorf("%w: cannot decode JSON %v into an array", ErrInvalidArgument, tok)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = *out
	return nil
}

func decodeElement[V any](dec *json.Decoder) (V, error) {
	var v V
	if p, ok := any(&v).(*any); ok {
		val, err := decodeValue(dec)
		if err != nil {
			return v, err
		}
		*p = val
		return v, nil
	}
	err := dec.Decode(&v)
	return v, err
}

// DecodeJSON decodes a JSON document preserving object key order. Objects
// and arrays become *Array[any], integral numbers become int and other
// numbers float64.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidArgument)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		out := New[any]()
		switch t {
		case '[':
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				out.Append(v)
			}
		case '{':
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				out.Set(kt.(string), v)
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return out, nil
	case json.Number:
		if n, err := t.Int64(); err == nil && n >= math.MinInt && n <= math.MaxInt {
			return int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	return tok, nil
}

// MarshalYAML projects a onto a YAML sequence or mapping with the same rule
// as [Array.MarshalJSON].
func (a *Array[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	list := a.IsList()
	if list {
		node.Kind = yaml.SequenceNode
	}
	for _, k := range a.keys {
		val := &yaml.Node{}
		if err := val.Encode(a.values[k]); err != nil {
			return nil, err
		}
		if list {
			node.Content = append(node.Content, val)
			continue
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
		if k.IsInt() {
			key.Tag = "!!int"
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// String renders a as JSON, falling back to fmt formatting of the values
// when they cannot be encoded.
func (a *Array[V]) String() string {
	b, err := a.MarshalJSON()
	if err != nil {
		return fmt.Sprint(a.Values())
	}
	return string(b)
}
