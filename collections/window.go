package collections

import (
	"fmt"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Partitioning & windows
//
// Offsets are zero-based positions in iteration order, not keys. Methods
// returning sub-collections return a *Collection[any] whose items are
// *Collection[T].
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns up to length[0] items starting at position offset, keeping
// keys. A negative offset counts from the end; a negative length stops that
// many items before the end. Without length it runs to the end.
func (c *Collection[T]) Slice(offset int, length ...int) *Collection[T] {
	start, end := sliceBounds(c.items.Len(), offset, length...)
	return wrap(c.span(start, end, true))
}

func sliceBounds(n, offset int, length ...int) (int, int) {
	start := offset
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	end := n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else {
			end = start + l
		}
	}
	end = min(max(end, start), n)
	return start, end
}

// span copies positions [start, end). Without preserveKeys integer keys are
// renumbered from 0 and string keys kept.
func (c *Collection[T]) span(start, end int, preserveKeys bool) *arr.Array[T] {
	out := arr.New[T](end - start)
	for i := start; i < end; i++ {
		k, v := c.items.At(i)
		if preserveKeys || !k.IsInt() {
			out.Set(k, v)
		} else {
			out.Append(v)
		}
	}
	return out
}

// Take returns the first n items, or the last -n items when n is negative.
func (c *Collection[T]) Take(n int) *Collection[T] {
	if n < 0 {
		return c.Slice(n, -n)
	}
	return c.Slice(0, n)
}

// Skip returns every item after the first n.
func (c *Collection[T]) Skip(n int) *Collection[T] { return c.Slice(n) }

// ForPage returns the items of 1-based page with perPage items per page.
func (c *Collection[T]) ForPage(page, perPage int) *Collection[T] {
	return c.Slice(max(0, (page-1)*perPage), perPage)
}

// Nth returns every step-th item starting at position offset[0] (default 0)
// as a list.
func (c *Collection[T]) Nth(step int, offset ...int) *Collection[T] {
	start := 0
	if len(offset) > 0 {
		start = offset[0]
	}
	out := arr.New[T]()
	if step < 1 {
		return wrap(out)
	}
	pos := 0
	for i, v := range c.items.Values() {
		if i < start {
			continue
		}
		if pos%step == 0 {
			out.Append(v)
		}
		pos++
	}
	return wrap(out)
}

// Chunk splits the collection into chunks of size items; the last chunk
// may be shorter. Chunks keep the original keys when preserveKeys is set
// and are lists otherwise.
// Returns [ErrInvalidArgument] when size < 1.
func (c *Collection[T]) Chunk(size int, preserveKeys bool) (*Collection[any], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: chunk size must be at least 1, got %d", ErrInvalidArgument, size)
	}
	n := c.items.Len()
	out := arr.New[any]((n + size - 1) / size)
	for start := 0; start < n; start += size {
		chunk := c.span(start, min(start+size, n), true)
		if !preserveKeys {
			chunk = arr.List(chunk.Values()...)
		}
		out.Append(wrap(chunk))
	}
	return wrap(out), nil
}

// ChunkWhile starts a new chunk whenever fn returns false for an item. fn
// receives the item, its key and the chunk built so far. Chunks keep keys.
func (c *Collection[T]) ChunkWhile(fn func(T, arr.Key, *Collection[T]) bool) *Collection[any] {
	out := arr.New[any]()
	var current *Collection[T]
	for k, v := range c.items.All() {
		if current == nil || !fn(v, k, current) {
			current = Empty[T]()
			out.Append(current)
		}
		current.items.Set(k, v)
	}
	return wrap(out)
}

// Split divides the collection into n groups as evenly as possible: the
// first Count() mod n groups get one extra item. Empty groups are not
// emitted. Returns [ErrInvalidArgument] when n < 1.
func (c *Collection[T]) Split(n int) (*Collection[any], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: number of groups must be at least 1, got %d", ErrInvalidArgument, n)
	}
	total := c.items.Len()
	size, remain := total/n, total%n
	out := arr.New[any](n)
	start := 0
	for i := range n {
		groupSize := size
		if i < remain {
			groupSize++
		}
		if groupSize == 0 {
			continue
		}
		out.Append(wrap(c.span(start, start+groupSize, false)))
		start += groupSize
	}
	return wrap(out), nil
}

// SplitIn divides the collection into n groups, filling each group
// completely before starting the next. Returns [ErrInvalidArgument] when
// n < 1.
func (c *Collection[T]) SplitIn(n int) (*Collection[any], error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: number of groups must be at least 1, got %d", ErrInvalidArgument, n)
	}
	size := max((c.items.Len()+n-1)/n, 1)
	return c.Chunk(size, true)
}

// Sliding returns windows of size items, each starting step positions after
// the previous one. There are floor((n-size)/step)+1 windows, none when the
// collection has fewer than size items. Windows keep keys. Returns
// [ErrInvalidArgument] when size or step is below 1.
func (c *Collection[T]) Sliding(size, step int) (*Collection[any], error) {
	if size < 1 || step < 1 {
		return nil, fmt.Errorf("%w: window size and step must be at least 1, got %d and %d",
			ErrInvalidArgument, size, step)
	}
	n := c.items.Len()
	out := arr.New[any]()
	if n < size {
		return wrap(out), nil
	}
	windows := (n-size)/step + 1
	for i := range windows {
		start := i * step
		out.Append(wrap(c.span(start, start+size, true)))
	}
	return wrap(out), nil
}
