package collections_test

import (
	"errors"
	"math"
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/collections"
)

func TestSum(t *testing.T) {
	if s := ints(1, 2, 3).Sum(); s != 6 {
		t.Fatalf("Sum = %v; want 6", s)
	}
	if s := collections.New[any](1, nil, "2", 0.5).Sum(); s != 3.5 {
		t.Fatalf("Sum = %v; want 3.5", s)
	}
	if s := collect(t, orders).Sum("total"); s != 400 {
		t.Fatalf("Sum(total) = %v; want 400", s)
	}
	if s := collections.Empty[int]().Sum(); s != 0 {
		t.Fatalf("empty Sum = %v; want 0", s)
	}
}

func TestAvgSkipsNil(t *testing.T) {
	if v, ok := ints(1, 2, 3, 4).Avg(); !ok || v != 2.5 {
		t.Fatalf("Avg = %v, %v; want 2.5", v, ok)
	}
	if v, ok := collections.New[any](nil, 2, 4).Average(); !ok || v != 3 {
		t.Fatalf("Average = %v, %v; want 3", v, ok)
	}
	if _, ok := collections.New[any](nil).Avg(); ok {
		t.Fatal("Avg over only nil should report false")
	}
}

func TestMinMax(t *testing.T) {
	c := collections.New[any](3, "10", nil, 1)
	if v, ok := c.Max(); !ok || v != "10" {
		t.Fatalf("Max = %v, %v; want \"10\"", v, ok)
	}
	if v, ok := c.Min(); !ok || v != 1 {
		t.Fatalf("Min = %v, %v; want 1", v, ok)
	}
	if v, _ := collect(t, orders).Max("total"); v != "200" {
		t.Fatalf("Max(total) = %v", v)
	}
	if _, ok := collections.Empty[int]().Min(); ok {
		t.Fatal("Min on empty should report false")
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		in   []int
		want float64
	}{
		{[]int{1, 2, 3, 4}, 2.5},
		{[]int{1, 3, 5}, 3},
		{[]int{5, 1, 3}, 3},
		{[]int{7}, 7},
	}
	for _, tt := range tests {
		if got, ok := collections.From(tt.in).Median(); !ok || got != tt.want {
			t.Fatalf("Median(%v) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := collections.Empty[int]().Median(); ok {
		t.Fatal("Median on empty should report false")
	}
}

func TestMode(t *testing.T) {
	got, ok := ints(1, 1, 2, 2, 3).Mode()
	if !ok {
		t.Fatal("Mode reported false")
	}
	assertSlice(t, got, []any{1, 2})

	got, _ = collections.New("b", "a", "b").Mode()
	assertSlice(t, got, []any{"b"})

	if _, ok := collections.Empty[int]().Mode(); ok {
		t.Fatal("Mode on empty should report false")
	}
}

func TestReduce(t *testing.T) {
	sum := ints(1, 2, 3).Reduce(func(carry any, n int, _ arr.Key) any { return carry.(int) + n }, 0)
	if sum != 6 {
		t.Fatalf("Reduce = %v; want 6", sum)
	}
}

func TestReduceSpread(t *testing.T) {
	out, err := ints(1, 2, 3).ReduceSpread(func(carry []any, n int, _ arr.Key) []any {
		return []any{carry[0].(int) + n, carry[1].(int) + 1}
	}, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, out, []any{6, 3})

	_, err = ints(1).ReduceSpread(func(carry []any, _ int, _ arr.Key) []any { return carry[:1] }, 0, 0)
	if !errors.Is(err, collections.ErrTypeMismatch) {
		t.Fatalf("err = %v; want ErrTypeMismatch", err)
	}
}

func TestPercentage(t *testing.T) {
	one := func(n int, _ arr.Key) bool { return n == 1 }
	if p, ok := ints(1, 1, 2, 2, 3).Percentage(one); !ok || p != 40 {
		t.Fatalf("Percentage = %v, %v; want 40", p, ok)
	}
	if p, _ := ints(1, 2, 3).Percentage(one); math.Abs(p-33.33) > 1e-9 {
		t.Fatalf("Percentage = %v; want 33.33", p)
	}
	if p, _ := ints(1, 2, 3).Percentage(one, 0); p != 33 {
		t.Fatalf("Percentage(0) = %v; want 33", p)
	}
	if _, ok := collections.Empty[int]().Percentage(one); ok {
		t.Fatal("Percentage on empty should report false")
	}
}
