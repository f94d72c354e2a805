package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/collections"
)

func TestPushAddPut(t *testing.T) {
	c := ints(1)
	c.Push(2, 3)
	c.Add(4)
	c.Put(0, 9)
	assertJSON(t, c, `[9,2,3,4]`)
	c.Put("k", 5)
	assertJSON(t, c, `{"0":9,"1":2,"2":3,"3":4,"k":5}`)
}

func TestPrependAndUnshift(t *testing.T) {
	c := ints(1, 2)
	c.Prepend(0)
	assertJSON(t, c, `[0,1,2]`)

	m := collect(t, `{"a":1,"b":2}`)
	m.Prepend(9, "b")
	assertJSON(t, m, `{"b":9,"a":1}`)

	u := ints(3)
	u.Unshift(1, 2)
	assertJSON(t, u, `[1,2,3]`)
}

func TestForgetAndPull(t *testing.T) {
	c := collect(t, `{"a":1,"b":2,"c":3}`)
	c.Forget("a", "missing")
	assertJSON(t, c, `{"b":2,"c":3}`)

	v, ok := c.Pull("b")
	if !ok || v != 2 {
		t.Fatalf("Pull = %v, %v", v, ok)
	}
	assertJSON(t, c, `{"c":3}`)
	if _, ok := c.Pull("b"); ok {
		t.Fatal("second Pull should miss")
	}
}

func TestPop(t *testing.T) {
	c := ints(1, 2, 3)
	if v, ok := c.Pop(); !ok || v != 3 {
		t.Fatalf("Pop = %v, %v", v, ok)
	}
	assertSlice(t, c.All(), []int{1, 2})

	out, err := ints(1, 2, 3).PopN(2)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, out, `[3,2]`)

	if _, ok := collections.Empty[int]().Pop(); ok {
		t.Fatal("Pop on empty should report false")
	}
}

func TestPushAfterPopReusesKey(t *testing.T) {
	c := ints(1, 2, 3)
	c.Pop()
	c.Push(4)
	assertJSON(t, c, `[1,2,4]`)

	c = ints(1, 2, 3)
	if _, err := c.PopN(2); err != nil {
		t.Fatal(err)
	}
	c.Push(9)
	assertJSON(t, c, `[1,9]`)
}

func TestPopNNegativeLeavesReceiver(t *testing.T) {
	c := ints(1, 2, 3)
	if _, err := c.PopN(-1); !errors.Is(err, collections.ErrInvalidArgument) {
		t.Fatalf("err = %v; want ErrInvalidArgument", err)
	}
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestShiftRenumbers(t *testing.T) {
	c := collect(t, `{"0":"a","x":"b","5":"c"}`)
	v, ok := c.Shift()
	if !ok || v != "a" {
		t.Fatalf("Shift = %v, %v", v, ok)
	}
	assertJSON(t, c, `{"x":"b","0":"c"}`)
}

func TestShiftN(t *testing.T) {
	c := ints(1, 2, 3, 4)
	out, err := c.ShiftN(2)
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, out, `[1,2]`)
	assertJSON(t, c, `[3,4]`)

	rest, _ := c.ShiftN(10)
	assertJSON(t, rest, `[3,4]`)
	if !c.IsEmpty() {
		t.Fatalf("c = %v; want empty", c)
	}
}

func TestShiftNNegativeLeavesReceiver(t *testing.T) {
	c := ints(1, 2, 3)
	if _, err := c.ShiftN(-1); !errors.Is(err, collections.ErrInvalidArgument) {
		t.Fatalf("err = %v; want ErrInvalidArgument", err)
	}
	assertSlice(t, c.All(), []int{1, 2, 3})
}

func TestSplice(t *testing.T) {
	c := ints(1, 2, 3, 4)
	assertJSON(t, c.Splice(1), `[2,3,4]`)
	assertJSON(t, c, `[1]`)

	r := ints(1, 2, 3, 4)
	assertJSON(t, r.SpliceReplace(1, 2, 8, 9), `[2,3]`)
	assertJSON(t, r, `[1,8,9,4]`)

	n := ints(1, 2, 3, 4)
	assertJSON(t, n.SpliceReplace(-1, 1), `[4]`)
	assertJSON(t, n, `[1,2,3]`)
}

func TestTransform(t *testing.T) {
	c := ints(1, 2)
	c.Transform(func(n int, _ arr.Key) int { return n * 10 })
	assertJSON(t, c, `[10,20]`)
}

func TestDuplicates(t *testing.T) {
	assertJSON(t, ints(1, 2, 2, 3, 3, 3).Duplicates(nil), `{"2":2,"4":3,"5":3}`)

	mixed := collections.New[any](1, "1", 1)
	assertJSON(t, mixed.Duplicates(nil), `{"1":"1","2":1}`)
	assertJSON(t, mixed.DuplicatesStrict(nil), `{"2":1}`)

	rows := collect(t, `[{"e":"x"},{"e":"y"},{"e":"x"}]`)
	assertJSON(t, rows.Duplicates("e"), `{"2":"x"}`)

	falsy := collections.New[any](nil, false, 0)
	assertJSON(t, falsy.Duplicates(nil), `{"1":false,"2":0}`)
}
