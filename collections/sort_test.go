package collections_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/collections"
)

func TestSortKeepsKeys(t *testing.T) {
	c := ints(3, 1, 2).Sort()
	assertJSON(t, c, `{"1":1,"2":2,"0":3}`)
	assertSlice(t, c.Values().All(), []int{1, 2, 3})
}

func TestSortIsIdempotent(t *testing.T) {
	once := collections.New[any](3, "10", 1, "2", 2.5).Sort()
	twice := once.Sort()
	a, _ := once.ToJSON()
	b, _ := twice.ToJSON()
	if string(a) != string(b) {
		t.Fatalf("Sort().Sort() = %s; want %s", b, a)
	}
}

func TestSortWithComparatorAndDesc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	assertSlice(t, ints(1, 3, 2).Sort(desc).Values().All(), []int{3, 2, 1})
	assertSlice(t, ints(1, 3, 2).SortDesc().Values().All(), []int{3, 2, 1})
}

func TestSortByFlags(t *testing.T) {
	files := collections.New("img12", "img10", "img2")
	assertSlice(t, files.SortBy(nil).Values().All(), []string{"img10", "img12", "img2"})
	assertSlice(t, files.SortBy(nil, arr.SortNatural).Values().All(), []string{"img2", "img10", "img12"})
	assertSlice(t, files.SortByDesc(nil, arr.SortNatural).Values().All(), []string{"img12", "img10", "img2"})
}

func TestSortByIsStable(t *testing.T) {
	c := collect(t, `[{"n":"a","g":2},{"n":"b","g":1},{"n":"c","g":2},{"n":"d","g":1}]`)
	assertJSON(t, c.SortBy("g").Pluck("n"), `["b","d","a","c"]`)
	assertJSON(t, c.SortByDesc("g").Pluck("n"), `["a","c","b","d"]`)
}

func TestSortByMany(t *testing.T) {
	c := collect(t, `[
		{"last":"b","age":30},
		{"last":"a","age":20},
		{"last":"b","age":40},
		{"last":"a","age":25}
	]`)
	out := c.SortByMany(collections.Asc("last"), collections.Desc("age")).Pluck("age")
	assertJSON(t, out, `[25,20,40,30]`)

	byAge := func(a, b any) int { return arr.Compare(arr.DataGet(a, "age", nil), arr.DataGet(b, "age", nil)) }
	assertJSON(t, c.SortByMany(collections.Desc(byAge)).Pluck("age"), `[40,30,25,20]`)
}

func TestSortKeys(t *testing.T) {
	c := collect(t, `{"b":1,"a":2,"c":3}`)
	assertJSON(t, c.SortKeys(), `{"a":2,"b":1,"c":3}`)
	assertJSON(t, c.SortKeysDesc(), `{"c":3,"b":1,"a":2}`)
	reversed := c.SortKeysUsing(func(a, b arr.Key) int { return arr.CompareKeys(b, a) })
	assertJSON(t, reversed, `{"c":3,"b":1,"a":2}`)
}

func TestShuffleAndRandom(t *testing.T) {
	c := ints(1, 2, 3, 4)
	if s := c.Shuffle(); s.Count() != 4 || s.Sum() != 10 {
		t.Fatalf("Shuffle = %v", s)
	}
	r, err := c.Random(2)
	if err != nil || r.Count() != 2 {
		t.Fatalf("Random(2) = %v, %v", r, err)
	}
	if _, err := c.Random(5); !errors.Is(err, collections.ErrInvalidArgument) {
		t.Fatalf("Random(5) err = %v; want ErrInvalidArgument", err)
	}
	if v, err := c.RandomItem(); err != nil || v < 1 || v > 4 {
		t.Fatalf("RandomItem = %v, %v", v, err)
	}
	if _, err := collections.Empty[int]().RandomItem(); !errors.Is(err, collections.ErrEmptyCollection) {
		t.Fatalf("RandomItem err = %v; want ErrEmptyCollection", err)
	}
}
