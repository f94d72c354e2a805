package collections_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/collections"
)

type user struct {
	ID   int
	Name string
	Role string
}

func users() *collections.Collection[user] {
	return collections.New(
		user{1, "Ann", "admin"},
		user{2, "Bob", "dev"},
		user{3, "Cid", "dev"},
	)
}

// ─────────────────────────────────────────────────────────────────────────────
// Typed transformations
// ─────────────────────────────────────────────────────────────────────────────

func TestMapTyped(t *testing.T) {
	out := collections.Map(ints(1, 2, 3), func(n int, _ arr.Key) string { return strconv.Itoa(n * 2) })
	assertSlice(t, out.All(), []string{"2", "4", "6"})
}

func TestMapWithKeysTyped(t *testing.T) {
	out := collections.MapWithKeys(users(), func(u user, _ arr.Key) (any, int) { return u.Name, u.ID })
	assertJSON(t, out, `{"Ann":1,"Bob":2,"Cid":3}`)
}

func TestFlatMapTyped(t *testing.T) {
	out := collections.FlatMap(collections.New("hello world", "foo"), func(s string, _ arr.Key) []string {
		return strings.Fields(s)
	})
	assertSlice(t, out.All(), []string{"hello", "world", "foo"})
}

func TestReduceTyped(t *testing.T) {
	got := collections.Reduce(users(), func(acc string, u user, _ arr.Key) string { return acc + u.Name[:1] }, "")
	if got != "ABC" {
		t.Fatalf("Reduce = %q", got)
	}
}

func TestPluckTyped(t *testing.T) {
	assertSlice(t, collections.Pluck(users(), func(u user) string { return u.Role }).All(), []string{"admin", "dev", "dev"})
}

func TestGroupByTyped(t *testing.T) {
	groups := collections.GroupBy(users(), func(u user) string { return u.Role })
	assertSlice(t, keysOf(groups), []string{"admin", "dev"})
	devs, _ := groups.Get("dev")
	assertSlice(t, collections.Pluck(devs, func(u user) int { return u.ID }).All(), []int{2, 3})

	byLen := collections.GroupBy(collections.New("a", "bb", "cc"), func(s string) int { return len(s) })
	assertJSON(t, byLen, `{"1":["a"],"2":["bb","cc"]}`)
}

func TestKeyByTyped(t *testing.T) {
	byID := collections.KeyBy(users(), func(u user) int { return u.ID * 10 })
	assertSlice(t, keysOf(byID), []string{"10", "20", "30"})
}

func TestZipTyped(t *testing.T) {
	pairs := collections.Zip(ints(1, 2, 3), collections.New("a", "b"))
	if pairs.Count() != 2 {
		t.Fatalf("Count = %d; want 2", pairs.Count())
	}
	p, _ := pairs.First()
	n, s := p.Unpack()
	if n != 1 || s != "a" || p.String() != "(1, a)" {
		t.Fatalf("first pair = %v", p)
	}
	assertJSON(t, pairs, `[[1,"a"],[2,"b"]]`)
}

func TestCombineTyped(t *testing.T) {
	out, err := collections.Combine([]string{"a", "b"}, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	assertJSON(t, out, `{"a":1,"b":2}`)

	if _, err := collections.Combine([]string{"a"}, []int{}); !errors.Is(err, collections.ErrMismatchedLengths) {
		t.Fatalf("err = %v; want ErrMismatchedLengths", err)
	}
}

func TestCollapseTyped(t *testing.T) {
	out := collections.Collapse(collections.New[[]int]([]int{1, 2}, nil, []int{3}))
	assertSlice(t, out.All(), []int{1, 2, 3})
}

func TestEnsure(t *testing.T) {
	c := collect(t, `{"a":1,"b":2}`)
	typed, err := collections.Ensure[int](c)
	if err != nil {
		t.Fatal(err)
	}
	if typed.Sum() != 3 {
		t.Fatalf("Sum = %v", typed.Sum())
	}

	_, err = collections.Ensure[int](collect(t, `{"a":1,"b":"x"}`))
	if !errors.Is(err, collections.ErrTypeMismatch) || !strings.Contains(err.Error(), "key b") {
		t.Fatalf("err = %v; want ErrTypeMismatch naming key b", err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Enumerable
// ─────────────────────────────────────────────────────────────────────────────

func describe(e collections.Enumerable[int]) string {
	first, _ := e.First()
	return strconv.Itoa(e.Count()) + "/" + strconv.Itoa(first)
}

func TestEnumerable(t *testing.T) {
	if got := describe(ints(7, 8)); got != "2/7" {
		t.Fatalf("describe = %q", got)
	}
}
