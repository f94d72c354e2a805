package collections_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
	"github.com/hasbyte1/go-laravel-relay/collections"
)

func TestDiffAndIntersect(t *testing.T) {
	c := collections.New[any](1, 2, "3", 4)
	other := collections.New[any]("2", 3)
	assertJSON(t, c.Diff(other), `{"0":1,"3":4}`)
	assertJSON(t, c.Intersect(other), `{"1":2,"2":"3"}`)

	if n := collections.New[any](0).Diff(collections.New[any](nil)).Count(); n != 0 {
		t.Fatalf("0 minus nil left %d items; want 0", n)
	}
	assertJSON(t, collections.New[any](1, "0", "").Intersect(collections.New[any](nil, true)), `{"0":1,"2":""}`)
}

func TestDiffUsing(t *testing.T) {
	c := collections.New("A", "b", "C")
	fold := func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }
	assertJSON(t, c.DiffUsing(collections.New("a", "c"), fold), `{"1":"b"}`)
	assertJSON(t, c.IntersectUsing(collections.New("a", "c"), fold), `{"0":"A","2":"C"}`)
}

func TestDiffAssocAndKeys(t *testing.T) {
	c := collect(t, `{"a":1,"b":2,"c":3}`)
	other := collect(t, `{"a":1,"b":"x","d":3}`)
	assertJSON(t, c.DiffAssoc(other), `{"b":2,"c":3}`)
	assertJSON(t, c.DiffKeys(other), `{"c":3}`)
	assertJSON(t, c.IntersectAssoc(other), `{"a":1}`)
	assertJSON(t, c.IntersectByKeys(other), `{"a":1,"b":2}`)
}

func TestAssocUsingKeyComparator(t *testing.T) {
	c := collect(t, `{"A":1,"b":2}`)
	other := collect(t, `{"a":1,"B":3}`)
	fold := func(x, y arr.Key) int {
		return strings.Compare(strings.ToLower(x.String()), strings.ToLower(y.String()))
	}
	assertJSON(t, c.DiffAssocUsing(other, fold), `{"b":2}`)
	assertJSON(t, c.IntersectAssocUsing(other, fold), `{"A":1}`)
	assertJSON(t, c.DiffKeysUsing(other, fold), `[]`)
}

func TestUnionReceiverWins(t *testing.T) {
	c := collect(t, `{"a":1}`)
	assertJSON(t, c.Union(collect(t, `{"a":2,"b":3}`)), `{"a":1,"b":3}`)
}

func TestCrossJoin(t *testing.T) {
	out := collections.New[any](1, 2).CrossJoin(collections.New[any]("a", "b"))
	assertJSON(t, out, `[[1,"a"],[1,"b"],[2,"a"],[2,"b"]]`)
	if out.Count() != 4 {
		t.Fatalf("Count = %d; want 4", out.Count())
	}
}
