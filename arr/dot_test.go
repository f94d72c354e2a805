package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

func makeNested(t *testing.T) *arr.Array[any] {
	t.Helper()
	v, err := arr.DecodeJSON([]byte(`{
		"user": {"name": "Alice", "address": {"city": "London", "country": "UK"}},
		"score": 42,
		"tags": []
	}`))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	return v.(*arr.Array[any])
}

func TestDot(t *testing.T) {
	flat := arr.Dot(makeNested(t), "")
	assertSlice(t, keyStrings(flat), []string{"user.name", "user.address.city", "user.address.country", "score", "tags"})
	if v, _ := flat.Get("user.address.city"); v != "London" {
		t.Fatalf("Dot user.address.city = %v; want London", v)
	}
	if v, _ := flat.Get("score"); v != 42 {
		t.Fatalf("Dot score = %v; want 42", v)
	}
}

func TestDotPrefix(t *testing.T) {
	flat := arr.Dot(arr.List[any]("a", "b"), "items.")
	assertSlice(t, keyStrings(flat), []string{"items.0", "items.1"})
}

func TestUndotRoundTrip(t *testing.T) {
	nested := makeNested(t)
	back := arr.Undot(arr.Dot(nested, ""))
	assertJSON(t, back, `{"user":{"name":"Alice","address":{"city":"London","country":"UK"}},"score":42,"tags":[]}`)
}

func TestGet(t *testing.T) {
	m := makeNested(t)
	if v := arr.Get(m, "user.address.city"); v != "London" {
		t.Fatalf("Get = %v; want London", v)
	}
	if v := arr.Get(m, "user.phone", "n/a"); v != "n/a" {
		t.Fatalf("Get default = %v; want n/a", v)
	}
	if v := arr.Get(m, "missing"); v != nil {
		t.Fatalf("Get missing = %v; want nil", v)
	}
}

func TestGetLiteralDottedKeyWins(t *testing.T) {
	m := arr.New[any]()
	m.Set("a.b", "literal")
	arr.Set(m, "a.b.c", "nested")
	if v := arr.Get(m, "a.b"); v != "literal" {
		t.Fatalf("Get = %v; want literal", v)
	}
}

func TestSetCreatesIntermediates(t *testing.T) {
	m := arr.New[any]()
	arr.Set(m, "user.address.postcode", "EC1")
	assertJSON(t, m, `{"user":{"address":{"postcode":"EC1"}}}`)

	arr.Set(m, "user.address.postcode.extra", 1)
	assertJSON(t, m, `{"user":{"address":{"postcode":{"extra":1}}}}`)
}

func TestHasAndHasAny(t *testing.T) {
	m := makeNested(t)
	if !arr.Has(m, "user.name", "user.address.city") {
		t.Fatal("Has should find both paths")
	}
	if arr.Has(m, "user.name", "user.phone") {
		t.Fatal("Has should fail when one path is missing")
	}
	if arr.Has(m) {
		t.Fatal("Has with no keys should be false")
	}
	if !arr.HasAny(m, "nope", "score") {
		t.Fatal("HasAny should find score")
	}
	if arr.HasAny(m, "nope", "user.nope") {
		t.Fatal("HasAny should be false")
	}
}

func TestForget(t *testing.T) {
	m := makeNested(t)
	arr.Forget(m, "user.address", "score", "does.not.exist")
	assertJSON(t, m, `{"user":{"name":"Alice"},"tags":[]}`)
}
