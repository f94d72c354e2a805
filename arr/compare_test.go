package arr_test

import (
	"testing"

	"github.com/hasbyte1/go-laravel-relay/arr"
)

type point struct{ X, Y int }

type label string

func (l label) String() string { return string(l) }

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"ints", 1, 2, -1},
		{"int and float", 2, 2.0, 0},
		{"numeric strings", "10", "9", 1},
		{"number and numeric string", 10, "10.0", 0},
		{"number and text", 1, "abc", -1},
		{"text", "apple", "banana", -1},
		{"nil and empty string", nil, "", 0},
		{"nil and zero", nil, 0, 0},
		{"bool juggling", true, "x", 0},
		{"false and empty slice", false, []int{}, 0},
		{"containers by length", []int{1, 2}, []int{9}, 1},
		{"container above scalar", []int{1}, 100, 1},
		{"equal structs", point{1, 2}, point{1, 2}, 0},
		{"stringer against text", label("b"), "a", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arr.Compare(tt.a, tt.b); got != tt.want {
				t.Fatalf("Compare(%v, %v) = %d; want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestStrictEqual(t *testing.T) {
	if arr.StrictEqual(1, "1") {
		t.Fatal(`StrictEqual(1, "1") should be false`)
	}
	if arr.StrictEqual(1, 1.0) {
		t.Fatal("StrictEqual(1, 1.0) should be false")
	}
	if !arr.StrictEqual(arr.List(1, 2), arr.List(1, 2)) {
		t.Fatal("equal lists should be strictly equal")
	}
	if arr.StrictEqual(arr.List(1, 2), arr.List(2, 1)) {
		t.Fatal("order matters for strict equality")
	}
	if !arr.StrictEqual([]int{1}, []int{1}) {
		t.Fatal("equal slices should be strictly equal")
	}
	if !arr.StrictEqual(nil, nil) || arr.StrictEqual(nil, 0) {
		t.Fatal("nil is only strictly equal to nil")
	}
}

func TestLooseKeyGroupsLooseEquals(t *testing.T) {
	same := [][2]any{{1, "1"}, {1, 1.0}, {"1e2", 100}}
	for _, p := range same {
		if arr.LooseKey(p[0]) != arr.LooseKey(p[1]) {
			t.Fatalf("LooseKey(%v) != LooseKey(%v)", p[0], p[1])
		}
	}
	if arr.LooseKey("a") == arr.LooseKey("b") {
		t.Fatal("different strings must not share a key")
	}
}

func TestLooseSetMatchesLooseEqual(t *testing.T) {
	values := []any{nil, false, true, 0, 1, 2, "", "0", "1", "a", 1.0, []any{}, []any{1}}
	for _, members := range [][]any{{nil}, {false}, {true}, {0}, {""}, {"0"}, {"a"}, {nil, 2}, {[]any{}}} {
		s := arr.NewLooseSet()
		for _, m := range members {
			s.Add(m)
		}
		for _, v := range values {
			want := false
			for _, m := range members {
				if arr.LooseEqual(m, v) {
					want = true
				}
			}
			if got := s.Has(v); got != want {
				t.Fatalf("set %v Has(%#v) = %v; want %v", members, v, got, want)
			}
		}
	}
}

func TestLooseSetAdd(t *testing.T) {
	s := arr.NewLooseSet()
	if !s.Add(nil) {
		t.Fatal("first Add should report new")
	}
	if s.Add(false) || s.Add(0) || s.Add("") {
		t.Fatal("false, 0 and \"\" are loosely equal to nil")
	}
	if !s.Add("0") {
		t.Fatal(`"0" is not loosely equal to nil`)
	}
}

func TestStrictKey(t *testing.T) {
	if arr.StrictKey(1) == arr.StrictKey("1") {
		t.Fatal("StrictKey should tell 1 and \"1\" apart")
	}
	if arr.StrictKey([]int{1, 2}) != arr.StrictKey([]int{1, 2}) {
		t.Fatal("equal slices should share a strict key")
	}
}

func TestTruthyAndNumeric(t *testing.T) {
	for _, v := range []any{nil, false, 0, 0.0, "", "0", []int{}, arr.New[int]()} {
		if arr.Truthy(v) {
			t.Fatalf("Truthy(%v) = true; want false", v)
		}
	}
	for _, v := range []any{1, "a", "0.0", []int{0}, point{}} {
		if !arr.Truthy(v) {
			t.Fatalf("Truthy(%v) = false; want true", v)
		}
	}
	if !arr.IsNumeric(" 12.5 ") || arr.IsNumeric("12abc") || arr.IsNumeric(true) {
		t.Fatal("IsNumeric mismatch")
	}
	if f, ok := arr.ToFloat("12abc"); f != 12 || ok {
		t.Fatalf(`ToFloat("12abc") = %v, %v; want 12, false`, f, ok)
	}
}

func TestStringOf(t *testing.T) {
	tests := map[string]any{
		"":      nil,
		"1":     true,
		"1.5":   1.5,
		"3":     3.0,
		"x":     label("x"),
		"[1,2]": arr.List(1, 2),
	}
	for want, v := range tests {
		if got := arr.StringOf(v); got != want {
			t.Fatalf("StringOf(%v) = %q; want %q", v, got, want)
		}
	}
}

func TestObjectAndTextual(t *testing.T) {
	if !arr.IsObject(point{}) || !arr.IsObject(&point{}) || arr.IsObject(arr.New[int]()) {
		t.Fatal("IsObject mismatch")
	}
	if arr.IsObject(arr.IntKey(1)) || arr.IsObject(arr.StringKey("a")) {
		t.Fatal("keys are scalars, not objects")
	}
	if !arr.LooseEqual(arr.IntKey(1), 1) || !arr.LooseEqual(arr.StringKey("a"), "a") {
		t.Fatal("keys compare by their value")
	}
	if !arr.IsTextual("s") || !arr.IsTextual(label("x")) || arr.IsTextual(arr.New[int]()) || arr.IsTextual(1) {
		t.Fatal("IsTextual mismatch")
	}
}
