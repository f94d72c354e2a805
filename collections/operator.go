package collections

import "github.com/hasbyte1/go-laravel-relay/arr"

// Operator is a comparison used by [Collection.WhereOp].
type Operator int

const (
	// OpEqual keeps items loosely equal to the value ("=" or "==").
	OpEqual Operator = iota
	// OpNotEqual keeps items not loosely equal to the value ("!=" or "<>").
	OpNotEqual
	// OpLess keeps items less than the value ("<").
	OpLess
	// OpGreater keeps items greater than the value (">").
	OpGreater
	// OpLessOrEqual keeps items less than or equal to the value ("<=").
	OpLessOrEqual
	// OpGreaterOrEqual keeps items greater than or equal to the value (">=").
	OpGreaterOrEqual
	// OpIdentical keeps items of the same type and value ("===").
	OpIdentical
	// OpNotIdentical keeps items differing in type or value ("!==").
	OpNotIdentical
	// OpSpaceship keeps items whose three-way comparison with the value is
	// non-zero ("<=>").
	OpSpaceship
)

var operatorSymbols = map[string]Operator{
	"=":   OpEqual,
	"==":  OpEqual,
	"!=":  OpNotEqual,
	"<>":  OpNotEqual,
	"<":   OpLess,
	">":   OpGreater,
	"<=":  OpLessOrEqual,
	">=":  OpGreaterOrEqual,
	"===": OpIdentical,
	"!==": OpNotIdentical,
	"<=>": OpSpaceship,
}

// ParseOperator maps an operator symbol to its Operator. Unknown symbols
// return OpEqual and false.
func ParseOperator(symbol string) (Operator, bool) {
	op, ok := operatorSymbols[symbol]
	if !ok {
		return OpEqual, false
	}
	return op, true
}

// String returns the canonical symbol of op.
func (op Operator) String() string {
	switch op {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	case OpLess:
		return "<"
	case OpGreater:
		return ">"
	case OpLessOrEqual:
		return "<="
	case OpGreaterOrEqual:
		return ">="
	case OpIdentical:
		return "==="
	case OpNotIdentical:
		return "!=="
	case OpSpaceship:
		return "<=>"
	}
	return "="
}

// operatorForWhere builds the predicate behind Where and WhereOp.
//
// When fewer than two of the operands are textual and exactly one of them is
// an object, the operands are not comparable: only the negative operators
// match.
func operatorForWhere[T any](key any, op Operator, value any) func(T, arr.Key) bool {
	retrieve := valueRetriever[T](key)
	return func(item T, k arr.Key) bool {
		retrieved := retrieve(item, k)

		textual := 0
		objects := 0
		for _, v := range [2]any{retrieved, value} {
			if arr.IsTextual(v) {
				textual++
			}
			if arr.IsObject(v) {
				objects++
			}
		}
		if textual < 2 && objects == 1 {
			return op == OpNotEqual || op == OpNotIdentical
		}

		switch op {
		case OpNotEqual:
			return !arr.LooseEqual(retrieved, value)
		case OpLess:
			return arr.Compare(retrieved, value) < 0
		case OpGreater:
			return arr.Compare(retrieved, value) > 0
		case OpLessOrEqual:
			return arr.Compare(retrieved, value) <= 0
		case OpGreaterOrEqual:
			return arr.Compare(retrieved, value) >= 0
		case OpIdentical:
			return arr.StrictEqual(retrieved, value)
		case OpNotIdentical:
			return !arr.StrictEqual(retrieved, value)
		case OpSpaceship:
			return arr.Compare(retrieved, value) != 0
		}
		return arr.LooseEqual(retrieved, value)
	}
}
