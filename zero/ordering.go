package zero

import "fmt"

// Ordering is the result of a three-way comparison. Unordered is returned
// when either side is NaN.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
	Unordered
)

// Reverse returns the ordering with operands swapped.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Unordered:
		return "Unordered"
	default:
		return fmt.Sprintf("Ordering(%d)", int8(o))
	}
}

func compareScalar[Y Scalar](a, b Y) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	default:
		return Unordered
	}
}

// Op is one of the six relational operators.
type Op uint8

const (
	EQ Op = iota
	NE
	LT
	LE
	GT
	GE
)

// Holds reports whether "a op b" is true given o = compare(a, b).
// An Unordered comparison satisfies only NE, as for IEEE 754 NaN.
func (op Op) Holds(o Ordering) bool {
	switch op {
	case EQ:
		return o == Equal
	case NE:
		return o != Equal
	case LT:
		return o == Less
	case LE:
		return o == Less || o == Equal
	case GT:
		return o == Greater
	case GE:
		return o == Greater || o == Equal
	default:
		return false
	}
}

// Mirror returns the operator that gives the same result with operands
// swapped: a < b iff b > a.
func (op Op) Mirror() Op {
	switch op {
	case LT:
		return GT
	case LE:
		return GE
	case GT:
		return LT
	case GE:
		return LE
	default:
		return op
	}
}

func (op Op) String() string {
	switch op {
	case EQ:
		return "=="
	case NE:
		return "!="
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}
