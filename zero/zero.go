// Package zero provides a dimension-agnostic zero that compares against,
// and materializes as, a quantity of any unit.
//
// Zero carries no unit: zero metres, zero seconds and the abstract zero
// are all the same value. Comparing a quantity against Zero compares its
// stored scalar with the scalar type's zero value. There is no other path
// from a bare number to a dimensioned quantity.
//
//	if zero.IsNegative(q) { ... }                 // q < 0
//	if zero.ZeroVsQuantity(zero.LT, q) { ... }     // 0 < q
//	d := zero.To[quantity.Quantity[quantity.Length, float64], float64](zero.Zero)
package zero

// Scalar is the set of scalar storage types a quantity may hold.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Valuer is the read side of a quantity: access to its stored scalar.
type Valuer[Y Scalar] interface {
	Value() Y
}

// Materializer constructs a Q from a raw scalar. It is the only way this
// package builds quantities.
type Materializer[Q any, Y Scalar] interface {
	FromValue(v Y) Q
}

// Sentinel is the zero of every quantity. It has no state; all values
// are interchangeable.
type Sentinel struct{}

// Zero is the sentinel value.
var Zero Sentinel

// Compare orders the sentinel against itself. It is always Equal.
func (Sentinel) Compare(Sentinel) Ordering { return Equal }

// Equal reports s == o; always true.
func (s Sentinel) Equal(o Sentinel) bool { return EQ.Holds(s.Compare(o)) }

// NotEqual reports s != o; always false.
func (s Sentinel) NotEqual(o Sentinel) bool { return NE.Holds(s.Compare(o)) }

// Less reports s < o; always false.
func (s Sentinel) Less(o Sentinel) bool { return LT.Holds(s.Compare(o)) }

// LessOrEqual reports s <= o; always true.
func (s Sentinel) LessOrEqual(o Sentinel) bool { return LE.Holds(s.Compare(o)) }

// Greater reports s > o; always false.
func (s Sentinel) Greater(o Sentinel) bool { return GT.Holds(s.Compare(o)) }

// GreaterOrEqual reports s >= o; always true.
func (s Sentinel) GreaterOrEqual(o Sentinel) bool { return GE.Holds(s.Compare(o)) }

func (Sentinel) String() string { return "0" }

// To materializes the sentinel as a Q holding Y's zero value.
//
//	q := zero.To[quantity.Quantity[quantity.Torque, float64], float64](zero.Zero)
func To[Q Materializer[Q, Y], Y Scalar](Sentinel) Q {
	var (
		q Q
		z Y
	)
	return q.FromValue(z)
}

// Compare orders q's stored value against Y's zero value.
func Compare[Y Scalar](q Valuer[Y]) Ordering {
	var z Y
	return compareScalar(q.Value(), z)
}

// QuantityVsZero evaluates "q op 0".
func QuantityVsZero[Y Scalar](q Valuer[Y], op Op) bool {
	return op.Holds(Compare(q))
}

// ZeroVsQuantity evaluates "0 op q".
func ZeroVsQuantity[Y Scalar](op Op, q Valuer[Y]) bool {
	return op.Holds(Compare(q).Reverse())
}

// IsZero reports q == 0.
func IsZero[Y Scalar](q Valuer[Y]) bool { return QuantityVsZero(q, EQ) }

// IsNonZero reports q != 0. NaN is nonzero.
func IsNonZero[Y Scalar](q Valuer[Y]) bool { return QuantityVsZero(q, NE) }

// IsNegative reports q < 0.
func IsNegative[Y Scalar](q Valuer[Y]) bool { return QuantityVsZero(q, LT) }

// IsNonPositive reports q <= 0.
func IsNonPositive[Y Scalar](q Valuer[Y]) bool { return QuantityVsZero(q, LE) }

// IsPositive reports q > 0.
func IsPositive[Y Scalar](q Valuer[Y]) bool { return QuantityVsZero(q, GT) }

// IsNonNegative reports q >= 0.
func IsNonNegative[Y Scalar](q Valuer[Y]) bool { return QuantityVsZero(q, GE) }
