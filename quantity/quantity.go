// Package quantity pairs a scalar value with a physical dimension carried
// only in the type.
//
// Quantity[D, Y] stores a single Y; D is a zero-size dimension type. The
// Go type checker rejects adding, subtracting or comparing quantities of
// different dimension types:
//
//	l := quantity.FromValue[quantity.Length](2.0)
//	m := quantity.FromValue[quantity.Mass](3.0)
//	quantity.Add(l, l) // ok
//	quantity.Add(l, m) // does not compile
//
// Products, quotients and powers produce new dimensions. The caller names
// the result type and it is checked against the dimension algebra:
//
//	f, err := quantity.Mul[quantity.Force](m, a) // *dimension.ErrDimensionMismatch unless M*L*T^-2 == force
package quantity

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/dimgo/dimension"
	"github.com/hupe1980/dimgo/zero"
)

// Dimension is implemented by zero-size dimension marker types.
type Dimension interface {
	Dimension() dimension.Vector
}

// Scalar is the set of supported storage types.
type Scalar interface {
	zero.Scalar
}

// Quantity is a Y tagged with dimension D.
type Quantity[D Dimension, Y Scalar] struct {
	value Y
}

// FromValue builds a quantity from a raw scalar.
func FromValue[D Dimension, Y Scalar](v Y) Quantity[D, Y] {
	return Quantity[D, Y]{value: v}
}

// FromZero materializes the zero sentinel as a Quantity[D, Y].
func FromZero[D Dimension, Y Scalar](s zero.Sentinel) Quantity[D, Y] {
	return zero.To[Quantity[D, Y], Y](s)
}

// Value returns the stored scalar.
func (q Quantity[D, Y]) Value() Y { return q.value }

// FromValue returns a quantity of the same type holding v.
func (Quantity[D, Y]) FromValue(v Y) Quantity[D, Y] {
	return Quantity[D, Y]{value: v}
}

// Dimension returns the dimension vector of D.
func (Quantity[D, Y]) Dimension() dimension.Vector {
	return dimensionOf[D]()
}

// CompareZero orders q against the zero sentinel.
func (q Quantity[D, Y]) CompareZero() zero.Ordering {
	return zero.Compare[Y](q)
}

func (q Quantity[D, Y]) String() string {
	dim := dimensionOf[D]()
	if dim.IsDimensionless() {
		return fmt.Sprint(q.value)
	}
	return fmt.Sprintf("%v %s", q.value, dim)
}

func dimensionOf[D Dimension]() dimension.Vector {
	var d D
	return d.Dimension()
}

// SameDimension reports whether A and B reduce to the same vector.
func SameDimension[A, B Dimension]() bool {
	return dimensionOf[A]() == dimensionOf[B]()
}

// Add returns a + b.
func Add[D Dimension, Y Scalar](a, b Quantity[D, Y]) Quantity[D, Y] {
	return Quantity[D, Y]{value: a.value + b.value}
}

// Sub returns a - b.
func Sub[D Dimension, Y Scalar](a, b Quantity[D, Y]) Quantity[D, Y] {
	return Quantity[D, Y]{value: a.value - b.value}
}

// Neg returns -q.
func Neg[D Dimension, Y Scalar](q Quantity[D, Y]) Quantity[D, Y] {
	return Quantity[D, Y]{value: -q.value}
}

// Scale multiplies q by a dimensionless factor.
func Scale[D Dimension, Y Scalar](q Quantity[D, Y], k Y) Quantity[D, Y] {
	return Quantity[D, Y]{value: q.value * k}
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than
// b. NaN sorts before all other values, as in cmp.Compare.
func Compare[D Dimension, Y Scalar](a, b Quantity[D, Y]) int {
	return cmp.Compare(a.value, b.value)
}

// Equal reports a == b.
func Equal[D Dimension, Y Scalar](a, b Quantity[D, Y]) bool {
	return a.value == b.value
}

// Less reports a < b.
func Less[D Dimension, Y Scalar](a, b Quantity[D, Y]) bool {
	return a.value < b.value
}

// Min returns the smaller of a and b.
func Min[D Dimension, Y Scalar](a, b Quantity[D, Y]) Quantity[D, Y] {
	return Quantity[D, Y]{value: min(a.value, b.value)}
}

// Max returns the larger of a and b.
func Max[D Dimension, Y Scalar](a, b Quantity[D, Y]) Quantity[D, Y] {
	return Quantity[D, Y]{value: max(a.value, b.value)}
}

// Convert changes the storage type of q.
func Convert[Z Scalar, D Dimension, Y Scalar](q Quantity[D, Y]) Quantity[D, Z] {
	return Quantity[D, Z]{value: Z(q.value)}
}
