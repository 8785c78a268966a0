package quantity

import (
	"fmt"

	"github.com/hupe1980/dimgo/dimension"
)

// Mul returns a*b as a Quantity[R, Y]. The error is
// *dimension.ErrDimensionMismatch if R is not the product of A and B.
func Mul[R, A, B Dimension, Y Scalar](a Quantity[A, Y], b Quantity[B, Y]) (Quantity[R, Y], error) {
	if err := derive[R](dimension.MultiplyChecked(dimensionOf[A](), dimensionOf[B]())); err != nil {
		return Quantity[R, Y]{}, fmt.Errorf("multiply: %w", err)
	}
	return Quantity[R, Y]{value: a.value * b.value}, nil
}

// Div returns a/b as a Quantity[R, Y]. The error is
// *dimension.ErrDimensionMismatch if R is not the quotient of A and B.
// Integer division by zero panics as it does for Y.
func Div[R, A, B Dimension, Y Scalar](a Quantity[A, Y], b Quantity[B, Y]) (Quantity[R, Y], error) {
	if err := derive[R](dimension.DivideChecked(dimensionOf[A](), dimensionOf[B]())); err != nil {
		return Quantity[R, Y]{}, fmt.Errorf("divide: %w", err)
	}
	return Quantity[R, Y]{value: a.value / b.value}, nil
}

// Pow returns q^n as a Quantity[R, Y]. Negative n is computed as
// 1/q^-n, which truncates for integer Y and panics with a division by
// zero for an integer q of 0, as integer division does.
func Pow[R, A Dimension, Y Scalar](q Quantity[A, Y], n int) (Quantity[R, Y], error) {
	if err := derive[R](dimension.PowChecked(dimensionOf[A](), n)); err != nil {
		return Quantity[R, Y]{}, fmt.Errorf("power %d: %w", n, err)
	}
	k := uint(n)
	if n < 0 {
		k = -k
	}
	v, base := Y(1), q.value
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			v *= base
		}
		base *= base
	}
	if n < 0 {
		v = 1 / v
	}
	return Quantity[R, Y]{value: v}, nil
}

// derive checks a computed dimension against the declared result R.
func derive[R Dimension](got dimension.Vector, err error) error {
	if err != nil {
		return err
	}
	return dimension.Require(dimensionOf[R](), got)
}

// Rebind reinterprets q as a quantity of another dimension type with the
// same reduced vector, e.g. between two names for one derived dimension.
func Rebind[To, From Dimension, Y Scalar](q Quantity[From, Y]) (Quantity[To, Y], error) {
	if err := dimension.Require(dimensionOf[To](), dimensionOf[From]()); err != nil {
		return Quantity[To, Y]{}, fmt.Errorf("rebind: %w", err)
	}
	return Quantity[To, Y]{value: q.value}, nil
}

// Must panics if err is non-nil and returns q otherwise.
//
//	area := quantity.Must(quantity.Mul[quantity.Area](w, h))
func Must[D Dimension, Y Scalar](q Quantity[D, Y], err error) Quantity[D, Y] {
	if err != nil {
		panic(err)
	}
	return q
}
