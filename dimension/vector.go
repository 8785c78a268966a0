package dimension

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

const dimensionlessName = "dimensionless"

// Term is one (base dimension, exponent) pair.
type Term struct {
	Base Base
	Exp  int
}

func (t Term) String() string {
	if t.Exp == 1 {
		return t.Base.String()
	}
	return t.Base.String() + "^" + strconv.Itoa(t.Exp)
}

// Vector is a canonical dimension: nonzero integer exponents over base
// dimensions, ordered by base ordinal.
//
// Vector is an immutable value and is comparable with ==. The zero value
// is the dimensionless vector.
type Vector struct {
	// enc holds varint(ordinal) varint(exp) pairs in ascending ordinal
	// order with no zero exponents.
	enc string
}

// Dimensionless is the empty vector.
var Dimensionless Vector

// fromCanonical encodes terms that are already sorted, unique and nonzero.
func fromCanonical(terms []Term) Vector {
	if len(terms) == 0 {
		return Vector{}
	}
	buf := make([]byte, 0, len(terms)*2)
	for _, t := range terms {
		buf = binary.AppendVarint(buf, int64(t.Base.ordinal))
		buf = binary.AppendVarint(buf, int64(t.Exp))
	}
	return Vector{enc: string(buf)}
}

// Terms returns the nonzero terms of v in canonical order.
func (v Vector) Terms() []Term {
	if v.enc == "" {
		return nil
	}
	var terms []Term
	b := []byte(v.enc)
	for len(b) > 0 {
		ord, n := binary.Varint(b)
		b = b[n:]
		exp, m := binary.Varint(b)
		b = b[m:]
		terms = append(terms, Term{Base: Base{ordinal: int(ord)}, Exp: int(exp)})
	}
	return terms
}

// Len returns the number of nonzero terms.
func (v Vector) Len() int {
	return len(v.Terms())
}

// Exponent returns the exponent of b in v, 0 if absent.
func (v Vector) Exponent(b Base) int {
	for _, t := range v.Terms() {
		if t.Base == b {
			return t.Exp
		}
	}
	return 0
}

// IsDimensionless reports whether v has no terms.
func (v Vector) IsDimensionless() bool { return v.enc == "" }

// Equal reports whether v and o denote the same dimension.
func (v Vector) Equal(o Vector) bool { return v == o }

// String renders v as space-separated symbols with exponents, for example
// "L M T^-2 QP^-1". The result can be read back with ParseBases.
func (v Vector) String() string {
	terms := v.Terms()
	if len(terms) == 0 {
		return dimensionlessName
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// MarshalText implements encoding.TextMarshaler.
func (v Vector) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only base dimension
// names and symbols are accepted.
func (v *Vector) UnmarshalText(text []byte) error {
	parsed, err := ParseBases(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Reduce builds the canonical vector for a declaration.
//
// Terms may be listed in any order. Zero exponents are dropped and a base
// listed twice with the same exponent counts once. A base listed twice
// with different exponents yields *ErrMalformedDeclaration; an
// unregistered base yields ErrUnknownBase.
func Reduce(terms ...Term) (Vector, error) {
	sorted := slices.Clone(terms)
	for _, t := range sorted {
		if !t.Base.Registered() {
			return Vector{}, fmt.Errorf("%w: ordinal %d", ErrUnknownBase, t.Base.ordinal)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Term) int { return compareBase(a.Base, b.Base) })

	out := make([]Term, 0, len(sorted))
	for i, t := range sorted {
		if i > 0 && sorted[i-1].Base == t.Base {
			if sorted[i-1].Exp != t.Exp {
				return Vector{}, &ErrMalformedDeclaration{Base: t.Base, First: sorted[i-1].Exp, Second: t.Exp}
			}
			continue
		}
		if t.Exp != 0 {
			out = append(out, t)
		}
	}
	return fromCanonical(out), nil
}

// MustReduce is like Reduce but panics on error. It is intended for
// package-level declarations.
func MustReduce(terms ...Term) Vector {
	v, err := Reduce(terms...)
	if err != nil {
		panic(err)
	}
	return v
}

// Multiply returns the dimension of a product: exponents are summed per
// base and zero sums are dropped. It panics with ErrExponentOverflow if an
// exponent leaves the int range; see MultiplyChecked.
func Multiply(a, b Vector) Vector {
	return mustVector(MultiplyChecked(a, b))
}

// MultiplyChecked is like Multiply but reports exponent overflow as an
// error wrapping ErrExponentOverflow.
func MultiplyChecked(a, b Vector) (Vector, error) {
	if a.enc == "" {
		return b, nil
	}
	if b.enc == "" {
		return a, nil
	}
	return merge(a.Terms(), b.Terms(), 1)
}

// Divide returns the dimension of a quotient. It panics on exponent
// overflow like Multiply.
func Divide(a, b Vector) Vector {
	return mustVector(DivideChecked(a, b))
}

// DivideChecked is like Divide but reports exponent overflow as an error.
func DivideChecked(a, b Vector) (Vector, error) {
	return merge(a.Terms(), b.Terms(), -1)
}

// Inverse negates every exponent of v.
func Inverse(v Vector) Vector {
	return Pow(v, -1)
}

// Pow multiplies every exponent of v by n. Pow(v, 0) is Dimensionless.
// It panics on exponent overflow like Multiply.
func Pow(v Vector, n int) Vector {
	return mustVector(PowChecked(v, n))
}

// PowChecked is like Pow but reports exponent overflow as an error.
func PowChecked(v Vector, n int) (Vector, error) {
	if n == 0 || v.enc == "" {
		return Dimensionless, nil
	}
	terms := v.Terms()
	for i, t := range terms {
		exp, ok := mulExp(t.Exp, n)
		if !ok {
			return Vector{}, fmt.Errorf("%w: %s^%d raised to %d", ErrExponentOverflow, t.Base, t.Exp, n)
		}
		terms[i].Exp = exp
	}
	return fromCanonical(terms), nil
}

// merge combines two canonical term lists as a + sign*b.
func merge(a, b []Term, sign int) (Vector, error) {
	out := make([]Term, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var t Term
		switch {
		case j == len(b) || (i < len(a) && a[i].Base.ordinal < b[j].Base.ordinal):
			t = a[i]
			i++
		default:
			exp, ok := mulExp(sign, b[j].Exp)
			if !ok {
				return Vector{}, fmt.Errorf("%w: %s^%d inverted", ErrExponentOverflow, b[j].Base, b[j].Exp)
			}
			t = Term{Base: b[j].Base, Exp: exp}
			if i < len(a) && a[i].Base == b[j].Base {
				sum, ok := addExp(a[i].Exp, exp)
				if !ok {
					return Vector{}, fmt.Errorf("%w: %s^%d combined with %s^%d",
						ErrExponentOverflow, a[i].Base, a[i].Exp, t.Base, exp)
				}
				t.Exp = sum
				i++
			}
			j++
		}
		if t.Exp != 0 {
			out = append(out, t)
		}
	}
	return fromCanonical(out), nil
}

func addExp(a, b int) (int, bool) {
	s := a + b
	if (s > a) != (b > 0) {
		return 0, false
	}
	return s, true
}

func mulExp(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func mustVector(v Vector, err error) Vector {
	if err != nil {
		panic(err)
	}
	return v
}
