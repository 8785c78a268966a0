package dimension

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBase is returned when a declaration references a base
	// dimension that is not registered.
	ErrUnknownBase = errors.New("unknown base dimension")

	// ErrDuplicateBase is returned when a base dimension name, symbol or
	// ordinal is already taken.
	ErrDuplicateBase = errors.New("duplicate base dimension")

	// ErrInvalidBase is returned for base dimensions with unusable names.
	ErrInvalidBase = errors.New("invalid base dimension")

	// ErrUnknownName is returned when an expression references a name that
	// is neither a base dimension nor resolvable through the catalog.
	ErrUnknownName = errors.New("unknown dimension name")

	// ErrExponentOverflow is returned when combining dimensions produces an
	// exponent outside the int range.
	ErrExponentOverflow = errors.New("dimension exponent overflow")
)

// ErrMalformedDeclaration indicates a declaration listing the same base
// dimension more than once with conflicting exponents.
type ErrMalformedDeclaration struct {
	Base   Base
	First  int
	Second int
}

func (e *ErrMalformedDeclaration) Error() string {
	return fmt.Sprintf("malformed dimension declaration: %s listed with exponents %d and %d",
		e.Base, e.First, e.Second)
}

// ErrDimensionMismatch indicates two dimensions that were required to be
// equal are not.
type ErrDimensionMismatch struct {
	Expected Vector
	Actual   Vector
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %s, got %s", e.Expected, e.Actual)
}

// ErrSyntax reports a malformed dimension expression.
//
// Pos is the byte offset of the offending token. For unknown names the
// wrapped error is ErrUnknownName, for out-of-range exponents
// ErrExponentOverflow.
type ErrSyntax struct {
	Expr  string
	Pos   int
	Msg   string
	cause error
}

func (e *ErrSyntax) Error() string {
	return fmt.Sprintf("dimension expression %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

func (e *ErrSyntax) Unwrap() error { return e.cause }

// Require reports whether got equals want, returning *ErrDimensionMismatch
// otherwise.
func Require(want, got Vector) error {
	if want != got {
		return &ErrDimensionMismatch{Expected: want, Actual: got}
	}
	return nil
}
