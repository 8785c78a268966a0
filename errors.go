package dimgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/dimgo/dimension"
)

var (
	// ErrClosed is returned when using an engine after Close.
	ErrClosed = errors.New("engine closed")

	// ErrUnknownDimension is returned when an expression names a dimension
	// that is neither a base dimension nor in the catalog.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrInvalidExpression is returned for malformed dimension expressions.
	ErrInvalidExpression = errors.New("invalid dimension expression")

	// ErrInvalidCatalog is returned when a catalog cannot be loaded.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// ErrDimensionMismatch indicates that two dimensions required to be equal
// differ.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected dimension.Vector
	Actual   dimension.Vector
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *dimension.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	if errors.Is(err, dimension.ErrUnknownName) {
		return fmt.Errorf("%w: %w", ErrUnknownDimension, err)
	}
	var se *dimension.ErrSyntax
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	return err
}
