// Package dimension implements the dimension algebra.
//
// A physical dimension is a sparse vector of integer exponents over a
// registry of base dimensions (length, mass, time, ...). Vectors are kept
// in canonical form: terms ordered by base ordinal, zero exponents elided.
// Two vectors describing the same physical dimension are therefore equal
// under ==, however they were built.
//
// # Building dimensions
//
//	torque := dimension.MustReduce(
//	    dimension.Length.Exp(1),
//	    dimension.Mass.Exp(1),
//	    dimension.Time.Exp(-2),
//	    dimension.PlaneAngle.Exp(-1),
//	)
//	force := dimension.Divide(dimension.Multiply(dimension.Length.Vector(), dimension.Mass.Vector()),
//	    dimension.Pow(dimension.Time.Vector(), 2))
//
// # Declarations
//
// Reduce rejects declarations that list a base dimension twice with
// different exponents. Package-level declarations use MustReduce so that a
// malformed declaration stops the program during initialization.
//
// # Catalog
//
// Named derived dimensions are loaded from a YAML catalog (see
// DefaultCatalog). Names may be used in expressions understood by Parse:
//
//	v, err := dimension.Parse("force / plane_angle", dimension.DefaultCatalog().Resolver())
package dimension
