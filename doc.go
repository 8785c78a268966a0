// Package dimgo provides dimensional analysis for Go programs.
//
// Physical quantities carry their dimension in the type, so adding a length
// to a mass is a compile error while products and quotients derive their
// dimension from a canonical exponent vector.
//
// # Packages
//
//   - dimension: base dimension registry, canonical dimension vectors,
//     the multiply/divide/power algebra, declarations and the YAML catalog
//     of named derived dimensions (torque, force, energy, ...).
//   - quantity: Quantity[D, Y], a scalar tagged with a dimension type.
//   - zero: a unit-less zero that compares against, and materializes as,
//     any quantity.
//
// # Quick Start
//
//	l := quantity.FromValue[quantity.Length](2.0)
//	f := quantity.FromValue[quantity.Force](10.0)
//	a := quantity.FromValue[quantity.PlaneAngle](0.5)
//
//	e, _ := quantity.Mul[quantity.Energy](f, l)
//	tq, _ := quantity.Div[quantity.Torque](f, a)
//	if zero.IsPositive(tq) { ... }
//
// # Engine
//
// The Engine resolves textual dimension expressions against the catalog,
// caching parsed results:
//
//	eng, _ := dimgo.New(dimgo.WithLogger(dimgo.NewTextLogger(os.Stderr, slog.LevelDebug)))
//	v, _ := eng.Resolve(ctx, "force / plane_angle")
//	fmt.Println(v, eng.Describe(v).Names) // L M T^-2 QP^-1 [torque]
package dimgo
