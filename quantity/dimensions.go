package quantity

import "github.com/hupe1980/dimgo/dimension"

// Dimension marker types. Each is a zero-size type whose Dimension method
// returns the corresponding vector from package dimension. Callers may
// define their own in the same way.
type (
	Dimensionless     struct{}
	Length            struct{}
	Mass              struct{}
	Time              struct{}
	Current           struct{}
	Temperature       struct{}
	Amount            struct{}
	LuminousIntensity struct{}
	PlaneAngle        struct{}
	SolidAngle        struct{}

	Area            struct{}
	Volume          struct{}
	Frequency       struct{}
	Velocity        struct{}
	Acceleration    struct{}
	Momentum        struct{}
	Force           struct{}
	Energy          struct{}
	Power           struct{}
	Pressure        struct{}
	AngularVelocity struct{}
	Torque          struct{}
)

func (Dimensionless) Dimension() dimension.Vector     { return dimension.Dimensionless }
func (Length) Dimension() dimension.Vector            { return dimension.Length.Vector() }
func (Mass) Dimension() dimension.Vector              { return dimension.Mass.Vector() }
func (Time) Dimension() dimension.Vector              { return dimension.Time.Vector() }
func (Current) Dimension() dimension.Vector           { return dimension.Current.Vector() }
func (Temperature) Dimension() dimension.Vector       { return dimension.Temperature.Vector() }
func (Amount) Dimension() dimension.Vector            { return dimension.Amount.Vector() }
func (LuminousIntensity) Dimension() dimension.Vector { return dimension.LuminousIntensity.Vector() }
func (PlaneAngle) Dimension() dimension.Vector        { return dimension.PlaneAngle.Vector() }
func (SolidAngle) Dimension() dimension.Vector        { return dimension.SolidAngle.Vector() }

func (Area) Dimension() dimension.Vector            { return dimension.Area }
func (Volume) Dimension() dimension.Vector          { return dimension.Volume }
func (Frequency) Dimension() dimension.Vector       { return dimension.Frequency }
func (Velocity) Dimension() dimension.Vector        { return dimension.Velocity }
func (Acceleration) Dimension() dimension.Vector    { return dimension.Acceleration }
func (Momentum) Dimension() dimension.Vector        { return dimension.Momentum }
func (Force) Dimension() dimension.Vector           { return dimension.Force }
func (Energy) Dimension() dimension.Vector          { return dimension.Energy }
func (Power) Dimension() dimension.Vector           { return dimension.Power }
func (Pressure) Dimension() dimension.Vector        { return dimension.Pressure }
func (AngularVelocity) Dimension() dimension.Vector { return dimension.AngularVelocity }
func (Torque) Dimension() dimension.Vector          { return dimension.Torque }
