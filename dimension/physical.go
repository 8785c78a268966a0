package dimension

// Base dimensions, in canonical order.
var (
	Length            = MustRegister("length", "L", -9)
	Mass              = MustRegister("mass", "M", -8)
	Time              = MustRegister("time", "T", -7)
	Current           = MustRegister("current", "I", -6)
	Temperature       = MustRegister("temperature", "Theta", -5)
	Amount            = MustRegister("amount", "N", -4)
	LuminousIntensity = MustRegister("luminous_intensity", "J", -3)
	PlaneAngle        = MustRegister("plane_angle", "QP", -2)
	SolidAngle        = MustRegister("solid_angle", "QS", -1)
)

// Derived dimensions.
var (
	Area         = MustReduce(Length.Exp(2))
	Volume       = MustReduce(Length.Exp(3))
	Wavenumber   = MustReduce(Length.Exp(-1))
	Frequency    = MustReduce(Time.Exp(-1))
	Velocity     = MustReduce(Length.Exp(1), Time.Exp(-1))
	Acceleration = MustReduce(Length.Exp(1), Time.Exp(-2))
	Momentum     = MustReduce(Length.Exp(1), Mass.Exp(1), Time.Exp(-1))
	Force        = MustReduce(Length.Exp(1), Mass.Exp(1), Time.Exp(-2))
	Energy       = MustReduce(Length.Exp(2), Mass.Exp(1), Time.Exp(-2))
	Power        = MustReduce(Length.Exp(2), Mass.Exp(1), Time.Exp(-3))
	Pressure     = MustReduce(Length.Exp(-1), Mass.Exp(1), Time.Exp(-2))
	MassDensity  = MustReduce(Length.Exp(-3), Mass.Exp(1))

	AngularVelocity     = MustReduce(Time.Exp(-1), PlaneAngle.Exp(1))
	AngularAcceleration = MustReduce(Time.Exp(-2), PlaneAngle.Exp(1))
	AngularMomentum     = MustReduce(Length.Exp(2), Mass.Exp(1), Time.Exp(-1), PlaneAngle.Exp(-1))
	MomentOfInertia     = MustReduce(Length.Exp(2), Mass.Exp(1), PlaneAngle.Exp(-2))

	// Torque is L M T^-2 QP^-1.
	Torque = MustReduce(Length.Exp(1), Mass.Exp(1), Time.Exp(-2), PlaneAngle.Exp(-1))

	ElectricCharge    = MustReduce(Time.Exp(1), Current.Exp(1))
	ElectricPotential = MustReduce(Length.Exp(2), Mass.Exp(1), Time.Exp(-3), Current.Exp(-1))
	Resistance        = MustReduce(Length.Exp(2), Mass.Exp(1), Time.Exp(-3), Current.Exp(-2))
	Capacitance       = MustReduce(Length.Exp(-2), Mass.Exp(-1), Time.Exp(4), Current.Exp(2))
	MagneticFlux      = MustReduce(Length.Exp(2), Mass.Exp(1), Time.Exp(-2), Current.Exp(-1))
)
