package quantity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dimgo/dimension"
	"github.com/hupe1980/dimgo/quantity"
)

// work is a second name for energy.
type work struct{}

func (work) Dimension() dimension.Vector { return dimension.Energy }

func TestSameDimensionArithmetic(t *testing.T) {
	a := quantity.FromValue[quantity.Length](2.0)
	b := quantity.FromValue[quantity.Length](3.5)

	assert.Equal(t, 5.5, quantity.Add(a, b).Value())
	assert.Equal(t, -1.5, quantity.Sub(a, b).Value())
	assert.Equal(t, -2.0, quantity.Neg(a).Value())
	assert.Equal(t, 8.0, quantity.Scale(a, 4).Value())
	assert.Equal(t, a, quantity.Min(a, b))
	assert.Equal(t, b, quantity.Max(a, b))
}

func TestComparison(t *testing.T) {
	a := quantity.FromValue[quantity.Time](int64(1))
	b := quantity.FromValue[quantity.Time](int64(2))

	assert.Equal(t, -1, quantity.Compare(a, b))
	assert.Equal(t, 0, quantity.Compare(a, a))
	assert.Equal(t, 1, quantity.Compare(b, a))
	assert.True(t, quantity.Less(a, b))
	assert.False(t, quantity.Less(b, a))
	assert.True(t, quantity.Equal(a, a))
	assert.False(t, quantity.Equal(a, b))

	nan := quantity.FromValue[quantity.Time](math.NaN())
	assert.False(t, quantity.Equal(nan, nan))
	assert.Equal(t, -1, quantity.Compare(nan, quantity.FromValue[quantity.Time](0.0)))
}

func TestConvert(t *testing.T) {
	q := quantity.FromValue[quantity.Mass](2.75)

	i := quantity.Convert[int32](q)
	assert.Equal(t, int32(2), i.Value())
	assert.Equal(t, dimension.Mass.Vector(), i.Dimension())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Base", quantity.FromValue[quantity.Length](2.5).String(), "2.5 L"},
		{"Dimensionless", quantity.FromValue[quantity.Dimensionless](3).String(), "3"},
		{"Torque", quantity.FromValue[quantity.Torque](1).String(), "1 L M T^-2 QP^-1"},
		{"Unsigned", quantity.FromValue[quantity.Frequency](uint(50)).String(), "50 T^-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestMul(t *testing.T) {
	m := quantity.FromValue[quantity.Mass](2.0)
	a := quantity.FromValue[quantity.Acceleration](9.5)

	f, err := quantity.Mul[quantity.Force](m, a)
	require.NoError(t, err)
	assert.Equal(t, 19.0, f.Value())

	_, err = quantity.Mul[quantity.Energy](m, a)
	require.Error(t, err)

	var mismatch *dimension.ErrDimensionMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, dimension.Energy, mismatch.Expected)
	assert.Equal(t, dimension.Force, mismatch.Actual)
	assert.EqualError(t, err, "multiply: dimension mismatch: expected L^2 M T^-2, got L M T^-2")
}

func TestDiv(t *testing.T) {
	d := quantity.FromValue[quantity.Length](int64(100))
	s := quantity.FromValue[quantity.Time](int64(8))

	v, err := quantity.Div[quantity.Velocity](d, s)
	require.NoError(t, err)
	assert.Equal(t, int64(12), v.Value())

	_, err = quantity.Div[quantity.Acceleration](d, s)
	assert.ErrorContains(t, err, "divide: dimension mismatch")
}

func TestTorqueIsNotEnergy(t *testing.T) {
	f := quantity.FromValue[quantity.Force](10.0)
	angle := quantity.FromValue[quantity.PlaneAngle](2.0)

	tq, err := quantity.Div[quantity.Torque](f, angle)
	require.NoError(t, err)
	assert.Equal(t, 5.0, tq.Value())

	back, err := quantity.Mul[quantity.Force](tq, angle)
	require.NoError(t, err)
	assert.Equal(t, f, back)

	_, err = quantity.Mul[quantity.Energy](tq, angle)
	assert.Error(t, err)
	_, err = quantity.Rebind[quantity.Energy](tq)
	assert.Error(t, err)

	assert.False(t, quantity.SameDimension[quantity.Torque, quantity.Energy]())
}

func TestPow(t *testing.T) {
	l := quantity.FromValue[quantity.Length](3.0)

	area, err := quantity.Pow[quantity.Area](l, 2)
	require.NoError(t, err)
	assert.Equal(t, 9.0, area.Value())

	vol, err := quantity.Pow[quantity.Volume](l, 3)
	require.NoError(t, err)
	assert.Equal(t, 27.0, vol.Value())

	one, err := quantity.Pow[quantity.Dimensionless](l, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, one.Value())

	freq, err := quantity.Pow[quantity.Frequency](quantity.FromValue[quantity.Time](4.0), -1)
	require.NoError(t, err)
	assert.Equal(t, 0.25, freq.Value())

	_, err = quantity.Pow[quantity.Volume](l, 2)
	assert.ErrorContains(t, err, "power 2: dimension mismatch")

	ten, err := quantity.Pow[quantity.Dimensionless](quantity.FromValue[quantity.Dimensionless](int64(2)), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), ten.Value())

	half, err := quantity.Pow[quantity.Dimensionless](quantity.FromValue[quantity.Dimensionless](2.0), -1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, half.Value())
}

func TestPowLargeExponent(t *testing.T) {
	one := quantity.FromValue[quantity.Dimensionless](1.0)

	q, err := quantity.Pow[quantity.Dimensionless](one, 1<<40)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q.Value())

	q, err = quantity.Pow[quantity.Dimensionless](quantity.FromValue[quantity.Dimensionless](-1.0), 1<<40+1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, q.Value())

	_, err = quantity.Pow[quantity.Area](quantity.FromValue[quantity.Area](2.0), 1<<62)
	assert.ErrorIs(t, err, dimension.ErrExponentOverflow)
	var mismatch *dimension.ErrDimensionMismatch
	assert.False(t, errors.As(err, &mismatch))
}

func TestPowIntegerZeroNegative(t *testing.T) {
	z := quantity.FromValue[quantity.Dimensionless](0)

	assert.Panics(t, func() {
		_, _ = quantity.Pow[quantity.Dimensionless](z, -1)
	})

	inf, err := quantity.Pow[quantity.Dimensionless](quantity.FromValue[quantity.Dimensionless](0.0), -1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(inf.Value(), 1))
}

func TestRebind(t *testing.T) {
	e := quantity.FromValue[quantity.Energy](42.0)

	w, err := quantity.Rebind[work](e)
	require.NoError(t, err)
	assert.Equal(t, 42.0, w.Value())
	assert.True(t, quantity.SameDimension[work, quantity.Energy]())

	_, err = quantity.Rebind[work](quantity.FromValue[quantity.Force](1.0))
	assert.ErrorContains(t, err, "rebind: dimension mismatch")
}

func TestMust(t *testing.T) {
	l := quantity.FromValue[quantity.Length](2.0)

	assert.NotPanics(t, func() {
		a := quantity.Must(quantity.Mul[quantity.Area](l, l))
		assert.Equal(t, 4.0, a.Value())
	})
	assert.Panics(t, func() {
		quantity.Must(quantity.Mul[quantity.Volume](l, l))
	})
}

func TestZeroValue(t *testing.T) {
	var q quantity.Quantity[quantity.Pressure, float32]
	assert.Equal(t, float32(0), q.Value())
	assert.Equal(t, dimension.Pressure, q.Dimension())
	assert.Equal(t, q, quantity.FromValue[quantity.Pressure](float32(0)))
	assert.Equal(t, q, q.FromValue(0))
}
