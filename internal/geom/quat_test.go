package geom

import (
	"math"
	"testing"
)

func TestQuatIdent(t *testing.T) {
	q := QuatIdent[float64]()

	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("expected (0, 0, 0, 1), got %+v", q)
	}
	if q.Norm() != 1 {
		t.Errorf("identity should have unit norm, got %f", q.Norm())
	}
}

func TestAxisAngleUnitNorm(t *testing.T) {
	axis := Vec[float64]{X: 1 / math.Sqrt(3), Y: 1 / math.Sqrt(3), Z: 1 / math.Sqrt(3)}

	for _, angle := range []float64{0, 0.01, math.Pi / 4, math.Pi, 2 * math.Pi} {
		q := AxisAngle(axis, angle)
		if math.Abs(q.Norm()-1) > 1e-12 {
			t.Errorf("angle %f: norm %f, expected 1", angle, q.Norm())
		}
	}
}

func TestAxisAngleHalfAngle(t *testing.T) {
	axis := Vec[float64]{Y: 1}
	q := AxisAngle(axis, math.Pi/2)

	if math.Abs(q.Y-math.Sin(math.Pi/4)) > 1e-15 {
		t.Errorf("expected imaginary part sin(π/4), got %f", q.Y)
	}
	if math.Abs(q.W-math.Cos(math.Pi/4)) > 1e-15 {
		t.Errorf("expected real part cos(π/4), got %f", q.W)
	}
}

func TestConjugateCancelsRotation(t *testing.T) {
	axis := Vec[float64]{X: 0.6, Y: 0.8}
	q := AxisAngle(axis, 0.3)

	ident := q.Mul(q.Conjugate())

	if math.Abs(ident.W-1) > 1e-12 {
		t.Errorf("expected real part 1, got %f", ident.W)
	}
	if math.Abs(ident.X) > 1e-12 || math.Abs(ident.Y) > 1e-12 || math.Abs(ident.Z) > 1e-12 {
		t.Errorf("expected zero imaginary part, got (%e, %e, %e)", ident.X, ident.Y, ident.Z)
	}
}

func TestMulComposesAngles(t *testing.T) {
	axis := Vec[float64]{Z: 1}
	a := AxisAngle(axis, 0.4)
	b := AxisAngle(axis, 0.25)

	got := a.Mul(b)
	expected := AxisAngle(axis, 0.65)

	if math.Abs(got.Z-expected.Z) > 1e-12 || math.Abs(got.W-expected.W) > 1e-12 {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	q := Quat[float64]{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}

	a := q.Array()
	if a != [4]float64{0.1, 0.2, 0.3, 0.9} {
		t.Errorf("unexpected layout %v", a)
	}
	if QuatFromArray(a) != q {
		t.Errorf("round trip lost components")
	}
}
