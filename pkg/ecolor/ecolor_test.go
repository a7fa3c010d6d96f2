package ecolor

import(
	"image/color"
	"math"
	"testing"
)

func TestSoftLightNeutralOverlay(t *testing.T) {
	for _, base := range []float64{0, 0.1, 0.25, 0.5, 0.8, 1} {
		if got := SoftLight(base, 0.5); math.Abs(got-base) > 1e-12 {
			t.Errorf("SoftLight(%v, 0.5) = %v, want %v", base, got, base)
		}
	}
}

func TestSoftLightDirection(t *testing.T) {
	if got := SoftLight(0.5, 0.0); got >= 0.5 {
		t.Errorf("dark overlay should darken, got %v", got)
	}
	if got := SoftLight(0.5, 1.0); got <= 0.5 {
		t.Errorf("light overlay should lighten, got %v", got)
	}
	// Pure black and white bases are fixed points
	if got := SoftLight(0, 1); got != 0 {
		t.Errorf("SoftLight(0,1) = %v", got)
	}
	if got := SoftLight(1, 0); got != 1 {
		t.Errorf("SoftLight(1,0) = %v", got)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	in := color.NRGBA64{0x1234, 0x8000, 0xFFFF, 0x8000}
	if got := FromColor(in).NRGBA64(); got != in {
		t.Errorf("round trip got %v, want %v", got, in)
	}
}

func TestNRGBA64Clips(t *testing.T) {
	got := NewRGBA(-0.2, 1.7, 0.5, 1).NRGBA64()
	if got.R != 0 || got.G != 0xFFFF || got.A != 0xFFFF {
		t.Errorf("clipping failed: %v", got)
	}
}

func TestPlanckianXY(t *testing.T) {
	// 6500K sits very close to D65 (0.3127, 0.3290), a little off the locus
	x, y := PlanckianXY(6500)
	if math.Abs(x-0.3135) > 0.003 || math.Abs(y-0.3236) > 0.003 {
		t.Errorf("PlanckianXY(6500) = (%v, %v)", x, y)
	}

	// Warmer temperatures have a larger x
	xw, _ := PlanckianXY(3000)
	if xw <= x {
		t.Errorf("3000K x=%v should exceed 6500K x=%v", xw, x)
	}
}

func TestWhiteBalanceMatrixNeutralIsIdentity(t *testing.T) {
	m, err := WhiteBalanceMatrix(NeutralTemperature, NeutralTint)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(m[3*i+j]-want) > 1e-6 {
				t.Fatalf("neutral matrix not identity:\n%s", m)
			}
		}
	}
}

func TestWhiteBalanceWarmAndCool(t *testing.T) {
	gray := NewRGBA(0.5, 0.5, 0.5, 1)

	warm, _ := WhiteBalanceMatrix(3500, 0)
	w := ApplyLinearMatrix(gray, warm)
	if !(w.R > w.B) {
		t.Errorf("3500K should warm a gray pixel, got %s", w)
	}

	cool, _ := WhiteBalanceMatrix(10000, 0)
	c := ApplyLinearMatrix(gray, cool)
	if !(c.B > c.R) {
		t.Errorf("10000K should cool a gray pixel, got %s", c)
	}
}

func TestWhiteBalanceTint(t *testing.T) {
	gray := NewRGBA(0.5, 0.5, 0.5, 1)

	magenta, _ := WhiteBalanceMatrix(NeutralTemperature, 50)
	m := ApplyLinearMatrix(gray, magenta)
	if !(m.G < (m.R+m.B)/2) {
		t.Errorf("positive tint should push toward magenta, got %s", m)
	}

	green, _ := WhiteBalanceMatrix(NeutralTemperature, -50)
	g := ApplyLinearMatrix(gray, green)
	if !(g.G > (g.R+g.B)/2) {
		t.Errorf("negative tint should push toward green, got %s", g)
	}
}

func TestApplyLinearMatrixKeepsAlpha(t *testing.T) {
	m, _ := WhiteBalanceMatrix(4000, 10)
	if got := ApplyLinearMatrix(NewRGBA(0.3, 0.4, 0.5, 0.25), m); got.A != 0.25 {
		t.Errorf("alpha changed to %v", got.A)
	}
}
