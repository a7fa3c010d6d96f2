package emath

import(
	"math"
	"path/filepath"
	"testing"
)

func TestMat3Inverse(t *testing.T) {
	m := Mat3{
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}

	got, want := m.Mult(inv), IdentityMat3()
	for i := range want {
		if math.Abs(got[i] - want[i]) > 1e-12 {
			t.Fatalf("m * inv(m) =\n%s", got)
		}
	}

	if _, err := (Mat3{1, 2, 3,  2, 4, 6,  0, 0, 1}).Inverse(); err == nil {
		t.Error("singular matrix should not invert")
	}
}

func TestMat3ApplyDiag(t *testing.T) {
	v := Vec3{1, 2, 3}.Diag().Apply(Vec3{2, 2, 2})
	if v != (Vec3{2, 4, 6}) {
		t.Errorf("diag apply gave %s", v)
	}
	if w := IdentityMat3().Apply(Vec3{0.1, 0.2, 0.3}); w != (Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("identity apply gave %s", w)
	}
}

func TestAffine(t *testing.T) {
	m := Identity().Translate(10, 20).Scale(2, 3)
	if x, y := m.Apply(1, 1); x != 12 || y != 23 {
		t.Errorf("translate.scale mapped (1,1) to (%v,%v)", x, y)
	}
	if x, y := Identity().Apply(5, 7); x != 5 || y != 7 {
		t.Errorf("identity mapped (5,7) to (%v,%v)", x, y)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	for _, f := range []float64{-0.5, 0, 0.001, 0.02, 0.2, 0.5, 0.99, 1, 1.3} {
		if got := Linearize_F64(GammaExpand_F64(f)); math.Abs(got - f) > 1e-12 {
			t.Errorf("round trip of %v gave %v", f, got)
		}
	}
	if GammaExpand_F64(-0.2) != -1*GammaExpand_F64(0.2) {
		t.Error("negative channels should mirror")
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.25) != 0.25 {
		t.Error("clamp01 misbehaves")
	}
}

func TestFloatGridTransformConstant(t *testing.T) {
	fg := NewFloatGrid(4, 3)
	for y:=0; y<fg.Dy(); y++ {
		for x:=0; x<fg.Dx(); x++ {
			fg.Set(x, y, 0.5)
		}
	}

	out := fg.Transform(Identity().Scale(2, 2), 8, 6)
	if out.Dx() != 8 || out.Dy() != 6 {
		t.Fatalf("transform gave %dx%d", out.Dx(), out.Dy())
	}
	for y:=0; y<6; y++ {
		for x:=0; x<8; x++ {
			if v := out.Get(x, y); math.Abs(v - 0.5) > 1e-4 {
				t.Errorf("(%d,%d) = %f, wanted 0.5", x, y, v)
			}
		}
	}
}

func TestFloatGridCopyAndGray16(t *testing.T) {
	fg := NewFloatGrid(3, 2)
	fg.Set(2, 1, 1.0)
	fg.Set(0, 0, -3)

	cp := fg.Copy()
	fg.Set(2, 1, 0)
	if cp.Get(2, 1) != 1.0 {
		t.Error("copy shares storage")
	}

	back := NewFloatGridFromGray16(cp.ToGray16())
	if back.Get(2, 1) != 1.0 || back.Get(0, 0) != 0 {
		t.Errorf("gray16 round trip: %s", back.Stats())
	}

	var empty FloatGrid
	if empty.Dx() != 0 || empty.Dy() != 0 {
		t.Error("zero grid should be 0x0")
	}
}

func TestFloatGridToImg(t *testing.T) {
	fg := NewFloatGrid(40, 30)
	for y:=0; y<30; y++ {
		for x:=0; x<40; x++ {
			fg.Set(x, y, float64(x+y))
		}
	}
	if err := fg.ToImg(fg.Stats(), filepath.Join(t.TempDir(), "grid.png")); err != nil {
		t.Error(err)
	}
}
