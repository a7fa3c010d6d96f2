package ecolor

import(
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/abworrall/filmsim/pkg/emath"
)

const(
	NeutralTemperature = 6500.0
	NeutralTint        = 0.0

	MinTemperature     = 1667.0 // The range of the Kim et al. locus approximation
	MaxTemperature     = 25000.0

	tintScale          = 3000.0 // tint units per unit of CIE 1960 uv displacement
)

var(
	// http://www.brucelindbloom.com/index.html?Eqn_ChromAdapt.html
	bradford = emath.Mat3{
		 0.8951,  0.2664, -0.1614,
		-0.7502,  1.7135,  0.0367,
		 0.0389, -0.0685,  1.0296,
	}
)

// PlanckianXY returns the chromaticity of a blackbody at the given
// temperature, using the cubic spline approximation from Kim et al.
// (US patent 7024034). Temperatures are clamped into [1667, 25000].
func PlanckianXY(kelvin float64) (float64, float64) {
	t := math.Max(MinTemperature, math.Min(MaxTemperature, kelvin))
	t2, t3 := t*t, t*t*t

	var x float64
	if t <= 4000 {
		x = -0.2661239e9/t3 - 0.2343589e6/t2 + 0.8776956e3/t + 0.179910
	} else {
		x = -3.0258469e9/t3 + 2.1070379e6/t2 + 0.2226347e3/t + 0.240390
	}

	x2, x3 := x*x, x*x*x
	var y float64
	switch {
	case t <= 2222: y = -1.1063814*x3 - 1.34811020*x2 + 2.18555832*x - 0.20219683
	case t <= 4000: y = -0.9549476*x3 - 1.37418593*x2 + 2.09137015*x - 0.16748867
	default:        y =  3.0817580*x3 - 5.87338670*x2 + 3.75112997*x - 0.37001483
	}

	return x, y
}

func xyToUV(x, y float64) (float64, float64) {
	d := -2*x + 12*y + 3
	return 4*x / d, 6*y / d
}

func uvToXY(u, v float64) (float64, float64) {
	d := 2*u - 8*v + 4
	return 3*u / d, 2*v / d
}

// WhitePointXY places a (temperature, tint) pair in xy. The tint moves
// the point along the isotherm, perpendicular to the locus in CIE 1960
// uv; positive tint is magenta, negative is green.
func WhitePointXY(kelvin, tint float64) (float64, float64) {
	x, y := PlanckianXY(kelvin)
	if tint == 0 {
		return x, y
	}

	u, v := xyToUV(x, y)

	// Numerical tangent of the locus; the normal points at the greener side (+v)
	u0, v0 := xyToUV(PlanckianXY(kelvin - 1))
	u1, v1 := xyToUV(PlanckianXY(kelvin + 1))
	du, dv := u1-u0, v1-v0
	nu, nv := -dv, du
	if nv < 0 {
		nu, nv = -nu, -nv
	}
	if n := math.Hypot(nu, nv); n > 0 {
		nu, nv = nu/n, nv/n
	} else {
		nu, nv = 0, 1 // the locus is flat past the clamp
	}

	offset := -1.0 * tint / tintScale
	return uvToXY(u + nu*offset, v + nv*offset)
}

func whiteXYZ(kelvin, tint float64) emath.Vec3 {
	x, y := WhitePointXY(kelvin, tint)
	X, Y, Z := colorful.XyyToXyz(x, y, 1.0)
	return emath.Vec3{X, Y, Z}
}

// linear sRGB <-> XYZ(D65), with columns pulled from go-colorful
func rgbToXYZ() emath.Mat3 {
	rx, ry, rz := colorful.LinearRgbToXyz(1, 0, 0)
	gx, gy, gz := colorful.LinearRgbToXyz(0, 1, 0)
	bx, by, bz := colorful.LinearRgbToXyz(0, 0, 1)
	return emath.Mat3{
		rx, gx, bx,
		ry, gy, by,
		rz, gz, bz,
	}
}

func xyzToRGB() emath.Mat3 {
	rx, ry, rz := colorful.XyzToLinearRgb(1, 0, 0)
	gx, gy, gz := colorful.XyzToLinearRgb(0, 1, 0)
	bx, by, bz := colorful.XyzToLinearRgb(0, 0, 1)
	return emath.Mat3{
		rx, gx, bx,
		ry, gy, by,
		rz, gz, bz,
	}
}

// WhiteBalanceMatrix builds a linear-RGB matrix that renders the neutral
// point (6500K, tint 0) as the target point, via a Bradford chromatic
// adaptation. Targets below 6500K come out warmer, above come out cooler.
func WhiteBalanceMatrix(kelvin, tint float64) (emath.Mat3, error) {
	inv, err := bradford.Inverse()
	if err != nil {
		return emath.Mat3{}, err
	}

	src := bradford.Apply(whiteXYZ(NeutralTemperature, NeutralTint))
	dst := bradford.Apply(whiteXYZ(kelvin, tint))
	gain := emath.Vec3{dst[0]/src[0], dst[1]/src[1], dst[2]/src[2]}

	adapt := inv.Mult(gain.Diag()).Mult(bradford)

	return xyzToRGB().Mult(adapt).Mult(rgbToXYZ()), nil
}

// ApplyLinearMatrix decodes the sRGB channels to linear light, applies
// the matrix and re-encodes. Alpha is untouched.
func ApplyLinearMatrix(c RGBA, m emath.Mat3) RGBA {
	lin := emath.Linearize_sRGB(emath.Vec3{c.R, c.G, c.B})
	out := emath.GammaExpand_sRGB(m.Apply(lin))
	return NewRGBA(out[0], out[1], out[2], c.A)
}
