package filmsim

import(
	"math"

	"github.com/abworrall/filmsim/pkg/ecolor"
	"github.com/abworrall/filmsim/pkg/emath"
	"github.com/abworrall/filmsim/pkg/lut"
)

// The per-pixel stages. Each constructor bakes its parameters into a
// PixelFunc; none of them touch alpha unless noted.

// WhiteBalance remaps the neutral point (6500K, tint 0) to the target.
func WhiteBalance(kelvin, tint float64) (PixelFunc, error) {
	m, err := ecolor.WhiteBalanceMatrix(kelvin, tint)
	if err != nil {
		return nil, err
	}
	return func(c ecolor.RGBA) ecolor.RGBA {
		return ecolor.ApplyLinearMatrix(c, m)
	}, nil
}

// ColorControls applies saturation, then contrast, then brightness. The
// order is part of the look; don't shuffle it.
func ColorControls(saturation, contrast, brightness float64) PixelFunc {
	adjust := func(v, luma float64) float64 {
		v = luma + saturation*(v - luma)   // saturation: mix away from / toward luma
		v = (v - 0.5)*contrast + 0.5        // contrast: spread around mid-gray
		return v + brightness               // brightness: additive offset
	}

	return func(c ecolor.RGBA) ecolor.RGBA {
		luma := ecolor.Luma(c, ecolor.LumaRec709)
		return ecolor.NewRGBA(adjust(c.R, luma), adjust(c.G, luma), adjust(c.B, luma), c.A)
	}
}

// ColorMatrix dots the RGBA pixel with one vector per output channel.
func ColorMatrix(red, green, blue emath.Vec4) PixelFunc {
	return func(c ecolor.RGBA) ecolor.RGBA {
		in := emath.Vec4{c.R, c.G, c.B, c.A}
		return ecolor.NewRGBA(in.Dot(red), in.Dot(green), in.Dot(blue), c.A)
	}
}

// Gamma raises each channel to `power`, keeping the sign of negative
// channels. Negative powers are treated as 0.
func Gamma(power float64) PixelFunc {
	power = math.Max(power, 0)
	pow := func(v float64) float64 {
		if v < 0 {
			return -1 * math.Pow(-1*v, power)
		}
		return math.Pow(v, power)
	}

	return func(c ecolor.RGBA) ecolor.RGBA {
		return ecolor.NewRGBA(pow(c.R), pow(c.G), pow(c.B), c.A)
	}
}

// LUT grades through a 3D table; alpha passes through.
func LUT(t *lut.Table) PixelFunc {
	return func(c ecolor.RGBA) ecolor.RGBA {
		r, g, b := t.Sample(c.R, c.G, c.B)
		return ecolor.NewRGBA(r, g, b, c.A)
	}
}
