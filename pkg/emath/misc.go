package emath

import "math"

// Some functions that only operate on basic types, that are useful

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// Each channel in `v` is assumed to be in the range [0,1]
func GammaExpand_sRGB(v Vec3) Vec3 {
	return Vec3{
		GammaExpand_F64(v[0]),
		GammaExpand_F64(v[1]),
		GammaExpand_F64(v[2]),
	}
}

// GammaExpand_F64 maps linear light to the sRGB transfer curve. Values
// below zero are mirrored, so out-of-gamut channels survive a round trip.
func GammaExpand_F64(f float64) float64 {
	if f < 0 {
		return -1 * GammaExpand_F64(-1*f)
	}
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

// "sRGB to linear RGB", the inverse of GammaExpand_sRGB
func Linearize_sRGB(v Vec3) Vec3 {
	return Vec3{
		Linearize_F64(v[0]),
		Linearize_F64(v[1]),
		Linearize_F64(v[2]),
	}
}

func Linearize_F64(f float64) float64 {
	if f < 0 {
		return -1 * Linearize_F64(-1*f)
	}
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f + 0.055) / 1.055, 2.4)
}

func Clamp01(f float64) float64 {
	if f < 0 { return 0 }
	if f > 1 { return 1 }
	return f
}
