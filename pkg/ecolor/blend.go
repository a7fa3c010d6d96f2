package ecolor

import "math"

// SoftLight blends a `top` layer onto a `base` image channel, using the
// W3C compositing formula (the one PDF and most graphics stacks use).
// A top value of 0.5 leaves the base untouched.
func SoftLight(base, top float64) float64 {
	if top <= 0.5 {
		return base - (1.0 - 2.0*top) * base * (1.0 - base)
	}

	var d float64
	if base <= 0.25 {
		d = ((16.0*base - 12.0) * base + 4.0) * base
	} else {
		d = math.Sqrt(math.Max(base, 0))
	}
	return base + (2.0*top - 1.0) * (d - base)
}

// SoftLightRGBA blends a monochrome overlay value onto every color channel.
// Alpha comes from the base.
func SoftLightRGBA(base RGBA, top float64) RGBA {
	return NewRGBA(SoftLight(base.R, top), SoftLight(base.G, top), SoftLight(base.B, top), base.A)
}
