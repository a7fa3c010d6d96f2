package ecolor

import(
	"fmt"
	"image/color"
	"math"

	"github.com/mdouchement/hdr/hdrcolor"
)

// An RGBA is a working pixel: float channels, nominally in [0.0, 1.0],
// with straight (non-premultiplied) alpha. Channels may stray outside
// that range between stages; nothing clips them until output.
type RGBA struct {
	hdrcolor.RGB // This field implements color.Color and hdrcolor.Color interfaces
	A            float64
}

var(
	// Rec.709 luma weights, as used by the color controls saturation step
	LumaRec709 = [3]float64{0.2125, 0.7154, 0.0721}
)

func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{RGB: hdrcolor.RGB{R: r, G: g, B: b}, A: a}
}

// Treats the input channels as [0, 0xFFFF], un-premultiplying the alpha
func FromColor(col color.Color) RGBA {
	c := color.NRGBA64Model.Convert(col).(color.NRGBA64)
	return NewRGBA(
		float64(c.R) / float64(0xFFFF),
		float64(c.G) / float64(0xFFFF),
		float64(c.B) / float64(0xFFFF),
		float64(c.A) / float64(0xFFFF),
	)
}

// NRGBA64 clips each channel into [0, 0xFFFF]
func (c RGBA)NRGBA64() color.NRGBA64 {
	return color.NRGBA64{to16(c.R), to16(c.G), to16(c.B), to16(c.A)}
}

func to16(f float64) uint16 {
	if f <= 0 { return 0 }
	if f >= 1 { return 0xFFFF }
	return uint16(math.Round(f * float64(0xFFFF)))
}

func (c RGBA)String() string {
	return fmt.Sprintf("[%12.10f, %12.10f, %12.10f] a=%.4f", c.R, c.G, c.B, c.A)
}

func Luma(c RGBA, w [3]float64) float64 {
	return w[0]*c.R + w[1]*c.G + w[2]*c.B
}

// Within reports whether all four channels are within eps of each other
func (c RGBA)Within(d RGBA, eps float64) bool {
	return math.Abs(c.R-d.R) <= eps && math.Abs(c.G-d.G) <= eps &&
		math.Abs(c.B-d.B) <= eps && math.Abs(c.A-d.A) <= eps
}
