package filmsim

import(
	"math"

	"github.com/abworrall/filmsim/pkg/ecolor"
	"github.com/abworrall/filmsim/pkg/emath"
)

const(
	GrainScale     = 1.5  // Each noise texel covers 1.5 output pixels
	VignetteRadius = 2.0
	VignetteGain   = 2.0  // profile intensity -> vignette strength
)

// noiseAt hashes a texel position into a value in [0,1). The field is a
// pure function of position, so grain is identical from render to render.
func noiseAt(x, y int, channel uint32) float64 {
	h := uint32(x)*0x8da6b343 ^ uint32(y)*0xd8163841 ^ channel*0xcb1ab31f
	// murmur3 finalizer
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return float64(h) / float64(1<<32)
}

// GrainField builds the monochrome noise for a w x h frame: random RGB
// texels collapsed to their luma (full intensity, centered near 0.5
// gray), then scaled up by GrainScale with bilinear resampling. The
// field is anchored at the frame's top left corner.
func GrainField(w, h int) emath.FloatGrid {
	gw := int(math.Ceil(float64(w) / GrainScale)) + 1
	gh := int(math.Ceil(float64(h) / GrainScale)) + 1

	noise := emath.NewFloatGrid(gw, gh)
	for y:=0; y<gh; y++ {
		for x:=0; x<gw; x++ {
			texel := ecolor.NewRGBA(noiseAt(x, y, 0), noiseAt(x, y, 1), noiseAt(x, y, 2), 1)
			noise.Set(x, y, ecolor.Luma(texel, ecolor.LumaRec709))
		}
	}

	// The scaled field overhangs the frame; Transform only fills w x h
	return noise.Transform(emath.Identity().Scale(GrainScale, GrainScale), w, h)
}

// ApplyGrain soft-light blends the field under the image. The blend is
// always at full strength: the profile's grain intensity only decides
// whether the stage runs at all.
func ApplyGrain(img *Image, field emath.FloatGrid) *Image {
	ret := NewImage(img.Rect)
	for y:=0; y<img.Rect.Dy(); y++ {
		for x:=0; x<img.Rect.Dx(); x++ {
			px, py := x+img.Rect.Min.X, y+img.Rect.Min.Y
			ret.SetRGBA(px, py, ecolor.SoftLightRGBA(img.RGBAAt(px, py), field.Get(x, y)))
		}
	}
	return ret
}

// Vignette darkens radially. `d` is the distance from the frame center,
// normalized so the corners sit at 1.0; each pixel is scaled by
// 1 - strength*(d/radius)^2, floored at 0.
func Vignette(img *Image, strength, radius float64) *Image {
	ret := NewImage(img.Rect)
	w, h := float64(img.Rect.Dx()), float64(img.Rect.Dy())
	halfDiag := math.Hypot(w/2, h/2)
	if halfDiag == 0 || radius <= 0 {
		return img.Copy()
	}

	for y:=img.Rect.Min.Y; y<img.Rect.Max.Y; y++ {
		for x:=img.Rect.Min.X; x<img.Rect.Max.X; x++ {
			dx := float64(x-img.Rect.Min.X) + 0.5 - w/2
			dy := float64(y-img.Rect.Min.Y) + 0.5 - h/2
			d := math.Hypot(dx, dy) / halfDiag

			mult := emath.Clamp01(1.0 - strength * (d/radius) * (d/radius))
			c := img.RGBAAt(x, y)
			ret.SetRGBA(x, y, ecolor.NewRGBA(c.R*mult, c.G*mult, c.B*mult, c.A))
		}
	}
	return ret
}
