package filmsim

import(
	"math"

	"github.com/abworrall/filmsim/pkg/ecolor"
)

// ImgDiff compares two images over the area they share, and returns the
// mean absolute difference in Rec.709 luma; 0 means identical luma.
// Alpha is ignored. Images that don't overlap return 0.
func ImgDiff(a, b *Image) float64 {
	bounds := a.Rect.Intersect(b.Rect)
	if bounds.Empty() {
		return 0
	}

	totErr := 0.0
	for y:=bounds.Min.Y; y<bounds.Max.Y; y++ {
		for x:=bounds.Min.X; x<bounds.Max.X; x++ {
			Y1 := ecolor.Luma(a.RGBAAt(x, y), ecolor.LumaRec709)
			Y2 := ecolor.Luma(b.RGBAAt(x, y), ecolor.LumaRec709)
			totErr += math.Abs(Y1 - Y2)
		}
	}

	return totErr / float64(bounds.Dx() * bounds.Dy())
}
