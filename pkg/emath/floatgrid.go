package emath

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg" // Move to https://pkg.go.dev/golang.org/x/image/font#Drawer sometime
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// A FloatGrid is a grid of floats, with some operations. The grain
// stage builds its noise field in one of these.
type FloatGrid struct {
	stride int
	values []float64
}

func NewFloatGrid(w, h int) FloatGrid {
	return FloatGrid{
		stride: w,
		values: make([]float64, w*h),
	}
}

func (fg *FloatGrid)Set(x, y int, v float64) { fg.values[fg.stride*y + x] = v }
func (fg *FloatGrid)Get(x, y int) float64    { return fg.values[fg.stride*y + x] }
func (fg *FloatGrid)Dx() int                 { return fg.stride }
func (fg *FloatGrid)Dy() int {
	if fg.stride == 0 {
		return 0
	}
	return len(fg.values) / fg.stride
}

func (g1 *FloatGrid)Copy() *FloatGrid {
	g2 := FloatGrid{stride: g1.stride, values:make([]float64, len(g1.values))}
	copy(g2.values, g1.values)
	return &g2
}

// ToGray16 quantizes the grid into a 16bit grayscale image; values are
// clipped to [0,1].
func (fg *FloatGrid)ToGray16() *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, fg.Dx(), fg.Dy()))
	for y:=0; y<fg.Dy(); y++ {
		for x:=0; x<fg.Dx(); x++ {
			img.SetGray16(x, y, color.Gray16{uint16(math.Round(Clamp01(fg.Get(x,y)) * 0xFFFF))})
		}
	}
	return img
}

func NewFloatGridFromGray16(img *image.Gray16) FloatGrid {
	b := img.Bounds()
	fg := NewFloatGrid(b.Dx(), b.Dy())
	for y:=0; y<b.Dy(); y++ {
		for x:=0; x<b.Dx(); x++ {
			fg.Set(x, y, float64(img.Gray16At(x+b.Min.X, y+b.Min.Y).Y) / float64(0xFFFF))
		}
	}
	return fg
}

// Transform resamples the grid through `s2d` (source to destination
// coords) into a new grid of size w x h, using bilinear interpolation.
func (fg *FloatGrid)Transform(s2d Aff3, w, h int) FloatGrid {
	src := fg.ToGray16()
	dst := image.NewGray16(image.Rect(0, 0, w, h))
	draw.BiLinear.Transform(dst, f64.Aff3(s2d), src, src.Bounds(), draw.Src, nil)
	return NewFloatGridFromGray16(dst)
}

func (fg *FloatGrid)Stats() string {
	min := math.MaxFloat64
	max := -1.0  * min

	for i:=0 ; i<len(fg.values) ; i++ {
		if fg.values[i] > max { max = fg.values[i] }
		if fg.values[i] < min { min = fg.values[i] }
	}
	return fmt.Sprintf("fg[%dx%d, vals{%f,%f}]", fg.Dx(), fg.Dy(), min, max)
}

// ToImg saves a simple grayscale, based on the range of values in the grid, and gamma scaling the
// gray to look normal for human vision
func (fg *FloatGrid)ToImg(title, filename string) error {
	min, max := 1000.0, -1000.0
	for i:=0; i<len(fg.values); i++ {
		if fg.values[i] > max { max = fg.values[i] }
		if fg.values[i] < min { min = fg.values[i] }
	}
	if max <= min {
		max = min + 1
	}

	img := image.NewRGBA64(image.Rectangle{Max:image.Point{fg.Dx(), fg.Dy()}})
	for x:=0; x<fg.Dx(); x++ {
		for y:=0; y<fg.Dy(); y++ {
			lum := fg.Get(x,y)
			gray := GammaExpand_F64 ((lum - min) / (max - min))
			col := color.RGBA64{uint16(gray * 65535.0), uint16(gray * 65535.0), uint16(gray * 65535.0), 0xFFFF}
			img.Set(x, y, col)
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1,0,0)
	dc.DrawString(title, 10, 20)
	return dc.SavePNG(filename)
}
