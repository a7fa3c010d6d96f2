package filmsim

import(
	"fmt"
	"image"

	"github.com/abworrall/filmsim/pkg/ecolor"
)

// A PixelTrace records one pixel's value after every stage of a render,
// for debugging a profile's look.
type PixelTrace struct {
	Pos      image.Point
	Source   ecolor.RGBA
	Stages []string
	Values []ecolor.RGBA
}

func (pt *PixelTrace)record(stage string, img *Image) {
	pt.Stages = append(pt.Stages, stage)
	pt.Values = append(pt.Values, img.RGBAAt(pt.Pos.X, pt.Pos.Y))
}

func (pt PixelTrace)String() string {
	str := fmt.Sprintf("----- Pixel @(%d,%d)-----\n", pt.Pos.X, pt.Pos.Y)
	str += fmt.Sprintf("Source             : %s\n", pt.Source)
	for i, name := range pt.Stages {
		str += fmt.Sprintf("%-19s: %s\n", name, pt.Values[i])
	}
	if len(pt.Values) > 0 {
		out := pt.Values[len(pt.Values)-1].NRGBA64()
		str += fmt.Sprintf("Output(RGB64)      : [      0x%04X,       0x%04X,       0x%04X]\n", out.R, out.G, out.B)
		str += fmt.Sprintf("Output(RGB32)      : [%12d, %12d, %12d]\n", out.R>>8, out.G>>8, out.B>>8)
	}
	return str + "\n"
}
