package filmsim

import(
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/filmsim/pkg/ecolor"
)

// Image is the pipeline's working raster: float RGBA, straight alpha,
// four float64s per pixel in row order. Implements the image.Image and
// hdr.Image interfaces.
type Image struct {
	Rect   image.Rectangle
	Pix  []float64
}

// A PixelFunc maps one pixel to its graded value. Every per-pixel stage
// of the pipeline is one of these.
type PixelFunc func(ecolor.RGBA) ecolor.RGBA

func NewImage(r image.Rectangle) *Image {
	return &Image{
		Rect: r,
		Pix:  make([]float64, 4 * r.Dx() * r.Dy()),
	}
}

// FromImage copies any image.Image into a new float Image with the same bounds.
func FromImage(src image.Image) *Image {
	if im, ok := src.(*Image); ok {
		return im.Copy()
	}

	b := src.Bounds()
	im := NewImage(b)

	// Radiance files keep their overshoot
	if hi, ok := src.(hdr.Image); ok {
		for y:=b.Min.Y; y<b.Max.Y; y++ {
			for x:=b.Min.X; x<b.Max.X; x++ {
				r, g, bl, _ := hi.HDRAt(x, y).HDRRGBA()
				im.SetRGBA(x, y, ecolor.NewRGBA(r, g, bl, 1))
			}
		}
		return im
	}

	for y:=b.Min.Y; y<b.Max.Y; y++ {
		for x:=b.Min.X; x<b.Max.X; x++ {
			im.SetRGBA(x, y, ecolor.FromColor(src.At(x, y)))
		}
	}
	return im
}

// Implement image.Image. At hands out clipped NRGBA64 values.
func (im *Image)ColorModel() color.Model              { return hdrcolor.RGBModel } // rgbe.Encode insists
func (im *Image)Bounds() image.Rectangle              { return im.Rect }
func (im *Image)At(x, y int) color.Color              { return im.RGBAAt(x, y).NRGBA64() }

// Implement hdr.Image
func (im *Image)HDRAt(x, y int) hdrcolor.Color        { return im.RGBAAt(x, y).RGB }
func (im *Image)Size() int                            { return im.Rect.Dx() * im.Rect.Dy() }

func (im *Image)offset(x, y int) int {
	return 4 * ((y-im.Rect.Min.Y)*im.Rect.Dx() + (x-im.Rect.Min.X))
}

func (im *Image)RGBAAt(x, y int) ecolor.RGBA {
	if !(image.Point{x, y}.In(im.Rect)) {
		return ecolor.RGBA{}
	}
	i := im.offset(x, y)
	return ecolor.NewRGBA(im.Pix[i], im.Pix[i+1], im.Pix[i+2], im.Pix[i+3])
}

func (im *Image)SetRGBA(x, y int, c ecolor.RGBA) {
	if !(image.Point{x, y}.In(im.Rect)) {
		return
	}
	i := im.offset(x, y)
	im.Pix[i], im.Pix[i+1], im.Pix[i+2], im.Pix[i+3] = c.R, c.G, c.B, c.A
}

func (im *Image)Copy() *Image {
	ret := &Image{Rect: im.Rect, Pix: make([]float64, len(im.Pix))}
	copy(ret.Pix, im.Pix)
	return ret
}

// Map runs f over every pixel, into a new image.
func (im *Image)Map(f PixelFunc) *Image {
	ret := NewImage(im.Rect)
	for i:=0; i+3<len(im.Pix); i+=4 {
		c := f(ecolor.NewRGBA(im.Pix[i], im.Pix[i+1], im.Pix[i+2], im.Pix[i+3]))
		ret.Pix[i], ret.Pix[i+1], ret.Pix[i+2], ret.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return ret
}

// Crop returns a new image with exactly the bounds r. Pixels of r that
// fall outside this image come out transparent black.
func (im *Image)Crop(r image.Rectangle) *Image {
	ret := NewImage(r)
	overlap := r.Intersect(im.Rect)
	for y:=overlap.Min.Y; y<overlap.Max.Y; y++ {
		for x:=overlap.Min.X; x<overlap.Max.X; x++ {
			ret.SetRGBA(x, y, im.RGBAAt(x, y))
		}
	}
	return ret
}

// Equal reports whether both images have the same bounds and bit-identical pixels.
func (im *Image)Equal(other *Image) bool {
	if im.Rect != other.Rect || len(im.Pix) != len(other.Pix) {
		return false
	}
	for i := range im.Pix {
		if im.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// ToNRGBA64 quantizes to 16 bits per channel; this is where out of range values get clipped.
func (im *Image)ToNRGBA64() *image.NRGBA64 {
	ret := image.NewNRGBA64(im.Rect)
	for y:=im.Rect.Min.Y; y<im.Rect.Max.Y; y++ {
		for x:=im.Rect.Min.X; x<im.Rect.Max.X; x++ {
			ret.SetNRGBA64(x, y, im.RGBAAt(x, y).NRGBA64())
		}
	}
	return ret
}

func (im *Image)String() string {
	return fmt.Sprintf("filmsim.Image %s", im.Rect)
}

// WriteToHDR outputs a Radiance RGBE image, keeping any values that
// strayed past 1.0. Alpha is dropped.
func (im *Image)WriteToHDR(filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("Image.WriteToHDR, open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		err := rgbe.Encode(writer, im)
		if err != nil {
			log.Printf("Image.WriteToHDR, encoding RGBE file: %v\n", err)
		}
		return err
	}
}
