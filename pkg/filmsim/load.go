package filmsim

import(
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/tiff"
)

// LoadImage decodes a source frame (TIFF, PNG, JPEG or Radiance HDR) and
// applies any EXIF orientation, so the result is upright.
func LoadImage(filename string) (image.Image, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r '%s': %v", filename, err)
	}

	var img image.Image
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tif", ".tiff":
		img, err = tiff.Decode(bytes.NewReader(contents))
	case ".hdr":
		img, err = rgbe.Decode(bytes.NewReader(contents))
	default:
		img, _, err = image.Decode(bytes.NewReader(contents))
	}
	if err != nil {
		return nil, fmt.Errorf("decode '%s': %v", filename, err)
	}

	return Orient(img, orientationOf(contents)), nil
}

// orientationOf returns the EXIF orientation tag, or 1 (upright) when
// there is no EXIF data or no such tag.
func orientationOf(contents []byte) int {
	ex, err := exif.Decode(bytes.NewReader(contents))
	if err != nil {
		return 1
	}
	tag, err := ex.Get(exif.Orientation)
	if err != nil {
		return 1
	}
	o, err := tag.Int(0)
	if err != nil || o < 1 || o > 8 {
		return 1
	}
	return o
}

// Orient rotates and/or mirrors img per the EXIF orientation value o
// (1-8). The result's bounds start at the origin. Values 5-8 swap the
// width and height.
func Orient(img image.Image, o int) image.Image {
	if o <= 1 || o > 8 {
		return img
	}

	src := FromImage(img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	dw, dh := w, h
	if o >= 5 {
		dw, dh = h, w
	}
	dst := NewImage(image.Rect(0, 0, dw, dh))

	for y:=0; y<dh; y++ {
		for x:=0; x<dw; x++ {
			var sx, sy int
			switch o {
			case 2: sx, sy = w-1-x, y        // mirrored
			case 3: sx, sy = w-1-x, h-1-y    // rotated 180
			case 4: sx, sy = x, h-1-y        // flipped vertically
			case 5: sx, sy = y, x            // transposed
			case 6: sx, sy = y, h-1-x        // rotated 90 CW
			case 7: sx, sy = w-1-y, h-1-x    // transversed
			case 8: sx, sy = w-1-y, x        // rotated 90 CCW
			}
			dst.SetRGBA(x, y, src.RGBAAt(b.Min.X+sx, b.Min.Y+sy))
		}
	}

	return dst
}
