package filmsim

import(
	"fmt"
	"image"

	"github.com/mdouchement/hdr/tmo"
)

var(
	Tonemappers = []string{"clip", "linear", "drago03", "reinhard05"}
)

func ListTonemappers() string {
	return fmt.Sprintf("%v", Tonemappers)
}

// A Tonemapper turns the float result into an LDR image.
type Tonemapper func(*Image) image.Image

// GetTonemapper looks up a tonemapper by name. "clip" keeps alpha and
// simply clips channels to [0,1]; the tmo operators squeeze overshooting
// highlights back into range instead, and drop alpha.
func GetTonemapper(name string) (Tonemapper, error) {
	switch name {
	case "clip", "":
		return func(img *Image) image.Image { return img.ToNRGBA64() }, nil

	case "linear":
		return func(img *Image) image.Image { return tmo.NewLinear(img).Perform() }, nil

	case "drago03":
		return func(img *Image) image.Image {
			op := tmo.NewDefaultDrago03(img)
			op.Bias = 0.85 // Default bias washes out graded shadows
			return op.Perform()
		}, nil

	case "reinhard05":
		return func(img *Image) image.Image { return tmo.NewDefaultReinhard05(img).Perform() }, nil
	}

	return nil, fmt.Errorf("tonemapper '%s' not recognized, wanted one of %s", name, ListTonemappers())
}

func Tonemap(img *Image, name string) (image.Image, error) {
	tm, err := GetTonemapper(name)
	if err != nil {
		return nil, err
	}
	return tm(img), nil
}
