package film

import(
	"fmt"
	"sort"
	"strings"

	"github.com/abworrall/filmsim/pkg/emath"
)

// The LUT-backed stocks; each name is also the .cube resource name.
var cubeStocks = []string{
	"Agfa Portrait XPS 160",
	"b",
	"Fuji Astia 100F",
	"Fuji Eterna 3513",
	"Fuji Eterna 8563",
	"Fuji Provia 100F",
	"Fuji Sensia 100",
	"Fuji Superia Xtra 400",
	"Fuji Vivid 8543",
	"Kodak Ektachrome 64",
	"Kodak Ektachrome 65",
	"Kodak Professional Portra 400",
	"Kodak Vision 2383",
	"LPP Tetrachrome 400",
	"Polaroid 600",
}

// Catalog returns the static list of profiles, in display order. Each
// call returns fresh copies, so callers may tweak them freely.
func Catalog() []Profile {
	ret := []Profile{}
	for _, name := range cubeStocks {
		ret = append(ret, Neutral(name, CubeLUT(name)))
	}

	tealOrange := Neutral("Teal Orange", TealOrangeLUT())
	tealOrange.Saturation = 1.1
	tealOrange.Contrast   = 1.05

	street := Neutral("Street 400", NoLUT())
	street.Saturation        = 0.85
	street.Contrast          = 1.15
	street.Brightness        = -0.02
	street.RedVector         = emath.Vec4{1.05, 0.02, 0.00, 0}
	street.GreenVector       = emath.Vec4{0.00, 1.00, 0.02, 0}
	street.BlueVector        = emath.Vec4{0.00, 0.03, 0.92, 0}
	street.Gamma             = 1.1
	street.GrainIntensity    = 0.35
	street.VignetteIntensity = 0.3
	street.Temperature       = 5600

	return append(ret, tealOrange, street)
}

// ByName finds a profile; names are matched case-insensitively.
func ByName(name string) (Profile, error) {
	for _, p := range Catalog() {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("no profile named '%s', wanted one of %v", name, Names())
}

func Names() []string {
	names := []string{}
	for _, p := range Catalog() {
		names = append(names, p.Name)
	}
	return names
}

// LUTNames lists the .cube resources the catalog expects to find.
func LUTNames() []string {
	names := append([]string{}, cubeStocks...)
	sort.Strings(names)
	return names
}
