package film

import(
	"fmt"

	"github.com/abworrall/filmsim/pkg/ecolor"
	"github.com/abworrall/filmsim/pkg/emath"
)

type LUTKind int

const(
	LUTNone LUTKind = iota
	LUTTealOrange           // Programmatic tone split
	LUTCustom               // A named .cube resource
)

// LUTType says whether, and how, the LUT stage runs. Two LUTTypes are
// equal when they would grade identically, so they can be compared with ==.
type LUTType struct {
	Kind LUTKind
	Name string
}

func NoLUT() LUTType               { return LUTType{Kind: LUTNone} }
func TealOrangeLUT() LUTType       { return LUTType{Kind: LUTTealOrange} }
func CubeLUT(name string) LUTType  { return LUTType{Kind: LUTCustom, Name: name} }

func (lt LUTType)String() string {
	switch lt.Kind {
	case LUTNone:       return "none"
	case LUTTealOrange: return "tealOrange"
	case LUTCustom:     return fmt.Sprintf("cube(%s)", lt.Name)
	}
	return fmt.Sprintf("LUTKind(%d)", int(lt.Kind))
}

var(
	IdentityRed   = emath.Vec4{1, 0, 0, 0}
	IdentityGreen = emath.Vec4{0, 1, 0, 0}
	IdentityBlue  = emath.Vec4{0, 0, 1, 0}
)

// A Profile is the parameter set for one film stock. It is a plain value:
// passing it around copies it, and anything the renderer holds is a
// snapshot.
type Profile struct {
	Name              string

	// Color controls
	Saturation        float64
	Contrast          float64
	Brightness        float64

	// Color matrix (RGB bias). Each row is dotted with the RGBA pixel.
	RedVector         emath.Vec4
	GreenVector       emath.Vec4
	BlueVector        emath.Vec4

	// Tone
	Gamma             float64

	// Effects, 0.0 to 1.0
	GrainIntensity    float64
	VignetteIntensity float64

	// BloomIntensity is reserved. No stage reads it; it must stay inert.
	BloomIntensity    float64

	// White balance target; 6500K/0 is neutral. < 6500 warm, > 6500 cool;
	// tint < 0 green, > 0 magenta.
	Temperature       float64
	Tint              float64

	LUT               LUTType
}

// Neutral is a profile where every stage is a no-op, grading only via a LUT.
func Neutral(name string, lut LUTType) Profile {
	return Profile{
		Name:              name,
		Saturation:        1.0,
		Contrast:          1.0,
		Brightness:        0.0,
		RedVector:         IdentityRed,
		GreenVector:       IdentityGreen,
		BlueVector:        IdentityBlue,
		Gamma:             1.0,
		GrainIntensity:    0.0,
		VignetteIntensity: 0.0,
		BloomIntensity:    0.0,
		Temperature:       ecolor.NeutralTemperature,
		Tint:              ecolor.NeutralTint,
		LUT:               lut,
	}
}

// Identity grades nothing at all
func Identity(name string) Profile { return Neutral(name, NoLUT()) }

func (p Profile)IsNeutralWhiteBalance() bool {
	return p.Temperature == ecolor.NeutralTemperature && p.Tint == ecolor.NeutralTint
}

func (p Profile)HasIdentityMatrix() bool {
	return p.RedVector == IdentityRed && p.GreenVector == IdentityGreen && p.BlueVector == IdentityBlue
}

func (p Profile)HasIdentityColorControls() bool {
	return p.Saturation == 1.0 && p.Contrast == 1.0 && p.Brightness == 0.0
}

func (p Profile)String() string {
	str := fmt.Sprintf("Profile %q [\n", p.Name)
	str += fmt.Sprintf("  sat/con/bri  : %.3f, %.3f, %.3f\n", p.Saturation, p.Contrast, p.Brightness)
	str += fmt.Sprintf("  matrix       : R%s G%s B%s\n", p.RedVector, p.GreenVector, p.BlueVector)
	str += fmt.Sprintf("  gamma        : %.3f\n", p.Gamma)
	str += fmt.Sprintf("  grain/vign.  : %.3f, %.3f (bloom %.3f, inert)\n", p.GrainIntensity, p.VignetteIntensity, p.BloomIntensity)
	str += fmt.Sprintf("  temp/tint    : %.0fK, %.1f\n", p.Temperature, p.Tint)
	str += fmt.Sprintf("  lut          : %s\n", p.LUT)
	return str + "]\n"
}
