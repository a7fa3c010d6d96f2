package filmsim

import(
	"fmt"
	"image"
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v2"

	"github.com/abworrall/filmsim/pkg/film"
	"github.com/abworrall/filmsim/pkg/lut"
)

/* Example config file ...

verbosity: 1
profile: Street 400
lutdir: ./luts
preview: false
outputfilename: street.png
hdrfilename: street.hdr
tonemapper: clip
temperature: 5200
tint: 4
tealorangedimension: 64
debugpixels:
- x: 10
  y: 10

*/

// Config holds what a caller (the CLI, for now) wants rendered and how.
// Temperature & tint are the live-tunable profile fields; when set they
// override the chosen profile's values.
type Config struct {
	Verbosity            int

	Profile              string
	LUTDir               string
	Preview              bool

	OutputFilename       string
	HDRFilename          string
	Tonemapper           string

	Temperature         *float64
	Tint                *float64

	TealOrangeDimension  int
	DebugPixels        []image.Point
}

func NewConfig() Config {
	return Config{
		Profile:             "Teal Orange",
		LUTDir:              "luts",
		OutputFilename:      "out.png",
		Tonemapper:          "clip",
		TealOrangeDimension: DefaultTealOrangeDimension,
		DebugPixels:         []image.Point{},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

// LoadConfig reads a YAML file; fields it doesn't mention keep their defaults.
func LoadConfig(filename string) (Config, error) {
	contents, err := ioutil.ReadFile(filename)
	if err != nil {
		return NewConfig(), fmt.Errorf("config read %s: %v", filename, err)
	}

	return newConfigFromYaml(contents)
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Printf("Can't marshal config yaml: %v\n", err)
		return ""
	}
	return string(b)
}

// GetProfile looks up the configured profile and applies the overrides.
func (c Config)GetProfile() (film.Profile, error) {
	p, err := film.ByName(c.Profile)
	if err != nil {
		return p, err
	}
	if c.Temperature != nil { p.Temperature = *c.Temperature }
	if c.Tint != nil        { p.Tint = *c.Tint }
	return p, nil
}

// NewRenderer wires up a renderer reading .cube files out of LUTDir.
func (c Config)NewRenderer() *Renderer {
	r := NewRenderer(lut.NewCache(lut.DirResolver{Dir: c.LUTDir}))
	if c.TealOrangeDimension > 0 {
		r.TealOrangeDimension = c.TealOrangeDimension
	}
	r.Verbosity   = c.Verbosity
	r.DebugPixels = c.DebugPixels
	return r
}
