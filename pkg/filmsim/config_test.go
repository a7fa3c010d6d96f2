package filmsim

import(
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/filmsim/pkg/ecolor"
)

func TestConfigFromYaml(t *testing.T) {
	cfg, err := newConfigFromYaml([]byte(`
verbosity: 2
profile: Street 400
temperature: 5200
debugpixels:
- x: 10
  y: 12
`))
	if err != nil {
		t.Fatal(err)
	}

	want := NewConfig()
	want.Verbosity   = 2
	want.Profile     = "Street 400"
	temp            := 5200.0
	want.Temperature = &temp
	want.DebugPixels = []image.Point{{10, 12}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	p, err := cfg.GetProfile()
	if err != nil {
		t.Fatal(err)
	}
	if p.Temperature != 5200 {
		t.Errorf("temperature override ignored: %.0f", p.Temperature)
	}
	if p.Saturation != 0.85 {
		t.Errorf("profile values lost: saturation %.2f", p.Saturation)
	}
}

func TestConfigYamlRoundTrip(t *testing.T) {
	cfg := NewConfig()
	tint := -12.5
	cfg.Tint = &tint

	again, err := newConfigFromYaml([]byte(cfg.AsYaml()))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(cfg, again); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigUnknownProfile(t *testing.T) {
	cfg := NewConfig()
	cfg.Profile = "Velvia 9000"
	if _, err := cfg.GetProfile(); err == nil {
		t.Error("expected an error for an unknown profile")
	}
}

func TestLoadConfigAndRenderer(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "filmsim.yaml")
	if err := os.WriteFile(filename, []byte("lutdir: "+dir+"\ntealorangedimension: 16\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tonemapper != "clip" || cfg.OutputFilename != "out.png" {
		t.Errorf("defaults lost: %+v", cfg)
	}

	r := cfg.NewRenderer()
	if r.TealOrangeDimension != 16 {
		t.Errorf("teal orange dimension %d", r.TealOrangeDimension)
	}

	if _, err := LoadConfig(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("expected an error for a missing config")
	}
}

func TestGetTonemapper(t *testing.T) {
	img := gradient(image.Rect(0, 0, 8, 6)).Map(ColorControls(1, 1, 0.1))
	for _, name := range Tonemappers {
		out, err := Tonemap(img, name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if out.Bounds() != img.Bounds() {
			t.Errorf("%s: bounds %s", name, out.Bounds())
		}
	}

	if _, err := GetTonemapper("fattal02"); err == nil || !strings.Contains(err.Error(), "fattal02") {
		t.Errorf("unknown tonemapper: got %v", err)
	}
}

// orientTestImage is 3x2, with each pixel's red channel set to its index
func orientTestImage() *Image {
	img := NewImage(image.Rect(0, 0, 3, 2))
	for y:=0; y<2; y++ {
		for x:=0; x<3; x++ {
			img.SetRGBA(x, y, ecolor.NewRGBA(float64(y*3+x)/10, 0, 0, 1))
		}
	}
	return img
}

func redIndices(img image.Image) [][]int {
	f := FromImage(img)
	rows := [][]int{}
	for y:=f.Rect.Min.Y; y<f.Rect.Max.Y; y++ {
		row := []int{}
		for x:=f.Rect.Min.X; x<f.Rect.Max.X; x++ {
			row = append(row, int(f.RGBAAt(x, y).R*10 + 0.5))
		}
		rows = append(rows, row)
	}
	return rows
}

func TestOrient(t *testing.T) {
	// Source:  0 1 2
	//          3 4 5
	tests := map[int][][]int{
		1: {{0, 1, 2}, {3, 4, 5}},
		2: {{2, 1, 0}, {5, 4, 3}},
		3: {{5, 4, 3}, {2, 1, 0}},
		4: {{3, 4, 5}, {0, 1, 2}},
		5: {{0, 3}, {1, 4}, {2, 5}},
		6: {{3, 0}, {4, 1}, {5, 2}},
		7: {{5, 2}, {4, 1}, {3, 0}},
		8: {{2, 5}, {1, 4}, {0, 3}},
	}

	for o, want := range tests {
		if diff := cmp.Diff(want, redIndices(Orient(orientTestImage(), o))); diff != "" {
			t.Errorf("orientation %d (-want +got):\n%s", o, diff)
		}
	}
}

func TestLoadImagePNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "src.png")
	src := gradient(image.Rect(0, 0, 5, 4))
	if err := WritePNG(src.ToNRGBA64(), filename); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(filename)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != src.Bounds() {
		t.Errorf("loaded bounds %s", img.Bounds())
	}
	if d := ImgDiff(src, FromImage(img)); d > 1e-4 {
		t.Errorf("loaded image differs by %f", d)
	}

	f, _ := os.Open(filename)
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("WritePNG output doesn't decode: %v", err)
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWriteToHDR(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.hdr")
	src := uniform(image.Rect(0, 0, 4, 3), ecolor.NewRGBA(1.5, 0.5, 0.25, 1))
	if src.ColorModel() != hdrcolor.RGBModel {
		t.Fatalf("color model %v won't encode as RGBE", src.ColorModel())
	}
	if err := src.WriteToHDR(filename); err != nil {
		t.Fatal(err)
	}

	img, err := LoadImage(filename)
	if err != nil {
		t.Fatal(err)
	}
	c := FromImage(img).RGBAAt(1, 1)
	if c.R < 1.4 || c.R > 1.6 {
		t.Errorf("HDR overshoot lost, red = %f", c.R)
	}
	if c.G < 0.45 || c.G > 0.55 || c.B < 0.2 || c.B > 0.3 {
		t.Errorf("HDR round trip gave %s", c)
	}
}
