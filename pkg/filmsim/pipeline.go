package filmsim

import(
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"sync"
	"time"

	"github.com/abworrall/filmsim/pkg/film"
	"github.com/abworrall/filmsim/pkg/lut"
)

const DefaultTealOrangeDimension = 64

var ErrNoImage = errors.New("no source image")

// A Renderer runs the film pipeline. It holds no per-render state: the
// LUT cache and stats are safe for concurrent use, so one Renderer can
// serve the preview and the capture paths at once.
type Renderer struct {
	LUTs                *lut.Cache
	TealOrangeDimension  int
	Log                 *log.Logger
	Stats               *RenderStats
	Verbosity            int
	DebugPixels       []image.Point  // Traced & logged when Verbosity > 0
	GrainDumpFilename    string         // If set and Verbosity > 1, the grain field is written here

	fallbackOnce         sync.Once      // For a Renderer built without NewRenderer or LUTs
	fallbackLUTs        *lut.Cache
}

// NewRenderer wraps a LUT cache; with a nil cache it makes its own, which
// can only serve procedural tables.
func NewRenderer(luts *lut.Cache) *Renderer {
	if luts == nil {
		luts = lut.NewCache(nil)
	}
	return &Renderer{
		LUTs:                luts,
		TealOrangeDimension: DefaultTealOrangeDimension,
		Log:                 log.New(os.Stderr, "", log.Ldate|log.Ltime),
		Stats:               NewRenderStats(),
	}
}

type stage struct {
	name  string
	apply func(*Image) *Image
}

func mapStage(name string, f PixelFunc) stage {
	return stage{name, func(img *Image) *Image { return img.Map(f) }}
}

func (r *Renderer)logf(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log.Printf(format, args...)
	}
}

// stagesFor lays out the fixed stage order for one render. Stages that
// would be no-ops are left out; a stage that can't be set up is logged
// and skipped, never fatal.
func (r *Renderer)stagesFor(p film.Profile, isPreview bool) []stage {
	stages := []stage{}

	// 1. Temperature & tint, only when off neutral
	if !p.IsNeutralWhiteBalance() {
		if f, err := WhiteBalance(p.Temperature, p.Tint); err != nil {
			r.logf("white balance %.0fK/%.1f skipped: %v", p.Temperature, p.Tint, err)
		} else {
			stages = append(stages, mapStage("WhiteBalance", f))
		}
	}

	// 2. Color controls (saturation, contrast, brightness)
	if !p.HasIdentityColorControls() {
		stages = append(stages, mapStage("ColorControls", ColorControls(p.Saturation, p.Contrast, p.Brightness)))
	}

	// 3. Color matrix (RGB bias)
	if !p.HasIdentityMatrix() {
		stages = append(stages, mapStage("ColorMatrix", ColorMatrix(p.RedVector, p.GreenVector, p.BlueVector)))
	}

	// 4. Gamma
	if p.Gamma != 1.0 {
		stages = append(stages, mapStage("Gamma", Gamma(p.Gamma)))
	}

	// 5. Grain, full quality renders only
	if !isPreview && p.GrainIntensity > 0 {
		stages = append(stages, stage{"Grain", func(img *Image) *Image {
			field := GrainField(img.Rect.Dx(), img.Rect.Dy())
			if r.Verbosity > 1 && r.GrainDumpFilename != "" {
				if err := field.ToImg("grain "+field.Stats(), r.GrainDumpFilename); err != nil {
					r.logf("grain dump: %v", err)
				}
			}
			return ApplyGrain(img, field)
		}})
	}

	// 6. Vignette
	if p.VignetteIntensity > 0 {
		strength := p.VignetteIntensity * VignetteGain
		stages = append(stages, stage{"Vignette", func(img *Image) *Image {
			return Vignette(img, strength, VignetteRadius)
		}})
	}

	// 7. Bloom (halation) is reserved: p.BloomIntensity is never read.

	// 8. LUT
	if t := r.lutFor(p.LUT); t != nil {
		stages = append(stages, mapStage("LUT", LUT(t)))
	}

	return stages
}

// lutFor fetches the profile's table, or nil if the LUT stage should be
// skipped. Failures are logged on the render that first hit them.
func (r *Renderer)lutFor(lt film.LUTType) *lut.Table {
	cache := r.LUTs
	if cache == nil {
		r.fallbackOnce.Do(func() { r.fallbackLUTs = lut.NewCache(nil) })
		cache = r.fallbackLUTs
	}

	var(
		t    *lut.Table
		miss  bool
		err   error
	)

	switch lt.Kind {
	case film.LUTNone:
		return nil
	case film.LUTTealOrange:
		dim := r.TealOrangeDimension
		if dim == 0 {
			dim = DefaultTealOrangeDimension
		}
		t, miss, err = cache.TealOrange(dim)
	case film.LUTCustom:
		t, miss, err = cache.File(lt.Name)
	default:
		err = fmt.Errorf("unknown LUT kind %d", int(lt.Kind))
		miss = true
	}

	if err != nil {
		r.Stats.RecordLUTFailure(lt.String())
		if miss {
			switch {
			case errors.Is(err, lut.ErrNotFound):  r.logf("LUT %s not found, rendering without it: %v", lt, err)
			case errors.Is(err, lut.ErrMalformed): r.logf("LUT %s is malformed, rendering without it: %v", lt, err)
			default:                               r.logf("LUT %s unusable, rendering without it: %v", lt, err)
			}
		}
		return nil
	}

	return t
}

// Render grades src with the profile, returning a new image with exactly
// the bounds of src. A preview render skips grain. The only error is a
// missing source; an empty source yields an empty image.
func (r *Renderer)Render(src image.Image, p film.Profile, isPreview bool) (*Image, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	if im, ok := src.(*Image); ok && im == nil {
		return nil, ErrNoImage
	}

	start  := time.Now()
	bounds := src.Bounds()
	if bounds.Empty() {
		return NewImage(bounds), nil
	}

	img := FromImage(src)

	traces := []*PixelTrace{}
	if r.Verbosity > 0 {
		for _, pos := range r.DebugPixels {
			if pos.In(bounds) {
				traces = append(traces, &PixelTrace{Pos: pos, Source: img.RGBAAt(pos.X, pos.Y)})
			}
		}
	}

	for _, s := range r.stagesFor(p, isPreview) {
		img = s.apply(img)
		for _, pt := range traces {
			pt.record(s.name, img)
		}
	}

	// The stages keep the extent, but make it exact regardless
	out := img.Crop(bounds)

	for _, pt := range traces {
		r.logf("%s: %s", p.Name, pt)
	}
	r.Stats.RecordRender(time.Since(start), isPreview)

	return out, nil
}

// RenderLive snapshots a live-bound profile once, then renders with it.
func (r *Renderer)RenderLive(src image.Image, live *film.Live, isPreview bool) (*Image, error) {
	return r.Render(src, live.Snapshot(), isPreview)
}
