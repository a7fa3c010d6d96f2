package main

import(
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/abworrall/filmsim/pkg/film"
	"github.com/abworrall/filmsim/pkg/filmsim"
	"github.com/abworrall/filmsim/pkg/lut"
)

var(
	fVerbosity int
	fConfig string
	fProfile string
	fLUTDir string
	fPreview bool
	fOutput string
	fHDROutput string
	fTemperature float64
	fTint float64
	fTonemapper string
	fList bool
	fSheet string
	fDumpLUT string
	fBench int
)

func init() {
	flag.IntVar(&fVerbosity, "v", 0, "how verbose to get")
	flag.StringVar(&fConfig, "config", "", "YAML config file; flags override it")
	flag.StringVar(&fProfile, "profile", "Teal Orange", "film profile to render with (see -list)")
	flag.StringVar(&fLUTDir, "luts", "luts", "directory holding the .cube files")
	flag.BoolVar(&fPreview, "preview", false, "render on the preview path (no grain)")
	flag.StringVar(&fOutput, "o", "out.png", "output PNG")
	flag.StringVar(&fHDROutput, "hdr", "", "if set, also write the unclipped result as a Radiance .hdr")
	flag.Float64Var(&fTemperature, "temperature", 0, "override the profile's color temperature, in Kelvin")
	flag.Float64Var(&fTint, "tint", 0, "override the profile's tint")
	flag.StringVar(&fTonemapper, "tonemapper", "clip", "how to get from float to PNG: "+filmsim.ListTonemappers())
	flag.BoolVar(&fList, "list", false, "list the profiles and exit")
	flag.StringVar(&fSheet, "sheet", "", "if set, write a contact sheet of every profile to this PNG")
	flag.StringVar(&fDumpLUT, "dumplut", "", "if set, write the procedural teal/orange LUT to this .cube file")
	flag.IntVar(&fBench, "bench", 0, "render this many preview frames and report latency")
	flag.Parse()
}

// flagsSet reports which flags were given on the command line, so they
// can override the config file.
func flagsSet() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func getConfig() filmsim.Config {
	cfg := filmsim.NewConfig()
	if fConfig != "" {
		var err error
		if cfg, err = filmsim.LoadConfig(fConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("Loaded base configuration from %s\n", fConfig)
	}

	set := flagsSet()
	if set["v"]           || fConfig == "" { cfg.Verbosity = fVerbosity }
	if set["profile"]     || fConfig == "" { cfg.Profile = fProfile }
	if set["luts"]        || fConfig == "" { cfg.LUTDir = fLUTDir }
	if set["preview"]     || fConfig == "" { cfg.Preview = fPreview }
	if set["o"]           || fConfig == "" { cfg.OutputFilename = fOutput }
	if set["hdr"]         || fConfig == "" { cfg.HDRFilename = fHDROutput }
	if set["tonemapper"]  || fConfig == "" { cfg.Tonemapper = fTonemapper }
	if set["temperature"] { cfg.Temperature = &fTemperature }
	if set["tint"]        { cfg.Tint = &fTint }

	return cfg
}

func listProfiles() {
	for _, p := range film.Catalog() {
		fmt.Printf("%-18s %s\n", p.Name, p.LUT)
	}
}

func dumpLUT(filename string, dim int) error {
	t, err := lut.TealOrange(dim)
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	}
	defer f.Close()
	return lut.WriteCube(f, t)
}

func main() {
	cfg := getConfig()

	if fList {
		listProfiles()
		return
	}

	if fDumpLUT != "" {
		if err := dumpLUT(fDumpLUT, cfg.TealOrangeDimension); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s\n", fDumpLUT)
		if flag.NArg() == 0 {
			return
		}
	}

	if flag.NArg() != 1 {
		log.Fatalf("usage: filmsim [flags] image.{tif,png,jpg,hdr}   (profiles: %s)", strings.Join(film.Names(), ", "))
	}

	if cfg.Verbosity > 0 {
		log.Printf("Final configuration:-\n\n%s\n", cfg.AsYaml())
	}

	src, err := filmsim.LoadImage(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	r := cfg.NewRenderer()
	if cfg.Verbosity > 1 {
		r.GrainDumpFilename = "grain.png"
	}

	if fSheet != "" {
		sheet, err := r.ContactSheet(src, film.Catalog())
		if err != nil {
			log.Fatal(err)
		}
		if err := filmsim.WritePNG(sheet, fSheet); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s\n", fSheet)
		return
	}

	p, err := cfg.GetProfile()
	if err != nil {
		log.Fatal(err)
	}

	if fBench > 0 {
		live := film.NewLive(p)
		for i:=0; i<fBench; i++ {
			if _, err := r.RenderLive(src, live, true); err != nil {
				log.Fatal(err)
			}
		}
		log.Printf("bench %d frames: %s\n", fBench, r.Stats)
		return
	}

	start := time.Now()
	out, err := r.Render(src, p, cfg.Preview)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("rendered %s with %s in %s\n", out.Rect, p.Name, time.Since(start))

	if cfg.Verbosity > 0 {
		log.Printf("luma histogram: %v\n", filmsim.LumaHistogram(out))
	}

	if cfg.HDRFilename != "" {
		if err := out.WriteToHDR(cfg.HDRFilename); err != nil {
			log.Fatal(err)
		}
	}

	ldr, err := filmsim.Tonemap(out, cfg.Tonemapper)
	if err != nil {
		log.Fatal(err)
	}
	if err := filmsim.WritePNG(ldr, cfg.OutputFilename); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s\n", cfg.OutputFilename)
}
