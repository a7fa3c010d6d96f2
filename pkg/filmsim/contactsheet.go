package filmsim

import(
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/abworrall/filmsim/pkg/film"
)

const(
	SheetThumbWidth = 320
	SheetColumns    = 4
	SheetWorkers    = 8
	sheetLabelH     = 24
)

type sheetJob struct {
	// Input
	Index    int
	Profile  film.Profile

	// Output
	Out     *Image
	Err      error
}

// renderConcurrently runs the preview render of base for each profile on
// a pool of goroutines; results come back in profile order.
func (r *Renderer)renderConcurrently(base *Image, profiles []film.Profile) []sheetJob {
	var wg sync.WaitGroup
	jobsChan    := make(chan sheetJob, len(profiles))
	resultsChan := make(chan sheetJob, len(profiles))

	for i:=0; i<SheetWorkers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			for job := range jobsChan {
				job.Out, job.Err = r.Render(base, job.Profile, true)
				resultsChan<- job
			}
		}()
	}

	for i, p := range profiles {
		jobsChan<- sheetJob{Index: i, Profile: p}
	}

	close(jobsChan)
	wg.Wait()
	close(resultsChan)

	results := make([]sheetJob, len(profiles))
	for result := range resultsChan {
		results[result.Index] = result
	}
	return results
}

// ContactSheet renders a thumbnail of src through each profile, laid out
// in a grid with the profile name (and how far it moved the luma) under
// each cell. Thumbnails use the preview path.
func (r *Renderer)ContactSheet(src image.Image, profiles []film.Profile) (image.Image, error) {
	if src == nil {
		return nil, ErrNoImage
	}
	b := src.Bounds()
	if b.Empty() || len(profiles) == 0 {
		return image.NewNRGBA64(image.Rectangle{}), nil
	}

	tw := SheetThumbWidth
	if b.Dx() < tw {
		tw = b.Dx()
	}
	th := b.Dy() * tw / b.Dx()
	if th < 1 {
		th = 1
	}

	thumb := image.NewNRGBA64(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), src, b, draw.Src, nil)
	base := FromImage(thumb)

	cols := SheetColumns
	if len(profiles) < cols {
		cols = len(profiles)
	}
	rows := (len(profiles) + cols - 1) / cols
	cellH := th + sheetLabelH

	dc := gg.NewContext(cols*tw, rows*cellH)
	dc.SetColor(color.Black)
	dc.Clear()

	for i, job := range r.renderConcurrently(base, profiles) {
		if job.Err != nil {
			return nil, fmt.Errorf("contact sheet, profile '%s': %v", job.Profile.Name, job.Err)
		}
		x, y := (i%cols)*tw, (i/cols)*cellH
		dc.DrawImage(job.Out.ToNRGBA64(), x, y)

		dc.SetRGB(1, 1, 1)
		dc.DrawString(fmt.Sprintf("%s  [%.3f]", job.Profile.Name, ImgDiff(base, job.Out)), float64(x+6), float64(y+th+16))
	}

	return dc.Image(), nil
}
