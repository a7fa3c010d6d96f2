package filmsim

import(
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/skypies/util/histogram"

	"github.com/abworrall/filmsim/pkg/ecolor"
)

const maxRecordableMicros = 60 * 1000 * 1000 // a minute per render is plenty

// RenderStats keeps render latencies (microseconds, split into preview
// and capture) and counts LUT failures. It only observes; nothing in the
// pipeline reads it back. A nil *RenderStats records nothing.
type RenderStats struct {
	mu            sync.Mutex
	preview      *hdrhistogram.Histogram
	capture      *hdrhistogram.Histogram
	lutFailures   map[string]int
}

func NewRenderStats() *RenderStats {
	return &RenderStats{
		preview:     hdrhistogram.New(1, maxRecordableMicros, 3),
		capture:     hdrhistogram.New(1, maxRecordableMicros, 3),
		lutFailures: map[string]int{},
	}
}

func (s *RenderStats)RecordRender(d time.Duration, isPreview bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	us := d.Microseconds()
	if us < 1 { us = 1 }
	if us > maxRecordableMicros { us = maxRecordableMicros }

	h := s.capture
	if isPreview {
		h = s.preview
	}
	h.RecordValue(us)
}

func (s *RenderStats)RecordLUTFailure(name string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lutFailures[name]++
}

// Renders returns how many preview and capture renders were recorded.
func (s *RenderStats)Renders() (int64, int64) {
	if s == nil {
		return 0, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preview.TotalCount(), s.capture.TotalCount()
}

func (s *RenderStats)LUTFailures() map[string]int {
	ret := map[string]int{}
	if s == nil {
		return ret
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.lutFailures {
		ret[k] = v
	}
	return ret
}

func describeLatency(name string, h *hdrhistogram.Histogram) string {
	if h.TotalCount() == 0 {
		return fmt.Sprintf("%s: no renders", name)
	}
	return fmt.Sprintf("%s: n=%d, p50=%dus, p90=%dus, p99=%dus, max=%dus", name, h.TotalCount(),
		h.ValueAtQuantile(50), h.ValueAtQuantile(90), h.ValueAtQuantile(99), h.Max())
}

func (s *RenderStats)String() string {
	if s == nil {
		return "RenderStats[]"
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	str := "RenderStats[\n"
	str += "  " + describeLatency("preview", s.preview) + "\n"
	str += "  " + describeLatency("capture", s.capture) + "\n"

	names := []string{}
	for k := range s.lutFailures {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		str += fmt.Sprintf("  LUT failures %s: %d\n", k, s.lutFailures[k])
	}
	return str + "]\n"
}

// LumaHistogram buckets the clipped Rec.709 luma of every pixel into
// 256 bins.
func LumaHistogram(img *Image) histogram.Histogram {
	h := histogram.Histogram{NumBuckets:256, ValMin:0, ValMax:256}
	for y:=img.Rect.Min.Y; y<img.Rect.Max.Y; y++ {
		for x:=img.Rect.Min.X; x<img.Rect.Max.X; x++ {
			c := img.RGBAAt(x, y).NRGBA64()
			luma := ecolor.Luma(ecolor.FromColor(c), ecolor.LumaRec709)
			h.Add(histogram.ScalarVal(int(luma * 255.0)))
		}
	}
	return h
}
