package lut

import(
	"errors"
	"fmt"
	"math"
)

// MaxDimension bounds a table's side, so dimension^3 * 4 can't overflow.
const MaxDimension = 256

var(
	ErrNotFound  = errors.New("lut not found")
	ErrMalformed = errors.New("malformed lut")
)

// A Table is a dense 3D lookup table. Data holds Dimension^3 RGBA
// quadruples, with the red index varying fastest, then green, then
// blue (the .cube sample order). Values are stored as they were built
// or read, without clamping.
type Table struct {
	Title      string
	Dimension  int
	DomainMin  [3]float64
	DomainMax  [3]float64
	Data     []float32
}

// NewTable checks that the data length matches the dimension.
func NewTable(dimension int, data []float32) (*Table, error) {
	if dimension <= 0 || dimension > MaxDimension {
		return nil, fmt.Errorf("dimension %d (want 1-%d): %w", dimension, MaxDimension, ErrMalformed)
	}
	if want := dimension * dimension * dimension * 4; len(data) != want {
		return nil, fmt.Errorf("dimension %d wants %d floats, have %d: %w", dimension, want, len(data), ErrMalformed)
	}

	return &Table{
		Dimension: dimension,
		DomainMin: [3]float64{0, 0, 0},
		DomainMax: [3]float64{1, 1, 1},
		Data:      data,
	}, nil
}

func (t *Table)String() string {
	return fmt.Sprintf("lut[%q %d^3, domain %v-%v]", t.Title, t.Dimension, t.DomainMin, t.DomainMax)
}

func (t *Table)offset(r, g, b int) int {
	return ((b*t.Dimension + g)*t.Dimension + r) * 4
}

// At returns the RGB stored at grid indices (r,g,b)
func (t *Table)At(r, g, b int) (float64, float64, float64) {
	i := t.offset(r, g, b)
	return float64(t.Data[i]), float64(t.Data[i+1]), float64(t.Data[i+2])
}

// gridCoord maps a channel value through the domain onto [0, dim-1]
func (t *Table)gridCoord(v float64, ch int) float64 {
	span := t.DomainMax[ch] - t.DomainMin[ch]
	if span == 0 {
		span = 1
	}
	f := (v - t.DomainMin[ch]) / span * float64(t.Dimension-1)
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	return math.Min(f, float64(t.Dimension-1))
}

// Sample trilinearly interpolates the table at an input RGB. Inputs are
// clamped to the table's domain; outputs are not clamped.
func (t *Table)Sample(r, g, b float64) (float64, float64, float64) {
	if t.Dimension == 1 {
		return t.At(0, 0, 0)
	}

	rf, gf, bf := t.gridCoord(r, 0), t.gridCoord(g, 1), t.gridCoord(b, 2)
	r0, g0, b0 := int(rf), int(gf), int(bf)
	r1, g1, b1 := min(r0+1, t.Dimension-1), min(g0+1, t.Dimension-1), min(b0+1, t.Dimension-1)
	dr, dg, db := rf-float64(r0), gf-float64(g0), bf-float64(b0)

	var out [3]float64
	for ch:=0; ch<3; ch++ {
		c000 := float64(t.Data[t.offset(r0, g0, b0)+ch])
		c100 := float64(t.Data[t.offset(r1, g0, b0)+ch])
		c010 := float64(t.Data[t.offset(r0, g1, b0)+ch])
		c110 := float64(t.Data[t.offset(r1, g1, b0)+ch])
		c001 := float64(t.Data[t.offset(r0, g0, b1)+ch])
		c101 := float64(t.Data[t.offset(r1, g0, b1)+ch])
		c011 := float64(t.Data[t.offset(r0, g1, b1)+ch])
		c111 := float64(t.Data[t.offset(r1, g1, b1)+ch])

		// Along r, then g, then b
		c00 := c000 + dr*(c100-c000)
		c10 := c010 + dr*(c110-c010)
		c01 := c001 + dr*(c101-c001)
		c11 := c011 + dr*(c111-c011)
		c0  := c00 + dg*(c10-c00)
		c1  := c01 + dg*(c11-c01)
		out[ch] = c0 + db*(c1-c0)
	}

	return out[0], out[1], out[2]
}

func min(a, b int) int {
	if a < b { return a }
	return b
}
