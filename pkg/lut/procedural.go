package lut

import "fmt"

const(
	TealOrangeName = "tealOrange"

	toneSplitStrength = 0.15
)

// TealOrange builds the procedural "teal & orange" grade: shadows are
// pushed toward teal (blue-green), highlights toward orange (red-yellow),
// each weighted by the sample's luma.
func TealOrange(dimension int) (*Table, error) {
	if dimension < 2 || dimension > MaxDimension {
		return nil, fmt.Errorf("procedural %s dimension %d: %w", TealOrangeName, dimension, ErrMalformed)
	}

	size   := dimension
	data   := make([]float32, size*size*size*4)
	offset := 0

	for z:=0; z<size; z++ {
		for y:=0; y<size; y++ {
			for x:=0; x<size; x++ {
				r := float32(x) / float32(size-1)
				g := float32(y) / float32(size-1)
				b := float32(z) / float32(size-1)

				luma := 0.2126*r + 0.7152*g + 0.0722*b

				shadow := (1.0 - luma) * toneSplitStrength
				r -= shadow
				g += shadow * 0.5
				b += shadow

				highlight := luma * toneSplitStrength
				r += highlight
				g += highlight * 0.5
				b -= highlight

				data[offset]   = r
				data[offset+1] = g
				data[offset+2] = b
				data[offset+3] = 1.0
				offset += 4
			}
		}
	}

	t, err := NewTable(dimension, data)
	if err != nil {
		return nil, err
	}
	t.Title = TealOrangeName
	return t, nil
}
