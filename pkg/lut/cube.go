package lut

import(
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Longest line ParseCube accepts; vendor headers can carry long comments.
const maxCubeLine = 4 * 1024 * 1024

// ParseCube reads a .cube text LUT.
//
//  - blank lines, and lines starting with '#' or TITLE, are comments
//    (the TITLE's quoted text is kept)
//  - LUT_3D_SIZE <n> sets the dimension
//  - DOMAIN_MIN / DOMAIN_MAX <r> <g> <b> set the input domain
//  - any line holding exactly three floats is an RGB sample, given alpha 1.0
//  - anything else (LUT_1D_SIZE, vendor keywords) is skipped
//
// The sample count must come out as dimension^3, else the whole parse
// fails with ErrMalformed; no partial table is returned.
func ParseCube(r io.Reader) (*Table, error) {
	var(
		title     string
		size      int
		domainMin = [3]float64{0, 0, 0}
		domainMax = [3]float64{1, 1, 1}
		data      []float32
		scanner   = bufio.NewScanner(r)
	)

	scanner.Buffer(make([]byte, 0, 64*1024), maxCubeLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "", strings.HasPrefix(line, "#"):
			continue

		case strings.HasPrefix(line, "TITLE"):
			if start := strings.Index(line, "\""); start != -1 {
				if end := strings.LastIndex(line, "\""); end > start {
					title = line[start+1 : end]
				}
			}
			continue

		case strings.HasPrefix(line, "LUT_3D_SIZE"):
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				if s, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
					size = s
				}
			}
			continue

		case strings.HasPrefix(line, "DOMAIN_MIN"):
			if v, ok := parseTriple(strings.Fields(line)[1:]); ok {
				domainMin = [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
			}
			continue

		case strings.HasPrefix(line, "DOMAIN_MAX"):
			if v, ok := parseTriple(strings.Fields(line)[1:]); ok {
				domainMax = [3]float64{float64(v[0]), float64(v[1]), float64(v[2])}
			}
			continue
		}

		if v, ok := parseTriple(strings.Fields(line)); ok {
			data = append(data, v[0], v[1], v[2], 1.0)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cube read: %v: %w", err, ErrMalformed)
	}

	if size <= 0 || size > MaxDimension {
		return nil, fmt.Errorf("cube size %d (want 1-%d): %w", size, MaxDimension, ErrMalformed)
	}
	if len(data) != size*size*size*4 {
		return nil, fmt.Errorf("cube size %d with %d samples: %w", size, len(data)/4, ErrMalformed)
	}

	t, err := NewTable(size, data)
	if err != nil {
		return nil, err
	}
	t.Title     = title
	t.DomainMin = domainMin
	t.DomainMax = domainMax

	return t, nil
}

func parseTriple(parts []string) ([3]float32, bool) {
	ret := [3]float32{}
	if len(parts) != 3 {
		return ret, false
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return ret, false
		}
		ret[i] = float32(f)
	}
	return ret, true
}

// WriteCube serializes a table as .cube text; alpha is dropped, as the
// format has no room for it.
func WriteCube(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	if t.Title != "" {
		fmt.Fprintf(bw, "TITLE \"%s\"\n", t.Title)
	}
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", t.Dimension)
	fmt.Fprintf(bw, "DOMAIN_MIN %g %g %g\n", t.DomainMin[0], t.DomainMin[1], t.DomainMin[2])
	fmt.Fprintf(bw, "DOMAIN_MAX %g %g %g\n\n", t.DomainMax[0], t.DomainMax[1], t.DomainMax[2])

	for i:=0; i+3<len(t.Data); i+=4 {
		fmt.Fprintf(bw, "%.6f %.6f %.6f\n", t.Data[i], t.Data[i+1], t.Data[i+2])
	}

	return bw.Flush()
}
