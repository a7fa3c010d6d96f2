package lut

import(
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

const CubeExt = ".cube"

// A Resolver locates a named .cube resource. A missing resource must
// come back as an error wrapping ErrNotFound.
type Resolver interface {
	Open(name string) (io.ReadCloser, error)
}

// DirResolver reads <Dir>/<name>.cube
type DirResolver struct {
	Dir string
}

func (d DirResolver)Open(name string) (io.ReadCloser, error) {
	filename := filepath.Join(d.Dir, name + CubeExt)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", filename, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %v", filename, err)
	}
	return f, nil
}

// FSResolver reads <name>.cube out of an fs.FS, e.g. an embed.FS of
// bundled resources.
type FSResolver struct {
	FS  fs.FS
	Dir string
}

func (r FSResolver)Open(name string) (io.ReadCloser, error) {
	p := path.Join(r.Dir, name + CubeExt)
	if r.FS == nil {
		return nil, fmt.Errorf("%s (no filesystem): %w", p, ErrNotFound)
	}
	f, err := r.FS.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("open %s: %v", p, err)
	}
	return f, nil
}

// Load resolves and parses a named .cube file.
func Load(res Resolver, name string) (*Table, error) {
	if res == nil {
		return nil, fmt.Errorf("lut %q (no resolver): %w", name, ErrNotFound)
	}

	rc, err := res.Open(name)
	if err != nil {
		return nil, fmt.Errorf("lut %q: %w", name, err)
	}
	defer rc.Close()

	t, err := ParseCube(rc)
	if err != nil {
		return nil, fmt.Errorf("lut %q: %w", name, err)
	}
	if t.Title == "" {
		t.Title = name
	}
	return t, nil
}
