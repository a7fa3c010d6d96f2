package film

import(
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeutralDefaults(t *testing.T) {
	p := Neutral("x", NoLUT())
	if !p.IsNeutralWhiteBalance() || !p.HasIdentityMatrix() || !p.HasIdentityColorControls() {
		t.Errorf("neutral profile is not neutral:\n%s", p)
	}
	if p.Gamma != 1 || p.GrainIntensity != 0 || p.VignetteIntensity != 0 || p.BloomIntensity != 0 {
		t.Errorf("neutral effects not off:\n%s", p)
	}
}

func TestLUTTypeEquality(t *testing.T) {
	if CubeLUT("a") != CubeLUT("a") {
		t.Error("same cube LUTs should be equal")
	}
	if CubeLUT("a") == CubeLUT("b") || CubeLUT("a") == NoLUT() || TealOrangeLUT() == NoLUT() {
		t.Error("different LUTs compare equal")
	}
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	if len(cat) != len(cubeStocks)+2 {
		t.Fatalf("catalog has %d profiles", len(cat))
	}

	seen := map[string]bool{}
	for _, p := range cat {
		if seen[p.Name] {
			t.Errorf("duplicate profile %q", p.Name)
		}
		seen[p.Name] = true
		if p.LUT.Kind == LUTCustom && p.LUT.Name != p.Name {
			t.Errorf("%q uses LUT %q", p.Name, p.LUT.Name)
		}
	}

	// Catalog hands out copies
	cat[0].Temperature = 3000
	if Catalog()[0].Temperature != 6500 {
		t.Error("mutating a catalog entry leaked into the catalog")
	}
}

func TestByName(t *testing.T) {
	p, err := ByName("kodak professional portra 400")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Neutral("Kodak Professional Portra 400", CubeLUT("Kodak Professional Portra 400")), p); diff != "" {
		t.Errorf("ByName mismatch (-want +got):\n%s", diff)
	}

	if _, err := ByName("Ilford Imaginary"); err == nil || !strings.Contains(err.Error(), "Ilford Imaginary") {
		t.Errorf("got err %v", err)
	}
}

func TestLiveSnapshot(t *testing.T) {
	l := NewLive(Identity("live"))
	snap := l.Snapshot()

	l.SetTemperature(4000)
	l.SetTint(12)
	if snap.Temperature != 6500 || snap.Tint != 0 {
		t.Error("snapshot changed after a live edit")
	}
	if got := l.Snapshot(); got.Temperature != 4000 || got.Tint != 12 {
		t.Errorf("live edit lost: %v", got)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(k float64) { defer wg.Done(); l.SetTemperature(k) }(float64(3000 + i*100))
		go func() { defer wg.Done(); _ = l.Snapshot() }()
	}
	wg.Wait()
}
