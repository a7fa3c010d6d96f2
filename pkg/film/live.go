package film

import "sync"

// Live is a profile that a UI keeps rebinding between (or during)
// renders. Renders work off a Snapshot, so an edit landing mid-render
// never produces a torn read.
type Live struct {
	mu sync.RWMutex
	p  Profile
}

func NewLive(p Profile) *Live {
	return &Live{p: p}
}

func (l *Live)Snapshot() Profile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.p
}

func (l *Live)Set(p Profile) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p = p
}

func (l *Live)SetTemperature(kelvin float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Temperature = kelvin
}

func (l *Live)SetTint(tint float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.p.Tint = tint
}
