package lut

import(
	"sync"
)

// A Key identifies a table in a Cache. Tables read from files have
// their dimension fixed by the file, and use Dimension 0.
type Key struct {
	Name      string
	Dimension int
}

type entry struct {
	table *Table
	err    error
}

// A Cache memoizes LUT tables, so the per-frame preview path never
// re-parses or re-generates them. Failures are remembered too; a missing
// file is reported once, not once per frame. Tables handed out are
// shared and must be treated as read-only.
//
// A Cache is safe for concurrent use.
type Cache struct {
	Resolver Resolver

	mu      sync.Mutex
	entries map[Key]entry
	misses  int
}

func NewCache(res Resolver) *Cache {
	return &Cache{
		Resolver: res,
		entries:  map[Key]entry{},
	}
}

// File returns the table parsed from <name>.cube. The bool is true when
// this call did the work (a cache miss), so callers can log failures once.
func (c *Cache)File(name string) (*Table, bool, error) {
	return c.get(Key{Name: name}, func() (*Table, error) { return Load(c.Resolver, name) })
}

// TealOrange returns the procedural teal/orange table at the given dimension.
func (c *Cache)TealOrange(dimension int) (*Table, bool, error) {
	return c.get(Key{Name: TealOrangeName, Dimension: dimension}, func() (*Table, error) { return TealOrange(dimension) })
}

// The builder runs under the lock, so two frames asking for the same
// table at once don't both pay for it.
func (c *Cache)get(k Key, build func() (*Table, error)) (*Table, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = map[Key]entry{}
	}
	if e, exists := c.entries[k]; exists {
		return e.table, false, e.err
	}

	t, err := build()
	c.entries[k] = entry{table: t, err: err}
	c.misses++
	return t, true, err
}

// Misses counts how many times a table had to be built or read.
func (c *Cache)Misses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}

// Purge forgets every table and failure, e.g. after new LUT files are installed.
func (c *Cache)Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[Key]entry{}
}
