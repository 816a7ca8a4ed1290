package action

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/SeamusWaldron/rubik/internal/geometry"
)

// Cache memoizes tables by cube size. Concurrent requests for a size that is
// not yet built share a single construction.
type Cache struct {
	opts []BuildOption

	mu     sync.RWMutex
	tables map[int]*Table
	group  singleflight.Group
}

// NewCache creates an empty cache whose tables are built with opts.
func NewCache(opts ...BuildOption) *Cache {
	return &Cache{
		opts:   opts,
		tables: make(map[int]*Table),
	}
}

// DefaultCache is shared by cubes that are not given their own cache.
var DefaultCache = NewCache()

// Get returns the table for size, building it on first use.
func (c *Cache) Get(size int) (*Table, error) {
	c.mu.RLock()
	t, ok := c.tables[size]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(size), func() (any, error) {
		c.mu.RLock()
		t, ok := c.tables[size]
		c.mu.RUnlock()
		if ok {
			return t, nil
		}

		geo, err := geometry.New(size)
		if err != nil {
			return nil, err
		}
		t, err = Build(geo, c.opts...)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.tables[size] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Table), nil
}

// Has reports whether the table for size is already built.
func (c *Cache) Has(size int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.tables[size]
	return ok
}

// Forget drops the table for size.
func (c *Cache) Forget(size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, size)
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}
