package colorspace

import "sync"

// Cache memoizes derived conversions.  The zero value is ready to use, and
// a Cache is safe for concurrent use.
//
// Cached conversions are indistinguishable from freshly derived ones; a
// Cache only saves the matrix arithmetic of Derive.
type Cache struct {
	mu sync.RWMutex
	m  map[cacheKey]Conversion
}

type cacheKey struct {
	src, dst Key
	cone     ConeSpace
}

// Derive returns the conversion from src to dst, like the package level
// Derive function.
func (c *Cache) Derive(src, dst Space) (Conversion, error) {
	return c.DeriveWith(src, dst, Bradford)
}

// DeriveWith returns the conversion from src to dst, like the package level
// DeriveWith function.
func (c *Cache) DeriveWith(src, dst Space, cone ConeSpace) (Conversion, error) {
	key := cacheKey{src: src.Key(), dst: dst.Key(), cone: cone}

	c.mu.RLock()
	conv, ok := c.m[key]
	c.mu.RUnlock()
	if ok {
		// equal spaces may differ in name
		conv.src, conv.dst = src, dst
		return conv, nil
	}

	conv, err := DeriveWith(src, dst, cone)
	if err != nil {
		return Conversion{}, err
	}

	c.mu.Lock()
	if c.m == nil {
		c.m = make(map[cacheKey]Conversion)
	}
	c.m[key] = conv
	c.mu.Unlock()

	return conv, nil
}

// Len returns the number of cached conversions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Reset discards all cached conversions.
func (c *Cache) Reset() {
	c.mu.Lock()
	clear(c.m)
	c.mu.Unlock()
}
