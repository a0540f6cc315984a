package imgio

import (
	"sync"

	"github.com/klawthorne/edgecv/array"
)

// Cache provides thread-safe caching of decoded arrays to avoid
// redundant disk reads when the same image feeds several pipeline runs.
//
// Arrays are keyed by the exact path string passed to Load; different
// spellings of the same path produce separate entries. Cached arrays
// stay resident until evicted, so long-running processes should Evict or
// Clear when a batch is done.
//
// Callers must not mutate an array returned by Load: it is shared with
// every other caller of the same path. Clone it first when a pipeline
// stage needs ownership. The zero Cache is ready to use.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*array.Dense
}

// Load returns the cached array for path, decoding the file on a miss.
func (c *Cache) Load(path string) (*array.Dense, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.images == nil {
		c.images = make(map[string]*array.Dense)
	}
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes the entry for path, if present.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes every cached entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = nil
	c.mu.Unlock()
}
