package measure

import (
	"container/list"
	"strconv"
	"strings"
	"sync"
)

// DefaultCacheSize bounds a Cache created with a non-positive size.
const DefaultCacheSize = 4096

// Cache is an LRU cache in front of another Measurer.
// This prevents re-measuring the same tag text on every layout pass.
type Cache struct {
	next Measurer

	mu      sync.Mutex
	maxSize int
	entries map[string]*list.Element
	lru     *list.List // Front = most recently used

	hits, misses int
}

type cacheEntry struct {
	key           string
	width, height float32
}

// NewCache wraps m with an LRU cache holding at most maxSize results.
func NewCache(m Measurer, maxSize int) *Cache {
	if maxSize <= 0 {
		maxSize = DefaultCacheSize
	}
	return &Cache{
		next:    m,
		maxSize: maxSize,
		entries: make(map[string]*list.Element),
		lru:     list.New(),
	}
}

// Unwrap returns the wrapped Measurer.
func (c *Cache) Unwrap() Measurer {
	return c.next
}

func cacheKey(kind byte, text string, font Font, maxWidth float32) string {
	var b strings.Builder
	b.Grow(len(text) + len(font.Family) + 24)
	b.WriteByte(kind)
	b.WriteByte(0)
	b.WriteString(font.Family)
	b.WriteByte(0)
	b.WriteString(strconv.FormatFloat(float64(font.Size), 'g', -1, 32))
	b.WriteByte(0)
	b.WriteString(strconv.FormatFloat(float64(maxWidth), 'g', -1, 32))
	b.WriteByte(0)
	b.WriteString(text)
	return b.String()
}

// get retrieves a cached result, returning ok=false on miss.
func (c *Cache) get(key string) (width, height float32, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, found := c.entries[key]; found {
		c.lru.MoveToFront(elem)
		c.hits++
		e := elem.Value.(*cacheEntry)
		return e.width, e.height, true
	}
	c.misses++
	return 0, 0, false
}

// put stores a result, evicting old entries if needed.
func (c *Cache) put(key string, width, height float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		c.lru.MoveToFront(elem)
		e := elem.Value.(*cacheEntry)
		e.width, e.height = width, height
		return
	}

	for c.lru.Len() >= c.maxSize {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}

	c.entries[key] = c.lru.PushFront(&cacheEntry{key: key, width: width, height: height})
}

// MeasureSingleLine implements Measurer.
func (c *Cache) MeasureSingleLine(text string, font Font) (width, height float32) {
	key := cacheKey('s', text, font, 0)
	if w, h, ok := c.get(key); ok {
		return w, h
	}
	width, height = c.next.MeasureSingleLine(text, font)
	c.put(key, width, height)
	return width, height
}

// MeasureWrapped implements Measurer.
func (c *Cache) MeasureWrapped(text string, font Font, maxWidth float32) float32 {
	key := cacheKey('w', text, font, maxWidth)
	if _, h, ok := c.get(key); ok {
		return h
	}
	height := c.next.MeasureWrapped(text, font, maxWidth)
	c.put(key, 0, height)
	return height
}

// Clear removes all entries. Call it when the wrapped measurer's fonts change.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.lru.Init()
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns the hit and miss counts since creation.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
