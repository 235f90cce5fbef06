package cache

import (
	"container/list"
	"sync"

	"github.com/suryansh-23/lsmark/internal/markup"
)

const defaultMaxEntries = 4096

type entry struct {
	markup string
	width  int
}

// Widths memoizes measured markup widths with LRU eviction. Layouts measure
// the same cell text more than once per pass (column sizing, then padding),
// so a small cache avoids repeated grapheme segmentation.
type Widths struct {
	mu         sync.Mutex
	lru        *list.List
	byMarkup   map[string]*list.Element
	maxEntries int
	measure    func(string) int
	hits       int
	misses     int
}

// New creates a width cache holding at most maxEntries strings.
func New(maxEntries int) *Widths {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Widths{
		lru:        list.New(),
		byMarkup:   make(map[string]*list.Element),
		maxEntries: maxEntries,
		measure:    markup.Len,
	}
}

// Len returns the measured width of s, computing and storing it on a miss.
// A nil cache measures directly.
func (c *Widths) Len(s string) int {
	if c == nil {
		return markup.Len(s)
	}
	if w, ok := c.Get(s); ok {
		return w
	}
	w := c.measure(s)
	c.Put(s, w)
	return w
}

// Get returns a cached width.
func (c *Widths) Get(s string) (int, bool) {
	if c == nil {
		return 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.byMarkup[s]
	if !ok {
		c.misses++
		return 0, false
	}
	c.hits++
	c.lru.MoveToFront(elem)
	return elem.Value.(entry).width, true
}

// Put stores a width, replacing any previous value for s.
func (c *Widths) Put(s string, width int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.byMarkup[s]; ok {
		c.lru.Remove(elem)
	}
	c.byMarkup[s] = c.lru.PushFront(entry{markup: s, width: width})
	c.evictLocked()
}

// Size returns the number of cached entries.
func (c *Widths) Size() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats returns the hit and miss counts since creation.
func (c *Widths) Stats() (hits, misses int) {
	if c == nil {
		return 0, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *Widths) evictLocked() {
	for c.lru.Len() > c.maxEntries {
		back := c.lru.Back()
		if back == nil {
			return
		}
		delete(c.byMarkup, back.Value.(entry).markup)
		c.lru.Remove(back)
	}
}
