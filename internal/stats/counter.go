package stats

import "sort"

// Frequency is one entry of a Counter.
type Frequency struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Counter counts string keys and remembers the order in which each key was
// first seen, so that ranking equal counts is deterministic.
type Counter struct {
	index   map[string]int
	entries []Frequency
}

func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

func (c *Counter) Add(key string) {
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Frequency{Key: key, Count: 1})
}

func (c *Counter) Count(key string) int {
	i, ok := c.index[key]
	if !ok {
		return 0
	}
	return c.entries[i].Count
}

func (c *Counter) Len() int {
	return len(c.entries)
}

// MostCommon returns up to n entries ordered by count descending. Equal counts
// keep first-seen order. A negative n returns every entry.
func (c *Counter) MostCommon(n int) []Frequency {
	out := make([]Frequency, len(c.entries))
	copy(out, c.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
