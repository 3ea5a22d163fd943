package registry

import (
	"sync"
	"time"

	"github.com/tom65536go/annual"
)

// YearCache memoizes FunctionRegistry.Evaluate results per year with
// LRU eviction, generalizing the teacher's HolidayCache (which cached
// per-country holiday maps) to a single registry's per-year table.
type YearCache struct {
	mu       sync.RWMutex
	registry *FunctionRegistry
	cache    map[int]annual.NamedDateTable
	accessed map[int]time.Time
	maxSize  int
}

// NewYearCache wraps registry with an LRU cache of at most maxSize
// evaluated years.
func NewYearCache(registry *FunctionRegistry, maxSize int) *YearCache {
	return &YearCache{
		registry: registry,
		cache:    make(map[int]annual.NamedDateTable),
		accessed: make(map[int]time.Time),
		maxSize:  maxSize,
	}
}

// Evaluate returns the cached table for year, computing and storing it
// on a miss.
func (yc *YearCache) Evaluate(year int) annual.NamedDateTable {
	yc.mu.RLock()
	if table, ok := yc.cache[year]; ok {
		yc.mu.RUnlock()
		yc.mu.Lock()
		yc.accessed[year] = time.Now()
		yc.mu.Unlock()
		return table
	}
	yc.mu.RUnlock()

	table := yc.registry.Evaluate(year)

	yc.mu.Lock()
	defer yc.mu.Unlock()
	if _, ok := yc.cache[year]; !ok && len(yc.cache) >= yc.maxSize {
		yc.evictOldestLocked()
	}
	yc.cache[year] = table
	yc.accessed[year] = time.Now()
	return table
}

func (yc *YearCache) evictOldestLocked() {
	oldestYear := 0
	oldestTime := time.Now()
	first := true
	for year, accessTime := range yc.accessed {
		if first || accessTime.Before(oldestTime) {
			oldestTime = accessTime
			oldestYear = year
			first = false
		}
	}
	if !first {
		delete(yc.cache, oldestYear)
		delete(yc.accessed, oldestYear)
	}
}

// Clear empties the cache.
func (yc *YearCache) Clear() {
	yc.mu.Lock()
	defer yc.mu.Unlock()
	yc.cache = make(map[int]annual.NamedDateTable)
	yc.accessed = make(map[int]time.Time)
}

// Size returns the number of years currently cached.
func (yc *YearCache) Size() int {
	yc.mu.RLock()
	defer yc.mu.RUnlock()
	return len(yc.cache)
}
