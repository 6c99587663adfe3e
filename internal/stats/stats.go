package stats

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Stats tracks the outcome of a collection run
type Stats struct {
	// Fetch counts
	Requests       uint64
	FetchedWindows uint64
	FailedWindows  uint64

	// Extraction totals
	LegsScanned uint64
	Routes      uint64

	// Timing
	StartedAt time.Time
	FetchTime time.Duration

	mu sync.RWMutex
}

// New creates a new Stats instance
func New() *Stats {
	return &Stats{
		StartedAt: time.Now(),
	}
}

// IncrementRequests increments the issued requests counter
func (s *Stats) IncrementRequests() {
	atomic.AddUint64(&s.Requests, 1)
}

// IncrementFetchedWindows increments the successful windows counter
func (s *Stats) IncrementFetchedWindows() {
	atomic.AddUint64(&s.FetchedWindows, 1)
}

// IncrementFailedWindows increments the failed windows counter
func (s *Stats) IncrementFailedWindows() {
	atomic.AddUint64(&s.FailedWindows, 1)
}

// SetLegsScanned sets the number of legs seen across all windows
func (s *Stats) SetLegsScanned(count uint64) {
	atomic.StoreUint64(&s.LegsScanned, count)
}

// SetRoutes sets the number of routes in the finished table
func (s *Stats) SetRoutes(count uint64) {
	atomic.StoreUint64(&s.Routes, count)
}

// AddFetchTime adds to the total time spent fetching
func (s *Stats) AddFetchTime(duration time.Duration) {
	s.mu.Lock()
	s.FetchTime += duration
	s.mu.Unlock()
}

// GetStats returns a copy of the current statistics
func (s *Stats) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"requests":        atomic.LoadUint64(&s.Requests),
		"fetched_windows": atomic.LoadUint64(&s.FetchedWindows),
		"failed_windows":  atomic.LoadUint64(&s.FailedWindows),
		"legs_scanned":    atomic.LoadUint64(&s.LegsScanned),
		"routes":          atomic.LoadUint64(&s.Routes),
		"fetch_time":      s.FetchTime,
		"elapsed":         time.Since(s.StartedAt),
	}
}

// String returns a string representation of the statistics
func (s *Stats) String() string {
	stats := s.GetStats()
	return fmt.Sprintf(
		"Requests: %d\n"+
			"Fetched Windows: %d\n"+
			"Failed Windows: %d\n"+
			"Legs Scanned: %d\n"+
			"Routes: %d\n"+
			"Fetch Time: %s\n"+
			"Elapsed: %s",
		stats["requests"],
		stats["fetched_windows"],
		stats["failed_windows"],
		stats["legs_scanned"],
		stats["routes"],
		stats["fetch_time"],
		stats["elapsed"],
	)
}
