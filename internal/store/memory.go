package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/weather-emissions-dashboard/internal/weather"
)

var (
	// ErrNotFound is returned when no report is available for a given location.
	ErrNotFound = errors.New("no weather data for location")
)

// ReportHistory holds a time-ordered list of reports for a location.
type ReportHistory struct {
	Reports []weather.Report
}

// MemoryStore is a concurrency-safe in-memory implementation of a weather store.
// A saved report replaces the latest one in a single critical section, so
// readers see either the previous report or the new one, never a mix.
type MemoryStore struct {
	mu sync.RWMutex

	// key: location key, value: history
	data map[string]*ReportHistory

	// retention configuration
	maxHistory int           // max number of reports per location
	maxAge     time.Duration // optional max age for reports

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*ReportHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// SaveReport appends a new report for a location and enforces retention.
func (s *MemoryStore) SaveReport(key string, report weather.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &ReportHistory{}
		s.data[key] = history
	}

	history.Reports = append(history.Reports, report)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Reports) > s.maxHistory {
		over := len(history.Reports) - s.maxHistory
		history.Reports = history.Reports[over:]
	}

	// Enforce retention by age; the newest report is always kept.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Reports)-1; i++ {
			if !history.Reports[i].FetchedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 {
			history.Reports = history.Reports[i:]
		}
	}
}

// GetLatest returns the most recent report for a location.
func (s *MemoryStore) GetLatest(key string) (weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Reports) == 0 {
		return weather.Report{}, ErrNotFound
	}
	return history.Reports[len(history.Reports)-1], nil
}

// GetRange returns all reports for a location fetched between from and to (inclusive).
func (s *MemoryStore) GetRange(key string, from, to time.Time) ([]weather.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[key]
	if !ok || len(history.Reports) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Report
	for _, r := range history.Reports {
		if !r.FetchedAt.Before(from) && !r.FetchedAt.After(to) {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}

var _ weather.Store = (*MemoryStore)(nil)
