package gpumon

import (
	"gpumon-backend/lib/timezone"
	"slices"
	"strings"
	"sync"
	"time"
)

type Record struct {
	SKU        string
	Brand      string
	Family     string
	Model      string
	MemorySize string
	Stock      int
	Price      float64
	LastSeen   time.Time
}

// Store holds the latest known record per SKU. it is cumulative: a
// product absent from the current cycle keeps its last-known record
// until overwritten, evicted by TTL, or the process restarts. the
// scrape daemon is the only writer, metrics requests read concurrently.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewStore() *Store {
	return &Store{records: map[string]Record{}}
}

func (s *Store) Upsert(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.LastSeen.IsZero() {
		rec.LastSeen = timezone.Now()
	}
	s.records[rec.SKU] = rec
}

// Snapshot returns a copy of all records sorted by SKU, so rendering
// the same store state twice yields byte-identical output.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b Record) int {
		return strings.Compare(a.SKU, b.SKU)
	})
	return out
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// EvictOlderThan drops records last seen before the cutoff and reports
// how many went.
func (s *Store) EvictOlderThan(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for sku, rec := range s.records {
		if rec.LastSeen.Before(cutoff) {
			delete(s.records, sku)
			evicted++
		}
	}
	return evicted
}
