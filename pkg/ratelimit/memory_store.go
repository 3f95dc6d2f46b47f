package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store with per-key timestamp slices. Suitable for
// single-process deployments; a background loop evicts keys whose entire
// window has expired.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window

	cleanupInterval time.Duration
	maxIdle         time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

type window struct {
	timestamps []time.Time
	lastSeen   time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale keys are evicted.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// NewMemoryStore creates an in-memory store with automatic cleanup.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:         make(map[string]*window),
		cleanupInterval: time.Minute,
		maxIdle:         10 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

// RecordIfAllowed atomically prunes expired timestamps, counts the rest, and
// records the new request when under the limit.
func (s *MemoryStore) RecordIfAllowed(ctx context.Context, key string, now time.Time, windowDur time.Duration, limit int) (bool, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok {
		w = &window{}
		s.windows[key] = w
	}
	w.lastSeen = now

	w.prune(now.Add(-windowDur))

	if len(w.timestamps) >= limit {
		return false, int64(len(w.timestamps)), nil
	}

	w.timestamps = append(w.timestamps, now)
	return true, int64(len(w.timestamps)), nil
}

// CountInWindow returns the number of requests recorded inside the window.
func (s *MemoryStore) CountInWindow(ctx context.Context, key string, windowDur time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[key]
	if !ok {
		return 0, nil
	}

	w.prune(time.Now().Add(-windowDur))
	return int64(len(w.timestamps)), nil
}

// Delete removes all state for the key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.windows, key)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *MemoryStore) Close() {
	s.cleanupOnce.Do(func() { close(s.stopCleanup) })
}

func (w *window) prune(cutoff time.Time) {
	kept := w.timestamps[:0]
	for _, ts := range w.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.timestamps = kept
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictIdle()
		case <-s.stopCleanup:
			return
		}
	}
}

func (s *MemoryStore) evictIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxIdle)
	for key, w := range s.windows {
		if w.lastSeen.Before(cutoff) {
			delete(s.windows, key)
		}
	}
}
