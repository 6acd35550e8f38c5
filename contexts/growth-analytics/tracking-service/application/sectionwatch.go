package application

import (
	"context"
	"sync"
)

// DefaultSectionThreshold reports a section once half of it is visible.
const DefaultSectionThreshold = 0.5

// Watch tracks which named sections of one page load have already been
// reported. The first observation at or above the threshold emits exactly one
// section_view per section; re-entering view does not report again.
type Watch struct {
	mu        sync.Mutex
	threshold float64
	reported  map[string]bool
	disposed  bool
}

func Arm(threshold float64) *Watch {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSectionThreshold
	}
	return &Watch{
		threshold: threshold,
		reported:  map[string]bool{},
	}
}

// Observe handles one visibility report. It returns true when the observation
// crossed the threshold for the first time and a section_view was emitted.
func (w *Watch) Observe(ctx context.Context, tracker *Tracker, section string, ratio float64) bool {
	if tracker == nil || section == "" {
		return false
	}

	w.mu.Lock()
	if w.disposed || ratio < w.threshold || w.reported[section] {
		w.mu.Unlock()
		return false
	}
	w.reported[section] = true
	w.mu.Unlock()

	tracker.TrackSectionView(ctx, section)
	return true
}

// Dispose stops the watch. Observations after disposal are dropped so removed
// markup cannot keep reporting.
func (w *Watch) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.disposed = true
}

// Watches lazily arms one Watch per session. The cap bounds memory for
// abandoned sessions; eviction order is not significant because a recycled
// session simply re-reports at most once per section.
type Watches struct {
	mu        sync.Mutex
	threshold float64
	bySession map[string]*Watch
	capacity  int
}

func NewWatches(threshold float64) *Watches {
	return &Watches{
		threshold: threshold,
		bySession: map[string]*Watch{},
		capacity:  10000,
	}
}

func (ws *Watches) For(sessionID string) *Watch {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if watch, ok := ws.bySession[sessionID]; ok {
		return watch
	}
	if len(ws.bySession) >= ws.capacity {
		for key := range ws.bySession {
			delete(ws.bySession, key)
			break
		}
	}
	watch := Arm(ws.threshold)
	ws.bySession[sessionID] = watch
	return watch
}

// Drop disposes and forgets one session's watch.
func (ws *Watches) Drop(sessionID string) {
	ws.mu.Lock()
	watch, ok := ws.bySession[sessionID]
	delete(ws.bySession, sessionID)
	ws.mu.Unlock()
	if ok {
		watch.Dispose()
	}
}
