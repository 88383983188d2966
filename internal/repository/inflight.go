package repository

import "sync"

// Inflight tracks mutating operations currently running per entity id. A
// second submission for an id that is still in flight must be rejected, so
// entries are exclusive rather than shared.
type Inflight struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewInflight() *Inflight {
	return &Inflight{ids: make(map[string]struct{})}
}

// Begin claims the id. It returns false if a mutation for the id is already
// running.
func (f *Inflight) Begin(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.ids[id]; busy {
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// End releases the id. Safe to call for ids that were never claimed.
func (f *Inflight) End(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.ids, id)
}

// Has reports whether a mutation for the id is running. This is the loading
// marker surfaced to clients.
func (f *Inflight) Has(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, busy := f.ids[id]
	return busy
}
