package core

import (
	"context"
	"sync"

	"github.com/inovacc/clientdir/internal/model"
)

// Lister fetches the full client collection.
type Lister interface {
	List(ctx context.Context) ([]model.Client, error)
}

// ClientStore is the in-memory, ordered, unique-by-id client collection the
// presentation layer renders. It is filled once by Load and afterwards only
// changed by InsertUnique, Replace and Remove after a successful remote write.
type ClientStore struct {
	mu      sync.RWMutex
	clients []model.Client
	pending map[int]bool
	loading bool
	lastErr error
}

// NewClientStore returns an empty store.
func NewClientStore() *ClientStore {
	return &ClientStore{pending: make(map[int]bool)}
}

// Load replaces the collection with the remote one. Loading is flagged for
// the duration of the call and the last error is cleared up front; on
// failure the previous collection is kept and the error recorded.
func (s *ClientStore) Load(ctx context.Context, lister Lister) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = nil
	s.mu.Unlock()

	clients, err := lister.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.lastErr = err
		return err
	}

	s.clients = dedupe(clients)
	s.pending = make(map[int]bool)

	return nil
}

// dedupe keeps the first record for every id and tags all of them remote.
func dedupe(clients []model.Client) []model.Client {
	seen := make(map[int]struct{}, len(clients))
	out := make([]model.Client, 0, len(clients))

	for _, c := range clients {
		if _, ok := seen[c.ID]; ok {
			continue
		}

		seen[c.ID] = struct{}{}
		c.Origin = model.OriginRemote
		out = append(out, c)
	}

	return out
}

// InsertUnique prepends c so the newest record is first, first giving it the next free id when its id is
// zero or already taken. A reassigned record is local-only. It reports
// whether the id was reassigned.
func (s *ClientStore) InsertUnique(c model.Client) (model.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reassigned := c.ID <= 0 || s.indexOf(c.ID) >= 0
	if reassigned {
		c.ID = s.maxID() + 1
		c.Origin = model.OriginLocal
	}

	s.clients = append([]model.Client{c}, s.clients...)

	return c, reassigned
}

// Replace swaps the record with c.ID in place, keeping its position and
// origin. It reports whether a record was replaced.
func (s *ClientStore) Replace(c model.Client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(c.ID)
	if i < 0 {
		return false
	}

	c.Origin = s.clients[i].Origin
	s.clients[i] = c

	return true
}

// Remove deletes the record with the given id. Unknown ids are a no-op.
func (s *ClientStore) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, id)

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.clients = append(s.clients[:i:i], s.clients[i+1:]...)

	return true
}

func (s *ClientStore) indexOf(id int) int {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return i
		}
	}

	return -1
}

// Clients returns a copy of the collection in display order.
func (s *ClientStore) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Client, len(s.clients))
	copy(out, s.clients)

	return out
}

// Get returns the record with the given id.
func (s *ClientStore) Get(id int) (model.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.clients[i], true
	}

	return model.Client{}, false
}

// Contains reports whether a record with the given id exists.
func (s *ClientStore) Contains(id int) bool {
	_, ok := s.Get(id)
	return ok
}

// Len returns the number of records.
func (s *ClientStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.clients)
}

// MaxID returns the largest id in the store, or 0 when empty.
func (s *ClientStore) MaxID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.maxID()
}

func (s *ClientStore) maxID() int {
	maxID := 0
	for _, c := range s.clients {
		maxID = max(maxID, c.ID)
	}

	return maxID
}

// Loading reports whether a Load is in flight.
func (s *ClientStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

// Err returns the error of the last Load, or nil.
func (s *ClientStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastErr
}

// SetPending flags or clears the row-level pending indicator for id.
func (s *ClientStore) SetPending(id int, pending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pending {
		s.pending[id] = true
		return
	}

	delete(s.pending, id)
}

// Pending reports whether a delete is in flight for id.
func (s *ClientStore) Pending(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.pending[id]
}
