// Package store owns the in-memory shoot request collection. It is the single
// shared mutable resource of the engine: user-driven commands and the timer
// sweeps both operate on it through the same entry points.
package store

import (
	"sync"

	"shootflow/internal/domain/request"

	"github.com/google/uuid"
)

// RequestStore indexes requests by id and by group id. Transitions on one
// request id must be serialized: callers take the per-request lock via Lock
// for the duration of a transition. Different ids proceed independently.
type RequestStore struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*request.ShootRequest
	order    []uuid.UUID
	groups   map[uuid.UUID][]uuid.UUID
	locks    map[uuid.UUID]*sync.Mutex
}

func NewRequestStore() *RequestStore {
	return &RequestStore{
		requests: make(map[uuid.UUID]*request.ShootRequest),
		groups:   make(map[uuid.UUID][]uuid.UUID),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// Put registers a request. The group index is maintained here and only here;
// a request's group id is set at creation and never changes afterwards.
func (s *RequestStore) Put(r *request.ShootRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := r.ID()
	if _, exists := s.requests[id]; !exists {
		s.order = append(s.order, id)
		s.locks[id] = &sync.Mutex{}
		if gid := r.GroupID(); gid != nil {
			s.groups[*gid] = append(s.groups[*gid], id)
		}
	}
	s.requests[id] = r
}

func (s *RequestStore) Get(id uuid.UUID) (*request.ShootRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.requests[id]
	return r, ok
}

// All returns the collection in insertion order.
func (s *RequestStore) All() []*request.ShootRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*request.ShootRequest, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.requests[id])
	}
	return out
}

func (s *RequestStore) ByStatus(status request.Status) []*request.ShootRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*request.ShootRequest
	for _, id := range s.order {
		if r := s.requests[id]; r.Status() == status {
			out = append(out, r)
		}
	}
	return out
}

// Siblings resolves the request group of id, id included, in group order.
// A request without a group id is a group of one.
func (s *RequestStore) Siblings(id uuid.UUID) []*request.ShootRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil
	}
	gid := r.GroupID()
	if gid == nil {
		return []*request.ShootRequest{r}
	}
	members := s.groups[*gid]
	out := make([]*request.ShootRequest, 0, len(members))
	for _, mid := range members {
		out = append(out, s.requests[mid])
	}
	return out
}

// GroupMembers returns the members of a group id, in group order.
func (s *RequestStore) GroupMembers(groupID uuid.UUID) []*request.ShootRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := s.groups[groupID]
	out := make([]*request.ShootRequest, 0, len(members))
	for _, mid := range members {
		out = append(out, s.requests[mid])
	}
	return out
}

// Lock serializes transitions on one request id. Returns the unlock func.
func (s *RequestStore) Lock(id uuid.UUID) func() {
	s.mu.RLock()
	l, ok := s.locks[id]
	s.mu.RUnlock()
	if !ok {
		// Unknown id: nothing to serialize against.
		return func() {}
	}
	l.Lock()
	return l.Unlock
}
