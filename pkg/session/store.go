// Package session keeps per-conversation memory: which items were already
// shown (per item kind) and the last classified intent/query, so "show me
// more" follow-ups can replay the previous search without repeats.
//
// Sessions live only in memory and expire after an idle hour; loss across
// process restarts is accepted.
package session

import (
	"container/list"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Item kinds tracked in the shown-items sets.
const (
	KindProduct    = "products"
	KindCollection = "collections"
	KindBlog       = "blogs"
	KindPage       = "pages"
)

// Session is the per-conversation state. Shown sets only ever grow; nothing
// removes an item before the session expires.
type Session struct {
	ID         string
	Shown      map[string]map[string]bool // kind -> handle set
	LastIntent string
	LastQuery  string
	LastSeen   time.Time
}

func newSession(id string) *Session {
	return &Session{
		ID:    id,
		Shown: map[string]map[string]bool{},
	}
}

// WasShown reports whether the handle was already presented this session.
func (s *Session) WasShown(kind, handle string) bool {
	return s.Shown[kind][handle]
}

// MarkShown unions the handles into the kind's shown set (idempotent).
func (s *Session) MarkShown(kind string, handles ...string) {
	set := s.Shown[kind]
	if set == nil {
		set = map[string]bool{}
		s.Shown[kind] = set
	}
	for _, h := range handles {
		set[h] = true
	}
}

// Store is a TTL-bounded, capacity-bounded session map. Idle sessions
// expire after defaultTTL; when the capacity bound is hit the least
// recently used session is evicted. All mutations run under the store
// lock, so concurrent follow-ups from the same session never lose updates.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
	order *list.List // front = most recently used
	elems map[string]*list.Element
	cap   int
}

const (
	defaultTTL      = 1 * time.Hour
	cleanupInterval = 10 * time.Minute
	defaultCapacity = 1000
)

func NewStore() *Store {
	return NewStoreWithCapacity(defaultCapacity)
}

func NewStoreWithCapacity(capacity int) *Store {
	return &Store{
		cache: cache.New(defaultTTL, cleanupInterval),
		order: list.New(),
		elems: map[string]*list.Element{},
		cap:   capacity,
	}
}

// Get returns the live session, or nil when unknown or expired. Callers
// must not mutate the result directly; use Update.
func (s *Store) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x, found := s.cache.Get(id); found {
		s.touch(id)
		return x.(*Session)
	}
	s.forget(id)
	return nil
}

// Update applies the patch atomically, creating the session on first
// reference.
func (s *Store) Update(id string, patch func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sess *Session
	if x, found := s.cache.Get(id); found {
		sess = x.(*Session)
	} else {
		s.forget(id)
		s.evictIfFull()
		sess = newSession(id)
	}

	patch(sess)
	sess.LastSeen = time.Now()
	s.cache.Set(id, sess, cache.DefaultExpiration)
	s.touch(id)
}

// ShownSet returns a copy of the session's shown set for one kind, safe to
// read while concurrent requests keep marking. Unknown sessions yield an
// empty set.
func (s *Store) ShownSet(id, kind string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]bool{}
	if x, found := s.cache.Get(id); found {
		for handle := range x.(*Session).Shown[kind] {
			out[handle] = true
		}
	}
	return out
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

// touch moves the id to the front of the recency list. Caller holds mu.
func (s *Store) touch(id string) {
	if el, ok := s.elems[id]; ok {
		s.order.MoveToFront(el)
		return
	}
	s.elems[id] = s.order.PushFront(id)
}

// forget drops recency bookkeeping for an id that expired out of the
// cache. Caller holds mu.
func (s *Store) forget(id string) {
	if el, ok := s.elems[id]; ok {
		s.order.Remove(el)
		delete(s.elems, id)
	}
}

// evictIfFull walks the recency list from the least recently used end,
// discarding bookkeeping for already-expired sessions and evicting one
// live session if the capacity bound is still hit. Caller holds mu.
func (s *Store) evictIfFull() {
	if s.cap <= 0 {
		return
	}
	for s.order.Len() >= s.cap {
		oldest := s.order.Back()
		if oldest == nil {
			return
		}
		id := oldest.Value.(string)
		s.order.Remove(oldest)
		delete(s.elems, id)
		if _, found := s.cache.Get(id); found {
			s.cache.Delete(id)
			return
		}
		// Expired entry; keep scanning.
	}
}
