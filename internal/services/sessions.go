package services

import (
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultSessionCapacity = 10000
	DefaultSessionTTL      = 24 * time.Hour
)

// StorageFor returns the durable storage belonging to one browser session.
type StorageFor func(sessionID string) Storage

// Session is the per-browser state: favorites and notices.
type Session struct {
	ID        string
	Favorites *FavoritesLedger
	Notices   *NoticeBoard
}

// SessionLimits bounds the registry. Zero values take the defaults.
type SessionLimits struct {
	Capacity int
	TTL      time.Duration
}

// Sessions hands out one Session per sid. Each new session loads its ledger
// from storage and starts with the notices derived at startup. Idle sessions
// expire after TTL and the least recently used are dropped past Capacity;
// favorites survive that because they are reloaded from storage.
type Sessions struct {
	storage StorageFor
	derived []string
	cache   *expirable.LRU[string, *Session]

	// insert guards the check-then-add so one sid never gets two sessions.
	// Storage reads happen outside it.
	insert sync.Mutex
}

func NewSessions(storage StorageFor, derived []string, limits SessionLimits) *Sessions {
	if limits.Capacity <= 0 {
		limits.Capacity = DefaultSessionCapacity
	}
	if limits.TTL <= 0 {
		limits.TTL = DefaultSessionTTL
	}
	return &Sessions{
		storage: storage,
		derived: append([]string(nil), derived...),
		cache:   expirable.NewLRU[string, *Session](limits.Capacity, nil, limits.TTL),
	}
}

func (s *Sessions) Get(sid string) *Session {
	if sess, ok := s.cache.Get(sid); ok {
		return sess
	}
	// Callers may pass request-scoped strings; the key outlives the request.
	sid = strings.Clone(sid)
	fresh := &Session{
		ID:        sid,
		Favorites: LoadFavorites(s.storage(sid)),
		Notices:   NewNoticeBoard(s.derived),
	}

	s.insert.Lock()
	defer s.insert.Unlock()
	if sess, ok := s.cache.Get(sid); ok {
		return sess
	}
	s.cache.Add(sid, fresh)
	return fresh
}

// Derived returns the startup recency notices.
func (s *Sessions) Derived() []string {
	return append([]string(nil), s.derived...)
}

func (s *Sessions) Len() int { return s.cache.Len() }
