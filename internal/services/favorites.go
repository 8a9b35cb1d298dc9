package services

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	applog "platemarket/internal/log"
)

// FavoritesKey is the single storage key the ledger reads and writes.
const FavoritesKey = "favorites"

// Storage is string key/value durable storage.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FavoritesLedger is the set of listing ids a user marked favorite. It is
// loaded once from storage and written through on every toggle. Storage
// failures never stop the ledger: it keeps serving from memory.
type FavoritesLedger struct {
	mu    sync.Mutex
	store Storage
	ids   map[string]struct{}
}

// LoadFavorites builds a ledger from whatever is stored under FavoritesKey.
// Missing, unreadable or malformed data yields an empty set.
func LoadFavorites(store Storage) *FavoritesLedger {
	l := &FavoritesLedger{store: store, ids: map[string]struct{}{}}
	raw, ok, err := store.Get(FavoritesKey)
	if err != nil {
		applog.Error(nil, "favorites.load.fail", err, nil)
		return l
	}
	if !ok {
		return l
	}
	ids, err := DecodeFavorites(raw)
	if err != nil {
		applog.Info(nil, "favorites.load.malformed", map[string]any{"err": err.Error()})
		return l
	}
	for _, id := range ids {
		l.ids[id] = struct{}{}
	}
	return l
}

// Toggle removes id if present and adds it otherwise, then persists the new set.
func (l *FavoritesLedger) Toggle(id string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.ids[id]; ok {
		delete(l.ids, id)
	} else {
		l.ids[strings.Clone(id)] = struct{}{}
	}
	set := l.sortedLocked()
	if err := l.persistLocked(set); err != nil {
		// not retried; the in-memory set stays authoritative for the session
		applog.Error(nil, "favorites.persist.fail", err, map[string]any{"id": id})
	}
	return set
}

func (l *FavoritesLedger) IsFavorite(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ids[id]
	return ok
}

// IDs returns the current set, sorted.
func (l *FavoritesLedger) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedLocked()
}

func (l *FavoritesLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}

// Persist writes the current set to storage.
func (l *FavoritesLedger) Persist() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.persistLocked(l.sortedLocked())
}

func (l *FavoritesLedger) persistLocked(set []string) error {
	raw, err := EncodeFavorites(set)
	if err != nil {
		return err
	}
	return l.store.Set(FavoritesKey, raw)
}

func (l *FavoritesLedger) sortedLocked() []string {
	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// EncodeFavorites serializes ids as a JSON array of strings.
func EncodeFavorites(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	return string(b), err
}

// DecodeFavorites parses a JSON array of strings; null decodes to an empty set.
func DecodeFavorites(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
