package repos

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// KVRepo is string key/value storage partitioned by browser session.
type KVRepo struct{ db *sqlx.DB }

func NewKVRepo(db *sqlx.DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(sessionID, key string) (string, bool, error) {
	var v string
	err := r.db.Get(&v, `SELECT value FROM kv_store WHERE session_id=? AND key=?`, sessionID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *KVRepo) Set(sessionID, key, value string) error {
	_, err := r.db.Exec(`
	  INSERT INTO kv_store(session_id, key, value, updated_at)
	  VALUES(?, ?, ?, ?)
	  ON CONFLICT(session_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, sessionID, key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Scope binds the repo to one session.
func (r *KVRepo) Scope(sessionID string) *SessionKV {
	return &SessionKV{repo: r, sid: sessionID}
}

type SessionKV struct {
	repo *KVRepo
	sid  string
}

func (s *SessionKV) Get(key string) (string, bool, error) { return s.repo.Get(s.sid, key) }
func (s *SessionKV) Set(key, value string) error          { return s.repo.Set(s.sid, key, value) }
