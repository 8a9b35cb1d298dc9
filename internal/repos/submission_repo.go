package repos

import (
	"github.com/jmoiron/sqlx"
)

type SubmissionRepo struct{ db *sqlx.DB }

func NewSubmissionRepo(db *sqlx.DB) *SubmissionRepo { return &SubmissionRepo{db: db} }

type SubmissionRow struct {
	ID          string `db:"id"`
	SessionID   string `db:"session_id"`
	Number      string `db:"number"`
	Region      string `db:"region"`
	Price       int64  `db:"price"`
	Seller      string `db:"seller"`
	Phone       string `db:"phone"`
	Description string `db:"description"`
	CreatedAt   string `db:"created_at"`
}

func (r *SubmissionRepo) Create(s SubmissionRow) error {
	_, err := r.db.NamedExec(`
	  INSERT INTO submissions(id, session_id, number, region, price, seller, phone, description, created_at)
	  VALUES(:id, :session_id, :number, :region, :price, :seller, :phone, :description, CURRENT_TIMESTAMP)
	`, s)
	return err
}

// ListLatest returns the moderation queue, newest first.
func (r *SubmissionRepo) ListLatest(limit int) ([]SubmissionRow, error) {
	var out []SubmissionRow
	err := r.db.Select(&out, `
	  SELECT id, COALESCE(session_id,'') AS session_id, number, region, price, seller, phone,
	         COALESCE(description,'') AS description, created_at
	  FROM submissions
	  ORDER BY created_at DESC, rowid DESC
	  LIMIT ?
	`, limit)
	return out, err
}
