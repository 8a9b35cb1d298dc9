package repos

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"platemarket/internal/domain"
)

type ListingRepo struct{ db *sqlx.DB }

func NewListingRepo(db *sqlx.DB) *ListingRepo { return &ListingRepo{db: db} }

type listingRow struct {
	ID          string         `db:"id"`
	Number      string         `db:"number"`
	Region      string         `db:"region"`
	Price       int64          `db:"price"`
	Seller      string         `db:"seller"`
	Phone       string         `db:"phone"`
	Description string         `db:"description"`
	Featured    sql.NullBool   `db:"featured"`
	Image       sql.NullString `db:"image"`
	DateAdded   string         `db:"date_added"`
	Views       sql.NullInt64  `db:"views"`
	Category    sql.NullString `db:"category"`
}

const listingCols = `id, number, region, price, seller, phone, description, featured, image, date_added, views, category`

// All returns the catalog in insertion order, which is the store order ties sort by.
func (r *ListingRepo) All() ([]domain.Listing, error) {
	var rows []listingRow
	if err := r.db.Select(&rows, `SELECT `+listingCols+` FROM listings ORDER BY seq`); err != nil {
		return nil, err
	}
	out := make([]domain.Listing, 0, len(rows))
	for _, row := range rows {
		l, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *ListingRepo) Get(id string) (domain.Listing, error) {
	var row listingRow
	if err := r.db.Get(&row, `SELECT `+listingCols+` FROM listings WHERE id = ?`, id); err != nil {
		return domain.Listing{}, err
	}
	return row.toDomain()
}

func (row listingRow) toDomain() (domain.Listing, error) {
	added, err := ParseDateAdded(row.DateAdded)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("listing %s: %w", row.ID, err)
	}
	l := domain.Listing{
		ID:          row.ID,
		Number:      row.Number,
		Region:      row.Region,
		Price:       row.Price,
		Seller:      row.Seller,
		Phone:       row.Phone,
		Description: row.Description,
		DateAdded:   added,
	}
	if row.Featured.Valid {
		v := row.Featured.Bool
		l.Featured = &v
	}
	if row.Image.Valid && row.Image.String != "" {
		v := row.Image.String
		l.Image = &v
	}
	if row.Views.Valid {
		v := row.Views.Int64
		l.Views = &v
	}
	if row.Category.Valid {
		if c, ok := domain.ParseCategory(row.Category.String); ok {
			l.Category = &c
		}
	}
	return l, nil
}

// ParseDateAdded accepts a calendar date (UTC midnight) or a full RFC 3339 timestamp.
func ParseDateAdded(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad date_added %q", s)
	}
	return t, nil
}
