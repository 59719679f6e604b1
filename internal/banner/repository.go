package banner

import (
	"database/sql"
	"fmt"
)

// Repository provides access to banners.
type Repository interface {
	List(limit int) ([]Banner, error)
}

type InMemoryRepository struct {
	storage []Banner
}

func NewInMemoryRepository(seed []Banner) *InMemoryRepository {
	return &InMemoryRepository{storage: append([]Banner(nil), seed...)}
}

func (r *InMemoryRepository) List(limit int) ([]Banner, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > len(r.storage) {
		limit = len(r.storage)
	}
	out := make([]Banner, limit)
	copy(out, r.storage)
	return out, nil
}

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns banner rows ordered by `ord` then id.
func (r *PostgresRepository) List(limit int) ([]Banner, error) {
	rows, err := r.db.Query(`SELECT banner_id, title, subtitle, image, discount FROM banner ORDER BY COALESCE(ord, 0), banner_id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	defer rows.Close()

	out := make([]Banner, 0)
	for rows.Next() {
		var (
			b        Banner
			subtitle sql.NullString
			image    sql.NullString
			discount sql.NullString
		)
		if err := rows.Scan(&b.ID, &b.Title, &subtitle, &image, &discount); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		b.Subtitle = subtitle.String
		b.Image = image.String
		if discount.Valid {
			b.Discount = &discount.String
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
