package category

import (
	"database/sql"
	"fmt"
)

// Repository provides access to categories.
type Repository interface {
	List(limit int) ([]Category, error)
}

type InMemoryRepository struct {
	storage []Category
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	return &InMemoryRepository{storage: append([]Category(nil), seed...)}
}

func (r *InMemoryRepository) List(limit int) ([]Category, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > len(r.storage) {
		limit = len(r.storage)
	}
	out := make([]Category, limit)
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

// List returns category rows ordered by `ord` then id.
func (r *PostgresRepository) List(limit int) ([]Category, error) {
	rows, err := r.db.Query(`SELECT category_id, name, icon, product_count FROM category ORDER BY COALESCE(ord, 0), category_id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	out := make([]Category, 0)
	for rows.Next() {
		var (
			c     Category
			icon  sql.NullString
			count sql.NullInt64
		)
		if err := rows.Scan(&c.ID, &c.Name, &icon, &count); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Icon = icon.String
		c.Count = int(count.Int64)
		out = append(out, c)
	}
	return out, rows.Err()
}
