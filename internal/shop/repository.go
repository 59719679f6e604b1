package shop

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/lib/pq"
)

var ErrNotFound = errors.New("shop not found")

type Repository interface {
	List() ([]Shop, error)
	GetByID(id string) (Shop, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Shop
}

func NewInMemoryRepository(seed []Shop) *InMemoryRepository {
	return &InMemoryRepository{storage: append([]Shop(nil), seed...)}
}

func (r *InMemoryRepository) List() ([]Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shop, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id string) (Shop, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.storage {
		if s.ID == id {
			return s, nil
		}
	}
	return Shop{}, ErrNotFound
}

type PostgresRepository struct {
	db *sql.DB
}

const shopColumns = `shop_id, name, image, logo, addresses, description, rating, review_count, video_count, product_count`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Shop, error) {
	rows, err := r.db.Query(`SELECT ` + shopColumns + ` FROM shop ORDER BY COALESCE(ord, 0), shop_id`)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	defer rows.Close()

	out := make([]Shop, 0)
	for rows.Next() {
		s, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shop: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id string) (Shop, error) {
	s, err := scanShop(r.db.QueryRow(`SELECT `+shopColumns+` FROM shop WHERE shop_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Shop{}, ErrNotFound
		}
		return Shop{}, fmt.Errorf("get shop %s: %w", id, err)
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (Shop, error) {
	var (
		s           Shop
		image, logo sql.NullString
		description sql.NullString
		addresses   []string
	)
	if err := row.Scan(&s.ID, &s.Name, &image, &logo, pq.Array(&addresses), &description,
		&s.Rating, &s.ReviewCount, &s.VideoCount, &s.ProductCount); err != nil {
		return Shop{}, err
	}
	s.Image = image.String
	s.Logo = logo.String
	s.Description = description.String
	if addresses == nil {
		addresses = []string{}
	}
	s.Addresses = addresses
	return s, nil
}
