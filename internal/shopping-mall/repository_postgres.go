package shoppingmall

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

const mallColumns = `mall_id, name, image, address, latitude, longitude, schedule, phone, promotions`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(limit int) ([]Mall, error) {
	rows, err := r.db.Query(`SELECT `+mallColumns+` FROM shopping_mall ORDER BY COALESCE(ord, 0), mall_id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list malls: %w", err)
	}
	defer rows.Close()

	out := make([]Mall, 0)
	for rows.Next() {
		m, err := scanMall(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mall: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list malls: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id string) (Mall, error) {
	m, err := scanMall(r.db.QueryRow(`SELECT `+mallColumns+` FROM shopping_mall WHERE mall_id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Mall{}, ErrNotFound
		}
		return Mall{}, fmt.Errorf("get mall %s: %w", id, err)
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMall(row rowScanner) (Mall, error) {
	var (
		m          Mall
		image      sql.NullString
		lat, lng   sql.NullFloat64
		schedule   sql.NullString
		phone      sql.NullString
		promotions []string
	)
	if err := row.Scan(&m.ID, &m.Name, &image, &m.Address, &lat, &lng, &schedule, &phone, pq.Array(&promotions)); err != nil {
		return Mall{}, err
	}
	m.Image = image.String
	// a mall without both coordinates is simply not shown on the map
	if lat.Valid && lng.Valid {
		m.Coordinates = &Coordinates{Latitude: lat.Float64, Longitude: lng.Float64}
	}
	m.Schedule = schedule.String
	m.Phone = phone.String
	if promotions == nil {
		promotions = []string{}
	}
	m.Promotions = promotions
	return m, nil
}
