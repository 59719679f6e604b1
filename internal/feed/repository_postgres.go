package feed

import (
	"database/sql"
	"errors"
	"fmt"
)

// PostgresRepository reads feed entries from `feed_entry`, ordered for display.
type PostgresRepository struct {
	db *sql.DB
}

const (
	entryColumns = `entry_id, kind, media_url, thumbnail, product_id, product_name, product_price, product_brand, author_name, author_avatar, likes, comments, shares`

	listEntriesQuery = `
		SELECT ` + entryColumns + `
		FROM feed_entry
		ORDER BY position, entry_id
	`
	getEntryByIDQuery = `
		SELECT ` + entryColumns + `
		FROM feed_entry
		WHERE entry_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Entry, error) {
	rows, err := r.db.Query(listEntriesQuery)
	if err != nil {
		return nil, fmt.Errorf("list feed entries: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feed entry: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list feed entries: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id string) (Entry, error) {
	e, err := scanEntry(r.db.QueryRow(getEntryByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("get feed entry %s: %w", id, err)
	}
	return e, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		e         Entry
		kind      string
		thumbnail sql.NullString
	)
	if err := row.Scan(&e.ID, &kind, &e.MediaURL, &thumbnail,
		&e.Product.ID, &e.Product.Name, &e.Product.Price, &e.Product.Brand,
		&e.Author.Name, &e.Author.Avatar, &e.Likes, &e.Comments, &e.Shares); err != nil {
		return Entry{}, err
	}
	switch MediaKind(kind) {
	case MediaVideo, MediaImage:
		e.Type = MediaKind(kind)
	default:
		return Entry{}, fmt.Errorf("entry %s: unknown media kind %q", e.ID, kind)
	}
	if thumbnail.Valid {
		e.Thumbnail = ptrString(thumbnail.String)
	}
	return e, nil
}
