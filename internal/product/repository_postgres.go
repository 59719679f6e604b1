package product

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository reads the catalog from the `product` table. It never
// writes; the catalog is maintained outside this service.
type PostgresRepository struct {
	db *sql.DB
}

const (
	productColumns = `product_id, name, price, original_price, discount, image, category, brand, rating, review_count, sizes, colors, is_new, is_sale`

	listProductsQuery = `
		SELECT ` + productColumns + `
		FROM product
		ORDER BY COALESCE(ord, 0), product_id
	`
	getProductByIDQuery = `
		SELECT ` + productColumns + `
		FROM product
		WHERE product_id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(getProductByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var (
		p             Product
		originalPrice sql.NullInt64
		discount      sql.NullInt64
		image         sql.NullString
		sizes         []string
		colors        []string
		isNew         sql.NullBool
		isSale        sql.NullBool
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &originalPrice, &discount, &image, &p.Category, &p.Brand,
		&p.Rating, &p.ReviewCount, pq.Array(&sizes), pq.Array(&colors), &isNew, &isSale); err != nil {
		return Product{}, err
	}
	if originalPrice.Valid {
		p.OriginalPrice = ptrInt(int(originalPrice.Int64))
	}
	if discount.Valid {
		p.Discount = ptrInt(int(discount.Int64))
	}
	p.Image = image.String
	if sizes == nil {
		sizes = []string{}
	}
	if colors == nil {
		colors = []string{}
	}
	p.Sizes = sizes
	p.Colors = colors
	p.IsNew = isNew.Valid && isNew.Bool
	p.IsSale = isSale.Valid && isSale.Bool
	return p, nil
}
