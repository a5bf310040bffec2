package store

import (
	"context"
	"errors"

	"ecommerce/models"

	"github.com/jackc/pgx/v4"
)

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, name, price
        FROM product
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) GetProduct(ctx context.Context, id int) (models.Product, error) {
	var p models.Product
	err := s.pool.QueryRow(ctx, `
        SELECT id, name, price
        FROM product
        WHERE id = $1
    `, id).Scan(&p.ID, &p.Name, &p.Price)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (s *Store) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO product (name, price)
        VALUES ($1, $2)
        RETURNING id
    `, p.Name, p.Price).Scan(&p.ID)

	return p, err
}

// UpdateProduct applies only the non-nil fields, leaving the rest unchanged.
func (s *Store) UpdateProduct(ctx context.Context, id int, name *string, price *float64) (models.Product, error) {
	var p models.Product
	err := s.pool.QueryRow(ctx, `
        UPDATE product
        SET name  = COALESCE($1, name),
            price = COALESCE($2, price)
        WHERE id = $3
        RETURNING id, name, price
    `, name, price, id).Scan(&p.ID, &p.Name, &p.Price)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Product{}, ErrNotFound
	}
	return p, err
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	commandTag, err := s.pool.Exec(ctx, `DELETE FROM product WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
