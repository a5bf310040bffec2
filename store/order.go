package store

import (
	"context"
	"errors"

	"ecommerce/models"

	"github.com/jackc/pgx/v4"
)

// CreateOrder inserts the order row and its product associations in one
// transaction. The customer and product ids are not pre-checked; a dangling
// reference fails the whole request at the foreign-key constraint.
func (s *Store) CreateOrder(ctx context.Context, o models.Order) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int
	err = tx.QueryRow(ctx, `
        INSERT INTO orders (order_date, customer_id)
        VALUES ($1, $2)
        RETURNING id
    `, o.OrderDate, o.CustomerID).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, productID := range o.Products {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_product (order_id, product_id) VALUES ($1, $2)`,
			id, productID,
		)
		if err != nil {
			return 0, err
		}
	}

	return id, tx.Commit(ctx)
}

func (s *Store) GetOrder(ctx context.Context, id int) (models.Order, error) {
	var o models.Order
	err := s.pool.QueryRow(ctx, `
        SELECT id, order_date, status, expected_delivery_date, customer_id
        FROM orders
        WHERE id = $1
    `, id).Scan(&o.ID, &o.OrderDate, &o.Status, &o.ExpectedDeliveryDate, &o.CustomerID)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT product_id FROM order_product WHERE order_id = $1 ORDER BY product_id ASC`, id)
	if err != nil {
		return models.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var productID int
		if err := rows.Scan(&productID); err != nil {
			return models.Order{}, err
		}
		o.Products = append(o.Products, productID)
	}

	return o, rows.Err()
}
