package store

import (
	"context"
	"errors"

	"ecommerce/models"

	"github.com/jackc/pgx/v4"
)

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, name, email, phone
        FROM customer
        ORDER BY id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var cus models.Customer
		if err := rows.Scan(&cus.ID, &cus.Name, &cus.Email, &cus.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, cus)
	}

	return customers, rows.Err()
}

func (s *Store) GetCustomer(ctx context.Context, id int) (models.Customer, error) {
	var cus models.Customer
	err := s.pool.QueryRow(ctx, `
        SELECT id, name, email, phone
        FROM customer
        WHERE id = $1
    `, id).Scan(&cus.ID, &cus.Name, &cus.Email, &cus.Phone)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Customer{}, ErrNotFound
	}
	return cus, err
}

func (s *Store) CreateCustomer(ctx context.Context, cus models.Customer) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO customer (name, email, phone) VALUES ($1, $2, $3)`,
		cus.Name, cus.Email, cus.Phone,
	)
	return err
}

func (s *Store) UpdateCustomer(ctx context.Context, id int, cus models.Customer) error {
	commandTag, err := s.pool.Exec(ctx,
		`UPDATE customer SET name=$1, email=$2, phone=$3 WHERE id=$4`,
		cus.Name, cus.Email, cus.Phone, id,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id int) error {
	commandTag, err := s.pool.Exec(ctx, `DELETE FROM customer WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
