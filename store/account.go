package store

import (
	"context"
	"errors"

	"ecommerce/models"

	"github.com/jackc/pgx/v4"
)

func (s *Store) AccountsByCustomer(ctx context.Context, customerID int) ([]models.CustomerAccount, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT id, username, password, customer_id
        FROM customer_account
        WHERE customer_id = $1
        ORDER BY id ASC
    `, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.CustomerAccount
	for rows.Next() {
		var acc models.CustomerAccount
		if err := rows.Scan(&acc.ID, &acc.Username, &acc.Password, &acc.CustomerID); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}

func (s *Store) CreateAccount(ctx context.Context, acc models.CustomerAccount) (models.CustomerAccount, error) {
	err := s.pool.QueryRow(ctx, `
        INSERT INTO customer_account (username, password, customer_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `, acc.Username, acc.Password, acc.CustomerID).Scan(&acc.ID)

	return acc, err
}

// UpdateAccount applies only the non-nil fields, leaving the rest unchanged.
func (s *Store) UpdateAccount(ctx context.Context, id int, username, password *string) (models.CustomerAccount, error) {
	var acc models.CustomerAccount
	err := s.pool.QueryRow(ctx, `
        UPDATE customer_account
        SET username = COALESCE($1, username),
            password = COALESCE($2, password)
        WHERE id = $3
        RETURNING id, username, password, customer_id
    `, username, password, id).Scan(&acc.ID, &acc.Username, &acc.Password, &acc.CustomerID)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.CustomerAccount{}, ErrNotFound
	}
	return acc, err
}

func (s *Store) DeleteAccount(ctx context.Context, id int) error {
	commandTag, err := s.pool.Exec(ctx, `DELETE FROM customer_account WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
