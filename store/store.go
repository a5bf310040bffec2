// Package store holds every SQL statement in the application, one query
// function per operation. Uniqueness and foreign-key integrity are left to
// the database; a constraint violation comes back as the driver error.
package store

import (
	"errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

// ErrNotFound reports that the referenced row does not exist.
var ErrNotFound = errors.New("record not found")

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
