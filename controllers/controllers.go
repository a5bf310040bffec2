package controllers

import (
	"context"

	"ecommerce/models"

	"github.com/rs/zerolog"
)

// Store is what the handlers need from the storage layer. Every cross-entity
// fetch is an explicit call; nothing is lazy-loaded.
type Store interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int) (models.Customer, error)
	CreateCustomer(ctx context.Context, cus models.Customer) error
	UpdateCustomer(ctx context.Context, id int, cus models.Customer) error
	DeleteCustomer(ctx context.Context, id int) error

	AccountsByCustomer(ctx context.Context, customerID int) ([]models.CustomerAccount, error)
	CreateAccount(ctx context.Context, acc models.CustomerAccount) (models.CustomerAccount, error)
	UpdateAccount(ctx context.Context, id int, username, password *string) (models.CustomerAccount, error)
	DeleteAccount(ctx context.Context, id int) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, id int, name *string, price *float64) (models.Product, error)
	DeleteProduct(ctx context.Context, id int) error

	CreateOrder(ctx context.Context, o models.Order) (int, error)
	GetOrder(ctx context.Context, id int) (models.Order, error)
}

// Handler carries the storage handle and logger into every request handler.
type Handler struct {
	store Store
	log   zerolog.Logger
}

func New(store Store, log zerolog.Logger) *Handler {
	return &Handler{store: store, log: log}
}
