package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"ecommerce/controllers"
	"ecommerce/models"
	"ecommerce/routes"
	"ecommerce/store"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory Store used to exercise the handlers without a
// database. Setting err makes every call fail with it, which stands in for
// storage-level constraint violations.
type fakeStore struct {
	customers map[int]models.Customer
	accounts  map[int]models.CustomerAccount
	products  map[int]models.Product
	orders    map[int]models.Order
	serial    int
	err       error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers: map[int]models.Customer{},
		accounts:  map[int]models.CustomerAccount{},
		products:  map[int]models.Product{},
		orders:    map[int]models.Order{},
	}
}

func (f *fakeStore) nextID() int {
	f.serial++
	return f.serial
}

func (f *fakeStore) ListCustomers(_ context.Context) ([]models.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Customer
	for _, cus := range f.customers {
		out = append(out, cus)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetCustomer(_ context.Context, id int) (models.Customer, error) {
	if f.err != nil {
		return models.Customer{}, f.err
	}
	cus, ok := f.customers[id]
	if !ok {
		return models.Customer{}, store.ErrNotFound
	}
	return cus, nil
}

func (f *fakeStore) CreateCustomer(_ context.Context, cus models.Customer) error {
	if f.err != nil {
		return f.err
	}
	cus.ID = f.nextID()
	f.customers[cus.ID] = cus
	return nil
}

func (f *fakeStore) UpdateCustomer(_ context.Context, id int, cus models.Customer) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.customers[id]; !ok {
		return store.ErrNotFound
	}
	cus.ID = id
	f.customers[id] = cus
	return nil
}

func (f *fakeStore) DeleteCustomer(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.customers[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.customers, id)
	return nil
}

func (f *fakeStore) AccountsByCustomer(_ context.Context, customerID int) ([]models.CustomerAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.CustomerAccount
	for _, acc := range f.accounts {
		if acc.CustomerID == customerID {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) CreateAccount(_ context.Context, acc models.CustomerAccount) (models.CustomerAccount, error) {
	if f.err != nil {
		return models.CustomerAccount{}, f.err
	}
	acc.ID = f.nextID()
	f.accounts[acc.ID] = acc
	return acc, nil
}

func (f *fakeStore) UpdateAccount(_ context.Context, id int, username, password *string) (models.CustomerAccount, error) {
	if f.err != nil {
		return models.CustomerAccount{}, f.err
	}
	acc, ok := f.accounts[id]
	if !ok {
		return models.CustomerAccount{}, store.ErrNotFound
	}
	if username != nil {
		acc.Username = *username
	}
	if password != nil {
		acc.Password = *password
	}
	f.accounts[id] = acc
	return acc, nil
}

func (f *fakeStore) DeleteAccount(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.accounts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeStore) ListProducts(_ context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) GetProduct(_ context.Context, id int) (models.Product, error) {
	if f.err != nil {
		return models.Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, store.ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) CreateProduct(_ context.Context, p models.Product) (models.Product, error) {
	if f.err != nil {
		return models.Product{}, f.err
	}
	p.ID = f.nextID()
	f.products[p.ID] = p
	return p, nil
}

func (f *fakeStore) UpdateProduct(_ context.Context, id int, name *string, price *float64) (models.Product, error) {
	if f.err != nil {
		return models.Product{}, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return models.Product{}, store.ErrNotFound
	}
	if name != nil {
		p.Name = *name
	}
	if price != nil {
		p.Price = *price
	}
	f.products[id] = p
	return p, nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeStore) CreateOrder(_ context.Context, o models.Order) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	o.ID = f.nextID()
	f.orders[o.ID] = o
	return o.ID, nil
}

func (f *fakeStore) GetOrder(_ context.Context, id int) (models.Order, error) {
	if f.err != nil {
		return models.Order{}, f.err
	}
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, store.ErrNotFound
	}
	return o, nil
}

func newTestApp(fs *fakeStore) *fiber.App {
	app := fiber.New()
	routes.RegisterRoutes(app, controllers.New(fs, zerolog.Nop()))
	return app
}

func request(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRoot(t *testing.T) {
	app := newTestApp(newFakeStore())

	resp := request(t, app, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "E Commerce API", string(body))
}
