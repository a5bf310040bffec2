package controllers_test

import (
	"net/http"
	"testing"

	"ecommerce/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	fs := newFakeStore()
	app := newTestApp(fs)

	resp := request(t, app, http.MethodPost, "/product", `{"name":"Keyboard","price":49.99}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"id":    float64(1),
		"name":  "Keyboard",
		"price": 49.99,
	}, decodeMap(t, resp))
}

// There is no non-negativity check on price.
func TestCreateProductNegativePrice(t *testing.T) {
	app := newTestApp(newFakeStore())

	resp := request(t, app, http.MethodPost, "/product", `{"name":"Refund","price":-5}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCreateProductValidation(t *testing.T) {
	fs := newFakeStore()
	app := newTestApp(fs)

	resp := request(t, app, http.MethodPost, "/product", `{"name":"Keyboard"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"price": "is required"}, decodeMap(t, resp))
	assert.Empty(t, fs.products)
}

func TestCreateProductWrongType(t *testing.T) {
	app := newTestApp(newFakeStore())

	resp := request(t, app, http.MethodPost, "/product", `{"name":"Keyboard","price":"cheap"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"price": "must be of type number"}, decodeMap(t, resp))
}

func TestGetProducts(t *testing.T) {
	fs := newFakeStore()
	fs.products[1] = models.Product{ID: 1, Name: "Keyboard", Price: 49.99}
	fs.products[2] = models.Product{ID: 2, Name: "Mouse", Price: 19.99}
	app := newTestApp(fs)

	resp := request(t, app, http.MethodGet, "/product", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeList(t, resp)
	require.Len(t, products, 2)
	assert.Equal(t, "Keyboard", products[0]["name"])
	assert.Equal(t, "Mouse", products[1]["name"])
}

func TestGetProductByID(t *testing.T) {
	fs := newFakeStore()
	fs.products[1] = models.Product{ID: 1, Name: "Keyboard", Price: 49.99}
	app := newTestApp(fs)

	resp := request(t, app, http.MethodGet, "/product/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"id":    float64(1),
		"name":  "Keyboard",
		"price": 49.99,
	}, decodeMap(t, resp))

	resp = request(t, app, http.MethodGet, "/product/9", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, map[string]any{"error": "Product not found"}, decodeMap(t, resp))
}

// Partial-update law: a body with only price leaves the name alone.
func TestUpdateProductPartial(t *testing.T) {
	fs := newFakeStore()
	fs.products[1] = models.Product{ID: 1, Name: "Keyboard", Price: 49.99}
	app := newTestApp(fs)

	resp := request(t, app, http.MethodPut, "/product/1", `{"price":39.99}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{
		"id":    float64(1),
		"name":  "Keyboard",
		"price": 39.99,
	}, decodeMap(t, resp))
}

func TestUpdateProductNotFound(t *testing.T) {
	app := newTestApp(newFakeStore())

	resp := request(t, app, http.MethodPut, "/product/9", `{"price":39.99}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteProduct(t *testing.T) {
	fs := newFakeStore()
	fs.products[1] = models.Product{ID: 1, Name: "Keyboard", Price: 49.99}
	app := newTestApp(fs)

	resp := request(t, app, http.MethodDelete, "/product/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"message": "Product deleted successfully"}, decodeMap(t, resp))

	resp = request(t, app, http.MethodDelete, "/product/1", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
