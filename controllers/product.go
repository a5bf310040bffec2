package controllers

import (
	"errors"

	"ecommerce/models"
	"ecommerce/schemas"
	"ecommerce/store"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var p schemas.ProductPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	created, err := h.store.CreateProduct(c.Context(), models.Product{Name: *p.Name, Price: *p.Price})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) GetProducts(c *fiber.Ctx) error {
	products, err := h.store.ListProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(products)
}

func (h *Handler) GetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	product, err := h.store.GetProduct(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(product)
}

// UpdateProduct applies a partial update: only fields present in the body
// change, the rest keep their stored values.
func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	var p schemas.ProductPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, true); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	updated, err := h.store.UpdateProduct(c.Context(), id, p.Name, p.Price)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(updated)
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := h.store.DeleteProduct(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product deleted successfully"})
}
