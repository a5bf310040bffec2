package controllers

import (
	"errors"

	"ecommerce/models"
	"ecommerce/schemas"
	"ecommerce/store"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.store.ListCustomers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(customers)
}

func (h *Handler) CreateCustomer(c *fiber.Ctx) error {
	var p schemas.CustomerPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	cus := models.Customer{Name: *p.Name, Email: *p.Email, Phone: *p.Phone}
	if err := h.store.CreateCustomer(c.Context(), cus); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "customer added"})
}

func (h *Handler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	if _, err := h.store.GetCustomer(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var p schemas.CustomerPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	cus := models.Customer{Name: *p.Name, Email: *p.Email, Phone: *p.Phone}
	if err := h.store.UpdateCustomer(c.Context(), id, cus); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Customer details updated"})
}

func (h *Handler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	if err := h.store.DeleteCustomer(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Customer removed"})
}
