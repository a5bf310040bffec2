package controllers

import (
	"errors"

	"ecommerce/models"
	"ecommerce/schemas"
	"ecommerce/store"

	"github.com/gofiber/fiber/v2"
)

// CreateAccount creates an account under an existing customer.
func (h *Handler) CreateAccount(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customer_id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	if _, err := h.store.GetCustomer(c.Context(), customerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var p schemas.AccountPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	acc := models.CustomerAccount{
		Username:   *p.Username,
		Password:   *p.Password,
		CustomerID: customerID,
	}
	created, err := h.store.CreateAccount(c.Context(), acc)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetAccounts lists the accounts of an existing customer. The data model
// implies at most one, but the zero-or-many case is served as a list.
func (h *Handler) GetAccounts(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customer_id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	if _, err := h.store.GetCustomer(c.Context(), customerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	accounts, err := h.store.AccountsByCustomer(c.Context(), customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(accounts)
}

// UpdateAccount applies a partial update: only fields present in the body
// change, the rest keep their stored values.
func (h *Handler) UpdateAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
	}

	var p schemas.AccountPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, true); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	updated, err := h.store.UpdateAccount(c.Context(), id, p.Username, p.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(updated)
}

func (h *Handler) DeleteAccount(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
	}

	if err := h.store.DeleteAccount(c.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer account not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Customer account deleted successfully"})
}
