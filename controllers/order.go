package controllers

import (
	"errors"

	"ecommerce/models"
	"ecommerce/schemas"
	"ecommerce/store"

	"github.com/gofiber/fiber/v2"
)

// PlaceOrder validates the body and inserts the order with its product
// associations in one transaction. The customer and product ids are not
// pre-checked for existence; a missing reference surfaces as the storage
// constraint failure.
func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	var p schemas.OrderPayload
	if errs := schemas.Bind(c.Body(), &p); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}
	if errs := schemas.Check(p, false); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errs)
	}

	orderDate, err := p.ParseOrderDate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(schemas.Errors{"order_date": "must be a valid timestamp"})
	}

	order := models.Order{
		OrderDate:  orderDate,
		CustomerID: *p.CustomerID,
		Products:   *p.Products,
	}
	id, err := h.store.CreateOrder(c.Context(), order)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	h.log.Info().Int("order_id", id).Msg("order placed")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Order placed successfully"})
}

func (h *Handler) GetOrderByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	order, err := h.store.GetOrder(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(order)
}

// TrackOrder returns the tracking summary. Status and the expected delivery
// date are never written anywhere, so they come back at their defaults.
func (h *Handler) TrackOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	order, err := h.store.GetOrder(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(models.OrderTracking{
		ID:                   order.ID,
		OrderDate:            order.OrderDate,
		Status:               order.Status,
		ExpectedDeliveryDate: order.ExpectedDeliveryDate,
	})
}
