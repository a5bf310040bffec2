package routes

import (
	"ecommerce/controllers"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *controllers.Handler) {

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("E Commerce API")
	})

	//customers
	app.Get("/customer", h.GetCustomers)
	app.Post("/customer", h.CreateCustomer)
	app.Put("/customer/:id", h.UpdateCustomer)
	app.Delete("/customers/:id", h.DeleteCustomer)

	//customer accounts
	app.Post("/customer/:customer_id/account", h.CreateAccount)
	app.Get("/customer/:customer_id/account", h.GetAccounts)
	app.Put("/customer/account/:id", h.UpdateAccount)
	app.Delete("/customer/account/:id", h.DeleteAccount)

	//products
	app.Post("/product", h.CreateProduct)
	app.Get("/product", h.GetProducts)
	app.Get("/product/:id", h.GetProductByID)
	app.Put("/product/:id", h.UpdateProduct)
	app.Delete("/product/:id", h.DeleteProduct)

	//orders
	app.Post("/orders", h.PlaceOrder)
	app.Get("/orders/:id", h.GetOrderByID)
	app.Get("/orders/:id/track", h.TrackOrder)
}
