package models

import "time"

// Order links a customer to a set of products via the order_product join
// table. Status and ExpectedDeliveryDate exist on every read path but no
// write path assigns them, so they stay at their defaults.
type Order struct {
	ID                   int        `json:"id"`
	OrderDate            time.Time  `json:"order_date"`
	Status               string     `json:"status"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
	CustomerID           int        `json:"customer_id"`
	Products             []int      `json:"products"`
}

// OrderTracking is the summary returned by the tracking endpoint.
type OrderTracking struct {
	ID                   int        `json:"id"`
	OrderDate            time.Time  `json:"order_date"`
	Status               string     `json:"status"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date"`
}
