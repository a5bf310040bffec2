// Package schemas defines the shape of acceptable input for each entity.
// Payload fields are pointers so a missing field can be told apart from a
// zero value, which is what makes partial updates possible.
package schemas

import (
	"time"
)

// CustomerPayload carries a full customer body. All three fields are
// required on create and update.
type CustomerPayload struct {
	Name  *string `json:"name" validate:"required"`
	Email *string `json:"email" validate:"required"`
	Phone *string `json:"phone" validate:"required"`
}

// AccountPayload carries a customer account body. Both fields are required
// on create; updates run in partial mode and apply only present fields.
type AccountPayload struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// ProductPayload carries a product body. Updates run in partial mode.
type ProductPayload struct {
	Name  *string  `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

// OrderPayload carries an order body. The id field is accepted but ignored
// on input.
type OrderPayload struct {
	ID         *int    `json:"id"`
	OrderDate  *string `json:"order_date" validate:"required"`
	CustomerID *int    `json:"customer_id" validate:"required"`
	Products   *[]int  `json:"products" validate:"required"`
}

// ParseOrderDate interprets the order_date field as an RFC 3339 timestamp.
// Check must have passed before calling it.
func (p OrderPayload) ParseOrderDate() (time.Time, error) {
	return time.Parse(time.RFC3339, *p.OrderDate)
}
