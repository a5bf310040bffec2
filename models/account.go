package models

// CustomerAccount holds the login record for a customer. The password is
// stored and returned as-is.
type CustomerAccount struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	CustomerID int    `json:"customer_id"`
}
