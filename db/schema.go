package db

// No cascade rules anywhere: deleting a customer with an account or orders
// is blocked by the foreign keys and surfaces as a storage error.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customer (
	    id SERIAL PRIMARY KEY,
	    name TEXT NOT NULL,
	    email TEXT NOT NULL UNIQUE,
	    phone TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS customer_account (
	    id SERIAL PRIMARY KEY,
	    username TEXT NOT NULL UNIQUE,
	    password TEXT NOT NULL,
	    customer_id INTEGER NOT NULL REFERENCES customer (id)
	)`,

	`CREATE TABLE IF NOT EXISTS product (
	    id SERIAL PRIMARY KEY,
	    name TEXT NOT NULL,
	    price DOUBLE PRECISION NOT NULL
	)`,

	// "order" is reserved in SQL, hence orders. status and
	// expected_delivery_date are read by the tracking endpoint but never
	// written, so they keep their defaults.
	`CREATE TABLE IF NOT EXISTS orders (
	    id SERIAL PRIMARY KEY,
	    order_date TIMESTAMPTZ NOT NULL,
	    status TEXT NOT NULL DEFAULT '',
	    expected_delivery_date TIMESTAMPTZ,
	    customer_id INTEGER NOT NULL REFERENCES customer (id)
	)`,

	`CREATE TABLE IF NOT EXISTS order_product (
	    order_id INTEGER NOT NULL REFERENCES orders (id),
	    product_id INTEGER NOT NULL REFERENCES product (id),
	    PRIMARY KEY (order_id, product_id)
	)`,
}
