// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createCustomer = `INSERT INTO customer (first_name, last_name, date_of_birth, email, phone)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id;`

	createVehicle = `INSERT INTO vehicle (customer_id, model_name, year, value)
	VALUES ($1, $2, $3, $4)
	RETURNING id;`

	createQuote = `INSERT INTO quote (customer_id, vehicle_id, quote_amount, valid_from, valid_until, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id;`
)

// psql builds SELECT statements with PostgreSQL-style $N placeholders.
// SQLite accepts the same $N form, so one builder serves both backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildGetCustomerQuery builds the lookup of a single customer by id.
func buildGetCustomerQuery(customerID int64) (string, []any, error) {
	return psql.
		Select("id", "first_name", "last_name", "date_of_birth", "email", "phone").
		From("customer").
		Where(sq.Eq{"id": customerID}).
		ToSql()
}

// buildGetVehicleOfCustomerQuery builds the lookup of a vehicle constrained
// to its owner. Both conditions live in one WHERE clause: a vehicle owned by
// a different customer must look exactly like a missing vehicle.
func buildGetVehicleOfCustomerQuery(vehicleID, customerID int64) (string, []any, error) {
	return psql.
		Select("id", "customer_id", "model_name", "year", "value").
		From("vehicle").
		Where(sq.Eq{"id": vehicleID, "customer_id": customerID}).
		ToSql()
}
