// Package postgres implements the store interfaces on top of a
// PostgreSQL database accessed through database/sql with the pgx driver.
// It owns the translation of driver-level failures into the sentinel
// errors defined by the store package.
package postgres
