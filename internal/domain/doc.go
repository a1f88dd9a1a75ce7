// Package domain defines the core business entities of the bookstore
// service and the validation errors they can produce. The package is
// deliberately free of storage and transport concerns so that entities
// can be shared by the store, service, and API layers.
package domain
