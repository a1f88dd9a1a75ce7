// Package store defines the persistence interfaces for the bookstore
// service together with the sentinel errors every implementation must
// return. Concrete implementations live under internal/platform.
package store
