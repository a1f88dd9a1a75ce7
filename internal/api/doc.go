// Package api contains the HTTP handlers for the bookstore service.
// Handlers are thin adapters: they decode and validate request bodies,
// invoke a store or service operation, and map the result onto an HTTP
// status and JSON body. No business logic lives here.
package api
