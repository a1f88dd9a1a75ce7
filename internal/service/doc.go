// Package service contains application services that coordinate store
// operations, most notably wrapping multi-step writes in transactions.
// Handlers depend on these services rather than on stores directly when
// an operation needs more than a single store call.
package service
