// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock keeps simple in-memory state and exposes
// error-injection fields so tests can force any failure path.
package mocks
