// Package db wires the PostgreSQL connection, runs migrations and hands out
// the repositories backed by it.
package db

import "github.com/dmitrijs2005/bookline/internal/server/bookings"

// RepositoryManager owns the database handle and the repositories built on it.
type RepositoryManager interface {
	Bookings() bookings.Repository
	Close() error
}
