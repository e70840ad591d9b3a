// Package bookings implements the booking ledger: an append-only store of
// appointment requests with sensitive fields encrypted at rest, and the
// service orchestrating validation, persistence and notifications.
package bookings

import (
	"context"

	"github.com/dmitrijs2005/bookline/internal/server/models"
)

// Repository is the persistence contract for the booking ledger.
type Repository interface {
	// Create appends one booking row and returns the assigned identifier.
	// Sensitive fields are encrypted before the row is written; the row
	// either fully exists with all columns or does not exist at all.
	Create(ctx context.Context, req *models.BookingRequest) (int64, error)

	// SelectAll returns every booking ordered by appointment_time ascending,
	// with sensitive fields decrypted. A field that cannot be recovered is
	// replaced by its decrypt sentinel; it never fails the row or the listing.
	SelectAll(ctx context.Context) ([]*models.Booking, error)
}
