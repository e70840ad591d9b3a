// Package models defines the server-side domain types for the booking ledger.
package models

// Booking is one client appointment request. Once persisted it is immutable:
// the ledger is append-only and has no update or delete path.
//
// Name, Phone, Email and Notes are sensitive. In a Booking returned from the
// store they hold plaintext (or a decrypt sentinel); at rest they are stored
// as cipher tokens. Service and AppointmentTime are kept in clear so the
// ledger can be sorted and filtered without the key.
type Booking struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Service         string `json:"service"`
	AppointmentTime string `json:"appointment_time"`
	Notes           string `json:"notes"`
	CreatedAt       string `json:"created_at"`
}

// BookingRequest carries the raw submission from the booking form.
// Email and Notes are optional; the rest are required.
type BookingRequest struct {
	Name            string
	Phone           string
	Email           string
	Service         string
	AppointmentTime string
	Notes           string
}

// Services offered on the booking form. The service label is stored in clear.
var Services = []string{
	"Swedish Massage",
	"Deep Tissue Massage",
	"Sports Massage",
	"Student Practice Session",
}
