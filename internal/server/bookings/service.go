package bookings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookline/internal/common"
	"github.com/dmitrijs2005/bookline/internal/logging"
	"github.com/dmitrijs2005/bookline/internal/server/models"
	"github.com/dmitrijs2005/bookline/internal/server/notify"
)

// Service orchestrates booking submissions: validation, persistence and the
// two best-effort notification sends. Notification outcomes are observable
// in logs and metrics only; they never affect the persisted booking or the
// returned identifier.
type Service struct {
	repo       Repository
	dispatcher notify.Notifier
	adminTo    string
	logger     logging.Logger
}

// NewService wires the booking service. adminTo is the optional admin
// recipient for new-booking alerts; when empty, only the client is notified.
func NewService(repo Repository, dispatcher notify.Notifier, adminTo string, logger logging.Logger) *Service {
	return &Service{
		repo:       repo,
		dispatcher: dispatcher,
		adminTo:    adminTo,
		logger:     logger.With("module", "bookings"),
	}
}

// requiredFields in form order; email and notes are optional.
var requiredFields = []struct {
	name  string
	value func(*models.BookingRequest) string
}{
	{"name", func(r *models.BookingRequest) string { return r.Name }},
	{"phone", func(r *models.BookingRequest) string { return r.Phone }},
	{"service", func(r *models.BookingRequest) string { return r.Service }},
	{"appointment_time", func(r *models.BookingRequest) string { return r.AppointmentTime }},
}

func validate(req *models.BookingRequest) error {
	for _, f := range requiredFields {
		if f.value(req) == "" {
			return common.NewValidationError(f.name)
		}
	}
	return nil
}

// Submit validates the request, appends it to the ledger and fires the
// client confirmation plus the optional admin alert. A *common.ValidationError
// is returned before any side effect; storage failures are propagated.
func (s *Service) Submit(ctx context.Context, req *models.BookingRequest) (int64, error) {
	if err := validate(req); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("error saving booking: %w", err)
	}

	s.logger.Info(ctx, "booking saved", "id", id, "service", req.Service)

	s.notify(ctx, req.Phone, fmt.Sprintf(
		"Hi %s, your appointment for %s is confirmed on %s.",
		req.Name, req.Service, req.AppointmentTime))

	if s.adminTo != "" {
		s.notify(ctx, s.adminTo, fmt.Sprintf(
			"New booking #%d: %s booked %s at %s.",
			id, req.Name, req.Service, req.AppointmentTime))
	}

	return id, nil
}

func (s *Service) notify(ctx context.Context, to, text string) {
	if delivered := s.dispatcher.Send(ctx, to, text); !delivered {
		s.logger.Warn(ctx, "notification not delivered", "to", to)
	}
}

// ListAll returns the decrypted ledger ordered by appointment time.
func (s *Service) ListAll(ctx context.Context) ([]*models.Booking, error) {
	return s.repo.SelectAll(ctx)
}
