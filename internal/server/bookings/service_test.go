package bookings

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/dmitrijs2005/bookline/internal/common"
	"github.com/dmitrijs2005/bookline/internal/logging"
	"github.com/dmitrijs2005/bookline/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created []*models.BookingRequest
	nextID  int64
	err     error
	listing []*models.Booking
	listErr error
}

func (f *fakeRepo) Create(ctx context.Context, req *models.BookingRequest) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, req)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeRepo) SelectAll(ctx context.Context) ([]*models.Booking, error) {
	return f.listing, f.listErr
}

type fakeNotifier struct {
	sent      []string
	delivered bool
}

func (f *fakeNotifier) Send(ctx context.Context, to, text string) bool {
	f.sent = append(f.sent, fmt.Sprintf("%s|%s", to, text))
	return f.delivered
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validRequest() *models.BookingRequest {
	return &models.BookingRequest{
		Name:            gofakeit.Name(),
		Phone:           gofakeit.Phone(),
		Email:           gofakeit.Email(),
		Service:         "Swedish Massage",
		AppointmentTime: "2024-05-01T10:00",
		Notes:           gofakeit.Sentence(5),
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{delivered: true}
	s := NewService(repo, notifier, "", testLogger())

	req := &models.BookingRequest{
		Name:            "Ada",
		Phone:           "+15551234567",
		Service:         "Swedish Massage",
		AppointmentTime: "2024-05-01T10:00",
	}

	id, err := s.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Positive(t, id)
	require.Len(t, repo.created, 1)

	// only the client confirmation without an admin recipient
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "+15551234567|Hi Ada, your appointment for Swedish Massage is confirmed on 2024-05-01T10:00.", notifier.sent[0])
}

func TestSubmit_AdminAlert(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{delivered: true}
	s := NewService(repo, notifier, "+15550000000", testLogger())

	req := &models.BookingRequest{
		Name:            "Ada",
		Phone:           "+15551234567",
		Service:         "Swedish Massage",
		AppointmentTime: "2024-05-01T10:00",
	}

	id, err := s.Submit(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, notifier.sent, 2)
	assert.Equal(t, fmt.Sprintf("+15550000000|New booking #%d: Ada booked Swedish Massage at 2024-05-01T10:00.", id), notifier.sent[1])
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		field string
		strip func(*models.BookingRequest)
	}{
		{"name", func(r *models.BookingRequest) { r.Name = "" }},
		{"phone", func(r *models.BookingRequest) { r.Phone = "" }},
		{"service", func(r *models.BookingRequest) { r.Service = "" }},
		{"appointment_time", func(r *models.BookingRequest) { r.AppointmentTime = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{delivered: true}
			s := NewService(repo, notifier, "+15550000000", testLogger())

			req := validRequest()
			tc.strip(req)

			_, err := s.Submit(context.Background(), req)

			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)

			// rejection must leave no side effects
			assert.Empty(t, repo.created)
			assert.Empty(t, notifier.sent)
		})
	}
}

func TestSubmit_OptionalFieldsMayBeEmpty(t *testing.T) {
	repo := &fakeRepo{}
	s := NewService(repo, &fakeNotifier{delivered: true}, "", testLogger())

	req := validRequest()
	req.Email = ""
	req.Notes = ""

	_, err := s.Submit(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, repo.created, 1)
}

func TestSubmit_StorageErrorPropagates(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}
	notifier := &fakeNotifier{delivered: true}
	s := NewService(repo, notifier, "+15550000000", testLogger())

	_, err := s.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// nothing persisted, nothing sent
	assert.Empty(t, notifier.sent)
}

func TestSubmit_UndeliveredNotificationDoesNotFailBooking(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{delivered: false}
	s := NewService(repo, notifier, "+15550000000", testLogger())

	id, err := s.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Len(t, notifier.sent, 2)
}

func TestListAll_Delegates(t *testing.T) {
	listing := []*models.Booking{
		{ID: 1, Name: "Ada", AppointmentTime: "2024-05-01T10:00"},
		{ID: 2, Name: "Grace", AppointmentTime: "2024-05-02T08:00"},
	}
	repo := &fakeRepo{listing: listing}
	s := NewService(repo, &fakeNotifier{}, "", testLogger())

	got, err := s.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listing, got)
}

func TestListAll_Error(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("db gone")}
	s := NewService(repo, &fakeNotifier{}, "", testLogger())

	_, err := s.ListAll(context.Background())
	require.Error(t, err)
}
