package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookline/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestWhatsAppNotifier_SimulatedWithoutCredentials(t *testing.T) {
	n := NewWhatsAppNotifier("", "", 10*time.Second, testLogger())

	delivered := n.Send(context.Background(), "+15551234567", "hello")
	assert.False(t, delivered)
}

func TestWhatsAppNotifier_SendSuccess(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody whatsAppMessage

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier("tok", "12345", 10*time.Second, testLogger())
	n.endpoint = srv.URL

	delivered := n.Send(context.Background(), "+15551234567", "your appointment is confirmed")
	assert.True(t, delivered)
	assert.Equal(t, "/12345/messages", gotPath)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "whatsapp", gotBody.MessagingProduct)
	assert.Equal(t, "+15551234567", gotBody.To)
	assert.Equal(t, "your appointment is confirmed", gotBody.Text.Body)
}

func TestWhatsAppNotifier_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := NewWhatsAppNotifier("bad-token", "12345", 10*time.Second, testLogger())
	n.endpoint = srv.URL

	assert.False(t, n.Send(context.Background(), "+15551234567", "hello"))
}

func TestWhatsAppNotifier_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	n := NewWhatsAppNotifier("tok", "12345", time.Second, testLogger())
	n.endpoint = srv.URL

	assert.False(t, n.Send(context.Background(), "+15551234567", "hello"))
}
