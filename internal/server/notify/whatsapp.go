package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/bookline/internal/logging"
)

// DefaultGraphEndpoint is the WhatsApp Cloud API base URL.
const DefaultGraphEndpoint = "https://graph.facebook.com/v20.0"

// WhatsAppNotifier sends messages through the WhatsApp Cloud API. When the
// access token or phone number ID is not configured, sends are simulated:
// the message is logged and reported as not delivered, so a development
// deployment works without credentials.
type WhatsAppNotifier struct {
	token    string
	phoneID  string
	endpoint string
	client   *http.Client
	logger   logging.Logger
}

func NewWhatsAppNotifier(token, phoneID string, timeout time.Duration, logger logging.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		token:    token,
		phoneID:  phoneID,
		endpoint: DefaultGraphEndpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.With("module", "whatsapp"),
	}
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppText struct {
	Body string `json:"body"`
}

func (n *WhatsAppNotifier) Send(ctx context.Context, to, text string) bool {
	delivered := n.send(ctx, to, text)
	observe("whatsapp", delivered)
	return delivered
}

func (n *WhatsAppNotifier) send(ctx context.Context, to, text string) bool {
	if n.token == "" || n.phoneID == "" {
		n.logger.Info(ctx, "whatsapp send simulated", "to", to, "text", text)
		return false
	}

	payload, err := json.Marshal(whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             whatsAppText{Body: text},
	})
	if err != nil {
		n.logger.Error(ctx, "whatsapp payload marshal failed", "error", err)
		return false
	}

	url := fmt.Sprintf("%s/%s/messages", n.endpoint, n.phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		n.logger.Error(ctx, "whatsapp request build failed", "error", err)
		return false
	}
	req.Header.Set("Authorization", "Bearer "+n.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn(ctx, "whatsapp send failed", "to", to, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		n.logger.Warn(ctx, "whatsapp send rejected", "to", to, "status", resp.StatusCode)
		return false
	}

	return true
}
