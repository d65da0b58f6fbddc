package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"shootflow/internal/pkg/config"
	"shootflow/internal/pkg/errs"
)

// WebhookDelivery posts messages to the notification service's webhook
// endpoint. The service's own wire format beyond this envelope is not our
// concern.
type WebhookDelivery struct {
	url    string
	client *http.Client
}

func NewWebhookDelivery(cfg config.NotifyConfig) *WebhookDelivery {
	return &WebhookDelivery{
		url:    cfg.WebhookURL,
		client: &http.Client{Timeout: cfg.SendTimeout},
	}
}

type webhookResponse struct {
	MessageID string `json:"message_id"`
}

func (d *WebhookDelivery) Send(ctx context.Context, msg Message) (string, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return "", errs.Wrap(err, "failed to encode notification")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDeliveryFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Mark(errs.Newf("notification service returned %d", resp.StatusCode), errs.ErrDeliveryFailed)
	}

	var decoded webhookResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errs.Mark(err, errs.ErrDeliveryFailed)
	}
	return decoded.MessageID, nil
}
