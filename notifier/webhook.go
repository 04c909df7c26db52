package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"code.cloudfoundry.org/lager"

	"obsengine/helpers"
	"obsengine/models"
)

// WebhookChannel posts notification payloads to an HTTP endpoint. Any
// status outside 2xx counts as a failed attempt.
type WebhookChannel struct {
	logger lager.Logger
	name   string
	url    string
	client *http.Client
}

func NewWebhookChannel(logger lager.Logger, name string, url string, tlsCerts *models.TLSCerts) (*WebhookChannel, error) {
	client, err := helpers.CreateHTTPClient(tlsCerts)
	if err != nil {
		return nil, err
	}
	return &WebhookChannel{
		logger: logger.Session("webhook-channel", lager.Data{"name": name}),
		name:   name,
		url:    url,
		client: client,
	}, nil
}

func (w *WebhookChannel) Name() string {
	return w.name
}

func (w *WebhookChannel) Send(payload *models.NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest("POST", w.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Error("failed-to-post", err, lager.Data{"fingerprint": payload.Fingerprint})
		return err
	}
	defer func() {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook %s responded %d", w.name, resp.StatusCode)
	}
	return nil
}
