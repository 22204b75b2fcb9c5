package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultEndpoint is the Mandrill send-template API.
const DefaultEndpoint = "https://mandrillapp.com/api/1.0/messages/send-template"

// Sender delivers a template message. The boolean reports whether the mail
// was handed off to the provider.
type Sender interface {
	Send(ctx context.Context, template *Template) (bool, error)
}

// HTTPSender posts templates to the Mandrill API.
type HTTPSender struct {
	client   *http.Client
	endpoint string
}

// NewHTTPSender creates a sender against endpoint. A nil client gets a
// default with a 10 second timeout; an empty endpoint falls back to
// [DefaultEndpoint].
func NewHTTPSender(client *http.Client, endpoint string) *HTTPSender {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HTTPSender{client: client, endpoint: endpoint}
}

// Send posts the template as JSON. Any status other than 200 is an error.
func (s *HTTPSender) Send(ctx context.Context, template *Template) (bool, error) {
	body, err := json.Marshal(template)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("Failed to send HTTP request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("Failed to send email. HTTP Status: %d", resp.StatusCode)
	}
	return true, nil
}

// SenderFunc adapts a function to the [Sender] interface.
type SenderFunc func(ctx context.Context, template *Template) (bool, error)

func (f SenderFunc) Send(ctx context.Context, template *Template) (bool, error) {
	return f(ctx, template)
}
