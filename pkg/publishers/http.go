package publishers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/pwnwatch-hq/pwnwatch/pkg/transport"
)

// httpPublisher posts alerts to a configured webhook as JSON. The alert id,
// watch id, and kind travel as headers so receivers can dedup and route
// before reading the body.
type httpPublisher struct {
	id      string
	method  string
	url     string
	headers map[string]string
	client  *resty.Client
}

func newHTTPPublisher(_ context.Context, cfg PublisherConfig, _ Logger) (Publisher, error) {
	if cfg.HTTP == nil {
		return nil, fmt.Errorf("publisher %q missing http configuration", cfg.ID)
	}
	return &httpPublisher{
		id:      cfg.ID,
		method:  cfg.HTTP.Method,
		url:     cfg.HTTP.URL,
		headers: cfg.HTTP.Headers,
		client:  transport.NewBackend(time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second),
	}, nil
}

func (h *httpPublisher) ID() string   { return h.id }
func (h *httpPublisher) Type() string { return TypeHTTP }

func (h *httpPublisher) Publish(ctx context.Context, evt Event) error {
	body, err := evt.payload()
	if err != nil {
		return err
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeaders(h.headers).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Alert-Id", evt.ID).
		SetHeader("X-Alert-Kind", evt.Kind).
		SetHeader("X-Watch-Id", evt.WatchID).
		SetBody(body)

	resp, err := req.Execute(h.method, h.url)
	if err != nil {
		return fmt.Errorf("deliver alert %s: %w", evt.ID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook answered %d: %s", resp.StatusCode(), trimBody(resp.Body()))
	}
	return nil
}

// trimBody bounds a webhook reply before it lands in an error message.
func trimBody(body []byte) string {
	const max = 512
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max]
	}
	return s
}
