package transport

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

// Resty is the production Getter. The underlying resty client is shared
// across calls so keep-alive connections survive consecutive lookups.
type Resty struct {
	client *resty.Client
}

// NewResty builds a Getter with the given per-request timeout.
func NewResty(timeout time.Duration) *Resty {
	return &Resty{client: newBackend(timeout)}
}

// NewBackend exposes a configured resty client for callers that need verbs
// beyond GET, such as the webhook alert publisher.
func NewBackend(timeout time.Duration) *resty.Client {
	return newBackend(timeout)
}

func newBackend(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}

// Get performs the request and buffers the reply before returning. A non-nil
// error means the exchange itself failed; HTTP error statuses come back as
// ordinary replies.
func (r *Resty) Get(ctx context.Context, url string, headers map[string]string) (Reply, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return restyReply{resp: resp}, nil
}

type restyReply struct {
	resp *resty.Response
}

func (r restyReply) Body() []byte    { return r.resp.Body() }
func (r restyReply) StatusCode() int { return r.resp.StatusCode() }
