// Package hibp queries the haveibeenpwned.com v2 API: breach lookups per
// account, the full breach catalogue, single breaches by name, the data-class
// taxonomy, and pastes per account. Responses decode into the types under
// internal/domain; failures come back as tagged error kinds (TransportError,
// StatusError, ParseError, SchemaError, ShapeError) callers match with
// errors.As.
package hibp

import (
	"context"
	"strings"
	"time"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
	"github.com/pwnwatch-hq/pwnwatch/pkg/transport"
)

const defaultTimeout = 15 * time.Second

// Client is a stateless query client for the breach API. It is safe for
// concurrent use; every lookup is a single GET plus a decode.
type Client struct {
	wire      transport.Getter
	userAgent string
	baseURL   string
	timeout   time.Duration
}

// Option configures a Client beyond its defaults.
type Option func(*Client)

// WithTransport swaps the default resty-backed transport for another
// implementation, typically a mock in tests.
func WithTransport(t transport.Getter) Option {
	return func(c *Client) { c.wire = t }
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithTimeout sets the per-request timeout of the default transport. It has
// no effect when WithTransport is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New builds a Client that identifies itself with the given user agent. The
// service rejects anonymous consumers, so the user agent is mandatory and
// sent on every request.
func New(userAgent string, opts ...Option) *Client {
	c := &Client{
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.wire == nil {
		c.wire = transport.NewResty(c.timeout)
	}
	return c
}

// AccountBreachesParams narrows an account lookup. Domain restricts the
// answer to breaches of one site; Truncate asks the service for breach names
// only, which is the cheap form watch loops poll with.
type AccountBreachesParams struct {
	Account  string
	Domain   string
	Truncate bool
}

// AccountBreaches lists the breaches an account appears in. The service
// answers 404 when the account is in none; callers that want that read as an
// empty result match the StatusError themselves.
func (c *Client) AccountBreaches(ctx context.Context, p AccountBreachesParams) ([]domain.Breach, error) {
	body, err := c.get(ctx, accountBreachesURL(c.baseURL, p.Account, p.Domain, p.Truncate))
	if err != nil {
		return nil, err
	}
	return decodeBreaches(body)
}

// BreachesParams narrows the catalogue listing.
type BreachesParams struct {
	Domain string
}

// Breaches lists every breach the service knows, optionally only those of one
// domain.
func (c *Client) Breaches(ctx context.Context, p BreachesParams) ([]domain.Breach, error) {
	body, err := c.get(ctx, breachesURL(c.baseURL, p.Domain))
	if err != nil {
		return nil, err
	}
	return decodeBreaches(body)
}

// BreachByName fetches the full record of a single named breach. The service
// answers with one object, which decodes as a one-element batch.
func (c *Client) BreachByName(ctx context.Context, name string) ([]domain.Breach, error) {
	body, err := c.get(ctx, breachURL(c.baseURL, name))
	if err != nil {
		return nil, err
	}
	return decodeBreaches(body)
}

// DataClasses fetches the taxonomy of data categories breaches may expose.
func (c *Client) DataClasses(ctx context.Context) ([]domain.DataClass, error) {
	body, err := c.get(ctx, dataClassesURL(c.baseURL))
	if err != nil {
		return nil, err
	}
	return decodeDataClasses(body)
}

// AccountPastes lists the pastes an account appears in. An empty body means
// no pastes.
func (c *Client) AccountPastes(ctx context.Context, account string) ([]domain.Paste, error) {
	body, err := c.get(ctx, pastesURL(c.baseURL, account))
	if err != nil {
		return nil, err
	}
	return decodePastes(body)
}

// get runs one round trip and gates on a 2xx status before anyone looks at
// the body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	headers := map[string]string{"User-Agent": c.userAgent}
	resp, err := c.wire.Get(ctx, url, headers)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	body := resp.Body()
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, &StatusError{URL: url, StatusCode: code, Snippet: snippet(body)}
	}
	return body, nil
}
