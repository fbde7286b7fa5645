// Package transport is the wire layer under the query client: it issues
// single GET requests and hands back fully buffered replies. It never
// interprets status codes; deciding what a 404 or a 429 means is the
// caller's job.
package transport

import "context"

// Reply is one finished HTTP exchange: the body read to completion plus the
// status code. No stream crosses this boundary.
type Reply interface {
	Body() []byte
	StatusCode() int
}

// Getter issues one GET per call. Implementations own timeouts, TLS, and
// connection reuse; tests substitute fakes for the wire.
type Getter interface {
	Get(ctx context.Context, url string, headers map[string]string) (Reply, error)
}
