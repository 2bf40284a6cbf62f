package web

import (
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPClient builds the client shared by both upstream collaborators.
// A zero timeout keeps the net/http default; tracing wraps the transport
// with OpenTelemetry spans.
func NewHTTPClient(timeout time.Duration, tracing bool) *http.Client {
	transport := http.DefaultTransport
	if tracing {
		transport = otelhttp.NewTransport(transport)
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
