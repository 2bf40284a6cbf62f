package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"WikiAnalyzer/internal/ports"
)

const maxDocumentBytes = 10 << 20

// Fetcher downloads raw page markup.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger
}

var _ ports.DocumentFetcher = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; nil falls back to a default client.
func NewFetcher(client *http.Client, userAgent string, log *slog.Logger) *Fetcher {
	if client == nil {
		client = NewHTTPClient(0, false)
	}
	return &Fetcher{client: client, userAgent: userAgent, logger: log}
}

// Fetch performs a single GET. Transport errors and 5xx statuses are errors;
// 4xx bodies are returned as markup since the site renders real pages for them.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("document server returned %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		f.debug("non-200 document response", "url", pageURL, "status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return body, nil
}

func (f *Fetcher) debug(msg string, args ...interface{}) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}
