package presenter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"WikiAnalyzer/internal/domain"
)

// WriteJSONLines writes one JSON object per metrics record.
func WriteJSONLines(w io.Writer, records ...domain.Metrics) error {
	enc := json.NewEncoder(w)
	for _, m := range records {
		if err := enc.Encode(m); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// Describe turns a pipeline error into a message for the end user.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidInput):
		return "Please enter a valid Wikipedia article URL (https://<site>/wiki/<Page>)."
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return "Could not fetch the article. Check your connection and try again."
	case errors.Is(err, domain.ErrNoContent):
		return "The page was fetched but contains no text to analyze."
	case errors.Is(err, domain.ErrAnalysis):
		return "Failed to analyze the article content."
	default:
		return "Something went wrong."
	}
}
