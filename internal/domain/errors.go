package domain

import "errors"

// Failure taxonomy surfaced by the pipeline. Causes are wrapped with %w.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrNoContent           = errors.New("no content")
	ErrAnalysis            = errors.New("analysis error")
)

// KindOf returns a stable machine-readable kind for err.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrNoContent):
		return "no_content"
	case errors.Is(err, ErrAnalysis):
		return "analysis_error"
	default:
		return "internal"
	}
}
