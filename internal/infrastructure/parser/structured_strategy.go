package parser

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/ports"
	"WikiAnalyzer/internal/scanner"
)

// StructuredStrategy builds an article from the structured summary lookup.
// Every failure falls through to the next strategy.
type StructuredStrategy struct {
	lookup ports.SummaryLookup
	logger *slog.Logger
}

var _ scanner.Strategy = (*StructuredStrategy)(nil)

// NewStructuredStrategy wires the lookup collaborator.
func NewStructuredStrategy(lookup ports.SummaryLookup, log *slog.Logger) *StructuredStrategy {
	return &StructuredStrategy{lookup: lookup, logger: log}
}

// Name identifies the strategy inside the chain.
func (s *StructuredStrategy) Name() string {
	return "structured"
}

// Extract queries the lookup and reports Found only for a non-empty summary.
func (s *StructuredStrategy) Extract(ctx context.Context, req scanner.Request) scanner.Outcome {
	if s.lookup == nil {
		return scanner.Next("no lookup configured")
	}

	page, err := s.lookup.Lookup(ctx, req.PageID, req.Language)
	if errors.Is(err, ports.ErrPageNotFound) {
		return scanner.Next("page does not exist")
	}
	if err != nil {
		s.warn("structured lookup failed", "page", req.PageID, "error", err)
		return scanner.Next(err.Error())
	}
	if domain.IsBlank(page.Summary) {
		return scanner.Next("empty summary")
	}

	title := strings.TrimSpace(page.Title)
	if title == "" {
		title = strings.ReplaceAll(req.PageID, "_", " ")
	}
	canonical := page.CanonicalURL
	if canonical == "" {
		canonical = req.URL
	}
	sections := append([]string{}, page.SectionTitles...)

	return scanner.Found(domain.Article{
		Title:    title,
		Content:  page.Summary,
		Summary:  page.Summary,
		Sections: sections,
		URL:      canonical,
		Source:   domain.SourceStructured,
	})
}

func (s *StructuredStrategy) warn(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
