package ports

import (
	"context"
	"errors"

	"WikiAnalyzer/internal/domain"
)

// ErrPageNotFound is returned by SummaryLookup when the page does not exist.
var ErrPageNotFound = errors.New("page not found")

// PageSummary is the machine-readable view of a page from the structured source.
type PageSummary struct {
	Title         string
	Summary       string
	CanonicalURL  string
	SectionTitles []string
}

// SummaryLookup queries a structured knowledge source by page identifier.
type SummaryLookup interface {
	Lookup(ctx context.Context, pageID, language string) (PageSummary, error)
}

// DocumentFetcher retrieves raw page markup.
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ArticleExtractor turns an article URL into a normalized Article.
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (domain.Article, error)
}

// TextAnalyzer computes the metrics record for a body of text.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (domain.Metrics, error)
}

// Pipeline runs one end-to-end analysis for a raw user-supplied URL.
type Pipeline interface {
	Run(ctx context.Context, rawURL string) (domain.AnalysisResult, error)
}
