package parser

import (
	"context"
	"fmt"
	"log/slog"

	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/ports"
	"WikiAnalyzer/internal/scanner"
)

// StrategySource implements ArticleExtractor via the ordered strategy chain.
type StrategySource struct {
	chain    *scanner.Chain
	language string
	logger   *slog.Logger
}

var _ ports.ArticleExtractor = (*StrategySource)(nil)

// NewStrategySource wires the chain with the site language.
func NewStrategySource(chain *scanner.Chain, language string, log *slog.Logger) *StrategySource {
	return &StrategySource{
		chain:    chain,
		language: language,
		logger:   log,
	}
}

// Extract derives the page identifier and runs the chain once.
func (s *StrategySource) Extract(ctx context.Context, rawURL string) (domain.Article, error) {
	if s.chain == nil {
		return domain.Article{}, fmt.Errorf("strategy chain is not configured")
	}

	pageID, err := domain.PageIdentifier(rawURL)
	if err != nil {
		return domain.Article{}, err
	}

	s.debug("extract article", "page", pageID, "strategies", s.chain.Names())
	article, err := s.chain.Run(ctx, scanner.Request{
		URL:      rawURL,
		PageID:   pageID,
		Language: s.language,
	})
	if err != nil {
		return domain.Article{}, fmt.Errorf("extract %s: %w", pageID, err)
	}

	s.debug("article extracted", "page", pageID, "source", article.Source, "content_len", len(article.Content))
	return article, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
