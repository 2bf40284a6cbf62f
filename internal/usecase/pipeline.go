package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Extractor   ports.ArticleExtractor
	Analyzer    ports.TextAnalyzer
	URLPrefixes []string
	Logger      *slog.Logger
}

// Pipeline implements the validate, extract, analyze workflow. It keeps no
// per-run state, so one instance serves concurrent runs.
type Pipeline struct {
	extractor ports.ArticleExtractor
	analyzer  ports.TextAnalyzer
	prefixes  []string
	logger    *slog.Logger
}

var _ ports.Pipeline = (*Pipeline)(nil)

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		extractor: deps.Extractor,
		analyzer:  deps.Analyzer,
		prefixes:  append([]string{}, deps.URLPrefixes...),
		logger:    deps.Logger,
	}
}

// Run executes one end-to-end attempt for rawURL. Errors wrap one of the
// domain sentinels.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (domain.AnalysisResult, error) {
	articleURL, err := p.Validate(rawURL)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	if p.extractor == nil || p.analyzer == nil {
		return domain.AnalysisResult{}, fmt.Errorf("pipeline is not configured")
	}

	article, err := p.extractor.Extract(ctx, articleURL)
	if err != nil {
		p.warn("extraction failed", "url", articleURL, "error", err)
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	if domain.IsBlank(article.Content) {
		return domain.AnalysisResult{}, fmt.Errorf("%w: %s", domain.ErrNoContent, article.URL)
	}

	metrics, err := p.analyzer.Analyze(ctx, article.Content)
	if err != nil {
		p.logError("analysis failed", "url", articleURL, "error", err)
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysis, err)
	}

	p.info("article analyzed",
		"url", article.URL,
		"source", article.Source,
		"placeholder", article.IsPlaceholder(),
		"words", metrics.WordCount,
	)
	return domain.AnalysisResult{Article: article, Metrics: metrics}, nil
}

// Validate trims rawURL, checks it against the accepted prefixes and makes
// sure it names a page.
func (p *Pipeline) Validate(rawURL string) (string, error) {
	candidate := strings.TrimSpace(rawURL)
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(candidate, prefix) {
			if _, err := domain.PageIdentifier(candidate); err != nil {
				return "", err
			}
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: url must start with %s", domain.ErrInvalidInput, p.expectedPrefix())
}

func (p *Pipeline) expectedPrefix() string {
	if len(p.prefixes) == 0 {
		return "a configured article prefix"
	}
	return p.prefixes[0]
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) logError(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
