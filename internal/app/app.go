package app

import (
	"context"
	"log/slog"
	"net/http"

	"WikiAnalyzer/internal/analysis"
	"WikiAnalyzer/internal/config"
	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/infrastructure/parser"
	"WikiAnalyzer/internal/infrastructure/web"
	"WikiAnalyzer/internal/infrastructure/wikiapi"
	"WikiAnalyzer/internal/logging"
	"WikiAnalyzer/internal/presenter"
	"WikiAnalyzer/internal/scanner"
	"WikiAnalyzer/internal/server"
	"WikiAnalyzer/internal/usecase"
)

// Application wires configs to use cases.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	pipeline *usecase.Pipeline
}

// New builds the extraction chain, the analyzer and the pipeline around them.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	client := web.NewHTTPClient(cfg.HTTP.Timeout, cfg.HTTP.Tracing)
	fetcher := web.NewFetcher(client, cfg.Site.UserAgent, baseLogger.With("component", "fetcher"))
	lookup := wikiapi.NewClient(cfg.Site.APIEndpoint, cfg.Site.UserAgent, client)

	chain := scanner.NewChain(baseLogger.With("component", "chain"),
		parser.NewStructuredStrategy(lookup, baseLogger.With("component", "strategy.structured")),
		parser.NewWikiScraper(fetcher, cfg.Site.FrontPage, baseLogger.With("component", "strategy.scrape")),
	)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Extractor:   parser.NewStrategySource(chain, cfg.Site.Language, baseLogger.With("component", "source")),
		Analyzer:    analysis.NewEngine(cfg.Analysis.WordsPerMinute, nil),
		URLPrefixes: cfg.Site.URLPrefixes(),
		Logger:      baseLogger.With("component", "pipeline"),
	})
	return &Application{cfg: cfg, logger: baseLogger, pipeline: pipeline}
}

// Analyze runs the pipeline once for rawURL.
func (a *Application) Analyze(ctx context.Context, rawURL string) (domain.AnalysisResult, error) {
	return a.pipeline.Run(ctx, rawURL)
}

// Handler returns the HTTP surface backed by the same pipeline.
func (a *Application) Handler() http.Handler {
	srv := server.New(a.pipeline, server.Options{
		Tracing: a.cfg.HTTP.Tracing,
		Report:  presenter.DefaultOptions,
	}, a.logger.With("component", "server"))
	return srv.Handler()
}
