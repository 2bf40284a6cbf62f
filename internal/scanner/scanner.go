package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"WikiAnalyzer/internal/domain"
)

// ErrExhausted means every strategy asked to fall through.
var ErrExhausted = errors.New("no extraction strategy produced an article")

// Request carries all parameters required to run an extraction stage.
type Request struct {
	URL      string
	PageID   string
	Language string
}

// Status tells the chain what to do after a stage.
type Status int

const (
	StatusNext Status = iota
	StatusFound
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "next"
	}
}

// Outcome is the explicit result of one strategy.
type Outcome struct {
	Status  Status
	Article domain.Article
	Reason  string
	Err     error
}

// Found wraps a usable article.
func Found(article domain.Article) Outcome {
	return Outcome{Status: StatusFound, Article: article}
}

// Next asks the chain to try the following strategy.
func Next(reason string) Outcome {
	return Outcome{Status: StatusNext, Reason: reason}
}

// Fail stops the chain with a hard error.
func Fail(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}

// Strategy captures a single extraction stage (structured lookup, scraping).
type Strategy interface {
	Name() string
	Extract(ctx context.Context, req Request) Outcome
}

// Chain runs strategies in registration order until one decides.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewChain builds a chain over the given strategies.
func NewChain(log *slog.Logger, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, logger: log}
}

// Names lists the strategies in the order they run.
func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return names
}

// Run executes the chain for req.
func (c *Chain) Run(ctx context.Context, req Request) (domain.Article, error) {
	for _, strategy := range c.strategies {
		outcome := strategy.Extract(ctx, req)
		c.debug("strategy finished",
			"strategy", strategy.Name(),
			"status", outcome.Status.String(),
			"page", req.PageID,
			"reason", outcome.Reason,
		)
		switch outcome.Status {
		case StatusFound:
			return outcome.Article, nil
		case StatusFailed:
			return domain.Article{}, fmt.Errorf("%s: %w", strategy.Name(), outcome.Err)
		}
	}
	return domain.Article{}, ErrExhausted
}

func (c *Chain) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
