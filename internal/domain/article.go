package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// PlaceholderContent stands in for the body when scraping finds no paragraphs.
	PlaceholderContent = "Could not extract article content. This might be a special Wikipedia page."
	// PlaceholderSummary accompanies PlaceholderContent.
	PlaceholderSummary = "No summary available."
	// DefaultTitle is used when the page carries no recognizable heading.
	DefaultTitle = "Wikipedia Article"
)

// Source records which extraction stage produced an article.
type Source string

const (
	SourceStructured Source = "structured"
	SourceScraped    Source = "scraped"
)

// Article is the normalized record produced by the extractor.
type Article struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Summary  string   `json:"summary"`
	Sections []string `json:"sections"`
	URL      string   `json:"url"`
	Source   Source   `json:"source"`
}

// IsPlaceholder reports whether extraction fell back to the placeholder body.
func (a Article) IsPlaceholder() bool {
	return a.Content == PlaceholderContent
}

// AnalysisResult pairs an article with the metrics computed from its content.
type AnalysisResult struct {
	Article Article `json:"article"`
	Metrics Metrics `json:"metrics"`
}

// IsBlank is the single emptiness check shared by the extractor and the pipeline.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// PageIdentifier returns the decoded final path segment of rawURL. Both an
// unparseable URL and an empty segment are ErrInvalidInput.
func PageIdentifier(rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	path := parsed.Path
	id := path[strings.LastIndex(path, "/")+1:]
	if id == "" {
		return "", fmt.Errorf("%w: url %q names no article", ErrInvalidInput, rawURL)
	}
	return id, nil
}
