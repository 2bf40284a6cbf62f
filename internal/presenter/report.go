package presenter

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"WikiAnalyzer/internal/domain"
)

// Options is the static display configuration handed to the presenter.
type Options struct {
	ContentPreviewChars int
	MaxSections         int
}

// DefaultOptions shows a 10000 character content prefix and ten sections.
var DefaultOptions = Options{ContentPreviewChars: 10000, MaxSections: 10}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders the result as a Markdown report.
func Markdown(result domain.AnalysisResult, opts Options) string {
	opts = opts.normalized()
	a, m := result.Article, result.Metrics

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", a.Title)
	fmt.Fprintf(&b, "Source: %s (%s)\n\n", a.URL, a.Source)
	if a.IsPlaceholder() {
		b.WriteString("> Content could not be extracted; metrics describe the placeholder text.\n\n")
	}

	b.WriteString("## Summary\n\n")
	b.WriteString(a.Summary)
	b.WriteString("\n\n")

	if len(a.Sections) > 0 {
		b.WriteString("## Sections\n\n")
		sections := a.Sections
		if len(sections) > opts.MaxSections {
			sections = sections[:opts.MaxSections]
		}
		for _, s := range sections {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		if rest := len(a.Sections) - len(sections); rest > 0 {
			fmt.Fprintf(&b, "- … and %d more\n", rest)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Analysis\n\n")
	fmt.Fprintf(&b, "Sentiment: **%s** (%.2f), subjectivity %.2f\n\n", m.SentimentLabel(), m.Polarity, m.Subjectivity)
	fmt.Fprintf(&b, "Readability: %s\n\n", m.ReadingEaseLabel())
	b.WriteString("| Metric | Value |\n|---|---|\n")
	for _, f := range m.Fields() {
		fmt.Fprintf(&b, "| %s | %v |\n", label(f.Name), f.Value)
	}
	b.WriteString("\n")

	b.WriteString("## Content\n\n")
	preview, truncated := Preview(a.Content, opts.ContentPreviewChars)
	b.WriteString(preview)
	if truncated {
		b.WriteString("...")
	}
	fmt.Fprintf(&b, "\n\n_Showing %d of %d characters | Source: %s_\n",
		utf8.RuneCountInString(preview), utf8.RuneCountInString(a.Content), a.Source)

	return b.String()
}

// HTML renders the Markdown report to an HTML fragment.
func HTML(result domain.AnalysisResult, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(result, opts)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Preview returns at most limit runes of content.
func Preview(content string, limit int) (string, bool) {
	if limit <= 0 || utf8.RuneCountInString(content) <= limit {
		return content, false
	}
	runes := []rune(content)
	return string(runes[:limit]), true
}

func (o Options) normalized() Options {
	if o.ContentPreviewChars <= 0 {
		o.ContentPreviewChars = DefaultOptions.ContentPreviewChars
	}
	if o.MaxSections <= 0 {
		o.MaxSections = DefaultOptions.MaxSections
	}
	return o
}

func label(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
