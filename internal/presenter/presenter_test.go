package presenter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"WikiAnalyzer/internal/domain"
)

func sampleResult() domain.AnalysisResult {
	sections := make([]string, 12)
	for i := range sections {
		sections[i] = fmt.Sprintf("Section %d", i+1)
	}
	return domain.AnalysisResult{
		Article: domain.Article{
			Title:    "Go (programming language)",
			Content:  strings.Repeat("x", 50),
			Summary:  "Go is a language.",
			Sections: sections,
			URL:      "https://en.wikipedia.org/wiki/Go_(programming_language)",
			Source:   domain.SourceStructured,
		},
		Metrics: domain.Metrics{WordCount: 500, SentenceCount: 50, AvgSentenceLength: 10, Polarity: 0.25, ReadingTime: 2.5},
	}
}

func TestMarkdownReport(t *testing.T) {
	t.Parallel()

	out := Markdown(sampleResult(), Options{ContentPreviewChars: 20})

	for _, want := range []string{
		"# Go (programming language)",
		"Sentiment: **positive** (0.25)",
		"| Word Count | 500 |",
		"| Reading Time | 2.5 |",
		"- Section 10\n",
		"- … and 2 more",
		strings.Repeat("x", 20) + "...",
		"_Showing 20 of 50 characters",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "- Section 11\n") {
		t.Error("report must cap sections at 10")
	}
}

func TestMarkdownPlaceholderNotice(t *testing.T) {
	t.Parallel()

	r := sampleResult()
	r.Article.Content = domain.PlaceholderContent
	if out := Markdown(r, DefaultOptions); !strings.Contains(out, "could not be extracted") {
		t.Fatalf("expected placeholder notice:\n%s", out)
	}
}

func TestHTMLReport(t *testing.T) {
	t.Parallel()

	out, err := HTML(sampleResult(), DefaultOptions)
	if err != nil {
		t.Fatalf("HTML error: %v", err)
	}
	if !strings.Contains(out, "<h1>Go (programming language)</h1>") {
		t.Fatalf("expected h1 in html: %s", out)
	}
	if !strings.Contains(out, "<table>") {
		t.Fatalf("expected metrics table in html: %s", out)
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	if got, cut := Preview("héllo", 3); got != "hél" || !cut {
		t.Fatalf("unexpected preview %q %v", got, cut)
	}
	if got, cut := Preview("short", 10); got != "short" || cut {
		t.Fatalf("unexpected preview %q %v", got, cut)
	}
}

func TestWriteJSONLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	records := []domain.Metrics{{WordCount: 1}, {WordCount: 2}}
	if err := WriteJSONLines(&buf, records...); err != nil {
		t.Fatalf("WriteJSONLines error: %v", err)
	}

	scanner := bufio.NewScanner(&buf)
	var lines int
	for scanner.Scan() {
		var decoded map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d is not json: %v", lines, err)
		}
		if _, ok := decoded["reading_time"]; !ok {
			t.Fatalf("line %d missing reading_time", lines)
		}
		lines++
	}
	if lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	cases := map[error]string{
		domain.ErrInvalidInput:        "valid Wikipedia article URL",
		domain.ErrUpstreamUnavailable: "Could not fetch",
		domain.ErrNoContent:           "no text",
		domain.ErrAnalysis:            "Failed to analyze",
	}
	for err, want := range cases {
		wrapped := fmt.Errorf("%w: cause", err)
		if got := Describe(wrapped); !strings.Contains(got, want) {
			t.Errorf("Describe(%v) = %q, want substring %q", err, got, want)
		}
	}
	if Describe(nil) != "" {
		t.Error("expected empty description for nil")
	}
}
