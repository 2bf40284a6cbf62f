package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"WikiAnalyzer/internal/domain"
)

type fakePipeline struct {
	result domain.AnalysisResult
	err    error
	gotURL string
}

func (f *fakePipeline) Run(_ context.Context, rawURL string) (domain.AnalysisResult, error) {
	f.gotURL = rawURL
	return f.result, f.err
}

func goResult() domain.AnalysisResult {
	return domain.AnalysisResult{
		Article: domain.Article{
			Title:    "Go <lang>",
			Content:  "Go is an open source language.",
			Summary:  "Go is an open source language.",
			Sections: []string{"History"},
			URL:      "https://en.wikipedia.org/wiki/Go",
			Source:   domain.SourceStructured,
		},
		Metrics: domain.Metrics{WordCount: 6, SentenceCount: 1, Polarity: 0.3},
	}
}

func get(t *testing.T, h http.Handler, path, articleURL string) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if articleURL != "" {
		target += "?url=" + url.QueryEscape(articleURL)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec := get(t, New(&fakePipeline{}, Options{}, nil).Handler(), "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	p := &fakePipeline{result: goResult()}
	rec := get(t, New(p, Options{}, nil).Handler(), "/api/analyze", "https://en.wikipedia.org/wiki/Go")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if p.gotURL != "https://en.wikipedia.org/wiki/Go" {
		t.Fatalf("pipeline received %q", p.gotURL)
	}

	var body analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Metrics.WordCount != 6 || body.Article.Title != "Go <lang>" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.Labels["sentiment"] != domain.SentimentPositive {
		t.Fatalf("unexpected sentiment label %q", body.Labels["sentiment"])
	}
}

func TestAnalyzeErrorStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code int
		kind string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
		{domain.ErrNoContent, http.StatusUnprocessableEntity, "no_content"},
		{domain.ErrUpstreamUnavailable, http.StatusBadGateway, "upstream_unavailable"},
		{domain.ErrAnalysis, http.StatusInternalServerError, "analysis_error"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		p := &fakePipeline{err: fmt.Errorf("%w: detail", tc.err)}
		rec := get(t, New(p, Options{}, nil).Handler(), "/api/analyze", "x")
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode error body: %v", err)
		}
		if body.Kind != tc.kind || body.Error == "" {
			t.Fatalf("%v: unexpected error body %+v", tc.err, body)
		}
	}
}

func TestExport(t *testing.T) {
	t.Parallel()

	rec := get(t, New(&fakePipeline{result: goResult()}, Options{}, nil).Handler(), "/api/analyze/export", "u")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "metrics.jsonl") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if lines := strings.Count(rec.Body.String(), "\n"); lines != 1 {
		t.Fatalf("expected one json line, got %d", lines)
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	rec := get(t, New(&fakePipeline{result: goResult()}, Options{Tracing: true}, nil).Handler(), "/report", "u")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Go &lt;lang&gt;</title>") {
		t.Fatalf("expected escaped title: %s", body)
	}
	if !strings.Contains(body, "<table>") {
		t.Fatalf("expected metrics table: %s", body)
	}
}

func TestStatusFor(t *testing.T) {
	t.Parallel()

	if StatusFor(nil) != http.StatusOK {
		t.Fatal("nil error should map to 200")
	}
}
