package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"WikiAnalyzer/internal/config"
	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/logging"
)

const scrapedPage = `<html><body>
<h1 id="firstHeading">Gopher</h1>
<div class="mw-parser-output">
<p>The gopher is a small burrowing rodent.</p>
<p>Gophers are known for their extensive tunnel systems.</p>
</div></body></html>`

func newWikiServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("titles") == "Go" {
			_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Go","extract":"Go is a programming language.\n\n== History ==\nText."}]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"query":{"pages":[{"title":"Gopher","missing":true}]}}`))
	})
	mux.HandleFunc("/wiki/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scrapedPage))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func testConfig(server *httptest.Server) config.Config {
	cfg := config.LoadFile("")
	cfg.Site.Host = strings.TrimPrefix(server.URL, "http://")
	cfg.Site.APIEndpoint = server.URL + "/w/api.php"
	return cfg
}

func TestAnalyzeStructured(t *testing.T) {
	t.Parallel()

	server := newWikiServer(t)
	application := New(testConfig(server), logging.Discard())

	result, err := application.Analyze(context.Background(), server.URL+"/wiki/Go")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if result.Article.Source != domain.SourceStructured {
		t.Fatalf("expected structured source, got %s", result.Article.Source)
	}
	if len(result.Article.Sections) != 1 || result.Article.Sections[0] != "History" {
		t.Fatalf("unexpected sections %v", result.Article.Sections)
	}
	if result.Metrics.WordCount != 5 {
		t.Fatalf("expected 5 words, got %d", result.Metrics.WordCount)
	}
}

func TestAnalyzeFallsBackToScraping(t *testing.T) {
	t.Parallel()

	server := newWikiServer(t)
	application := New(testConfig(server), logging.Discard())

	result, err := application.Analyze(context.Background(), server.URL+"/wiki/Gopher")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	if result.Article.Source != domain.SourceScraped || result.Article.Title != "Gopher" {
		t.Fatalf("unexpected article %+v", result.Article)
	}
	if result.Metrics.SentenceCount != 2 {
		t.Fatalf("expected 2 sentences, got %d", result.Metrics.SentenceCount)
	}
}

func TestHandlerServesAnalysis(t *testing.T) {
	t.Parallel()

	server := newWikiServer(t)
	handler := New(testConfig(server), logging.Discard()).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/analyze?url=not-a-url", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
