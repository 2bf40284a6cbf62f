package parser

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"WikiAnalyzer/internal/domain"
	"WikiAnalyzer/internal/ports"
	"WikiAnalyzer/internal/scanner"
)

const (
	contentSelector   = "div.mw-parser-output > p"
	frontPageFallback = "div#mp-upper p, div#mp-tfa p, div#mp-itn p"
	frontPageLimit    = 10
	summaryParagraphs = 3
	paragraphSep      = "\n\n"
)

var titleSelectors = []string{"h1#firstHeading", "h1.firstHeading"}

// WikiScraper extracts an article by parsing the raw page markup.
type WikiScraper struct {
	fetcher   ports.DocumentFetcher
	frontPage string
	logger    *slog.Logger
}

var _ scanner.Strategy = (*WikiScraper)(nil)

// NewWikiScraper wires the document fetcher; frontPage is the landing page identifier.
func NewWikiScraper(fetcher ports.DocumentFetcher, frontPage string, log *slog.Logger) *WikiScraper {
	return &WikiScraper{fetcher: fetcher, frontPage: frontPage, logger: log}
}

// Name identifies the strategy inside the chain.
func (w *WikiScraper) Name() string {
	return "scrape"
}

// Extract fetches and parses the page. Only fetch or parse errors fail;
// a page without paragraphs yields the placeholder article.
func (w *WikiScraper) Extract(ctx context.Context, req scanner.Request) scanner.Outcome {
	raw, err := w.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return scanner.Fail(fmt.Errorf("fetch page %s: %w", req.PageID, err))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return scanner.Fail(fmt.Errorf("parse document: %w", err))
	}

	front := w.frontPage != "" && req.PageID == w.frontPage
	article := buildScrapedArticle(doc, req.URL, front)
	w.debug("scraped article", "page", req.PageID, "front_page", front, "placeholder", article.IsPlaceholder())
	return scanner.Found(article)
}

func buildScrapedArticle(doc *goquery.Document, pageURL string, front bool) domain.Article {
	article := domain.Article{
		Title:    extractTitle(doc),
		URL:      pageURL,
		Source:   domain.SourceScraped,
		Sections: []string{},
	}

	var paragraphs []string
	if front {
		paragraphs = frontPageParagraphs(doc)
	} else {
		paragraphs = collectParagraphs(doc.Find(contentSelector))
	}

	content := strings.TrimSpace(strings.Join(paragraphs, paragraphSep))
	if domain.IsBlank(content) {
		article.Content = domain.PlaceholderContent
		article.Summary = domain.PlaceholderSummary
		return article
	}

	article.Content = content
	article.Summary = synthesizeSummary(content)
	return article
}

func extractTitle(doc *goquery.Document) string {
	for _, sel := range titleSelectors {
		if title := cleanText(doc.Find(sel).First()); title != "" {
			return title
		}
	}
	return domain.DefaultTitle
}

func frontPageParagraphs(doc *goquery.Document) []string {
	sel := doc.Find(contentSelector)
	if sel.Length() == 0 {
		sel = doc.Find(frontPageFallback)
	}
	if sel.Length() > frontPageLimit {
		sel = sel.Slice(0, frontPageLimit)
	}
	return collectParagraphs(sel)
}

func collectParagraphs(sel *goquery.Selection) []string {
	paragraphs := make([]string, 0, sel.Length())
	sel.Each(func(_ int, p *goquery.Selection) {
		if text := cleanText(p); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return paragraphs
}

// cleanText trims the selection text and replaces stray invalid UTF-8 bytes,
// which the HTML parser passes through unchanged.
func cleanText(sel *goquery.Selection) string {
	return strings.TrimSpace(strings.ToValidUTF8(sel.Text(), "\uFFFD"))
}

// synthesizeSummary joins the first three non-empty paragraphs with newlines.
func synthesizeSummary(content string) string {
	var lead []string
	for _, p := range strings.Split(content, paragraphSep) {
		if domain.IsBlank(p) {
			continue
		}
		lead = append(lead, p)
		if len(lead) == summaryParagraphs {
			break
		}
	}
	return strings.Join(lead, "\n")
}

func (w *WikiScraper) debug(msg string, args ...interface{}) {
	if w.logger != nil {
		w.logger.Debug(msg, args...)
	}
}
