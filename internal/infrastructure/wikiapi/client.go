package wikiapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"WikiAnalyzer/internal/ports"
)

const maxResponseBytes = 10 << 20

var headingExpr = regexp.MustCompile(`^(=+)\s*(.*?)\s*=+\s*$`)

// Client queries the MediaWiki Action API for a plain-text page extract.
type Client struct {
	endpoint  string
	userAgent string
	http      *http.Client
}

var _ ports.SummaryLookup = (*Client)(nil)

// NewClient wires an API client. An empty endpoint is derived from the
// language at lookup time.
func NewClient(endpoint, userAgent string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{endpoint: endpoint, userAgent: userAgent, http: client}
}

// Lookup fetches the page's lead summary, canonical URL and top-level section titles.
func (c *Client) Lookup(ctx context.Context, pageID, language string) (ports.PageSummary, error) {
	endpoint, err := c.buildURL(pageID, language)
	if err != nil {
		return ports.PageSummary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.PageSummary{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ports.PageSummary{}, fmt.Errorf("query page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.PageSummary{}, fmt.Errorf("wiki api returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return ports.PageSummary{}, fmt.Errorf("read response: %w", err)
	}

	return parseResponse(body)
}

func (c *Client) buildURL(pageID, language string) (string, error) {
	base := c.endpoint
	if base == "" {
		if language == "" {
			language = "en"
		}
		base = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", language)
	}

	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid api endpoint %s: %w", base, err)
	}

	query := parsed.Query()
	query.Set("action", "query")
	query.Set("format", "json")
	query.Set("formatversion", "2")
	query.Set("prop", "extracts|info")
	query.Set("inprop", "url")
	query.Set("explaintext", "1")
	query.Set("exsectionformat", "wiki")
	query.Set("redirects", "1")
	query.Set("titles", pageID)
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func parseResponse(body []byte) (ports.PageSummary, error) {
	if !gjson.ValidBytes(body) {
		return ports.PageSummary{}, fmt.Errorf("decode response: invalid json")
	}

	root := gjson.ParseBytes(body)
	if apiErr := root.Get("error.info"); apiErr.Exists() {
		return ports.PageSummary{}, fmt.Errorf("wiki api error: %s", apiErr.String())
	}

	page := root.Get("query.pages.0")
	if !page.Exists() || page.Get("missing").Bool() || page.Get("invalid").Bool() {
		return ports.PageSummary{}, ports.ErrPageNotFound
	}

	summary, sections := splitExtract(page.Get("extract").String())
	return ports.PageSummary{
		Title:         page.Get("title").String(),
		Summary:       summary,
		CanonicalURL:  page.Get("fullurl").String(),
		SectionTitles: sections,
	}, nil
}

// splitExtract separates the lead text (before the first heading) from the
// level-2 section titles of a wiki-formatted plain-text extract.
func splitExtract(extract string) (string, []string) {
	var (
		lead     []string
		sections []string
		inLead   = true
	)

	for _, line := range strings.Split(extract, "\n") {
		m := headingExpr.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil || m[2] == "" {
			if inLead {
				lead = append(lead, line)
			}
			continue
		}
		inLead = false
		if len(m[1]) == 2 {
			sections = append(sections, m[2])
		}
	}

	return strings.TrimSpace(strings.Join(lead, "\n")), sections
}
