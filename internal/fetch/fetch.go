// Package fetch retrieves job postings from the web and reduces them to
// plain description text. Static pages go through a plain HTTP fetch and
// goquery extraction; pages that render too little text fall back to a
// headless browser.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the HTTP request timeout for one posting fetch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the analyzer to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ProfileAnalyzer/1.0)"

// Error represents a failure fetching one posting URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures posting retrieval.
type Options struct {
	Timeout   time.Duration
	UserAgent string

	// DisableBrowser skips the headless-browser fallback, for environments
	// without Chrome and for tests.
	DisableBrowser bool
}

// DefaultOptions returns the defaults used by the CLI and server.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Posting is a fetched and extracted job posting.
type Posting struct {
	URL         string
	Platform    Platform
	Description string
	StatusCode  int
}

// JobDescription fetches a posting URL and returns its description text.
// When the statically served page yields too little text, the page is
// re-rendered in a headless browser before extraction.
func JobDescription(ctx context.Context, urlStr string, opts *Options) (*Posting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	platform := DetectPlatform(urlStr)

	html, status, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := extractText(html, platform)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}

	if !opts.DisableBrowser && needsBrowser(text) {
		rendered, renderErr := renderWithBrowser(ctx, urlStr, opts.Timeout)
		if renderErr == nil {
			if renderedText, extractErr := extractText(rendered, platform); extractErr == nil && len(renderedText) > len(text) {
				text = renderedText
			}
		}
		// A failed render keeps the static extraction; short text is still
		// better than no posting.
	}

	return &Posting{
		URL:         urlStr,
		Platform:    platform,
		Description: text,
		StatusCode:  status,
	}, nil
}

func fetchHTML(ctx context.Context, urlStr string, opts *Options) (string, int, error) {
	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", 0, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", 0, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), resp.StatusCode, nil
}

// extractText strips navigation and application chrome, then pulls text from
// the first matching content selector, falling back to the whole body.
func extractText(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner, .popup").Remove()
	if noise := platform.NoiseSelectors(); len(noise) > 0 {
		doc.Find(strings.Join(noise, ", ")).Remove()
	}

	var content *goquery.Selection
	for _, selector := range platform.ContentSelectors() {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return collapseLines(content.Text()), nil
}

// collapseLines trims each line and drops empty ones.
func collapseLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
