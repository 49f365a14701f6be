// Package search answers "search online" commands with actual result
// snippets instead of opening a browser. Two engines are queried
// concurrently; Google's JSON API is preferred when configured, the
// DuckDuckGo HTML endpoint needs no credentials.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"vega/internal/logger"
)

type Result struct {
	Title   string
	URL     string
	Snippet string
}

type Client struct {
	http      *http.Client
	googleKey string
	googleCX  string
	googleURL string
	ddgURL    string
}

// NewClient reads the optional Google API credentials. Without them only
// DuckDuckGo is queried.
func NewClient(googleKey, googleCX string) *Client {
	return &Client{
		http:      &http.Client{Timeout: 8 * time.Second},
		googleKey: googleKey,
		googleCX:  googleCX,
		googleURL: "https://www.googleapis.com/customsearch/v1",
		ddgURL:    "https://html.duckduckgo.com/html/",
	}
}

// Search fans out to both engines and returns up to limit results,
// preferring Google's when both answer. One engine failing is logged,
// not fatal; the error covers only both coming back empty-handed.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 5
	}

	var google, ddg []Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if c.googleKey == "" || c.googleCX == "" {
			return nil
		}
		res, err := c.searchGoogle(gctx, query, limit)
		if err != nil {
			logger.Log.Printf("[SEARCH] google: %v", err)
			return nil
		}
		google = res
		return nil
	})
	g.Go(func() error {
		res, err := c.searchDuckDuckGo(gctx, query, limit)
		if err != nil {
			logger.Log.Printf("[SEARCH] duckduckgo: %v", err)
			return nil
		}
		ddg = res
		return nil
	})
	_ = g.Wait()

	if len(google) > 0 {
		return google, nil
	}
	if len(ddg) > 0 {
		return ddg, nil
	}
	return nil, fmt.Errorf("no results for %q", query)
}

func (c *Client) searchGoogle(ctx context.Context, query string, limit int) ([]Result, error) {
	q := url.Values{}
	q.Set("key", c.googleKey)
	q.Set("cx", c.googleCX)
	q.Set("q", query)
	q.Set("num", fmt.Sprint(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.googleURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([]Result, 0, len(payload.Items))
	for _, it := range payload.Items {
		out = append(out, Result{Title: it.Title, URL: it.Link, Snippet: it.Snippet})
	}
	return out, nil
}

func (c *Client) searchDuckDuckGo(ctx context.Context, query string, limit int) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ddgURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse results page: %w", err)
	}

	var out []Result
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		a := s.Find("a.result__a").First()
		href, _ := a.Attr("href")
		out = append(out, Result{
			Title:   strings.TrimSpace(a.Text()),
			URL:     cleanDDGLink(href),
			Snippet: strings.TrimSpace(s.Find(".result__snippet").Text()),
		})
		return len(out) < limit
	})
	return out, nil
}

// cleanDDGLink unwraps DuckDuckGo's redirect URLs (//duckduckgo.com/l/?uddg=<target>).
func cleanDDGLink(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}

// Format renders results for display and for feeding back into the
// language model as context.
func Format(results []Result) string {
	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, r.Title, r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Snippet)
		}
	}
	return sb.String()
}
