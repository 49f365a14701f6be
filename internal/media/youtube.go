// Package media plays YouTube content by scraping the first result off
// the search page and opening its watch URL directly, skipping the
// results page whenever possible.
package media

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"vega/internal/dispatcher"
	"vega/internal/logger"
)

// Video IDs are exactly 11 URL-safe characters.
var watchRe = regexp.MustCompile(`/watch\?v=([\w-]{11})`)

// Player implements the dispatcher's VideoPlayer against youtube.com.
type Player struct {
	client  *http.Client
	open    func(target string) error
	baseURL string
}

func NewPlayer(opener dispatcher.TargetOpener) *Player {
	return &Player{
		client:  &http.Client{Timeout: 10 * time.Second},
		open:    opener.OpenTarget,
		baseURL: "https://www.youtube.com",
	}
}

// PlayYoutube resolves the query to a concrete video when it can. Direct
// resolution failing is not an error; the results page is a workable
// fallback the dispatcher treats differently.
func (p *Player) PlayYoutube(query string) (dispatcher.PlayStatus, error) {
	searchURL := p.baseURL + "/results?search_query=" + url.QueryEscape(query)

	if id, ok := p.firstVideoID(query); ok {
		watch := fmt.Sprintf("%s/watch?v=%s&autoplay=1", p.baseURL, id)
		if err := p.open(watch); err == nil {
			return dispatcher.PlayStatusPlaying, nil
		}
	}

	if err := p.open(searchURL); err != nil {
		return dispatcher.PlayStatusFailed, fmt.Errorf("could not open YouTube results: %w", err)
	}
	return dispatcher.PlayStatusSearchOpened, nil
}

// firstVideoID scrapes the results page for the first watch link. YouTube
// renders results from an inline JSON blob, so the scan covers script
// bodies as well as anchor hrefs.
func (p *Player) firstVideoID(query string) (string, bool) {
	req, err := http.NewRequest(http.MethodGet, p.baseURL+"/results?search_query="+url.QueryEscape(query), nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.client.Do(req)
	if err != nil {
		logger.Log.Printf("[MEDIA] results fetch: %v", err)
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		logger.Log.Printf("[MEDIA] results fetch: status %d", resp.StatusCode)
		return "", false
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", false
	}
	return ExtractVideoID(string(body))
}

// ExtractVideoID finds the first video ID in a results page document,
// preferring real anchor hrefs over the script-embedded JSON.
func ExtractVideoID(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		if m := watchRe.FindStringSubmatch(html); m != nil {
			return m[1], true
		}
		return "", false
	}

	id, found := "", false
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		if m := watchRe.FindStringSubmatch(href); m != nil {
			id, found = m[1], true
			return false
		}
		return true
	})
	if found {
		return id, true
	}

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := watchRe.FindStringSubmatch(s.Text()); m != nil {
			id, found = m[1], true
			return false
		}
		return true
	})
	return id, found
}
