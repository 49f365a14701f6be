package media

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vega/internal/dispatcher"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
		ok   bool
	}{
		{
			name: "anchor href",
			html: `<html><body><a href="/watch?v=dQw4w9WgXcQ">First</a></body></html>`,
			want: "dQw4w9WgXcQ",
			ok:   true,
		},
		{
			name: "script-embedded JSON",
			html: `<html><head><script>var ytInitialData = {"url":"/watch?v=abc123XYZ-_","title":"x"};</script></head><body></body></html>`,
			want: "abc123XYZ-_",
			ok:   true,
		},
		{
			name: "anchor wins over script",
			html: `<html><head><script>"/watch?v=SCRIPTid123"</script></head><body><a href="/watch?v=ANCHORid456">x</a></body></html>`,
			want: "ANCHORid456",
			ok:   true,
		},
		{
			name: "short id rejected",
			html: `<a href="/watch?v=tooshort">x</a>`,
			ok:   false,
		},
		{
			name: "no results",
			html: `<html><body>No results found</body></html>`,
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.html)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ExtractVideoID = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPlayYoutubeDirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a href="/watch?v=dQw4w9WgXcQ">hit</a></body></html>`))
	}))
	defer srv.Close()

	var opened []string
	p := &Player{
		client:  &http.Client{Timeout: time.Second},
		open:    func(target string) error { opened = append(opened, target); return nil },
		baseURL: srv.URL,
	}

	status, err := p.PlayYoutube("never gonna give you up")
	if err != nil {
		t.Fatalf("PlayYoutube: %v", err)
	}
	if status != dispatcher.PlayStatusPlaying {
		t.Fatalf("status = %q, want playing", status)
	}
	if len(opened) != 1 {
		t.Fatalf("opened = %v, want exactly the watch URL", opened)
	}
	if !strings.Contains(opened[0], "/watch?v=dQw4w9WgXcQ") || !strings.Contains(opened[0], "autoplay=1") {
		t.Fatalf("watch URL = %q, want video id with autoplay", opened[0])
	}
}

func TestPlayYoutubeFallsBackToResultsPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer srv.Close()

	var opened []string
	p := &Player{
		client:  &http.Client{Timeout: time.Second},
		open:    func(target string) error { opened = append(opened, target); return nil },
		baseURL: srv.URL,
	}

	status, err := p.PlayYoutube("some very obscure query")
	if err != nil {
		t.Fatalf("PlayYoutube: %v", err)
	}
	if status != dispatcher.PlayStatusSearchOpened {
		t.Fatalf("status = %q, want search_opened", status)
	}
	if len(opened) != 1 || !strings.Contains(opened[0], "results?search_query=some+very+obscure+query") {
		t.Fatalf("opened = %v, want the results page", opened)
	}
}

func TestPlayYoutubeFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	openErr := errOpen{}
	p := &Player{
		client:  &http.Client{Timeout: time.Second},
		open:    func(string) error { return openErr },
		baseURL: srv.URL,
	}

	status, err := p.PlayYoutube("anything")
	if err == nil {
		t.Fatal("want error when nothing can be opened")
	}
	if status != dispatcher.PlayStatusFailed {
		t.Fatalf("status = %q, want failed", status)
	}
}

type errOpen struct{}

func (errOpen) Error() string { return "no browser" }
