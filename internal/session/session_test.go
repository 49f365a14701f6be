package session

import "testing"

func TestShortName(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"Spotify", "spotify"},
		{`C:\Program Files\BraveSoftware\Brave-Browser\Application\brave.exe`, "brave"},
		{"/usr/bin/vlc", "vlc"},
		{"https://mail.google.com/", "https://mail.google.com/"},
		{"  notepad  ", "notepad"},
	}
	for _, tt := range tests {
		if got := ShortName(tt.target); got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestRecordOpenAndSwitch(t *testing.T) {
	c := New()

	c.RecordOpen(`C:\Tools\musicbee.exe`)
	if c.CurrentApp != "musicbee" || c.LastOpened != `C:\Tools\musicbee.exe` {
		t.Fatalf("after RecordOpen: %+v", c)
	}

	c.SetApp("Chrome")
	if c.CurrentApp != "chrome" {
		t.Fatalf("SetApp did not lowercase: %q", c.CurrentApp)
	}
	if c.LastOpened != `C:\Tools\musicbee.exe` {
		t.Fatal("SetApp must not touch LastOpened")
	}
	if !c.InBrowser() {
		t.Fatal("chrome should count as a browser context")
	}

	c.SetApp("spotify")
	if c.InBrowser() {
		t.Fatal("spotify is not a browser context")
	}

	// Every tag the window detector can report must count as a browser.
	for _, tag := range []string{"firefox", "brave", "edge", "safari"} {
		c.SetApp(tag)
		if !c.InBrowser() {
			t.Errorf("%s should count as a browser context", tag)
		}
	}
}
