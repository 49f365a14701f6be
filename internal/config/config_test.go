package config

import (
	"testing"
	"time"
)

func TestDelayDefaults(t *testing.T) {
	if got := StartupDelay(); got != 1200*time.Millisecond {
		t.Errorf("StartupDelay = %v, want 1.2s", got)
	}
	if got := PostToggleDelay(); got != 600*time.Millisecond {
		t.Errorf("PostToggleDelay = %v, want 0.6s", got)
	}
}

func TestDelayOverrides(t *testing.T) {
	t.Setenv("MEDIA_STARTUP_DELAY", "2.5")
	t.Setenv("POST_TOGGLE_DELAY", "0.1")
	if got := StartupDelay(); got != 2500*time.Millisecond {
		t.Errorf("StartupDelay = %v, want 2.5s", got)
	}
	if got := PostToggleDelay(); got != 100*time.Millisecond {
		t.Errorf("PostToggleDelay = %v, want 0.1s", got)
	}
}

func TestDelayBadValueFallsBack(t *testing.T) {
	t.Setenv("MEDIA_STARTUP_DELAY", "shortly")
	if got := StartupDelay(); got != 1200*time.Millisecond {
		t.Errorf("StartupDelay = %v, want default on bad value", got)
	}
	t.Setenv("POST_TOGGLE_DELAY", "-3")
	if got := PostToggleDelay(); got != 600*time.Millisecond {
		t.Errorf("PostToggleDelay = %v, want default on negative value", got)
	}
}

func TestSpeechEnabled(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", true},
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"off", false},
	}
	for _, tt := range tests {
		t.Setenv("SPEECH_ENABLED", tt.value)
		if got := SpeechEnabled(); got != tt.want {
			t.Errorf("SPEECH_ENABLED=%q: got %v, want %v", tt.value, got, tt.want)
		}
	}
}
