// Package config reads the engine's tunables from the environment. The
// .env file is loaded once in main; everything here is a plain accessor
// with a default.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultStartupDelaySec    = 1.2
	defaultPostToggleDelaySec = 0.6
)

func getEnvOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getSecondsOrDefault(key string, fallback float64) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return time.Duration(f * float64(time.Second))
		}
	}
	return time.Duration(fallback * float64(time.Second))
}

// StartupDelay is the pause injected between launching a media player and
// the play/pause toggle that follows it.
func StartupDelay() time.Duration {
	return getSecondsOrDefault("MEDIA_STARTUP_DELAY", defaultStartupDelaySec)
}

// PostToggleDelay is the pause injected after a play/pause toggle when
// the next action would disturb the player.
func PostToggleDelay() time.Duration {
	return getSecondsOrDefault("POST_TOGGLE_DELAY", defaultPostToggleDelaySec)
}

// ActionLogFile is the JSONL audit trail path.
func ActionLogFile() string {
	return getEnvOrDefault("ACTION_LOG_FILE", "action_log.jsonl")
}

// AppMappingsFile is the optional JSON overrides file for the target
// registry. Empty means defaults only.
func AppMappingsFile() string {
	return getEnvOrDefault("APP_MAPPINGS_FILE", "app_mappings.json")
}

// DiagnosticLogFile is where the file-backed logger writes.
func DiagnosticLogFile() string {
	return getEnvOrDefault("VEGA_LOG_FILE", "vega.log")
}

// LLMBackend selects the model provider: "gemini" or "ollama".
func LLMBackend() string {
	return strings.ToLower(getEnvOrDefault("LLM_BACKEND", "gemini"))
}

// LLMModel optionally overrides the backend's default model.
func LLMModel() string {
	return getEnvOrDefault("LLM_MODEL", "")
}

// SpeechEnabled gates the spoken confirmations.
func SpeechEnabled() bool {
	v := strings.ToLower(getEnvOrDefault("SPEECH_ENABLED", "true"))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}

// GoogleSearchCredentials returns the Custom Search API key and engine
// ID; empty strings disable the Google leg of the online search.
func GoogleSearchCredentials() (key, cx string) {
	return os.Getenv("GOOGLE_API_KEY"), os.Getenv("GOOGLE_CSE_ID")
}
