// Package speech gives the assistant a voice through the platform's own
// text-to-speech tooling. Speaking is fire-and-forget and never blocks
// command handling.
package speech

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"vega/internal/logger"
)

// Speaker queues utterances to the system TTS engine. A disabled speaker
// swallows everything silently.
type Speaker struct {
	enabled bool
	queue   chan string
}

func NewSpeaker(enabled bool) *Speaker {
	s := &Speaker{enabled: enabled, queue: make(chan string, 8)}
	if enabled {
		go s.loop()
	}
	return s
}

// Say queues text for speaking. Full queue drops the utterance rather
// than stalling the caller.
func (s *Speaker) Say(text string) {
	if !s.enabled || strings.TrimSpace(text) == "" {
		return
	}
	select {
	case s.queue <- text:
	default:
		logger.Log.Printf("[SPEECH] queue full, dropped %q", text)
	}
}

// Close stops the speaking loop after the queue drains.
func (s *Speaker) Close() {
	if s.enabled {
		close(s.queue)
	}
}

func (s *Speaker) loop() {
	for text := range s.queue {
		if err := speakOnce(text); err != nil {
			logger.Log.Printf("[SPEECH] %v", err)
		}
	}
}

func speakOnce(text string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; (New-Object System.Speech.Synthesis.SpeechSynthesizer).Speak(%s)",
			psQuote(text))
		cmd = exec.Command("powershell", "-NoProfile", "-Command", script)
	case "darwin":
		cmd = exec.Command("say", text)
	default:
		if _, err := exec.LookPath("spd-say"); err == nil {
			cmd = exec.Command("spd-say", "--wait", text)
		} else {
			cmd = exec.Command("espeak", text)
		}
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tts failed: %w", err)
	}
	return nil
}

// psQuote single-quotes a string for PowerShell, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
