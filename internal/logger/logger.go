// Package logger holds the process-wide diagnostic logger. It is
// file-backed so the interactive console stays clean for the
// conversation itself.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Log discards everything until Init points it at a file, so packages
// may log unconditionally.
var Log = log.New(io.Discard, "", log.LstdFlags)

// Init redirects Log to the given file, creating it if needed.
func Init(path string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("could not open log file %s: %w", path, err)
	}
	Log = log.New(file, "", log.LstdFlags)
	Log.Println("logger initialized")
	return nil
}
