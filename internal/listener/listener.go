// Package listener owns the interactive terminal: a readline prompt for
// commands plus a safe way to print asynchronous output above it.
package listener

import (
	"fmt"
	"strings"
	"sync"

	"github.com/chzyer/readline"
)

var (
	rl *readline.Instance
	mu sync.Mutex
)

func Init() error {
	var err error
	rl, err = readline.NewEx(&readline.Config{
		Prompt:          "vega> ",
		InterruptPrompt: "",
		EOFPrompt:       "",
	})
	return err
}

func Close() {
	if rl != nil {
		_ = rl.Close()
	}
}

// GetInput blocks for the next command line. EOF and interrupts come
// back as an empty string; the caller's exit handling covers them.
func GetInput() string {
	line, err := rl.Readline()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// AsyncPrintln prints a line above the prompt without mangling whatever
// the user has typed so far.
func AsyncPrintln(s string) {
	mu.Lock()
	defer mu.Unlock()
	if rl == nil {
		fmt.Println(s)
		return
	}
	_, _ = rl.Write([]byte("\r\n" + s + "\r\n"))
	rl.Refresh()
}
