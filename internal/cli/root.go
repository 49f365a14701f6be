// Package cli is the interactive console loop: read a command, run it
// through the engine, report what happened.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vega/internal/audit"
	"vega/internal/automation"
	"vega/internal/config"
	"vega/internal/dispatcher"
	"vega/internal/display"
	"vega/internal/listener"
	"vega/internal/llm"
	"vega/internal/logger"
	"vega/internal/media"
	"vega/internal/parser"
	"vega/internal/resolver"
	"vega/internal/search"
	"vega/internal/speech"
)

const commandTimeout = 90 * time.Second

var rootCmd = &cobra.Command{
	Use:   "vega",
	Short: "A voice-style desktop assistant that turns commands into actions",
	Long:  `Vega converts natural-language commands into desktop actions: opening apps and sites, controlling media, typing generated content, and searching online.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoop()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func buildEngine() (*dispatcher.Dispatcher, *llm.Planner, error) {
	registry, err := resolver.LoadRegistry(config.AppMappingsFile())
	if err != nil {
		return nil, nil, err
	}

	desktop := automation.New()
	planner := &llm.Planner{Model: config.LLMModel()}
	logger.Log.Printf("engine up (backend %s)", llm.ActiveBackend())

	d := dispatcher.New(dispatcher.Options{
		Collaborators: dispatcher.Collaborators{
			Opener:  desktop,
			Keys:    desktop,
			Mouse:   desktop,
			Typist:  desktop,
			Windows: desktop,
			Tabs:    desktop,
			Alarm:   desktop,
			Video:   media.NewPlayer(desktop),
			Browser: desktop,
		},
		Registry:        registry,
		Planner:         planner,
		Audit:           audit.NewWriter(config.ActionLogFile()),
		StartupDelay:    config.StartupDelay(),
		PostToggleDelay: config.PostToggleDelay(),
	})
	return d, planner, nil
}

func runLoop() error {
	engine, planner, err := buildEngine()
	if err != nil {
		return fmt.Errorf("could not build engine: %w", err)
	}

	if err := listener.Init(); err != nil {
		return fmt.Errorf("could not init terminal input: %w", err)
	}
	defer listener.Close()

	speaker := speech.NewSpeaker(config.SpeechEnabled())
	defer speaker.Close()

	googleKey, googleCX := config.GoogleSearchCredentials()
	searcher := search.NewClient(googleKey, googleCX)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}()

	listener.AsyncPrintln("Hello! How can I help you today? (type 'exit' or press Ctrl+C to quit)")

	for {
		input := listener.GetInput()
		if strings.EqualFold(strings.TrimSpace(input), "exit") {
			fmt.Println("Goodbye!")
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		handleCommand(engine, planner, searcher, speaker, input)
	}
}

func handleCommand(engine *dispatcher.Dispatcher, planner *llm.Planner, searcher *search.Client, speaker *speech.Speaker, input string) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	if query, ok := onlineSearchQuery(input); ok {
		results, err := searcher.Search(ctx, query, 5)
		if err != nil {
			listener.AsyncPrintln(fmt.Sprintf("[Search FAILED] %v", err))
			return
		}
		listener.AsyncPrintln(search.Format(results))
		speaker.Say("Here is what I found.")
		return
	}

	res, err := engine.Execute(ctx, input)
	if err != nil {
		logger.Log.Printf("plan for %q failed: %v", input, err)
		respondConversationally(ctx, planner, speaker, input)
		return
	}

	if actions := parser.ParsePlan(res.Record.PlanText); len(actions) > 0 {
		listener.AsyncPrintln(display.FormatPlan(actions))
	}
	if out := display.FormatOutcome(res.Record); out != "" {
		listener.AsyncPrintln(out)
	}

	if !res.Succeeded() {
		// A plan was produced but nothing ran; treat the command as chat.
		respondConversationally(ctx, planner, speaker, input)
		return
	}
	if !res.Playing {
		speaker.Say("Done.")
	}
}

func respondConversationally(ctx context.Context, planner *llm.Planner, speaker *speech.Speaker, input string) {
	reply, err := planner.Respond(ctx, input)
	if err != nil {
		listener.AsyncPrintln("Sorry, I could not handle that one.")
		logger.Log.Printf("conversational fallback failed: %v", err)
		return
	}
	reply = strings.TrimSpace(reply)
	listener.AsyncPrintln(reply)
	speaker.Say(reply)
}

// onlineSearchQuery recognizes the explicit "search online ..." form,
// which returns result snippets instead of opening a browser.
func onlineSearchQuery(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)
	for _, prefix := range []string{"search online for ", "search online "} {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):]), true
		}
	}
	return "", false
}
