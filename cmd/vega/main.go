package main

import (
	"log"

	"github.com/joho/godotenv"

	"vega/internal/cli"
	"vega/internal/config"
	"vega/internal/llm"
	"vega/internal/logger"
)

func main() {
	// A missing .env is fine; the environment itself may carry the keys.
	_ = godotenv.Load()

	if err := logger.Init(config.DiagnosticLogFile()); err != nil {
		log.Fatalf("Fatal Error: Could not initialize logger: %v", err)
	}

	if err := llm.Init(llm.Config{
		Backend: config.LLMBackend(),
		Model:   config.LLMModel(),
	}); err != nil {
		log.Fatalf("Fatal Error: Could not initialize LLM backend: %v", err)
	}

	cli.Execute()
}
