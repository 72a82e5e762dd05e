// wordapp is the command-line word game: generate words, pick one and see
// its longest substring without repeating characters.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/povarna/generative-ai-agents/word-agent/cmd/wordapp/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
