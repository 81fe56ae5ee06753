// Package main provides the CLI entry point for the assistant.
//
// The assistant answers questions from its built-in knowledge base, runs a
// small command vocabulary over per-user memory, and falls back to heuristic
// message analysis when nothing else applies.
//
// # Basic Usage
//
// Start an interactive chat:
//
//	assistant chat
//
// Ask a single question:
//
//	assistant ask "What is JavaScript?"
//
// Inspect the heuristic breakdown of a message:
//
//	assistant analyze "I need this fixed ASAP!"
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mockmate/assistant/internal/config"
)

// Build information - populated by ldflags during build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := buildRootCmd()
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command execution failed", "error", err)
		os.Exit(1)
	}
}

// buildRootCmd creates the root command with all subcommands attached.
// Separated from main() to facilitate testing.
func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "assistant",
		Short: "Assistant - conversational helper with memory",
		Long: `Assistant answers questions from a built-in knowledge base, remembers
facts per user, and analyzes messages it cannot otherwise handle.

Commands available inside a chat: help, topics, remember, forget,
tell me a joke, tell me a fact, what do you know about me.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		buildChatCmd(),
		buildAskCmd(),
		buildAnalyzeCmd(),
	)

	return rootCmd
}

// setupLogging installs the process-wide slog handler per the config.
func setupLogging(cfg config.LoggingConfig, debug bool) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if debug {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
