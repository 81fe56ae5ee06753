// commands.go contains the cobra command definitions and their handlers.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mockmate/assistant/internal/analyzer"
	"github.com/mockmate/assistant/internal/config"
	"github.com/mockmate/assistant/internal/content"
	"github.com/mockmate/assistant/internal/engine"
	"github.com/mockmate/assistant/internal/memory"
)

// buildChatCmd creates the "chat" command: an interactive REPL against the
// engine, one line per turn.
func buildChatCmd() *cobra.Command {
	var (
		configPath string
		userID     string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session. Each line you type is one turn;
the assistant's reply prints below it. Exit with Ctrl-D, "exit", or "quit".`,
		Example: `  # Chat with the default in-memory store
  assistant chat

  # Chat as a named user with persistent memory
  assistant chat --user alice --config assistant.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), configPath, userID, debug)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&userID, "user", "u", "local", "User ID for memory scoping")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// buildAskCmd creates the "ask" command: a single one-shot turn.
func buildAskCmd() *cobra.Command {
	var (
		configPath string
		userID     string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask a single question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		Example: `  assistant ask "What is JavaScript?"
  assistant ask --user alice "what do you know about me"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), configPath, userID, debug, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().StringVarP(&userID, "user", "u", "local", "User ID for memory scoping")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// buildAnalyzeCmd creates the "analyze" command: dump the heuristic message
// breakdown as JSON without going through the behavior chain.
func buildAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyze <message>",
		Short:   "Print the heuristic analysis of a message as JSON",
		Args:    cobra.MinimumNArgs(1),
		Example: `  assistant analyze "JavaScript is AMAZING!!! I need this ASAP"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := analyzer.Analyze(strings.Join(args, " "))
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return cmd
}

// runtime bundles everything a command needs to serve turns, plus the
// teardown collected while assembling it.
type runtime struct {
	engine  *engine.Engine
	name    string
	cleanup []func() error
}

func (r *runtime) close() {
	for i := len(r.cleanup) - 1; i >= 0; i-- {
		_ = r.cleanup[i]()
	}
}

// buildRuntime loads config, installs logging, and assembles the store,
// content library, behavior registry, and engine.
func buildRuntime(ctx context.Context, configPath string, debug bool) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cfg.Logging, debug)

	rt := &runtime{name: cfg.Assistant.Name}

	store, learned, closer, err := buildStore(cfg.Storage)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		rt.cleanup = append(rt.cleanup, closer)
	}

	library, err := buildContent(ctx, cfg.Content, rt)
	if err != nil {
		rt.close()
		return nil, err
	}

	registry := engine.BuildRegistry(library, learned, nil, nil)

	var opts []engine.Option
	if cfg.Assistant.Analysis {
		opts = append(opts, engine.WithAnalysis())
	}
	rt.engine = engine.New(registry, store, nil, opts...)
	return rt, nil
}

// buildStore creates the configured memory backend. The returned closer is
// nil for the in-memory backend.
func buildStore(cfg config.StorageConfig) (memory.Store, memory.LearnedTermsStore, func() error, error) {
	switch cfg.Backend {
	case "sqlite":
		db, err := memory.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return db, db.LearnedTerms(), db.Close, nil
	default:
		return memory.NewMemoryStore(), memory.NewMemoryLearnedTerms(), nil, nil
	}
}

// buildContent creates the content library, applying the configured override
// file and starting the hot-reload watcher when asked.
func buildContent(ctx context.Context, cfg config.ContentConfig, rt *runtime) (*content.Library, error) {
	library := content.NewLibrary()
	if cfg.Path == "" {
		return library, nil
	}
	if err := library.Reload(cfg.Path); err != nil {
		return nil, fmt.Errorf("failed to load content file: %w", err)
	}
	if cfg.Watch {
		watcher := content.NewWatcher(library, cfg.Path, nil)
		if err := watcher.Start(ctx); err != nil {
			return nil, fmt.Errorf("failed to watch content file: %w", err)
		}
		rt.cleanup = append(rt.cleanup, watcher.Close)
	}
	return library, nil
}

func runAsk(ctx context.Context, configPath, userID string, debug bool, message string) error {
	rt, err := buildRuntime(ctx, configPath, debug)
	if err != nil {
		return err
	}
	defer rt.close()

	resp := rt.engine.Respond(ctx, userID, "", message)
	fmt.Println(resp.Reply)
	if resp.Analysis != nil {
		out, err := json.MarshalIndent(resp.Analysis, "", "  ")
		if err == nil {
			fmt.Println(string(out))
		}
	}
	return nil
}

func runChat(ctx context.Context, configPath, userID string, debug bool) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := buildRuntime(ctx, configPath, debug)
	if err != nil {
		return err
	}
	defer rt.close()

	fmt.Printf("%s ready. Type a message, or \"exit\" to leave.\n", rt.name)

	conversationID := ""
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return err
			}
			fmt.Println()
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			fmt.Println("Goodbye!")
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		resp := rt.engine.Respond(ctx, userID, conversationID, line)
		conversationID = resp.ConversationID
		fmt.Println(resp.Reply)
	}
}
