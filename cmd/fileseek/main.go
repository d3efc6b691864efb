// Package main implements the fileseek search service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"fileseek/internal/config"
	"fileseek/internal/engine"
)

var (
	configPath string

	logger       *slog.Logger
	searchEngine *engine.Engine
)

func main() {
	cmd := &cobra.Command{
		Use:   "fileseek",
		Short: "Concurrent content-search service",
		Long: `fileseek is a concurrent content-search engine for directory trees.
It matches file names, file contents (with context windows), whole-file
regex patterns and extensions, fanning per-file work across a bounded
worker pool.

Invoked without a subcommand it runs as an MCP stdio server exposing
the search operations as tools. The rpc subcommand speaks a plain
newline-delimited JSON request/response protocol instead, and the
search subcommand runs one search from the command line.`,
		Example: `fileseek
fileseek rpc < requests.jsonl
fileseek search --text TODO ./src`,
		Args: cobra.NoArgs,
		RunE: runServer,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	cmd.AddCommand(rpcCommand(), searchCommand())

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration and initializes the shared services. Logs
// go to stderr so stdout stays clean for the stdio transports.
func setup() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	searchEngine = engine.New(engine.Options{
		Workers:       cfg.Workers,
		MMapThreshold: cfg.MMapThreshold,
		ExcludeDirs:   cfg.ExcludeDirs,
		Logger:        logger,
	})
	return nil
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "fileseek",
		Version: version,
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
