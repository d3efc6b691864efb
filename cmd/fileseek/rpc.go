package main

import (
	"os"

	"github.com/spf13/cobra"

	"fileseek/internal/dispatch"
)

func rpcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rpc",
		Short: "Serve the JSON request/response protocol on stdin/stdout",
		Long: `rpc reads one JSON request per line from stdin and writes one JSON
response per line to stdout.

Request:  {"action": "<name>", "data": {...}, "id": "<optional>"}
Response: {"success": true|false, "data": {...}|null, "error": "..."|null}

Actions: search_files, search_content, find_pattern, search_by_extension.`,
		Example: `echo '{"action":"search_content","data":{"path":".","text":"TODO"}}' | fileseek rpc`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}
			d := dispatch.New(searchEngine, logger)
			return d.Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
