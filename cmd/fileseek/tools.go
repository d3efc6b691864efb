package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fileseek/internal/types"
)

type (
	// SearchFilesInput contains parameters for searching files by name.
	SearchFilesInput struct {
		Path      string `json:"path,omitempty" jsonschema:"Directory to search (default: current directory)"`
		Pattern   string `json:"pattern" jsonschema:"Regular expression matched against file names"`
		Recursive *bool  `json:"recursive,omitempty" jsonschema:"Recurse into subdirectories (default: true)"`
	}

	// SearchFilesOutput contains the matching file paths.
	SearchFilesOutput struct {
		Matches []string `json:"matches"`
	}

	// SearchContentInput contains parameters for searching file contents.
	SearchContentInput struct {
		Path         string `json:"path,omitempty" jsonschema:"Directory to search (default: current directory)"`
		Text         string `json:"text" jsonschema:"Regular expression matched against each line"`
		FilePattern  string `json:"file_pattern,omitempty" jsonschema:"Glob filtering which files are scanned (default: *)"`
		ContextLines *int   `json:"context_lines,omitempty" jsonschema:"Lines of context before and after each match (default: 2)"`
	}

	// SearchContentOutput contains line matches with context windows.
	SearchContentOutput struct {
		Matches []types.ContentMatch `json:"matches"`
		Skipped []types.Skip         `json:"skipped,omitempty"`
	}

	// FindPatternInput contains parameters for whole-file regex search.
	FindPatternInput struct {
		Path        string `json:"path,omitempty" jsonschema:"Directory to search (default: current directory)"`
		Pattern     string `json:"pattern" jsonschema:"Regular expression run over whole file contents"`
		FilePattern string `json:"file_pattern,omitempty" jsonschema:"Glob filtering which files are scanned (default: *)"`
	}

	// FindPatternOutput contains pattern matches with offsets and groups.
	FindPatternOutput struct {
		Matches []types.PatternMatch `json:"matches"`
		Skipped []types.Skip         `json:"skipped,omitempty"`
	}

	// SearchByExtensionInput contains parameters for extension filtering.
	SearchByExtensionInput struct {
		Path      string `json:"path,omitempty" jsonschema:"Directory to search (default: current directory)"`
		Extension string `json:"extension" jsonschema:"File extension to match, with or without the leading dot"`
	}

	// SearchByExtensionOutput contains the matching file paths.
	SearchByExtensionOutput struct {
		Matches []string `json:"matches"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        types.ActionSearchFiles,
		Description: "Search for files whose names match a regular expression. Matches names only, never content.",
	}, handleSearchFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        types.ActionSearchContent,
		Description: "Search file contents line by line for a regular expression. Returns matching lines with 1-based line numbers and surrounding context. Unreadable files are skipped, never fatal.",
	}, handleSearchContent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        types.ActionFindPattern,
		Description: "Run a whole-file regular expression search. Returns every non-overlapping match with character offsets, the matched text and captured groups.",
	}, handleFindPattern)

	mcp.AddTool(server, &mcp.Tool{
		Name:        types.ActionSearchByExtension,
		Description: "List every file under a directory with the given extension.",
	}, handleSearchByExtension)
}
