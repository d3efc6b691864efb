package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fileseek/internal/types"
)

func handleSearchFiles(ctx context.Context, req *mcp.CallToolRequest, input SearchFilesInput) (*mcp.CallToolResult, SearchFilesOutput, error) {
	matches, err := searchEngine.SearchFiles(ctx, types.SearchFilesParams{
		Path:      input.Path,
		Pattern:   input.Pattern,
		Recursive: input.Recursive,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchFilesOutput{}, err
	}
	return nil, SearchFilesOutput{Matches: matches}, nil
}

func handleSearchContent(ctx context.Context, req *mcp.CallToolRequest, input SearchContentInput) (*mcp.CallToolResult, SearchContentOutput, error) {
	matches, skipped, err := searchEngine.SearchContent(ctx, types.SearchContentParams{
		Path:         input.Path,
		Text:         input.Text,
		FilePattern:  input.FilePattern,
		ContextLines: input.ContextLines,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchContentOutput{}, err
	}
	if matches == nil {
		matches = []types.ContentMatch{}
	}
	return nil, SearchContentOutput{Matches: matches, Skipped: skipped}, nil
}

func handleFindPattern(ctx context.Context, req *mcp.CallToolRequest, input FindPatternInput) (*mcp.CallToolResult, FindPatternOutput, error) {
	matches, skipped, err := searchEngine.FindPattern(ctx, types.FindPatternParams{
		Path:        input.Path,
		Pattern:     input.Pattern,
		FilePattern: input.FilePattern,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindPatternOutput{}, err
	}
	if matches == nil {
		matches = []types.PatternMatch{}
	}
	return nil, FindPatternOutput{Matches: matches, Skipped: skipped}, nil
}

func handleSearchByExtension(ctx context.Context, req *mcp.CallToolRequest, input SearchByExtensionInput) (*mcp.CallToolResult, SearchByExtensionOutput, error) {
	matches, err := searchEngine.SearchByExtension(ctx, types.SearchByExtensionParams{
		Path:      input.Path,
		Extension: input.Extension,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchByExtensionOutput{}, err
	}
	return nil, SearchByExtensionOutput{Matches: matches}, nil
}
