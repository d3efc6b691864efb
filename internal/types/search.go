// Package types defines the request parameters and match records shared
// by the search engine, the dispatcher and the tool surfaces.
package types

// Actions understood by the dispatcher.
const (
	ActionSearchFiles       = "search_files"
	ActionSearchContent     = "search_content"
	ActionFindPattern       = "find_pattern"
	ActionSearchByExtension = "search_by_extension"
)

// Defaults applied when a request leaves a field unset.
const (
	DefaultPath         = "."
	DefaultFilePattern  = "*"
	DefaultContextLines = 2
)

type (
	// SearchFilesParams contains parameters for searching files by name.
	SearchFilesParams struct {
		Path      string `json:"path,omitempty"`
		Pattern   string `json:"pattern"`
		Recursive *bool  `json:"recursive,omitempty"`
	}

	// SearchContentParams contains parameters for searching file contents.
	SearchContentParams struct {
		Path         string `json:"path,omitempty"`
		Text         string `json:"text"`
		FilePattern  string `json:"file_pattern,omitempty"`
		ContextLines *int   `json:"context_lines,omitempty"`
	}

	// FindPatternParams contains parameters for whole-file regex search.
	FindPatternParams struct {
		Path        string `json:"path,omitempty"`
		Pattern     string `json:"pattern"`
		FilePattern string `json:"file_pattern,omitempty"`
	}

	// SearchByExtensionParams contains parameters for extension filtering.
	SearchByExtensionParams struct {
		Path      string `json:"path,omitempty"`
		Extension string `json:"extension"`
	}

	// ContentMatch is one matching line together with its context window.
	ContentMatch struct {
		File       string `json:"file"`
		LineNumber int    `json:"line_number"`
		Content    string `json:"content"`
		Context    string `json:"context"`
	}

	// PatternMatch is one regex match with rune offsets into the decoded
	// file content and the captured groups in declaration order.
	PatternMatch struct {
		File   string   `json:"file"`
		Start  int      `json:"start"`
		End    int      `json:"end"`
		Match  string   `json:"match"`
		Groups []string `json:"groups"`
	}

	// Skip records a file that was dropped from a search with the reason.
	// Skips are diagnostics only; they never fail the request.
	Skip struct {
		File   string `json:"file"`
		Reason string `json:"reason"`
	}
)

// RecursiveOrDefault resolves the recursion flag, defaulting to true.
func (p SearchFilesParams) RecursiveOrDefault() bool {
	return p.Recursive == nil || *p.Recursive
}

// ContextLinesOrDefault resolves the context-line count, defaulting to
// DefaultContextLines. Zero is a meaningful value: the context window is
// exactly the matching line.
func (p SearchContentParams) ContextLinesOrDefault() int {
	if p.ContextLines == nil {
		return DefaultContextLines
	}
	return max(*p.ContextLines, 0)
}
