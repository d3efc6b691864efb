// Package engine implements the content-search operations: filename
// search, line-oriented content search with context windows, whole-file
// pattern search and extension filtering.
package engine

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"fileseek/internal/glob"
	"fileseek/internal/pool"
	"fileseek/internal/types"
	"fileseek/internal/walker"
)

// DefaultMMapThreshold is the file size at which whole-file pattern
// scans switch to memory mapping.
const DefaultMMapThreshold = 4 << 20

// Options configures an Engine.
type Options struct {
	// Workers bounds per-file task concurrency. Zero means
	// pool.DefaultWorkers.
	Workers int
	// MMapThreshold is the minimum file size for mmap-backed pattern
	// scans. Zero means DefaultMMapThreshold; negative disables mmap.
	MMapThreshold int64
	// ExcludeDirs prunes directories by base name during walks.
	ExcludeDirs []string
	Logger      *slog.Logger
}

// Engine executes search requests. It holds no per-request state; the
// worker pool and walk are scoped to a single call.
type Engine struct {
	walker        *walker.Walker
	pool          *pool.Pool
	mmapThreshold int64
	log           *slog.Logger
}

// New creates an Engine.
func New(opts Options) *Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	threshold := opts.MMapThreshold
	if threshold == 0 {
		threshold = DefaultMMapThreshold
	}
	return &Engine{
		walker:        walker.New(opts.ExcludeDirs, log),
		pool:          pool.New(opts.Workers, log),
		mmapThreshold: threshold,
		log:           log,
	}
}

// SearchFiles matches file names (not content) against a regular
// expression and returns the matching paths. No worker pool is
// involved; this is a pure filter over the walk.
func (e *Engine) SearchFiles(ctx context.Context, params types.SearchFilesParams) ([]string, error) {
	if params.Pattern == "" {
		return nil, types.MissingParameter("no search pattern specified")
	}
	re, err := glob.CompileName(params.Pattern)
	if err != nil {
		return nil, types.InvalidPattern(err)
	}

	paths, err := e.walker.Walk(ctx, rootOrDefault(params.Path), params.RecursiveOrDefault())
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for path := range paths {
		if re.MatchString(filepath.Base(path)) {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

// SearchContent scans qualifying files line by line for a regular
// expression. Every matching line yields one record with its 1-based
// line number, trimmed content and a context window of ContextLines
// lines before and after, clamped to the file bounds. Files that cannot
// be read or are not valid UTF-8 are skipped.
func (e *Engine) SearchContent(ctx context.Context, params types.SearchContentParams) ([]types.ContentMatch, []types.Skip, error) {
	if params.Text == "" {
		return nil, nil, types.MissingParameter("no search text specified")
	}
	textRE, err := regexp.Compile(params.Text)
	if err != nil {
		return nil, nil, types.InvalidPattern(err)
	}
	fileMatcher := glob.Compile(filePatternOrDefault(params.FilePattern))
	contextLines := params.ContextLinesOrDefault()

	paths, err := e.walker.Walk(ctx, rootOrDefault(params.Path), true)
	if err != nil {
		return nil, nil, err
	}

	matches, skipped := pool.Run(ctx, e.pool, filterNames(paths, fileMatcher),
		func(ctx context.Context, path string) ([]types.ContentMatch, error) {
			return scanContent(path, textRE, contextLines)
		})
	return matches, skipped, nil
}

// FindPattern runs a whole-file (not line-by-line) regex search over
// qualifying files. Every non-overlapping match yields one record with
// rune offsets into the decoded content, the matched text and the
// captured groups in declaration order. Files at or above the mmap
// threshold are scanned through a memory mapping.
func (e *Engine) FindPattern(ctx context.Context, params types.FindPatternParams) ([]types.PatternMatch, []types.Skip, error) {
	if params.Pattern == "" {
		return nil, nil, types.MissingParameter("no regex pattern specified")
	}
	re, err := regexp.Compile(params.Pattern)
	if err != nil {
		return nil, nil, types.InvalidPattern(err)
	}
	fileMatcher := glob.Compile(filePatternOrDefault(params.FilePattern))

	paths, err := e.walker.Walk(ctx, rootOrDefault(params.Path), true)
	if err != nil {
		return nil, nil, err
	}

	matches, skipped := pool.Run(ctx, e.pool, filterNames(paths, fileMatcher),
		func(ctx context.Context, path string) ([]types.PatternMatch, error) {
			return scanPattern(path, re, e.mmapThreshold)
		})
	return matches, skipped, nil
}

// SearchByExtension returns every file whose name ends with the given
// extension. The extension is normalized to carry a leading dot. No
// regex and no worker pool: a pure suffix filter over the walk.
func (e *Engine) SearchByExtension(ctx context.Context, params types.SearchByExtensionParams) ([]string, error) {
	if params.Extension == "" {
		return nil, types.MissingParameter("no file extension specified")
	}
	ext := params.Extension
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	paths, err := e.walker.Walk(ctx, rootOrDefault(params.Path), true)
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for path := range paths {
		if strings.HasSuffix(path, ext) {
			matches = append(matches, path)
		}
	}
	return matches, nil
}

func rootOrDefault(path string) string {
	if path == "" {
		return types.DefaultPath
	}
	return path
}

func filePatternOrDefault(pattern string) string {
	if pattern == "" {
		return types.DefaultFilePattern
	}
	return pattern
}

// filterNames forwards only the paths whose basename matches m. The
// glob is applied before submission so non-qualifying files never cost
// a pool slot.
func filterNames(in <-chan string, m *glob.Matcher) <-chan string {
	out := make(chan string, 64)
	go func() {
		defer close(out)
		for path := range in {
			if m.Match(filepath.Base(path)) {
				out <- path
			}
		}
	}()
	return out
}
