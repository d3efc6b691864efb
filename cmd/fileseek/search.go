package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"fileseek/internal/types"
)

func searchCommand() *cobra.Command {
	var (
		namePattern  string
		text         string
		pattern      string
		extension    string
		filePattern  string
		contextLines int
		noRecursive  bool
	)

	cmd := &cobra.Command{
		Use:   "search [path]",
		Short: "Run a one-shot search from the command line",
		Long: `search runs a single search against a directory tree and prints the
matches. Exactly one of --name, --text, --pattern or --ext selects the
search mode.`,
		Example: `fileseek search --text "TODO" --glob "*.go" ./src
fileseek search --name '\.ya?ml$' .
fileseek search --pattern 'func\s+(\w+)\(' --glob "*.go" .
fileseek search --ext py ~/project`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(); err != nil {
				return err
			}

			root := "."
			if len(args) > 0 {
				root = args[0]
			}

			modes := 0
			for _, flag := range []string{namePattern, text, pattern, extension} {
				if flag != "" {
					modes++
				}
			}
			if modes != 1 {
				return fmt.Errorf("exactly one of --name, --text, --pattern or --ext is required")
			}

			ctx := cmd.Context()
			stop := spin()
			defer stop()

			switch {
			case namePattern != "":
				recursive := !noRecursive
				matches, err := searchEngine.SearchFiles(ctx, types.SearchFilesParams{
					Path:      root,
					Pattern:   namePattern,
					Recursive: &recursive,
				})
				if err != nil {
					return err
				}
				stop()
				for _, path := range matches {
					fmt.Println(path)
				}
				fmt.Printf("%d matching files\n", len(matches))

			case text != "":
				matches, skipped, err := searchEngine.SearchContent(ctx, types.SearchContentParams{
					Path:         root,
					Text:         text,
					FilePattern:  filePattern,
					ContextLines: &contextLines,
				})
				if err != nil {
					return err
				}
				stop()
				for _, m := range matches {
					fmt.Printf("%s:%d: %s\n", m.File, m.LineNumber, m.Content)
				}
				printSummary(len(matches), skipped)

			case pattern != "":
				matches, skipped, err := searchEngine.FindPattern(ctx, types.FindPatternParams{
					Path:        root,
					Pattern:     pattern,
					FilePattern: filePattern,
				})
				if err != nil {
					return err
				}
				stop()
				for _, m := range matches {
					fmt.Printf("%s:[%d-%d]: %s\n", m.File, m.Start, m.End, m.Match)
				}
				printSummary(len(matches), skipped)

			default:
				matches, err := searchEngine.SearchByExtension(ctx, types.SearchByExtensionParams{
					Path:      root,
					Extension: extension,
				})
				if err != nil {
					return err
				}
				stop()
				for _, path := range matches {
					fmt.Println(path)
				}
				fmt.Printf("%d matching files\n", len(matches))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namePattern, "name", "n", "", "regular expression matched against file names")
	cmd.Flags().StringVarP(&text, "text", "t", "", "regular expression matched against each line of content")
	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression run over whole file contents")
	cmd.Flags().StringVarP(&extension, "ext", "e", "", "file extension to match")
	cmd.Flags().StringVarP(&filePattern, "glob", "g", "", "glob filtering which files are scanned (default \"*\")")
	cmd.Flags().IntVarP(&contextLines, "context", "C", types.DefaultContextLines, "context lines around each content match")
	cmd.Flags().BoolVar(&noRecursive, "no-recursive", false, "only search direct children (name search only)")

	return cmd
}

func printSummary(matches int, skipped []types.Skip) {
	if len(skipped) > 0 {
		fmt.Printf("%d matches (%d files skipped)\n", matches, len(skipped))
		return
	}
	fmt.Printf("%d matches\n", matches)
}

// spin shows an indeterminate progress spinner until the returned stop
// function is called. Stopping twice is fine.
func spin() func() {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("searching"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(os.Stderr),
	)
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				bar.Add(1)
			}
		}
	}()

	stopped := false
	return func() {
		if stopped {
			return
		}
		stopped = true
		close(done)
		bar.Clear()
	}
}
