package engine

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"

	"fileseek/internal/types"
)

var errNotUTF8 = errors.New("not valid UTF-8")

// scanContent reads one file and returns a record for every line that
// matches re.
func scanContent(path string, re *regexp.Regexp, contextLines int) ([]types.ContentMatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, errNotUTF8
	}

	lines := strings.Split(string(data), "\n")
	// A trailing newline leaves a phantom empty element; drop it so the
	// last line of the file is the last line of the window.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var matches []types.ContentMatch
	for i, line := range lines {
		if !re.MatchString(line) {
			continue
		}
		start := max(i-contextLines, 0)
		end := min(i+contextLines+1, len(lines))
		matches = append(matches, types.ContentMatch{
			File:       path,
			LineNumber: i + 1,
			Content:    strings.TrimSpace(line),
			Context:    strings.TrimSpace(strings.Join(lines[start:end], "\n")),
		})
	}
	return matches, nil
}

// scanPattern runs a whole-file regex over one file. Files at or above
// mmapThreshold are mapped instead of read; the records are identical
// either way since all matched text is copied out before unmapping.
func scanPattern(path string, re *regexp.Regexp, mmapThreshold int64) ([]types.PatternMatch, error) {
	if mmapThreshold > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() >= mmapThreshold {
			if matches, err := scanPatternMapped(path, re); err == nil {
				return matches, nil
			}
			// Mapping can fail on unusual filesystems; fall through to
			// a plain read.
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return matchBytes(path, data, re)
}

func scanPatternMapped(path string, re *regexp.Regexp) ([]types.PatternMatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer data.Unmap()

	return matchBytes(path, data, re)
}

func matchBytes(path string, data []byte, re *regexp.Regexp) ([]types.PatternMatch, error) {
	if !utf8.Valid(data) {
		return nil, errNotUTF8
	}

	// Offsets are reported in runes over the decoded content, not
	// bytes. Matches come back ordered and non-overlapping, so the
	// byte-to-rune conversion can advance incrementally.
	prevByte, prevRune := 0, 0
	runeOffset := func(byteOffset int) int {
		prevRune += utf8.RuneCount(data[prevByte:byteOffset])
		prevByte = byteOffset
		return prevRune
	}

	var matches []types.PatternMatch
	for _, m := range re.FindAllSubmatchIndex(data, -1) {
		groups := make([]string, 0, len(m)/2-1)
		for g := 1; g < len(m)/2; g++ {
			s, e := m[2*g], m[2*g+1]
			if s < 0 {
				// Non-participating group.
				groups = append(groups, "")
				continue
			}
			groups = append(groups, string(data[s:e]))
		}
		matches = append(matches, types.PatternMatch{
			File:   path,
			Start:  runeOffset(m[0]),
			End:    runeOffset(m[1]),
			Match:  string(data[m[0]:m[1]]),
			Groups: groups,
		})
	}
	return matches, nil
}
