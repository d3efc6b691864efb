// Package glob compiles shell-style name patterns and user-supplied
// regular expressions into matchable predicates.
package glob

import (
	"regexp"
	"strings"
)

// Regexp translates a shell glob into a regular expression source
// string. All metacharacters are escaped first, then the escaped
// wildcards are substituted back; doing it in the other order would
// escape the wildcards themselves.
func Regexp(pattern string) string {
	p := regexp.QuoteMeta(pattern)
	p = strings.ReplaceAll(p, `\*`, ".*")
	p = strings.ReplaceAll(p, `\?`, ".")
	return "^" + p
}

// Matcher is a compiled glob predicate over file basenames.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher for the given glob. Escaping happens before
// wildcard substitution, so the resulting expression always compiles.
func Compile(pattern string) *Matcher {
	return &Matcher{re: regexp.MustCompile(Regexp(pattern))}
}

// Match reports whether name matches the glob. Matching is anchored at
// the start of the name but not at the end: "*.py" also accepts
// "main.py.bak". Callers wanting exact-suffix behavior should filter by
// extension instead.
func (m *Matcher) Match(name string) bool {
	return m.re.MatchString(name)
}

// CompileName compiles a caller-supplied regular expression used to
// match file names. The expression uses substring search semantics: it
// may match anywhere in the name unless the caller anchors it.
func CompileName(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(pattern)
}
