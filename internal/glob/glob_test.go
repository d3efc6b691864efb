package glob

import "testing"

func TestRegexp(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"*", "^.*"},
		{"*.py", `^.*\.py`},
		{"?.txt", `^.\.txt`},
		{"a+b", `^a\+b`},
		{"data(1)*", `^data\(1\).*`},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Regexp(tt.pattern); got != tt.want {
				t.Errorf("Regexp(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"*.py", "main.py", true},
		{"*.py", "main.go", false},
		// Matching is anchored at the start only, so a glob suffix may
		// be followed by more characters.
		{"*.py", "main.py.bak", true},
		{"test_*", "test_search.py", true},
		{"test_*", "search_test.py", false},
		{"?.md", "a.md", true},
		{"?.md", "ab.md", false},
		{"*", "anything", true},
		{"*", "", true},
		// Literal metacharacters must not act as regex operators.
		{"a+.txt", "a+.txt", true},
		{"a+.txt", "aa.txt", false},
		{"note(1).md", "note(1).md", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.name, func(t *testing.T) {
			m := Compile(tt.pattern)
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Compile(%q).Match(%q) = %v, want %v", tt.pattern, tt.name, got, tt.want)
			}
		})
	}
}

func TestCompileName(t *testing.T) {
	t.Run("valid pattern", func(t *testing.T) {
		re, err := CompileName(`\.py$`)
		if err != nil {
			t.Fatalf("CompileName() error = %v", err)
		}
		if !re.MatchString("main.py") {
			t.Error("expected main.py to match")
		}
		if re.MatchString("main.pyc") {
			t.Error("expected main.pyc not to match")
		}
	})

	t.Run("substring semantics", func(t *testing.T) {
		re, err := CompileName("conf")
		if err != nil {
			t.Fatalf("CompileName() error = %v", err)
		}
		for _, name := range []string{"conf.go", "myconfig.yaml", "conf"} {
			if !re.MatchString(name) {
				t.Errorf("expected %q to match", name)
			}
		}
	})

	t.Run("invalid pattern is an error", func(t *testing.T) {
		if _, err := CompileName("("); err == nil {
			t.Error("CompileName(\"(\") expected error, got nil")
		}
	})
}
