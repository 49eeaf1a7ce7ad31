package findr

import (
	"errors"
	"testing"
)

func TestNameMatcher(t *testing.T) {
	tests := []struct {
		name string
		src  NameSources
		in   string
		want bool
	}{
		{"glob suffix", NameSources{Glob: "*.rs"}, "main.rs", true},
		{"glob suffix other", NameSources{Glob: "*.rs"}, "config.rs", true},
		{"glob anchored end", NameSources{Glob: "*.rs"}, "main.rs.bak", false},
		{"glob anchored start", NameSources{Glob: "main*"}, "xmain.rs", false},
		{"glob dot is literal", NameSources{Glob: "*.rs"}, "mainxrs", false},
		{"glob without star", NameSources{Glob: "Makefile"}, "Makefile", true},
		{"glob case sensitive", NameSources{Glob: "*.RS"}, "main.rs", false},
		{"glob brackets literal", NameSources{Glob: "[a]*"}, "[a]b", true},
		{"glob brackets not class", NameSources{Glob: "[a]*"}, "ab", false},
		{"glob multiple stars", NameSources{Glob: "*_test.*"}, "walker_test.go", true},
		{"iglob", NameSources{IGlob: "*.RS"}, "main.rs", true},
		{"iglob mixed", NameSources{IGlob: "readme*"}, "README.md", true},
		{"iglob anchored", NameSources{IGlob: "*.RS"}, "main.rs.bak", false},
		{"regex", NameSources{Regex: "^(.*).rs$"}, "main.rs", true},
		{"regex unanchored", NameSources{Regex: "conf"}, "config.rs", true},
		{"regex miss", NameSources{Regex: `\.go$`}, "main.rs", false},
		{"invalid utf8", NameSources{Glob: "*.rs"}, "\xff.rs", false},
		{"nfd name, nfc glob", NameSources{Glob: "caf\u00e9*"}, "cafe\u0301.txt", true},
		{"nfc name, nfd glob", NameSources{Glob: "cafe\u0301*"}, "caf\u00e9.txt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewNameMatcher(tt.src)
			if err != nil {
				t.Fatalf("NewNameMatcher failed: %v", err)
			}
			if got := m.MatchName(tt.in); got != tt.want {
				t.Errorf("%s.MatchName(%q) = %v, expected %v", m, tt.in, got, tt.want)
			}
		})
	}
}

func TestNewNameMatcherErrors(t *testing.T) {
	tests := []struct {
		name string
		src  NameSources
		want error
	}{
		{"none", NameSources{}, ErrNoNameMatcher},
		{"regex and glob", NameSources{Regex: ".*", Glob: "*.rs"}, ErrAmbiguousNameMatcher},
		{"glob and iglob", NameSources{Glob: "*.rs", IGlob: "*.RS"}, ErrAmbiguousNameMatcher},
		{"all three", NameSources{Regex: "x", Glob: "y", IGlob: "z"}, ErrAmbiguousNameMatcher},
		{"bad regex", NameSources{Regex: "("}, ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewNameMatcher(tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			if m != nil {
				t.Errorf("Expected nil matcher on error")
			}
		})
	}
}

func TestGlobToRegexp(t *testing.T) {
	tests := map[string]string{
		"*.rs":  `^.*\.rs$`,
		"a*b*c": `^a.*b.*c$`,
		"*":     `^.*$`,
		"a+b":   `^a\+b$`,
	}
	for glob, want := range tests {
		if got := globToRegexp(glob); got != want {
			t.Errorf("globToRegexp(%q) = %q, expected %q", glob, got, want)
		}
	}
}
