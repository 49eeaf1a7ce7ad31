package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/TFMV/findr/walk"
	"github.com/spf13/viper"
)

func createFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
	}
}

func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRunFind(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, map[string]string{
		"main.go":         "package main",
		"README.md":       "readme",
		"pkg/util.go":     "package pkg",
		"pkg/deep/big.go": strings.Repeat("x", 4096),
	})

	tests := []struct {
		name     string
		settings map[string]any
		want     []string
	}{
		{
			name:     "all files",
			settings: nil,
			want:     []string{"README.md", "main.go", "pkg/deep/big.go", "pkg/util.go"},
		},
		{
			name:     "glob",
			settings: map[string]any{"name": "*.go"},
			want:     []string{"main.go", "pkg/deep/big.go", "pkg/util.go"},
		},
		{
			name:     "case-insensitive glob",
			settings: map[string]any{"iname": "readme*"},
			want:     []string{"README.md"},
		},
		{
			name:     "regex and size",
			settings: map[string]any{"regex": `\.go$`, "size": "+4K"},
			want:     []string{"pkg/deep/big.go"},
		},
		{
			name:     "depth",
			settings: map[string]any{"name": "*.go", "depth": 2},
			want:     []string{"main.go", "pkg/util.go"},
		},
		{
			name:     "directories",
			settings: map[string]any{"type": "d"},
			want:     []string{"", "pkg", "pkg/deep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.settings {
				v.Set(k, val)
			}

			var stdout, stderr bytes.Buffer
			if err := runFind(context.Background(), tmpDir, v, &stdout, &stderr); err != nil {
				t.Fatalf("runFind failed: %v", err)
			}

			var got []string
			for _, line := range lines(stdout.String()) {
				rel, err := filepath.Rel(tmpDir, line)
				if err != nil {
					t.Fatalf("Failed to relativize %s: %v", line, err)
				}
				if rel == "." {
					rel = ""
				}
				got = append(got, filepath.ToSlash(rel))
			}

			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			seen := make(map[string]bool)
			for _, g := range got {
				seen[g] = true
			}
			for _, w := range tt.want {
				if !seen[w] {
					t.Errorf("Expected %q in output %v", w, got)
				}
			}
		})
	}
}

func TestRunFindConfigErrors(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, map[string]string{"a.go": "x"})

	tests := []struct {
		name     string
		settings map[string]any
		want     error
	}{
		{"ambiguous names", map[string]any{"name": "*.go", "regex": "go"}, walk.ErrAmbiguousNameMatcher},
		{"bad type", map[string]any{"type": "x"}, walk.ErrUnknownKind},
		{"bad size", map[string]any{"size": "10T"}, walk.ErrUnknownSize},
		{"zero depth", map[string]any{"depth": 0}, walk.ErrInvalidDepth},
		{"bad regex", map[string]any{"regex": "("}, walk.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.settings {
				v.Set(k, val)
			}

			var stdout, stderr bytes.Buffer
			err := runFind(context.Background(), tmpDir, v, &stdout, &stderr)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if !walk.IsConfigError(err) {
				t.Errorf("Expected a configuration error, got %v", err)
			}
			if stdout.Len() != 0 {
				t.Errorf("Expected no output, got %q", stdout.String())
			}
		})
	}
}

func TestRunFindMissingRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runFind(context.Background(), filepath.Join(t.TempDir(), "missing"), viper.New(), &stdout, &stderr)
	if !errors.Is(err, walk.ErrRootInaccessible) {
		t.Fatalf("Expected ErrRootInaccessible, got %v", err)
	}
	if walk.IsConfigError(err) {
		t.Errorf("Root failure should not be a configuration error")
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output, got %q", stdout.String())
	}
}

func TestRunFindUnknownLogFormat(t *testing.T) {
	v := viper.New()
	v.Set("log-format", "yaml")

	var stdout, stderr bytes.Buffer
	if err := runFind(context.Background(), t.TempDir(), v, &stdout, &stderr); err == nil {
		t.Errorf("Expected error for unknown log format")
	}
}

func TestRunFindWatchTimeout(t *testing.T) {
	tmpDir := t.TempDir()
	createFiles(t, tmpDir, map[string]string{"a.go": "x"})

	v := viper.New()
	v.Set("watch", true)
	v.Set("watch-timeout", 200*time.Millisecond)

	var stdout, stderr bytes.Buffer
	start := time.Now()
	if err := runFind(context.Background(), tmpDir, v, &stdout, &stderr); err != nil {
		t.Fatalf("runFind failed: %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("Watch did not stop at the timeout")
	}
	if got := lines(stdout.String()); len(got) != 1 || got[0] != filepath.Join(tmpDir, "a.go") {
		t.Errorf("Expected initial match only, got %v", got)
	}
}

func TestConfigFromViper(t *testing.T) {
	v := viper.New()
	cfg := configFromViper(v)
	if cfg.MaxDepth != nil {
		t.Errorf("Expected no depth, got %d", *cfg.MaxDepth)
	}
	if cfg.Type != "" || cfg.Size != "" {
		t.Errorf("Expected empty type and size, got %q %q", cfg.Type, cfg.Size)
	}

	v.Set("depth", 3)
	v.Set("name", "*.go")
	v.Set("iname", "")
	cfg = configFromViper(v)
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 3 {
		t.Errorf("Expected depth 3, got %v", cfg.MaxDepth)
	}
	if cfg.Names.Glob != "*.go" || cfg.Names.IGlob != "" || cfg.Names.Regex != "" {
		t.Errorf("Unexpected name sources %+v", cfg.Names)
	}

	v.Set("depth", 0)
	cfg = configFromViper(v)
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 0 {
		t.Errorf("Expected explicit depth 0 to be kept, got %v", cfg.MaxDepth)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("FINDR_NAME", "*.md")
	t.Setenv("FINDR_DEPTH", "2")

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := configFromViper(v)
	if cfg.Names.Glob != "*.md" {
		t.Errorf("Expected glob from environment, got %q", cfg.Names.Glob)
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 2 {
		t.Errorf("Expected depth 2 from environment, got %v", cfg.MaxDepth)
	}
}

func TestLogOptions(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    walk.LogLevel
	}{
		{"default", false, false, walk.LogLevelWarn},
		{"verbose", true, false, walk.LogLevelDebug},
		{"quiet", false, true, walk.LogLevelError},
		{"verbose wins", true, true, walk.LogLevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set("verbose", tt.verbose)
			v.Set("quiet", tt.quiet)
			opts := logOptions(v, &bytes.Buffer{})
			if opts.Level != tt.want {
				t.Errorf("Expected level %v, got %v", tt.want, opts.Level)
			}
		})
	}
}
