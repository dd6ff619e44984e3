package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	golog "github.com/tochemey/goakt/v3/log"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "flock.yaml")
	if err := os.WriteFile(config, []byte("boids: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "telemetry.csv")

	opts := options{configPath: config, seed: 42, steps: 23, dt: 16, every: 5, outPath: out}
	if err := run(opts, golog.DiscardLogger); err != nil {
		t.Fatalf("run: %v", err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	// header, step 0, 5, 10, 15, 20 and the last step 23
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), b)
	}
	if !strings.HasPrefix(lines[1], "0,0,25,") || !strings.HasPrefix(lines[6], "0,23,25,") {
		t.Errorf("unexpected rows:\n%s", b)
	}
}

func TestRunIsReproducible(t *testing.T) {
	dir := t.TempDir()
	read := func(name string) string {
		out := filepath.Join(dir, name)
		opts := options{seed: 7, steps: 30, dt: 16, every: 10, outPath: out}
		if err := run(opts, golog.DiscardLogger); err != nil {
			t.Fatalf("run: %v", err)
		}
		b, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}

	if a, b := read("a.csv"), read("b.csv"); a != b {
		t.Errorf("same seed gave different telemetry:\n%s\n%s", a, b)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		opts options
	}{
		{"zero interval", options{steps: 10, dt: 16, every: 0, outPath: filepath.Join(dir, "a.csv")}},
		{"negative steps", options{steps: -1, dt: 16, every: 1, outPath: filepath.Join(dir, "b.csv")}},
		{"missing config", options{configPath: filepath.Join(dir, "nope.yaml"), steps: 1, dt: 16, every: 1, outPath: filepath.Join(dir, "c.csv")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.opts, golog.DiscardLogger); err == nil {
				t.Error("run: want an error")
			}
		})
	}
}

// TestBuildsWithoutDisplay walks the module packages this command links and fails on any
// path leading to ebiten, which needs a graphics stack at build time.
func TestBuildsWithoutDisplay(t *testing.T) {
	const module = "github.com/lao-tseu-is-alive/go-boids/"
	forbidden := []string{"github.com/hajimehoshi/ebiten", "github.com/lucasb-eyer/go-colorful", module + "pkg/ui", module + "pkg/view"}

	seen := map[string]bool{}
	queue := []string{"."}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]
		if seen[dir] {
			continue
		}
		seen[dir] = true

		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", file, err)
			}
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				for _, bad := range forbidden {
					if strings.HasPrefix(path, bad) {
						t.Errorf("%s imports %s", file, path)
					}
				}
				if rel, ok := strings.CutPrefix(path, module); ok {
					queue = append(queue, filepath.Join("..", "..", filepath.FromSlash(rel)))
				}
			}
		}
	}
	if !seen[filepath.Join("..", "..", "pkg", "simulation")] {
		t.Error("pkg/simulation was not reached from the headless command")
	}
}
