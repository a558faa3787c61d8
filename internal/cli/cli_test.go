package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/changegraph/pkg/change"
	"github.com/matzehuels/changegraph/pkg/errors"
	"github.com/matzehuels/changegraph/pkg/store"
)

var (
	rootHash  = change.MustParseHash("aaaa111111111111111111111111111111111111111111111111111111111111")
	childHash = change.MustParseHash("aaaa222222222222222222222222222222222222222222222222222222222222")
	mergeHash = change.MustParseHash("bbbb333333333333333333333333333333333333333333333333333333333333")
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// testEnv isolates config and cache directories and writes a change log.
func testEnv(t *testing.T) (dir, input string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	input = filepath.Join(dir, "changes.json")
	err := store.Save(input, []change.Change{
		{Hash: rootHash},
		{Hash: childHash, Deps: []change.Hash{rootHash}},
		{Hash: mergeHash, Deps: []change.Hash{childHash, rootHash}},
	})
	if err != nil {
		t.Fatalf("store.Save() error: %v", err)
	}
	return dir, input
}

func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := New(io.Discard, LogInfo)
	c.Out = &out
	if stdin != nil {
		c.In = stdin
	}

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func TestGraphCommand_DOT(t *testing.T) {
	dir, input := testEnv(t)
	output := filepath.Join(dir, "deps.dot")

	status, err := execute(t, nil, "graph", input, output, "--hash-length", "6")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	want := "digraph automerge {\nNaaaa22 -> Naaaa11;\nNbbbb33 -> Naaaa11;\nNbbbb33 -> Naaaa22;\n}\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", data, want)
	}

	if !strings.Contains(status, "Wrote dot graph") {
		t.Errorf("status = %q, want success line", status)
	}
	if !strings.Contains(status, "3 changes · 3 edges · 3 nodes") {
		t.Errorf("status = %q, want stats line", status)
	}
}

func TestGraphCommand_Stdout(t *testing.T) {
	_, input := testEnv(t)

	out, err := execute(t, nil, "graph", input, "-", "-l", "4")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	want := "digraph automerge {\nNaaaa -> Naaaa;\nNbbbb -> Naaaa;\nNbbbb -> Naaaa;\n}\n"
	if out != want {
		t.Errorf("stdout = %q, want only the document %q", out, want)
	}
}

func TestGraphCommand_Stdin(t *testing.T) {
	var in bytes.Buffer
	if err := store.Write(&in, []change.Change{{Hash: childHash, Deps: []change.Hash{rootHash}}}); err != nil {
		t.Fatal(err)
	}
	testEnv(t)

	out, err := execute(t, &in, "graph", "-", "-", "-l", "5")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if want := "digraph automerge {\nNaaaa2 -> Naaaa1;\n}\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
}

func TestGraphCommand_ConfigDefaults(t *testing.T) {
	dir, input := testEnv(t)
	cfgPath := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(cfgPath, []byte("hash_length = 8\nno_cache = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, nil, "--config", cfgPath, "graph", input, "-")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if !strings.Contains(out, "Nbbbb3333 -> Naaaa2222;") {
		t.Errorf("stdout = %q, want 8-character identifiers from config", out)
	}

	out, err = execute(t, nil, "--config", cfgPath, "graph", input, "-", "-l", "2")
	if err != nil {
		t.Fatalf("graph error: %v", err)
	}
	if !strings.Contains(out, "Nbb -> Naa;") {
		t.Errorf("stdout = %q, want flag to override config", out)
	}
}

func TestGraphCommand_Errors(t *testing.T) {
	dir, input := testEnv(t)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing input", []string{"graph", filepath.Join(dir, "nope.json"), "-"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"graph", input, "-", "--format", "gif"}, errors.ErrCodeInvalidFormat},
		{"negative length", []string{"graph", input, "-", "-l", "-2"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"--config", filepath.Join(dir, "none.toml"), "graph", input, "-"}, errors.ErrCodeFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, nil, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("graph code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestGraphCommand_Args(t *testing.T) {
	testEnv(t)
	if _, err := execute(t, nil, "graph", "only-one"); err == nil {
		t.Error("graph with one argument should fail")
	}
}

func TestStatsCommand(t *testing.T) {
	_, input := testEnv(t)

	out, err := execute(t, nil, "stats", input)
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	for _, want := range []string{"changes", "edges", "roots", "dangling"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "shared by several hashes") {
		t.Errorf("stats at full length reported collisions: %s", out)
	}

	out, err = execute(t, nil, "stats", input, "-l", "4")
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}
	if !strings.Contains(out, "1 node identifiers are shared by several hashes at length 4") {
		t.Errorf("stats output missing collision warning: %s", out)
	}
	if !strings.Contains(out, "Naaaa  "+rootHash.String()) || !strings.Contains(out, "Naaaa  "+childHash.String()) {
		t.Errorf("stats output missing colliding hashes: %s", out)
	}
}

func TestCacheCommands(t *testing.T) {
	dir, _ := testEnv(t)

	out, err := execute(t, nil, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if want := filepath.Join(dir, "cache", appName); strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), want)
	}

	out, err = execute(t, nil, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out, "Cache is empty") {
		t.Errorf("cache clear on missing dir = %q, want empty notice", out)
	}

	entry := filepath.Join(dir, "cache", appName, "ab", "cdef.json")
	if err := os.MkdirAll(filepath.Dir(entry), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(entry, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err = execute(t, nil, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(out, "Cleared 1 cached entries") {
		t.Errorf("cache clear = %q, want 1 entry cleared", out)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/xdg-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/xdg-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, nil, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the command name")
	}

	if _, err := execute(t, nil, "completion", "tcsh"); err == nil {
		t.Error("completion for unsupported shell should fail")
	}
}
