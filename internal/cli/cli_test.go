package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/champagne/pkg/cache"
	"github.com/matzehuels/champagne/pkg/drawing"
	"github.com/matzehuels/champagne/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,md,xlsx", []string{"svg", "md", "xlsx"}},
		{"spaces and case", " SVG , png ", []string{"svg", "png"}},
		{"duplicates", "svg,svg", []string{"svg"}},
		{"blank entries", ",,", []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func testCommand(t *testing.T, args ...string) (*cobra.Command, *pipeline.Options) {
	t.Helper()
	opts := pipeline.DefaultOptions()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("format", "f", "", "")
	addPanelFlags(cmd, &opts)
	addRenderFlags(cmd, &opts)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error: %v", args, err)
	}
	return cmd, &opts
}

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panel.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveOptionsFlagsOnly(t *testing.T) {
	cmd, flagOpts := testCommand(t, "--width", "400", "--steps", "2,2", "--jitter")
	opts, err := resolveOptions(cmd, *flagOpts, "", "png")
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}
	if opts.Width != 400 || !opts.Jitter || !slices.Equal(opts.Steps, []float64{2, 2}) {
		t.Errorf("opts = %+v", opts.Params)
	}
	if opts.Height != 110 {
		t.Errorf("Height = %g, want default 110", opts.Height)
	}
	if !slices.Equal(opts.Formats, []string{"png"}) {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}
}

func TestResolveOptionsConfigAndFlags(t *testing.T) {
	path := writeTOML(t, `
width = 600.0
height = 300.0
jitter = true
formats = ["md"]
`)
	cmd, flagOpts := testCommand(t, "--height", "250", "--seed", "9")
	opts, err := resolveOptions(cmd, *flagOpts, path, "")
	if err != nil {
		t.Fatalf("resolveOptions() error: %v", err)
	}

	// From the file.
	if opts.Width != 600 || !opts.Jitter {
		t.Errorf("config values lost: %+v", opts.Params)
	}
	// Flags win.
	if opts.Height != 250 || opts.Seed != 9 {
		t.Errorf("Height = %g, Seed = %d; want 250, 9", opts.Height, opts.Seed)
	}
	// Formats come from the file unless -f is given.
	if !slices.Equal(opts.Formats, []string{"md"}) {
		t.Errorf("Formats = %v, want [md]", opts.Formats)
	}
}

func TestResolveOptionsFormatFlagOverridesConfig(t *testing.T) {
	path := writeTOML(t, "formats = [\"md\"]\n")
	cmd, flagOpts := testCommand(t, "-f", "svg,png")
	opts, err := resolveOptions(cmd, *flagOpts, path, "svg,png")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(opts.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v, want [svg png]", opts.Formats)
	}
}

func TestResolveOptionsErrors(t *testing.T) {
	cmd, flagOpts := testCommand(t)
	if _, err := resolveOptions(cmd, *flagOpts, "", "gif"); err == nil {
		t.Error("invalid format should fail")
	}
	if _, err := resolveOptions(cmd, *flagOpts, writeTOML(t, "colour = 1\n"), ""); err == nil {
		t.Error("unknown config key should fail")
	}
}

// isolateCache points the file cache at a per-test directory.
func isolateCache(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestGenerateAndRenderCommands(t *testing.T) {
	isolateCache(t)
	dir := t.TempDir()
	base := filepath.Join(dir, "door")

	if err := execute(t, "generate", "--no-cache", "--shuffle=false", "-f", "svg,json", "-o", base); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	for _, ext := range []string{".svg", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing output %s: %v", base+ext, err)
		}
	}

	d, err := drawing.ReadFile(base + ".json")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(d.Paths) != 10 || d.Paths["0_0"].Radius != 16 {
		t.Errorf("drawing has %d paths, 0_0 = %+v", len(d.Paths), d.Paths["0_0"])
	}

	if err := execute(t, "render", "--no-cache", "-f", "md,json", base+".json"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	md, err := os.ReadFile(base + ".md")
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if !strings.Contains(string(md), "**Open Area**: | 14%") {
		t.Errorf("markdown = %s", md)
	}

	// The input is never overwritten.
	after, err := os.ReadFile(base + ".json")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := drawing.Unmarshal(after); err != nil {
		t.Errorf("input drawing damaged: %v", err)
	}
}

func TestGenerateCommandConfig(t *testing.T) {
	isolateCache(t)
	out := filepath.Join(t.TempDir(), "cfg.md")
	path := writeTOML(t, "width = 400.0\nformats = [\"md\"]\n")

	if err := execute(t, "generate", "--config", path, "-o", out); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "# Panel 400 × 110 mm") {
		t.Errorf("markdown = %s", data)
	}
}

func TestGenerateCommandInvalid(t *testing.T) {
	isolateCache(t)
	if err := execute(t, "generate", "--no-cache", "--width", "0", "-o", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Error("zero width should fail")
	}
	if err := execute(t, "generate", "-f", "gif"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRenderCommandMissingInput(t *testing.T) {
	isolateCache(t)
	if err := execute(t, "render", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing input should fail")
	}
}

func TestParamsCommand(t *testing.T) {
	isolateCache(t)
	if err := execute(t, "params"); err != nil {
		t.Errorf("params error: %v", err)
	}
	if err := execute(t, "params", "--json"); err != nil {
		t.Errorf("params --json error: %v", err)
	}
}

func TestParamsTable(t *testing.T) {
	out := paramsTable(pipeline.Schema())
	for _, want := range []string{"max_radius", "Max hole radius (mm)", "10–100", "--max-radius", "--steps", "--show-border"} {
		if !strings.Contains(out, want) {
			t.Errorf("paramsTable() missing %q", want)
		}
	}
}

func TestReportTable(t *testing.T) {
	d, err := pipeline.Generate(pipeline.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	out := reportTable(d.Report)
	for _, want := range []string{"16, 8, 4, 3 mm", "3173 mm²", "23100 mm²", "14%"} {
		if !strings.Contains(out, want) {
			t.Errorf("reportTable() missing %q:\n%s", want, out)
		}
	}
}

func TestCacheDescription(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got := cacheDescription(fc); got != fc.Dir() {
		t.Errorf("cacheDescription(file) = %q, want %q", got, fc.Dir())
	}
	if got := cacheDescription(cache.NewNullCache()); got != "disabled" {
		t.Errorf("cacheDescription(null) = %q, want disabled", got)
	}
}

func TestCacheCommands(t *testing.T) {
	isolateCache(t)
	if err := execute(t, "generate", "-o", filepath.Join(t.TempDir(), "cached")); err != nil {
		t.Fatalf("generate error: %v", err)
	}
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) == 0 {
		t.Fatal("generate left the cache empty")
	}
	if err := execute(t, "cache", "clear"); err != nil {
		t.Errorf("cache clear error: %v", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("cache still has %d entries after clear", len(entries))
	}
	if err := execute(t, "cache", "path"); err != nil {
		t.Errorf("cache path error: %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&out)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s error: %v", shell, err)
			}
			if !strings.Contains(out.String(), "champagne") {
				t.Errorf("completion %s script does not mention champagne", shell)
			}
		})
	}

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"completion", "tcsh"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("completion tcsh should fail")
	}
}
