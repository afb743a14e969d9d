package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/champagne/pkg/drawing"
	"github.com/matzehuels/champagne/pkg/pipeline"
)

// renderCommand creates the render command for re-rendering a saved drawing.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "render [drawing.json]",
		Short: "Render a saved drawing to other formats",
		Long: `Render a saved drawing to other formats.

The render command takes a drawing.json file (produced by 'generate -f json')
and renders it without regenerating the layout, so shuffled and jittered
panels come out exactly as saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, md, xlsx, html (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (default: input name)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addRenderFlags(cmd, &opts)

	return cmd
}

// runRender loads the drawing and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	d, err := drawing.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load drawing %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Rendering...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, d, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	paths := outputPaths(opts.Formats, output, strings.TrimSuffix(input, filepath.Ext(input)))
	for f, path := range paths {
		if filepath.Clean(path) == filepath.Clean(input) {
			printWarning("Skipping %s: it would overwrite the input", path)
			delete(paths, f)
			delete(artifacts, f)
		}
	}

	written, err := writeArtifacts(artifacts, opts.Formats, paths)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printCacheStatus(len(d.Paths), cacheHit)
	for _, path := range written {
		printFile(path)
	}
	return nil
}
