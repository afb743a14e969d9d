package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/champagne/pkg/pipeline"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		formatsStr string
		output     string
		noCache    bool
	)
	flagOpts := pipeline.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a perforated panel",
		Long: `Generate a perforated panel and write it in one or more formats.

Parameters come from the defaults, then from --config (a TOML file), then
from any flag given on the command line. Flags always win over the file.

Outputs are named <output>.<format>; with a single format, -o may name the
file directly. Results are cached locally for faster subsequent runs.`,
		Example: `  champagne generate --width 600 --height 300 -f svg,png
  champagne generate --config kitchen.toml -o out/kitchen
  champagne generate --steps 2,2,2 --jitter --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, flagOpts, configPath, formatsStr)
			if err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json, md, xlsx, html (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (default: panel)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	addPanelFlags(cmd, &flagOpts)
	addRenderFlags(cmd, &flagOpts)

	return cmd
}

// addPanelFlags registers one flag per panel parameter.
func addPanelFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Height, "height", opts.Height, "panel height (mm)")
	cmd.Flags().Float64Var(&opts.Width, "width", opts.Width, "panel width (mm)")
	cmd.Flags().Float64Var(&opts.Border, "border", opts.Border, "border kept free of holes (mm)")
	cmd.Flags().BoolVar(&opts.ShowBorder, "show-border", opts.ShowBorder, "draw the border outline")
	cmd.Flags().BoolVar(&opts.Shuffle, "shuffle", opts.Shuffle, "shuffle hole sizes across the grid")
	cmd.Flags().BoolVar(&opts.Jitter, "jitter", opts.Jitter, "offset smaller holes randomly within their cell")
	cmd.Flags().Float64Var(&opts.MaxRadius, "max-radius", opts.MaxRadius, "maximum hole radius (mm); sets the grid pitch")
	cmd.Flags().Float64SliceVar(&opts.Steps, "steps", opts.Steps, "radius steps (mm), subtracted cumulatively from the max radius")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed for shuffle and jitter")
}

// addRenderFlags registers the render settings shared by generate and render.
func addRenderFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "PNG resolution (pixels per mm)")
	cmd.Flags().StringVar(&opts.Stroke, "stroke", opts.Stroke, "SVG stroke color")
	cmd.Flags().Float64Var(&opts.StrokeWidth, "stroke-width", opts.StrokeWidth, "SVG stroke width (mm)")
	cmd.Flags().BoolVar(&opts.Notes, "notes", opts.Notes, "embed the report in the SVG")
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "HTML report title")
}

// flagOverrides copies a flag's value from src to dst, keyed by flag name.
var flagOverrides = map[string]func(dst *pipeline.Options, src pipeline.Options){
	"height":       func(d *pipeline.Options, s pipeline.Options) { d.Height = s.Height },
	"width":        func(d *pipeline.Options, s pipeline.Options) { d.Width = s.Width },
	"border":       func(d *pipeline.Options, s pipeline.Options) { d.Border = s.Border },
	"show-border":  func(d *pipeline.Options, s pipeline.Options) { d.ShowBorder = s.ShowBorder },
	"shuffle":      func(d *pipeline.Options, s pipeline.Options) { d.Shuffle = s.Shuffle },
	"jitter":       func(d *pipeline.Options, s pipeline.Options) { d.Jitter = s.Jitter },
	"max-radius":   func(d *pipeline.Options, s pipeline.Options) { d.MaxRadius = s.MaxRadius },
	"steps":        func(d *pipeline.Options, s pipeline.Options) { d.Steps = s.Steps },
	"seed":         func(d *pipeline.Options, s pipeline.Options) { d.Seed = s.Seed },
	"scale":        func(d *pipeline.Options, s pipeline.Options) { d.Scale = s.Scale },
	"stroke":       func(d *pipeline.Options, s pipeline.Options) { d.Stroke = s.Stroke },
	"stroke-width": func(d *pipeline.Options, s pipeline.Options) { d.StrokeWidth = s.StrokeWidth },
	"notes":        func(d *pipeline.Options, s pipeline.Options) { d.Notes = s.Notes },
	"title":        func(d *pipeline.Options, s pipeline.Options) { d.Title = s.Title },
}

// resolveOptions merges the config file with the flags the user set.
// Without a config file the flag values (and their defaults) are used as is.
func resolveOptions(cmd *cobra.Command, flagOpts pipeline.Options, configPath, formatsStr string) (pipeline.Options, error) {
	opts := flagOpts
	if configPath != "" {
		cfg, err := pipeline.LoadConfig(configPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		for name, apply := range flagOverrides {
			if cmd.Flags().Changed(name) {
				apply(&cfg, flagOpts)
			}
		}
		opts = cfg
	}
	if configPath == "" || cmd.Flags().Changed("format") {
		opts.Formats = parseFormats(formatsStr)
	}
	opts.Steps = append([]float64(nil), opts.Steps...)
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}

// runGenerate executes the pipeline and writes the artifacts.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Generating panel...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Generated %d holes", result.Stats.HoleCount))

	written, err := writeArtifacts(result.Artifacts, opts.Formats, outputPaths(opts.Formats, output, defaultBase))
	if err != nil {
		return err
	}

	printSuccess("Generated %s × %s mm panel",
		StyleNumber.Render(fmt.Sprint(opts.Width)), StyleNumber.Render(fmt.Sprint(opts.Height)))
	printCacheStatus(result.Stats.HoleCount, result.CacheInfo.DrawingHit && result.CacheInfo.RenderHit)
	for _, path := range written {
		printFile(path)
	}
	printNewline()
	fmt.Println(reportTable(result.Drawing.Report))

	if result.Stats.HoleCount == 0 {
		printWarning("No holes fit: the border or max radius leaves no room for a single hole")
	}
	if !slices.Contains(opts.Formats, pipeline.FormatJSON) {
		printNewline()
		printNextStep("Save the drawing for re-rendering", "champagne generate -f json")
	}
	return nil
}
