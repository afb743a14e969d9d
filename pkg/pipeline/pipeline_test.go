package pipeline

import (
	"slices"
	"strings"
	"testing"

	perrors "github.com/matzehuels/champagne/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"json", false},
		{"md", false},
		{"xlsx", false},
		{"html", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want %s", tt.format, perrors.GetCode(err), perrors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestContentTypesCoverFormats(t *testing.T) {
	for _, f := range Formats {
		if ContentTypes[f] == "" {
			t.Errorf("no content type for %q", f)
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := DefaultOptions()

	if opts.Height != 110 || opts.Width != 210 {
		t.Errorf("size = %gx%g, want 110x210", opts.Height, opts.Width)
	}
	if opts.Seed != DefaultSeed {
		t.Errorf("Seed = %d, want %d", opts.Seed, DefaultSeed)
	}
	if !slices.Equal(opts.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("default options should validate: %v", err)
	}
}

func TestOptionsValidateForGenerate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   perrors.Code
	}{
		{"defaults", func(*Options) {}, ""},
		{"zero height", func(o *Options) { o.Height = 0 }, perrors.ErrCodeInvalidDimension},
		{"negative width", func(o *Options) { o.Width = -10 }, perrors.ErrCodeInvalidDimension},
		{"negative border", func(o *Options) { o.Border = -1 }, perrors.ErrCodeInvalidDimension},
		{"zero max radius", func(o *Options) { o.MaxRadius = 0 }, perrors.ErrCodeInvalidDimension},
		{"negative step", func(o *Options) { o.Steps = []float64{4, -1} }, perrors.ErrCodeInvalidStep},
		{"too many holes", func(o *Options) {
			o.Height, o.Width, o.MaxRadius = 2000, 2000, 1
			o.Steps = nil
		}, perrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			err := opts.ValidateForGenerate()
			if tt.code == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !perrors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSetRenderDefaults(t *testing.T) {
	var opts Options
	opts.SetRenderDefaults()

	if !slices.Equal(opts.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale = %g, want %g", opts.Scale, DefaultScale)
	}
	if opts.Stroke != DefaultStroke || opts.StrokeWidth != DefaultStrokeWidth {
		t.Errorf("stroke = %q/%g, want %q/%g", opts.Stroke, opts.StrokeWidth, DefaultStroke, DefaultStrokeWidth)
	}

	// Explicit values are kept.
	opts = Options{Formats: []string{FormatPNG}, Scale: 2, Stroke: "red", StrokeWidth: 1}
	opts.SetRenderDefaults()
	if opts.Formats[0] != FormatPNG || opts.Scale != 2 || opts.Stroke != "red" || opts.StrokeWidth != 1 {
		t.Errorf("SetRenderDefaults overwrote explicit values: %+v", opts)
	}
}

func TestOptionsValidateForRender(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = -1
	if err := opts.ValidateForRender(); !perrors.Is(err, perrors.ErrCodeInvalidDimension) {
		t.Errorf("negative scale: error = %v, want %s", err, perrors.ErrCodeInvalidDimension)
	}

	opts = DefaultOptions()
	opts.Formats = []string{"gif"}
	if err := opts.ValidateForRender(); !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("bad format: error = %v, want %s", err, perrors.ErrCodeInvalidFormat)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := DefaultOptions()
	opts.Formats = nil
	for range 2 {
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("ValidateAndSetDefaults() error: %v", err)
		}
	}
	if !slices.Equal(opts.Formats, []string{FormatSVG}) {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	b.Scale = 8
	b.Title = "Kitchen"

	if a.ArtifactKeyOpts(FormatSVG) != b.ArtifactKeyOpts(FormatSVG) {
		t.Error("PNG scale and HTML title should not affect the SVG key")
	}
	if a.ArtifactKeyOpts(FormatPNG) == b.ArtifactKeyOpts(FormatPNG) {
		t.Error("scale should affect the PNG key")
	}
	if a.ArtifactKeyOpts(FormatHTML) == b.ArtifactKeyOpts(FormatHTML) {
		t.Error("title should affect the HTML key")
	}

	b = DefaultOptions()
	b.Notes = true
	if a.ArtifactKeyOpts(FormatSVG) == b.ArtifactKeyOpts(FormatSVG) {
		t.Error("notes should affect the SVG key")
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(FormatMarkdown); got != ".md" {
		t.Errorf("Extension(md) = %q, want .md", got)
	}
}

func TestSchema(t *testing.T) {
	specs := Schema()
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	want := []string{"height", "width", "border", "show_border", "shuffle", "jitter", "max_radius", "step1", "step2", "step3", "step4"}
	if !slices.Equal(names, want) {
		t.Errorf("Schema() names = %v, want %v", names, want)
	}
	if specs[0].Range() != "10–2000" {
		t.Errorf("height Range() = %q", specs[0].Range())
	}
	if specs[3].Range() != "" {
		t.Errorf("bool Range() = %q, want empty", specs[3].Range())
	}
}

func TestWarnings(t *testing.T) {
	if w := DefaultOptions().Warnings(); len(w) != 0 {
		t.Errorf("defaults produced warnings: %v", w)
	}

	opts := DefaultOptions()
	opts.Height = 5
	opts.Steps = []float64{4, 8, 4, 1, 30}
	w := opts.Warnings()
	if len(w) != 2 {
		t.Fatalf("Warnings() = %v, want 2 entries", w)
	}
	if !strings.Contains(w[0], "Height") || !strings.Contains(w[1], "Step 5") {
		t.Errorf("Warnings() = %v", w)
	}
}
