package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/champagne/pkg/drawing"
	perrors "github.com/matzehuels/champagne/pkg/errors"
)

// MaxPNGPixels bounds the raster size of [RenderPNG].
const MaxPNGPixels = 64 << 20

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale     float64
	lineWidth float64
}

// WithScale sets the resolution in pixels per millimetre (default 4).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithLineWidth sets the outline width in pixels (default 1.5).
func WithLineWidth(px float64) PNGOption {
	return func(r *pngRenderer) { r.lineWidth = px }
}

// RenderPNG rasterizes the drawing: black outlines on white, one pixel grid
// per 1/scale millimetre.
func RenderPNG(d drawing.Drawing, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 4, lineWidth: 1.5}
	for _, opt := range opts {
		opt(&r)
	}
	if err := perrors.ValidatePositive("png scale", r.scale); err != nil {
		return nil, err
	}

	fw, fh := math.Ceil(d.Width*r.scale), math.Ceil(d.Height*r.scale)
	if !(fw >= 1 && fh >= 1) || fw*fh > MaxPNGPixels {
		return nil, perrors.New(perrors.ErrCodeInvalidInput,
			"png of %g × %g px is outside the supported size (max %d pixels)", fw, fh, MaxPNGPixels)
	}

	dc := gg.NewContext(int(fw), int(fh))
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(r.lineWidth)

	s := r.scale
	rects := []drawing.Rect{d.Outline()}
	if b, ok := d.Border(); ok {
		rects = append(rects, b)
	}
	for _, rect := range rects {
		dc.DrawRectangle(rect.Origin[0]*s, rect.Origin[1]*s, rect.Width*s, rect.Height*s)
	}
	for _, key := range d.Keys() {
		c := d.Paths[key]
		dc.DrawCircle(c.Origin[0]*s, c.Origin[1]*s, c.Radius*s)
	}
	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("stroke outlines: %w", err)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
